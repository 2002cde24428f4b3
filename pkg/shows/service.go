package shows

import (
	"context"
	"time"

	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Counted columns for UpcomingCounts.
const (
	ByVenue  = "venue_id"
	ByArtist = "artist_id"
)

// Service records shows. Shows are never edited; they go away only with
// their venue or artist.
type Service struct {
	db bun.IDB
}

func NewService(db bun.IDB) *Service {
	return &Service{db}
}

func (svc *Service) Create(ctx context.Context, show *models.Show) error {
	if show.CreatedAt.IsZero() {
		show.CreatedAt = time.Now().UTC()
	}
	show.StartTime = show.StartTime.UTC()

	_, err := svc.db.
		NewInsert().
		Model(show).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

// List returns every show with its artist and venue, earliest first.
func (svc *Service) List(ctx context.Context) ([]*models.Show, error) {
	var shows []*models.Show

	err := svc.db.
		NewSelect().
		Model(&shows).
		Relation("Artist").
		Relation("Venue").
		Order("s.start_time ASC", "s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return shows, nil
}

// ForVenue returns the venue's shows with the performing artist loaded.
func (svc *Service) ForVenue(ctx context.Context, venueID int) ([]*models.Show, error) {
	var shows []*models.Show

	err := svc.db.
		NewSelect().
		Model(&shows).
		Relation("Artist").
		Where("s.venue_id = ?", venueID).
		Order("s.start_time ASC", "s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return shows, nil
}

// ForArtist returns the artist's shows with the hosting venue loaded.
func (svc *Service) ForArtist(ctx context.Context, artistID int) ([]*models.Show, error) {
	var shows []*models.Show

	err := svc.db.
		NewSelect().
		Model(&shows).
		Relation("Venue").
		Where("s.artist_id = ?", artistID).
		Order("s.start_time ASC", "s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return shows, nil
}

// UpcomingCounts counts the shows starting at or after now for each id in
// ids, grouped by column (ByVenue or ByArtist). Ids without upcoming shows
// are absent from the result.
func (svc *Service) UpcomingCounts(ctx context.Context, column string, ids []int, now time.Time) (map[int]int, error) {
	if column != ByVenue && column != ByArtist {
		return nil, errors.Errorf("unsupported show count column %q", column)
	}

	counts := map[int]int{}
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		ID    int `bun:"id"`
		Count int `bun:"count"`
	}
	err := svc.db.
		NewSelect().
		Model((*models.Show)(nil)).
		ColumnExpr("s.? AS id", bun.Ident(column)).
		ColumnExpr("COUNT(*) AS count").
		Where("s.? IN (?)", bun.Ident(column), bun.In(ids)).
		Where("s.start_time >= ?", now.UTC()).
		GroupExpr("s.?", bun.Ident(column)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, r := range rows {
		counts[r.ID] = r.Count
	}
	return counts, nil
}

// Split partitions shows around now. A show is past only if it started
// strictly before now, so the two slices together hold every show once.
func Split(shows []*models.Show, now time.Time) (past, upcoming []*models.Show) {
	past = []*models.Show{}
	upcoming = []*models.Show{}
	for _, s := range shows {
		if s.IsPast(now) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}
