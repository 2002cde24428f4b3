package venues

import (
	"context"
	"database/sql"
	"time"

	"github.com/fyyurapp/fyyur/pkg/database"
	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/genres"
	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Service stores venues and their genre links. Build it on a bun.Tx to make
// several calls part of one transaction.
type Service struct {
	db     bun.IDB
	genres *genres.Service
}

func NewService(db bun.IDB) *Service {
	return &Service{db, genres.NewService(db)}
}

func (svc *Service) Retrieve(ctx context.Context, id int) (*models.Venue, error) {
	venue := &models.Venue{}

	err := svc.db.
		NewSelect().
		Model(venue).
		Relation("VenueGenres", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("gv.genre_id ASC")
		}).
		Relation("VenueGenres.Genre").
		Where("v.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Venue")
		}
		return nil, errors.WithStack(err)
	}

	return venue, nil
}

func (svc *Service) Exists(ctx context.Context, id int) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Venue)(nil)).
		Where("v.id = ?", id).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

// Create inserts venue and links it to the genres in genreIDs that exist.
func (svc *Service) Create(ctx context.Context, venue *models.Venue, genreIDs []int) error {
	now := time.Now().UTC()
	if venue.CreatedAt.IsZero() {
		venue.CreatedAt = now
	}
	venue.UpdatedAt = venue.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(venue).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	venue.VenueGenres, err = svc.replaceGenres(ctx, venue.ID, genreIDs)
	return err
}

// Update overwrites every editable column of venue and replaces its genre
// links with genreIDs.
func (svc *Service) Update(ctx context.Context, venue *models.Venue, genreIDs []int) error {
	venue.UpdatedAt = time.Now().UTC()
	columns := append(append([]string{}, models.VenueEditableColumns...), "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(venue).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errcodes.NotFound("Venue")
	}

	venue.VenueGenres, err = svc.replaceGenres(ctx, venue.ID, genreIDs)
	return err
}

// Delete removes the venue along with its shows and genre links.
func (svc *Service) Delete(ctx context.Context, id int) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.Show)(nil)).
		Where("venue_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = svc.db.
		NewDelete().
		Model((*models.VenueGenre)(nil)).
		Where("venue_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	res, err := svc.db.
		NewDelete().
		Model((*models.Venue)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errcodes.NotFound("Venue")
	}
	return nil
}

// List returns every venue in id order.
func (svc *Service) List(ctx context.Context) ([]*models.Venue, error) {
	var venues []*models.Venue

	err := svc.db.
		NewSelect().
		Model(&venues).
		Order("v.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return venues, nil
}

// Search matches term anywhere in the venue name, ignoring case. An empty
// term matches every venue.
func (svc *Service) Search(ctx context.Context, term string) ([]*models.Venue, error) {
	var venues []*models.Venue

	err := svc.db.
		NewSelect().
		Model(&venues).
		Where(`v.name_search LIKE ? ESCAPE '\'`, database.ContainsPattern(models.SearchKey(term))).
		Order("v.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return venues, nil
}

// Recent returns the limit most recently listed venues, newest first.
func (svc *Service) Recent(ctx context.Context, limit int) ([]*models.Venue, error) {
	var venues []*models.Venue

	err := svc.db.
		NewSelect().
		Model(&venues).
		Order("v.created_at DESC", "v.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return venues, nil
}

func (svc *Service) replaceGenres(ctx context.Context, venueID int, genreIDs []int) ([]*models.VenueGenre, error) {
	_, err := svc.db.
		NewDelete().
		Model((*models.VenueGenre)(nil)).
		Where("venue_id = ?", venueID).
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resolved, err := svc.genres.ResolveGenres(ctx, genreIDs)
	if err != nil {
		return nil, err
	}

	links := make([]*models.VenueGenre, 0, len(resolved))
	for _, g := range resolved {
		links = append(links, &models.VenueGenre{GenreID: g.ID, VenueID: venueID, Genre: g})
	}
	if len(links) == 0 {
		return links, nil
	}

	_, err = svc.db.
		NewInsert().
		Model(&links).
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return links, nil
}
