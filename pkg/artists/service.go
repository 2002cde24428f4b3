package artists

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

// Service stores artists and their genre links. Build it on a bun.Tx to make
// several calls part of one transaction.
type Service struct {
	db     bun.IDB
	genres *genres.Service
}

func NewService(db bun.IDB) *Service {
	return &Service{db, genres.NewService(db)}
}

func (svc *Service) Retrieve(ctx context.Context, id int) (*models.Artist, error) {
	artist := &models.Artist{}

	err := svc.db.
		NewSelect().
		Model(artist).
		Relation("ArtistGenres", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("ag.genre_id ASC")
		}).
		Relation("ArtistGenres.Genre").
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Artist")
		}
		return nil, errors.WithStack(err)
	}

	return artist, nil
}

func (svc *Service) Exists(ctx context.Context, id int) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Artist)(nil)).
		Where("a.id = ?", id).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

// Create inserts artist and links it to the genres in genreIDs that exist.
func (svc *Service) Create(ctx context.Context, artist *models.Artist, genreIDs []int) error {
	now := time.Now().UTC()
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = now
	}
	artist.UpdatedAt = artist.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(artist).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	artist.ArtistGenres, err = svc.replaceGenres(ctx, artist.ID, genreIDs)
	return err
}

// Update overwrites every editable column of artist and replaces its genre
// links with genreIDs.
func (svc *Service) Update(ctx context.Context, artist *models.Artist, genreIDs []int) error {
	artist.UpdatedAt = time.Now().UTC()
	columns := append(append([]string{}, models.ArtistEditableColumns...), "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(artist).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errcodes.NotFound("Artist")
	}

	artist.ArtistGenres, err = svc.replaceGenres(ctx, artist.ID, genreIDs)
	return err
}

// Delete removes the artist along with its shows and genre links.
func (svc *Service) Delete(ctx context.Context, id int) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.Show)(nil)).
		Where("artist_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = svc.db.
		NewDelete().
		Model((*models.ArtistGenre)(nil)).
		Where("artist_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	res, err := svc.db.
		NewDelete().
		Model((*models.Artist)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errcodes.NotFound("Artist")
	}
	return nil
}

// List returns every artist in id order.
func (svc *Service) List(ctx context.Context) ([]*models.Artist, error) {
	var artists []*models.Artist

	err := svc.db.
		NewSelect().
		Model(&artists).
		Order("a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return artists, nil
}

// Search matches term anywhere in the artist name, ignoring case. An empty
// term matches every artist.
func (svc *Service) Search(ctx context.Context, term string) ([]*models.Artist, error) {
	var artists []*models.Artist

	err := svc.db.
		NewSelect().
		Model(&artists).
		Where(`a.name_search LIKE ? ESCAPE '\'`, database.ContainsPattern(models.SearchKey(term))).
		Order("a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return artists, nil
}

// Recent returns the limit most recently listed artists, newest first.
func (svc *Service) Recent(ctx context.Context, limit int) ([]*models.Artist, error) {
	var artists []*models.Artist

	err := svc.db.
		NewSelect().
		Model(&artists).
		Order("a.created_at DESC", "a.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return artists, nil
}

func (svc *Service) replaceGenres(ctx context.Context, artistID int, genreIDs []int) ([]*models.ArtistGenre, error) {
	_, err := svc.db.
		NewDelete().
		Model((*models.ArtistGenre)(nil)).
		Where("artist_id = ?", artistID).
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resolved, err := svc.genres.ResolveGenres(ctx, genreIDs)
	if err != nil {
		return nil, err
	}

	links := make([]*models.ArtistGenre, 0, len(resolved))
	for _, g := range resolved {
		links = append(links, &models.ArtistGenre{GenreID: g.ID, ArtistID: artistID, Genre: g})
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
