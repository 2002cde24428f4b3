package genres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Service reads the genre catalog. It works against either the pooled
// database or a transaction.
type Service struct {
	db bun.IDB
}

func NewService(db bun.IDB) *Service {
	return &Service{db}
}

func (svc *Service) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	var genres []*models.Genre

	err := svc.db.
		NewSelect().
		Model(&genres).
		Order("g.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return genres, nil
}

func (svc *Service) RetrieveGenre(ctx context.Context, id int) (*models.Genre, error) {
	genre := &models.Genre{}

	err := svc.db.
		NewSelect().
		Model(genre).
		Where("g.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Genre")
		}
		return nil, errors.WithStack(err)
	}

	return genre, nil
}

// ResolveGenres returns the genres matching ids, ordered by id. Ids that
// don't exist are dropped and duplicates collapse into one.
func (svc *Service) ResolveGenres(ctx context.Context, ids []int) ([]*models.Genre, error) {
	genres := []*models.Genre{}
	if len(ids) == 0 {
		return genres, nil
	}

	err := svc.db.
		NewSelect().
		Model(&genres).
		Where("g.id IN (?)", bun.In(ids)).
		Order("g.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return genres, nil
}

// FindOrCreateGenre finds an existing genre or creates a new one (case-insensitive match).
func (svc *Service) FindOrCreateGenre(ctx context.Context, name string) (*models.Genre, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, errors.New("genre name cannot be empty")
	}

	genre := &models.Genre{}
	err := svc.db.
		NewSelect().
		Model(genre).
		Where("LOWER(g.name) = LOWER(?)", name).
		Scan(ctx)
	if err == nil {
		return genre, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, errors.WithStack(err)
	}

	now := time.Now().UTC()
	genre = &models.Genre{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
	}
	_, err = svc.db.
		NewInsert().
		Model(genre).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}
	return genre, true, nil
}
