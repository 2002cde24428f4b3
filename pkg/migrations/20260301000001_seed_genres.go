package migrations

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// seedGenres is the catalog venues and artists can be tagged with.
var seedGenres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

func init() {
	up := func(ctx context.Context, db *bun.DB) error {
		now := time.Now().UTC()
		for _, name := range seedGenres {
			_, err := db.NewRaw(
				"INSERT INTO genres (created_at, updated_at, name) VALUES (?, ?, ?) ON CONFLICT DO NOTHING",
				now, now, name,
			).Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	down := func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDelete().
			TableExpr("genres").
			Where("name IN (?)", bun.In(seedGenres)).
			Exec(ctx)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
