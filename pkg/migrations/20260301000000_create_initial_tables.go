package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		statements := []string{
			`
			CREATE TABLE genres (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL
			)`,
			`CREATE UNIQUE INDEX ux_genres_name ON genres (name COLLATE NOCASE)`,
			`
			CREATE TABLE venues (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				name_search TEXT NOT NULL DEFAULT '',
				city TEXT NOT NULL,
				state TEXT NOT NULL,
				address TEXT NOT NULL,
				phone TEXT NOT NULL,
				image_link TEXT NOT NULL DEFAULT '',
				website TEXT NOT NULL DEFAULT '',
				facebook_link TEXT NOT NULL DEFAULT '',
				seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
				seeking_description TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE INDEX ix_venues_state_city ON venues (state, city)`,
			`CREATE INDEX ix_venues_created_at ON venues (created_at)`,
			`
			CREATE TABLE artists (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				name_search TEXT NOT NULL DEFAULT '',
				city TEXT NOT NULL,
				state TEXT NOT NULL,
				phone TEXT NOT NULL,
				image_link TEXT NOT NULL DEFAULT '',
				website TEXT NOT NULL DEFAULT '',
				facebook_link TEXT NOT NULL DEFAULT '',
				seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
				seeking_description TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE INDEX ix_artists_created_at ON artists (created_at)`,
			`
			CREATE TABLE shows (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				artist_id INTEGER NOT NULL REFERENCES artists (id) ON DELETE CASCADE,
				venue_id INTEGER NOT NULL REFERENCES venues (id) ON DELETE CASCADE,
				start_time TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX ix_shows_venue_id_start_time ON shows (venue_id, start_time)`,
			`CREATE INDEX ix_shows_artist_id_start_time ON shows (artist_id, start_time)`,
			`
			CREATE TABLE genres_venues (
				genre_id INTEGER NOT NULL REFERENCES genres (id) ON DELETE CASCADE,
				venue_id INTEGER NOT NULL REFERENCES venues (id) ON DELETE CASCADE,
				PRIMARY KEY (genre_id, venue_id)
			)`,
			`CREATE INDEX ix_genres_venues_venue_id ON genres_venues (venue_id)`,
			`
			CREATE TABLE artists_genres (
				artist_id INTEGER NOT NULL REFERENCES artists (id) ON DELETE CASCADE,
				genre_id INTEGER NOT NULL REFERENCES genres (id) ON DELETE CASCADE,
				PRIMARY KEY (artist_id, genre_id)
			)`,
			`CREATE INDEX ix_artists_genres_genre_id ON artists_genres (genre_id)`,
		}
		for _, stmt := range statements {
			if _, err := db.Exec(stmt); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		for _, table := range []string{"artists_genres", "genres_venues", "shows", "artists", "venues", "genres"} {
			if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
