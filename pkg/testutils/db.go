// Package testutils provides helpers shared by package tests: a migrated
// in-memory database and row fixtures.
package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/fyyurapp/fyyur/pkg/config"
	"github.com/fyyurapp/fyyur/pkg/database"
	"github.com/fyyurapp/fyyur/pkg/migrations"
	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// NewDB opens a fresh in-memory database with every migration applied,
// including the genre seed.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := database.New(config.NewForTest())
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// GenreID looks up a seeded genre by name.
func GenreID(t *testing.T, db bun.IDB, name string) int {
	t.Helper()

	genre := &models.Genre{}
	err := db.NewSelect().Model(genre).Where("g.name = ?", name).Scan(context.Background())
	require.NoError(t, err)
	return genre.ID
}

// InsertVenue writes a venue row directly, bypassing the stores.
func InsertVenue(t *testing.T, db bun.IDB, name, city, state string) *models.Venue {
	t.Helper()

	now := time.Now().UTC()
	venue := &models.Venue{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
		City:      city,
		State:     state,
		Address:   "1 Main St",
		Phone:     "555-555-5555",
	}
	_, err := db.NewInsert().Model(venue).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return venue
}

// InsertArtist writes an artist row directly, bypassing the stores.
func InsertArtist(t *testing.T, db bun.IDB, name, city, state string) *models.Artist {
	t.Helper()

	now := time.Now().UTC()
	artist := &models.Artist{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
		City:      city,
		State:     state,
		Phone:     "555-555-5555",
	}
	_, err := db.NewInsert().Model(artist).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return artist
}

// InsertShow books artistID at venueID for start.
func InsertShow(t *testing.T, db bun.IDB, artistID, venueID int, start time.Time) *models.Show {
	t.Helper()

	show := &models.Show{
		CreatedAt: time.Now().UTC(),
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: start.UTC(),
	}
	_, err := db.NewInsert().Model(show).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return show
}

// Count returns the number of rows in table.
func Count(t *testing.T, db bun.IDB, table string) int {
	t.Helper()

	n, err := db.NewSelect().TableExpr(table).Count(context.Background())
	require.NoError(t, err)
	return n
}
