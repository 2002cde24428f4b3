package booking

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/fyyurapp/fyyur/pkg/artists"
	"github.com/fyyurapp/fyyur/pkg/directory"
	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/shows"
	"github.com/fyyurapp/fyyur/pkg/testutils"
	"github.com/fyyurapp/fyyur/pkg/venues"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func venuePayload(name string, genres ...int) *venues.VenuePayload {
	return &venues.VenuePayload{
		Name:    name,
		City:    "New York",
		State:   "NY",
		Address: "131 W 3rd St",
		Phone:   "212-475-8592",
		Genres:  genres,
	}
}

func artistPayload(name string, genres ...int) *artists.ArtistPayload {
	return &artists.ArtistPayload{
		Name:   name,
		City:   "New York",
		State:  "NY",
		Phone:  "300-400-5000",
		Genres: genres,
	}
}

func assertWriteFailed(t *testing.T, err error, message string) {
	t.Helper()

	var e *errcodes.Error
	require.True(t, errors.As(err, &e), "expected an errcodes.Error, got %v", err)
	assert.Equal(t, http.StatusInternalServerError, e.HTTPCode)
	assert.Equal(t, "write_failed", e.Code)
	assert.Equal(t, message, e.Message)
}

func TestService_VenueLifecycle(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	jazz := testutils.GenreID(t, db, "Jazz")
	blues := testutils.GenreID(t, db, "Blues")

	venue, err := svc.CreateVenue(ctx, venuePayload("Blue Note", jazz))
	require.NoError(t, err)
	assert.NotZero(t, venue.ID)

	updated, err := svc.UpdateVenue(ctx, venue.ID, venuePayload("The Blue Note", blues))
	require.NoError(t, err)
	assert.Equal(t, "The Blue Note", updated.Name)

	stored, err := venues.NewService(db).Retrieve(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blues"}, stored.GenreNames())

	require.NoError(t, svc.DeleteVenue(ctx, venue.ID))
	assert.Equal(t, 0, testutils.Count(t, db, "venues"))

	assert.True(t, errcodes.IsNotFound(svc.DeleteVenue(ctx, venue.ID)))
	_, err = svc.UpdateVenue(ctx, venue.ID, venuePayload("Gone"))
	assert.True(t, errcodes.IsNotFound(err))
}

func TestService_ArtistLifecycle(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	rock := testutils.GenreID(t, db, "Rock n Roll")

	artist, err := svc.CreateArtist(ctx, artistPayload("Guns N Petals", rock))
	require.NoError(t, err)

	payload := artistPayload("Guns N Petals", rock)
	payload.SeekingVenue = true
	updated, err := svc.UpdateArtist(ctx, artist.ID, payload)
	require.NoError(t, err)
	assert.True(t, updated.SeekingVenue)

	require.NoError(t, svc.DeleteArtist(ctx, artist.ID))
	assert.True(t, errcodes.IsNotFound(svc.DeleteArtist(ctx, artist.ID)))
}

func TestService_CreateShow(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	venue := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")

	t.Run("books an existing pair", func(tt *testing.T) {
		show, err := svc.CreateShow(ctx, &shows.ShowPayload{ArtistID: artist.ID, VenueID: venue.ID, StartTime: "2035-04-01 20:00:00"})
		require.NoError(tt, err)
		assert.NotZero(tt, show.ID)
		assert.Equal(tt, "2035-04-01 20:00:00", show.FormattedStartTime())
	})

	t.Run("rejects a missing artist or venue without writing", func(tt *testing.T) {
		before := testutils.Count(tt, db, "shows")

		for _, p := range []*shows.ShowPayload{
			{ArtistID: artist.ID + 100, VenueID: venue.ID, StartTime: "2035-04-01 20:00:00"},
			{ArtistID: artist.ID, VenueID: venue.ID + 100, StartTime: "2035-04-01 20:00:00"},
		} {
			_, err := svc.CreateShow(ctx, p)
			require.Error(tt, err)
			assert.True(tt, errcodes.IsValidation(err))
			assert.Equal(tt, "Please make sure the Artist ID and the Venue ID exist.", err.Error())
		}

		assert.Equal(tt, before, testutils.Count(tt, db, "shows"))
	})
}

func TestService_WriteFailureRollsBack(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	jazz := testutils.GenreID(t, db, "Jazz")

	// The venue row is inserted before genre links are written, so losing
	// the link table fails the command halfway through.
	_, err := db.ExecContext(ctx, "DROP TABLE genres_venues")
	require.NoError(t, err)

	_, err = svc.CreateVenue(ctx, venuePayload("Blue Note", jazz))
	assertWriteFailed(t, err, "An error occurred. Venue Blue Note could not be listed, please try again.")
	assert.Equal(t, 0, testutils.Count(t, db, "venues"))
}

func TestService_UpdateFailureRollsBack(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	jazz := testutils.GenreID(t, db, "Jazz")
	blues := testutils.GenreID(t, db, "Blues")

	venue, err := svc.CreateVenue(ctx, venuePayload("Blue Note", jazz))
	require.NoError(t, err)

	// The columns are rewritten and the old links removed before the new
	// links are inserted, so this aborts the command after both.
	_, err = db.ExecContext(ctx, `
		CREATE TRIGGER genres_venues_no_insert BEFORE INSERT ON genres_venues
		BEGIN SELECT RAISE(ABORT, 'genre links disabled'); END`)
	require.NoError(t, err)

	_, err = svc.UpdateVenue(ctx, venue.ID, venuePayload("Renamed", blues))
	assertWriteFailed(t, err, "An error occurred. Venue Renamed could not be updated, please try again.")

	stored, err := venues.NewService(db).Retrieve(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Note", stored.Name)
	assert.Equal(t, "blue note", stored.NameSearch)
	assert.Equal(t, []string{"Jazz"}, stored.GenreNames())
}

func TestService_DeleteFailureKeepsShows(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	venue := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")
	testutils.InsertShow(t, db, artist.ID, venue.ID, time.Now().Add(time.Hour))

	_, err := db.ExecContext(ctx, `
		CREATE TRIGGER venues_no_delete BEFORE DELETE ON venues
		BEGIN SELECT RAISE(ABORT, 'venue deletes disabled'); END`)
	require.NoError(t, err)

	err = svc.DeleteVenue(ctx, venue.ID)
	assertWriteFailed(t, err, "An error occurred. Venue The Musical Hop could not be deleted, please try again.")
	assert.Equal(t, 1, testutils.Count(t, db, "shows"))
	assert.Equal(t, 1, testutils.Count(t, db, "venues"))
}

// Venue "Blue Note" and artist "Miles" with one show an hour before now and
// one a day after.
func TestService_EndToEnd(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	dir := directory.NewService(db, 10)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	jazz := testutils.GenreID(t, db, "Jazz")
	venue, err := svc.CreateVenue(ctx, venuePayload("Blue Note", jazz))
	require.NoError(t, err)
	artist, err := svc.CreateArtist(ctx, artistPayload("Miles", jazz))
	require.NoError(t, err)

	for _, start := range []time.Time{now.Add(-time.Hour), now.Add(24 * time.Hour)} {
		_, err := svc.CreateShow(ctx, &shows.ShowPayload{
			ArtistID:  artist.ID,
			VenueID:   venue.ID,
			StartTime: start.Format("2006-01-02 15:04:05"),
		})
		require.NoError(t, err)
	}

	venueDetail, err := dir.VenueDetail(ctx, venue.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, venueDetail.PastShowsCount)
	assert.Equal(t, 1, venueDetail.UpcomingShowsCount)
	assert.Equal(t, []string{"Jazz"}, venueDetail.Genres)
	assert.Equal(t, "Miles", venueDetail.PastShows[0].ArtistName)

	artistDetail, err := dir.ArtistDetail(ctx, artist.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, artistDetail.PastShowsCount)
	assert.Equal(t, 1, artistDetail.UpcomingShowsCount)
	assert.Equal(t, "Blue Note", artistDetail.UpcomingShows[0].VenueName)

	result, err := dir.SearchVenues(ctx, "blue", now)
	require.NoError(t, err)
	assert.Equal(t, []directory.Summary{{ID: venue.ID, Name: "Blue Note", NumUpcomingShows: 1}}, result.Data)

	require.NoError(t, svc.DeleteVenue(ctx, venue.ID))
	artistDetail, err = dir.ArtistDetail(ctx, artist.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 0, artistDetail.PastShowsCount+artistDetail.UpcomingShowsCount)
}
