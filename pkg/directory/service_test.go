package directory

import (
	"context"
	"testing"
	"time"

	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func TestService_VenuesByLocation(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db, 10)
	ctx := context.Background()

	hop := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	pianos := testutils.InsertVenue(t, db, "The Dueling Pianos Bar", "New York", "NY")
	park := testutils.InsertVenue(t, db, "Park Square Live Music & Coffee", "San Francisco", "CA")
	la := testutils.InsertVenue(t, db, "The Echo", "Los Angeles", "CA")
	artist := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")
	testutils.InsertShow(t, db, artist.ID, park.ID, now.Add(time.Hour))
	testutils.InsertShow(t, db, artist.ID, park.ID, now.Add(-time.Hour))

	areas, err := svc.VenuesByLocation(ctx, now)
	require.NoError(t, err)
	require.Len(t, areas, 3)

	assert.Equal(t, "Los Angeles", areas[0].City)
	assert.Equal(t, []Summary{{ID: la.ID, Name: "The Echo"}}, areas[0].Venues)

	assert.Equal(t, "San Francisco", areas[1].City)
	assert.Equal(t, "CA", areas[1].State)
	assert.Equal(t, []Summary{
		{ID: hop.ID, Name: "The Musical Hop"},
		{ID: park.ID, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
	}, areas[1].Venues)

	assert.Equal(t, "New York", areas[2].City)
	assert.Equal(t, pianos.ID, areas[2].Venues[0].ID)
}

func TestService_VenuesByLocation_Empty(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db, 10)

	areas, err := svc.VenuesByLocation(context.Background(), now)
	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestService_Search(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db, 10)
	ctx := context.Background()

	hop := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	park := testutils.InsertVenue(t, db, "Park Square Live Music & Coffee", "San Francisco", "CA")
	testutils.InsertVenue(t, db, "The Dueling Pianos Bar", "New York", "NY")
	petals := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")
	testutils.InsertArtist(t, db, "Matt Quevedo", "New York", "NY")
	sax := testutils.InsertArtist(t, db, "The Wild Sax Band", "San Francisco", "CA")
	testutils.InsertShow(t, db, sax.ID, hop.ID, now.Add(time.Hour))
	testutils.InsertShow(t, db, sax.ID, park.ID, now.Add(2*time.Hour))

	t.Run("venues", func(tt *testing.T) {
		result, err := svc.SearchVenues(ctx, "Hop", now)
		require.NoError(tt, err)
		assert.Equal(tt, &SearchResult{Count: 1, Data: []Summary{{ID: hop.ID, Name: "The Musical Hop", NumUpcomingShows: 1}}}, result)

		result, err = svc.SearchVenues(ctx, "Music", now)
		require.NoError(tt, err)
		assert.Equal(tt, 2, result.Count)
	})

	t.Run("artists", func(tt *testing.T) {
		result, err := svc.SearchArtists(ctx, "A", now)
		require.NoError(tt, err)
		assert.Equal(tt, 3, result.Count)

		result, err = svc.SearchArtists(ctx, "band", now)
		require.NoError(tt, err)
		assert.Equal(tt, []Summary{{ID: sax.ID, Name: "The Wild Sax Band", NumUpcomingShows: 2}}, result.Data)

		result, err = svc.SearchArtists(ctx, "petals", now)
		require.NoError(tt, err)
		assert.Equal(tt, petals.ID, result.Data[0].ID)
	})

	t.Run("no match", func(tt *testing.T) {
		result, err := svc.SearchArtists(ctx, "zzz", now)
		require.NoError(tt, err)
		assert.Equal(tt, 0, result.Count)
		assert.NotNil(tt, result.Data)
	})
}

func TestService_RecentAndHome(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db, 2)
	ctx := context.Background()

	testutils.InsertVenue(t, db, "First", "Austin", "TX")
	second := testutils.InsertVenue(t, db, "Second", "Austin", "TX")
	third := testutils.InsertVenue(t, db, "Third", "Austin", "TX")
	artist := testutils.InsertArtist(t, db, "Solo", "Austin", "TX")

	recent, err := svc.Recent(ctx, KindVenues, 0)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{ID: third.ID, Name: "Third"}, {ID: second.ID, Name: "Second"}}, recent)

	recent, err = svc.Recent(ctx, KindVenues, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	_, err = svc.Recent(ctx, "shows", 10)
	require.Error(t, err)

	home, err := svc.Home(ctx)
	require.NoError(t, err)
	assert.Len(t, home.Venues, 2)
	assert.Equal(t, []Entry{{ID: artist.ID, Name: "Solo"}}, home.Artists)
}

func TestService_Details(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db, 10)
	ctx := context.Background()

	venue := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")
	testutils.InsertShow(t, db, artist.ID, venue.ID, now.Add(-48*time.Hour))
	testutils.InsertShow(t, db, artist.ID, venue.ID, now)
	testutils.InsertShow(t, db, artist.ID, venue.ID, now.Add(48*time.Hour))

	t.Run("venue", func(tt *testing.T) {
		detail, err := svc.VenueDetail(ctx, venue.ID, now)
		require.NoError(tt, err)
		assert.Equal(tt, 1, detail.PastShowsCount)
		assert.Equal(tt, 2, detail.UpcomingShowsCount)
		assert.Equal(tt, detail.PastShowsCount+detail.UpcomingShowsCount, 3)
		assert.Equal(tt, ArtistAppearance{
			ArtistID:   artist.ID,
			ArtistName: "Guns N Petals",
			StartTime:  "2030-05-30 12:00:00",
		}, detail.PastShows[0])
		assert.Equal(tt, "2030-06-01 12:00:00", detail.UpcomingShows[0].StartTime)
	})

	t.Run("artist", func(tt *testing.T) {
		detail, err := svc.ArtistDetail(ctx, artist.ID, now)
		require.NoError(tt, err)
		assert.Len(tt, detail.PastShows, 1)
		assert.Len(tt, detail.UpcomingShows, 2)
		assert.Equal(tt, "The Musical Hop", detail.UpcomingShows[1].VenueName)
		assert.Equal(tt, venue.ID, detail.UpcomingShows[1].VenueID)
	})

	t.Run("missing", func(tt *testing.T) {
		_, err := svc.VenueDetail(ctx, 9999, now)
		assert.True(tt, errcodes.IsNotFound(err))
		_, err = svc.ArtistDetail(ctx, 9999, now)
		assert.True(tt, errcodes.IsNotFound(err))
	})
}
