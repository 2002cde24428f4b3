package shows

import (
	"context"
	"testing"
	"time"

	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/fyyurapp/fyyur/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateAndList(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	venue := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")

	later := &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)}
	earlier := &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)}
	require.NoError(t, svc.Create(ctx, later))
	require.NoError(t, svc.Create(ctx, earlier))
	assert.NotZero(t, later.ID)
	assert.False(t, later.CreatedAt.IsZero())

	shows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, earlier.ID, shows[0].ID)
	require.NotNil(t, shows[0].Venue)
	require.NotNil(t, shows[0].Artist)
	assert.Equal(t, "The Musical Hop", shows[0].Venue.Name)
	assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
	assert.Equal(t, "2019-05-21 21:30:00", shows[0].FormattedStartTime())
}

func TestService_Create_RequiresExistingRows(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)

	err := svc.Create(context.Background(), &models.Show{ArtistID: 1, VenueID: 1, StartTime: time.Now()})
	require.Error(t, err)
	assert.Equal(t, 0, testutils.Count(t, db, "shows"))
}

func TestService_ForVenueAndForArtist(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	hop := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	park := testutils.InsertVenue(t, db, "Park Square", "San Francisco", "CA")
	petals := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")
	sax := testutils.InsertArtist(t, db, "The Wild Sax Band", "San Francisco", "CA")

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	testutils.InsertShow(t, db, petals.ID, hop.ID, start)
	testutils.InsertShow(t, db, sax.ID, hop.ID, start.Add(time.Hour))
	testutils.InsertShow(t, db, sax.ID, park.ID, start.Add(2*time.Hour))

	atHop, err := svc.ForVenue(ctx, hop.ID)
	require.NoError(t, err)
	require.Len(t, atHop, 2)
	assert.Equal(t, "Guns N Petals", atHop[0].Artist.Name)
	assert.Equal(t, "The Wild Sax Band", atHop[1].Artist.Name)
	assert.Nil(t, atHop[0].Venue)

	bySax, err := svc.ForArtist(ctx, sax.ID)
	require.NoError(t, err)
	require.Len(t, bySax, 2)
	assert.Equal(t, "The Musical Hop", bySax[0].Venue.Name)
	assert.Equal(t, "Park Square", bySax[1].Venue.Name)
}

func TestService_UpcomingCounts(t *testing.T) {
	t.Parallel()
	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	hop := testutils.InsertVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	park := testutils.InsertVenue(t, db, "Park Square", "San Francisco", "CA")
	empty := testutils.InsertVenue(t, db, "Empty Hall", "San Francisco", "CA")
	artist := testutils.InsertArtist(t, db, "Guns N Petals", "San Francisco", "CA")

	testutils.InsertShow(t, db, artist.ID, hop.ID, now.Add(-time.Hour))
	testutils.InsertShow(t, db, artist.ID, hop.ID, now)
	testutils.InsertShow(t, db, artist.ID, hop.ID, now.Add(time.Hour))
	testutils.InsertShow(t, db, artist.ID, park.ID, now.Add(-time.Minute))

	counts, err := svc.UpcomingCounts(ctx, ByVenue, []int{hop.ID, park.ID, empty.ID}, now)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[hop.ID], "a show starting exactly now is upcoming")
	assert.Equal(t, 0, counts[park.ID])
	assert.Equal(t, 0, counts[empty.ID])

	byArtist, err := svc.UpcomingCounts(ctx, ByArtist, []int{artist.ID}, now)
	require.NoError(t, err)
	assert.Equal(t, 2, byArtist[artist.ID])

	_, err = svc.UpcomingCounts(ctx, "id; DROP TABLE shows", []int{1}, now)
	require.Error(t, err)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	before := &models.Show{ID: 1, StartTime: now.Add(-time.Second)}
	at := &models.Show{ID: 2, StartTime: now}
	after := &models.Show{ID: 3, StartTime: now.Add(time.Second)}

	past, upcoming := Split([]*models.Show{before, at, after}, now)
	assert.Equal(t, []*models.Show{before}, past)
	assert.Equal(t, []*models.Show{at, after}, upcoming)

	past, upcoming = Split(nil, now)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestShowPayload_Show(t *testing.T) {
	t.Parallel()

	p := ShowPayload{ArtistID: 4, VenueID: 1, StartTime: "2035-04-01 20:00:00"}
	show, err := p.Show()
	require.NoError(t, err)
	assert.Equal(t, 4, show.ArtistID)
	assert.Equal(t, 1, show.VenueID)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), show.StartTime)

	p.StartTime = "tomorrow"
	_, err = p.Show()
	require.Error(t, err)
}
