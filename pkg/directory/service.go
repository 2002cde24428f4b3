package directory

import (
	"context"
	"sort"
	"time"

	"github.com/fyyurapp/fyyur/pkg/artists"
	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/fyyurapp/fyyur/pkg/shows"
	"github.com/fyyurapp/fyyur/pkg/venues"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Kinds accepted by Recent.
const (
	KindVenues  = "venues"
	KindArtists = "artists"
)

const defaultRecentLimit = 10

// Service builds the read views of the directory. Every method that splits
// shows takes now explicitly so callers can pin it for a whole request.
type Service struct {
	venueService  *venues.Service
	artistService *artists.Service
	showService   *shows.Service
	recentLimit   int
}

func NewService(db bun.IDB, recentLimit int) *Service {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}
	return &Service{
		venueService:  venues.NewService(db),
		artistService: artists.NewService(db),
		showService:   shows.NewService(db),
		recentLimit:   recentLimit,
	}
}

// VenuesByLocation groups every venue by (city, state). Areas are ordered by
// state then city, and venues within an area by id.
func (svc *Service) VenuesByLocation(ctx context.Context, now time.Time) ([]Area, error) {
	all, err := svc.venueService.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := svc.showService.UpcomingCounts(ctx, shows.ByVenue, venueIDs(all), now)
	if err != nil {
		return nil, err
	}

	type location struct{ city, state string }
	index := map[location]int{}
	areas := []Area{}
	for _, v := range all {
		loc := location{v.City, v.State}
		i, ok := index[loc]
		if !ok {
			i = len(areas)
			index[loc] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return areas[i].State < areas[j].State
		}
		return areas[i].City < areas[j].City
	})
	return areas, nil
}

func (svc *Service) SearchVenues(ctx context.Context, term string, now time.Time) (*SearchResult, error) {
	found, err := svc.venueService.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	counts, err := svc.showService.UpcomingCounts(ctx, shows.ByVenue, venueIDs(found), now)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Count: len(found), Data: make([]Summary, 0, len(found))}
	for _, v := range found {
		result.Data = append(result.Data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return result, nil
}

func (svc *Service) SearchArtists(ctx context.Context, term string, now time.Time) (*SearchResult, error) {
	found, err := svc.artistService.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	counts, err := svc.showService.UpcomingCounts(ctx, shows.ByArtist, artistIDs(found), now)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Count: len(found), Data: make([]Summary, 0, len(found))}
	for _, a := range found {
		result.Data = append(result.Data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return result, nil
}

func (svc *Service) Artists(ctx context.Context) ([]Entry, error) {
	all, err := svc.artistService.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(all))
	for _, a := range all {
		entries = append(entries, Entry{ID: a.ID, Name: a.Name})
	}
	return entries, nil
}

// Recent returns the newest limit venues or artists. A limit of zero or less
// uses the configured default.
func (svc *Service) Recent(ctx context.Context, kind string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = svc.recentLimit
	}

	entries := []Entry{}
	switch kind {
	case KindVenues:
		found, err := svc.venueService.Recent(ctx, limit)
		if err != nil {
			return nil, err
		}
		for _, v := range found {
			entries = append(entries, Entry{ID: v.ID, Name: v.Name})
		}
	case KindArtists:
		found, err := svc.artistService.Recent(ctx, limit)
		if err != nil {
			return nil, err
		}
		for _, a := range found {
			entries = append(entries, Entry{ID: a.ID, Name: a.Name})
		}
	default:
		return nil, errors.Errorf("unknown listing kind %q", kind)
	}
	return entries, nil
}

func (svc *Service) Home(ctx context.Context) (*Home, error) {
	recentVenues, err := svc.Recent(ctx, KindVenues, 0)
	if err != nil {
		return nil, err
	}
	recentArtists, err := svc.Recent(ctx, KindArtists, 0)
	if err != nil {
		return nil, err
	}
	return &Home{Venues: recentVenues, Artists: recentArtists}, nil
}

// VenueDetail loads the venue and splits its shows around now.
func (svc *Service) VenueDetail(ctx context.Context, id int, now time.Time) (*VenueDetail, error) {
	venue, err := svc.venueService.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := svc.showService.ForVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming := shows.Split(all, now)

	return &VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             venue.GenreNames(),
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		Website:            venue.Website,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		PastShows:          artistAppearances(past),
		UpcomingShows:      artistAppearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// ArtistDetail loads the artist and splits its shows around now.
func (svc *Service) ArtistDetail(ctx context.Context, id int, now time.Time) (*ArtistDetail, error) {
	artist, err := svc.artistService.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := svc.showService.ForArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	past, upcoming := shows.Split(all, now)

	return &ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             artist.GenreNames(),
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		Website:            artist.Website,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		PastShows:          venueAppearances(past),
		UpcomingShows:      venueAppearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func venueIDs(vs []*models.Venue) []int {
	ids := make([]int, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, v.ID)
	}
	return ids
}

func artistIDs(as []*models.Artist) []int {
	ids := make([]int, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.ID)
	}
	return ids
}
