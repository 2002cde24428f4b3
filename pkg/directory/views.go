package directory

import "github.com/fyyurapp/fyyur/pkg/models"

type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is every venue sharing a city and state.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type Home struct {
	Venues  []Entry `json:"venues"`
	Artists []Entry `json:"artists"`
}

// ArtistAppearance is a show as seen from the venue's page.
type ArtistAppearance struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueAppearance is a show as seen from the artist's page.
type VenueAppearance struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueDetail is the flattened venue page: the venue's own fields, its genre
// names and its shows on either side of the reference time.
type VenueDetail struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Address            string             `json:"address"`
	Phone              string             `json:"phone"`
	Genres             []string           `json:"genres"`
	ImageLink          string             `json:"image_link"`
	FacebookLink       string             `json:"facebook_link"`
	Website            string             `json:"website"`
	SeekingTalent      bool               `json:"seeking_talent"`
	SeekingDescription string             `json:"seeking_description"`
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Genres             []string          `json:"genres"`
	ImageLink          string            `json:"image_link"`
	FacebookLink       string            `json:"facebook_link"`
	Website            string            `json:"website"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

func artistAppearances(shows []*models.Show) []ArtistAppearance {
	out := make([]ArtistAppearance, 0, len(shows))
	for _, s := range shows {
		a := ArtistAppearance{ArtistID: s.ArtistID, StartTime: s.FormattedStartTime()}
		if s.Artist != nil {
			a.ArtistName = s.Artist.Name
			a.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, a)
	}
	return out
}

func venueAppearances(shows []*models.Show) []VenueAppearance {
	out := make([]VenueAppearance, 0, len(shows))
	for _, s := range shows {
		v := VenueAppearance{VenueID: s.VenueID, StartTime: s.FormattedStartTime()}
		if s.Venue != nil {
			v.VenueName = s.Venue.Name
			v.VenueImageLink = s.Venue.ImageLink
		}
		out = append(out, v)
	}
	return out
}
