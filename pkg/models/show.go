package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ShowTimeLayout is the wire format of show start times.
const ShowTimeLayout = "2006-01-02 15:04:05"

type Show struct {
	bun.BaseModel `bun:"table:shows,alias:s"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ArtistID  int       `bun:",nullzero" json:"artist_id"`
	Artist    *Artist   `bun:"rel:belongs-to,join:artist_id=id" json:"artist,omitempty"`
	VenueID   int       `bun:",nullzero" json:"venue_id"`
	Venue     *Venue    `bun:"rel:belongs-to,join:venue_id=id" json:"venue,omitempty"`
	StartTime time.Time `bun:",nullzero" json:"start_time"`
}

// IsPast reports whether the show started before now. A show starting
// exactly at now is still upcoming.
func (s *Show) IsPast(now time.Time) bool {
	return s.StartTime.Before(now)
}

func (s *Show) FormattedStartTime() string {
	return s.StartTime.UTC().Format(ShowTimeLayout)
}
