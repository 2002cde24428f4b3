package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Genre struct {
	bun.BaseModel `bun:"table:genres,alias:g"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `bun:",nullzero" json:"name"`
}

// VenueGenre is one row of the venue side of the genre tagging. The pair is
// the whole record.
type VenueGenre struct {
	bun.BaseModel `bun:"table:genres_venues,alias:gv"`

	GenreID int    `bun:",pk" json:"genre_id"`
	VenueID int    `bun:",pk" json:"venue_id"`
	Genre   *Genre `bun:"rel:belongs-to,join:genre_id=id" json:"genre,omitempty"`
}

type ArtistGenre struct {
	bun.BaseModel `bun:"table:artists_genres,alias:ag"`

	ArtistID int    `bun:",pk" json:"artist_id"`
	GenreID  int    `bun:",pk" json:"genre_id"`
	Genre    *Genre `bun:"rel:belongs-to,join:genre_id=id" json:"genre,omitempty"`
}
