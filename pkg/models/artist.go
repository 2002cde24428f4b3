package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists,alias:a"`

	ID                 int            `bun:",pk,nullzero" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	Name               string         `bun:",nullzero" json:"name"`
	NameSearch         string         `bun:",notnull" json:"-"`
	City               string         `bun:",nullzero" json:"city"`
	State              string         `bun:",nullzero" json:"state"`
	Phone              string         `bun:",nullzero" json:"phone"`
	ImageLink          string         `json:"image_link"`
	Website            string         `json:"website"`
	FacebookLink       string         `json:"facebook_link"`
	SeekingVenue       bool           `json:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description"`
	ArtistGenres       []*ArtistGenre `bun:"rel:has-many,join:id=artist_id" json:"-"`
}

var ArtistEditableColumns = []string{
	"name", "name_search", "city", "state", "phone", "image_link", "website",
	"facebook_link", "seeking_venue", "seeking_description",
}

func (a *Artist) GenreNames() []string {
	names := make([]string, 0, len(a.ArtistGenres))
	for _, ag := range a.ArtistGenres {
		if ag.Genre != nil {
			names = append(names, ag.Genre.Name)
		}
	}
	return names
}

func (a *Artist) GenreIDs() []int {
	ids := make([]int, 0, len(a.ArtistGenres))
	for _, ag := range a.ArtistGenres {
		ids = append(ids, ag.GenreID)
	}
	return ids
}
