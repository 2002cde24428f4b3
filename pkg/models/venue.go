package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:v"`

	ID                 int           `bun:",pk,nullzero" json:"id"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	Name               string        `bun:",nullzero" json:"name"`
	NameSearch         string        `bun:",notnull" json:"-"`
	City               string        `bun:",nullzero" json:"city"`
	State              string        `bun:",nullzero" json:"state"`
	Address            string        `bun:",nullzero" json:"address"`
	Phone              string        `bun:",nullzero" json:"phone"`
	ImageLink          string        `json:"image_link"`
	Website            string        `json:"website"`
	FacebookLink       string        `json:"facebook_link"`
	SeekingTalent      bool          `json:"seeking_talent"`
	SeekingDescription string        `json:"seeking_description"`
	VenueGenres        []*VenueGenre `bun:"rel:has-many,join:id=venue_id" json:"-"`
}

// VenueEditableColumns are the columns a full-replace update writes.
var VenueEditableColumns = []string{
	"name", "name_search", "city", "state", "address", "phone", "image_link",
	"website", "facebook_link", "seeking_talent", "seeking_description",
}

// GenreNames flattens the loaded genre links to their names.
func (v *Venue) GenreNames() []string {
	names := make([]string, 0, len(v.VenueGenres))
	for _, vg := range v.VenueGenres {
		if vg.Genre != nil {
			names = append(names, vg.Genre.Name)
		}
	}
	return names
}

func (v *Venue) GenreIDs() []int {
	ids := make([]int, 0, len(v.VenueGenres))
	for _, vg := range v.VenueGenres {
		ids = append(ids, vg.GenreID)
	}
	return ids
}
