package artists

import "github.com/fyyurapp/fyyur/pkg/models"

type ArtistPayload struct {
	Name               string `json:"name" form:"name" mod:"trim" validate:"required,max=120"`
	City               string `json:"city" form:"city" mod:"trim" validate:"required,max=120"`
	State              string `json:"state" form:"state" mod:"trim,ucase" validate:"required,us_state"`
	Phone              string `json:"phone" form:"phone" mod:"trim" validate:"required,phone"`
	ImageLink          string `json:"image_link" form:"image_link" mod:"trim" validate:"max=500,url"`
	FacebookLink       string `json:"facebook_link" form:"facebook_link" mod:"trim" validate:"max=120,url"`
	WebsiteLink        string `json:"website_link" form:"website_link" mod:"trim" validate:"max=120,url"`
	Genres             []int  `json:"genres" form:"genres" validate:"required,min=1,dive,gt=0"`
	SeekingVenue       bool   `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" form:"seeking_description" mod:"trim" validate:"max=500"`
}

func (p *ArtistPayload) Apply(artist *models.Artist) {
	artist.Name = p.Name
	artist.City = p.City
	artist.State = p.State
	artist.Phone = p.Phone
	artist.ImageLink = p.ImageLink
	artist.FacebookLink = p.FacebookLink
	artist.Website = p.WebsiteLink
	artist.SeekingVenue = p.SeekingVenue
	artist.SeekingDescription = p.SeekingDescription
}

type SearchQuery struct {
	SearchTerm string `query:"search_term" form:"search_term" json:"search_term" mod:"trim" validate:"max=100"`
}
