package venues

import "github.com/fyyurapp/fyyur/pkg/models"

// VenuePayload is the body of create and edit requests. Edits replace every
// field, so it is used for both.
type VenuePayload struct {
	Name               string `json:"name" form:"name" mod:"trim" validate:"required,max=120"`
	City               string `json:"city" form:"city" mod:"trim" validate:"required,max=120"`
	State              string `json:"state" form:"state" mod:"trim,ucase" validate:"required,us_state"`
	Address            string `json:"address" form:"address" mod:"trim" validate:"required,max=120"`
	Phone              string `json:"phone" form:"phone" mod:"trim" validate:"required,phone"`
	ImageLink          string `json:"image_link" form:"image_link" mod:"trim" validate:"max=500,url"`
	FacebookLink       string `json:"facebook_link" form:"facebook_link" mod:"trim" validate:"max=120,url"`
	WebsiteLink        string `json:"website_link" form:"website_link" mod:"trim" validate:"max=120,url"`
	Genres             []int  `json:"genres" form:"genres" validate:"required,min=1,dive,gt=0"`
	SeekingTalent      bool   `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string `json:"seeking_description" form:"seeking_description" mod:"trim" validate:"max=500"`
}

// Apply copies the payload onto venue, leaving id and timestamps alone.
func (p *VenuePayload) Apply(venue *models.Venue) {
	venue.Name = p.Name
	venue.City = p.City
	venue.State = p.State
	venue.Address = p.Address
	venue.Phone = p.Phone
	venue.ImageLink = p.ImageLink
	venue.FacebookLink = p.FacebookLink
	venue.Website = p.WebsiteLink
	venue.SeekingTalent = p.SeekingTalent
	venue.SeekingDescription = p.SeekingDescription
}

// SearchQuery is accepted either as ?search_term= or as a form/JSON body.
type SearchQuery struct {
	SearchTerm string `query:"search_term" form:"search_term" json:"search_term" mod:"trim" validate:"max=100"`
}
