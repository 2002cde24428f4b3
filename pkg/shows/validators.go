package shows

import (
	"time"

	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/pkg/errors"
)

type ShowPayload struct {
	ArtistID  int    `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	VenueID   int    `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" form:"start_time" mod:"trim" validate:"required,showtime"`
}

// Show converts the payload. The start time is read as UTC and must already
// have passed validation.
func (p *ShowPayload) Show() (*models.Show, error) {
	start, err := time.ParseInLocation(models.ShowTimeLayout, p.StartTime, time.UTC)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &models.Show{
		ArtistID:  p.ArtistID,
		VenueID:   p.VenueID,
		StartTime: start,
	}, nil
}
