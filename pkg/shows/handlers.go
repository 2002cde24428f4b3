package shows

import (
	"net/http"

	"github.com/fyyurapp/fyyur/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Listing is one row of the shows page.
type Listing struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func NewListing(show *models.Show) Listing {
	l := Listing{
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.FormattedStartTime(),
	}
	if show.Venue != nil {
		l.VenueName = show.Venue.Name
	}
	if show.Artist != nil {
		l.ArtistName = show.Artist.Name
		l.ArtistImageLink = show.Artist.ImageLink
	}
	return l
}

type handler struct {
	showService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	shows, err := h.showService.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	listings := make([]Listing, 0, len(shows))
	for _, s := range shows {
		listings = append(listings, NewListing(s))
	}

	return errors.WithStack(c.JSON(http.StatusOK, listings))
}
