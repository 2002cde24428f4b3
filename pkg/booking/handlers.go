package booking

import (
	"net/http"
	"strconv"

	"github.com/fyyurapp/fyyur/pkg/artists"
	"github.com/fyyurapp/fyyur/pkg/clock"
	"github.com/fyyurapp/fyyur/pkg/directory"
	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/shows"
	"github.com/fyyurapp/fyyur/pkg/venues"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookingService   *Service
	directoryService *directory.Service
}

type showResponse struct {
	ID        int    `json:"id"`
	ArtistID  int    `json:"artist_id"`
	VenueID   int    `json:"venue_id"`
	StartTime string `json:"start_time"`
}

func (h *handler) createVenue(c echo.Context) error {
	ctx := c.Request().Context()

	params := venues.VenuePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	venue, err := h.bookingService.CreateVenue(ctx, &params)
	if err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.directoryService.VenueDetail(ctx, venue.ID, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, detail))
}

func (h *handler) updateVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Venue")
	}

	params := venues.VenuePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.bookingService.UpdateVenue(ctx, id, &params); err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.directoryService.VenueDetail(ctx, id, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}

func (h *handler) deleteVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Venue")
	}

	if err := h.bookingService.DeleteVenue(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}

func (h *handler) createArtist(c echo.Context) error {
	ctx := c.Request().Context()

	params := artists.ArtistPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	artist, err := h.bookingService.CreateArtist(ctx, &params)
	if err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.directoryService.ArtistDetail(ctx, artist.ID, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, detail))
}

func (h *handler) updateArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Artist")
	}

	params := artists.ArtistPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.bookingService.UpdateArtist(ctx, id, &params); err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.directoryService.ArtistDetail(ctx, id, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}

func (h *handler) deleteArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Artist")
	}

	if err := h.bookingService.DeleteArtist(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}

func (h *handler) createShow(c echo.Context) error {
	ctx := c.Request().Context()

	params := shows.ShowPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	show, err := h.bookingService.CreateShow(ctx, &params)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, showResponse{
		ID:        show.ID,
		ArtistID:  show.ArtistID,
		VenueID:   show.VenueID,
		StartTime: show.FormattedStartTime(),
	}))
}
