package directory

import (
	"net/http"
	"strconv"

	"github.com/fyyurapp/fyyur/pkg/artists"
	"github.com/fyyurapp/fyyur/pkg/clock"
	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/venues"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	directoryService *Service
}

func (h *handler) home(c echo.Context) error {
	ctx := c.Request().Context()

	home, err := h.directoryService.Home(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, home))
}

func (h *handler) listVenues(c echo.Context) error {
	ctx := c.Request().Context()

	areas, err := h.directoryService.VenuesByLocation(ctx, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, areas))
}

func (h *handler) searchVenues(c echo.Context) error {
	ctx := c.Request().Context()

	// An empty POST is a search for everything.
	c.Set("disallow_empty_body", false)
	params := venues.SearchQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.directoryService.SearchVenues(ctx, params.SearchTerm, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

func (h *handler) retrieveVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Venue")
	}

	detail, err := h.directoryService.VenueDetail(ctx, id, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}

func (h *handler) listArtists(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.directoryService.Artists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, entries))
}

func (h *handler) searchArtists(c echo.Context) error {
	ctx := c.Request().Context()

	c.Set("disallow_empty_body", false)
	params := artists.SearchQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.directoryService.SearchArtists(ctx, params.SearchTerm, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

func (h *handler) retrieveArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Artist")
	}

	detail, err := h.directoryService.ArtistDetail(ctx, id, clock.Now(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, detail))
}
