package directory

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the home page and the read routes of the venue
// and artist groups.
func RegisterRoutes(e *echo.Echo, venuesGroup, artistsGroup *echo.Group, db *bun.DB, recentLimit int) {
	h := &handler{directoryService: NewService(db, recentLimit)}

	e.GET("/", h.home)

	venuesGroup.GET("", h.listVenues)
	venuesGroup.GET("/search", h.searchVenues)
	venuesGroup.POST("/search", h.searchVenues)
	venuesGroup.GET("/:id", h.retrieveVenue)

	artistsGroup.GET("", h.listArtists)
	artistsGroup.GET("/search", h.searchArtists)
	artistsGroup.POST("/search", h.searchArtists)
	artistsGroup.GET("/:id", h.retrieveArtist)
}
