package booking

import (
	"github.com/fyyurapp/fyyur/pkg/directory"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers every write route. Edits and deletes are also
// reachable with POST so plain HTML forms can submit them.
func RegisterRoutes(venuesGroup, artistsGroup, showsGroup *echo.Group, db *bun.DB, recentLimit int) {
	h := &handler{
		bookingService:   NewService(db),
		directoryService: directory.NewService(db, recentLimit),
	}

	venuesGroup.POST("", h.createVenue)
	venuesGroup.PUT("/:id", h.updateVenue)
	venuesGroup.POST("/:id/edit", h.updateVenue)
	venuesGroup.DELETE("/:id", h.deleteVenue)
	venuesGroup.POST("/:id/delete", h.deleteVenue)

	artistsGroup.POST("", h.createArtist)
	artistsGroup.PUT("/:id", h.updateArtist)
	artistsGroup.POST("/:id/edit", h.updateArtist)
	artistsGroup.DELETE("/:id", h.deleteArtist)
	artistsGroup.POST("/:id/delete", h.deleteArtist)

	showsGroup.POST("", h.createShow)
}
