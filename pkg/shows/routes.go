package shows

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers the read-only show routes. Booking a
// show goes through the booking package.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	h := &handler{showService: NewService(db)}

	g.GET("", h.list)
}
