package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fyyurapp/fyyur/pkg/binder"
	"github.com/fyyurapp/fyyur/pkg/booking"
	"github.com/fyyurapp/fyyur/pkg/clock"
	"github.com/fyyurapp/fyyur/pkg/config"
	"github.com/fyyurapp/fyyur/pkg/database"
	"github.com/fyyurapp/fyyur/pkg/directory"
	"github.com/fyyurapp/fyyur/pkg/errcodes"
	"github.com/fyyurapp/fyyur/pkg/genres"
	"github.com/fyyurapp/fyyur/pkg/metrics"
	"github.com/fyyurapp/fyyur/pkg/shows"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e, err := newEcho(cfg, db)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func newEcho(cfg *config.Config, db *bun.DB) (*echo.Echo, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())
	e.Use(clock.Middleware())
	if cfg.DatabaseDebug {
		e.Use(database.Middleware())
	}

	health.RegisterRoutes(e)
	metrics.RegisterRoutes(e)

	venuesGroup := e.Group("/venues")
	artistsGroup := e.Group("/artists")
	showsGroup := e.Group("/shows")

	directory.RegisterRoutes(e, venuesGroup, artistsGroup, db, cfg.RecentListingsLimit)
	booking.RegisterRoutes(venuesGroup, artistsGroup, showsGroup, db, cfg.RecentListingsLimit)
	shows.RegisterRoutesWithGroup(showsGroup, db)
	genres.RegisterRoutesWithGroup(e.Group("/genres"), db)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	return e, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
