// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded on BookingCommands.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)
	BookingCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_booking_commands_total",
			Help: "Booking commands by entity, operation and outcome.",
		},
		[]string{"entity", "operation", "outcome"},
	)
	BookingTxDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fyyur_booking_tx_seconds",
			Help:    "Duration of booking command transactions.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ObserveCommand records one finished booking command.
func ObserveCommand(entity, operation, outcome string, started time.Time) {
	BookingCommands.WithLabelValues(entity, operation, outcome).Inc()
	BookingTxDuration.Observe(time.Since(started).Seconds())
}

// Middleware counts requests by their route pattern rather than the raw path
// so ids don't explode the label space. Errors are handed to the echo error
// handler here so the recorded status is the one the client sees.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}
			RequestsTotal.WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(c.Response().Status)).Inc()
			return nil
		}
	}
}

// RegisterRoutes exposes the default registry.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
