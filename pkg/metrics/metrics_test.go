package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCommand(t *testing.T) {
	before := testutil.ToFloat64(BookingCommands.WithLabelValues("venue", "create", OutcomeSuccess))
	ObserveCommand("venue", "create", OutcomeSuccess, time.Now())
	after := testutil.ToFloat64(BookingCommands.WithLabelValues("venue", "create", OutcomeSuccess))
	assert.InDelta(t, before+1, after, 0.0001)
}

func TestMiddleware_RecordsErrorStatus(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/venues/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found.")
	})

	labels := []string{http.MethodGet, "/venues/:id", "404"}
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues(labels...))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues(labels...)), 0.0001)
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e)
	ObserveCommand("show", "create", OutcomeRejected, time.Now())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fyyur_booking_commands_total")
	assert.Contains(t, rec.Body.String(), "fyyur_booking_tx_seconds")
}
