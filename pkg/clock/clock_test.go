package clock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	t.Parallel()

	t.Run("returns the pinned time", func(tt *testing.T) {
		pinned := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
		ctx := WithNow(context.Background(), pinned)
		assert.True(tt, pinned.Equal(Now(ctx)))
		assert.True(tt, Now(ctx).Equal(Now(ctx)))
	})

	t.Run("normalizes to UTC", func(tt *testing.T) {
		loc := time.FixedZone("EST", -5*60*60)
		ctx := WithNow(context.Background(), time.Date(2035, 4, 1, 15, 0, 0, 0, loc))
		assert.Equal(tt, time.UTC, Now(ctx).Location())
		assert.Equal(tt, 20, Now(ctx).Hour())
	})

	t.Run("falls back to the wall clock", func(tt *testing.T) {
		before := time.Now()
		now := Now(context.Background())
		assert.False(tt, now.Before(before.Add(-time.Second)))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var first, second time.Time
	h := Middleware()(func(c echo.Context) error {
		first = Now(c.Request().Context())
		time.Sleep(5 * time.Millisecond)
		second = Now(c.Request().Context())
		return nil
	})

	require.NoError(t, h(c))
	assert.False(t, first.IsZero())
	assert.True(t, first.Equal(second))
}
