// Package clock pins the reference time used to split shows into past and
// upcoming, so every computation within a request agrees on what "now" is.
package clock

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

type key int

const nowKey key = 0

// WithNow returns a context carrying t as the reference time.
func WithNow(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, nowKey, t.UTC())
}

// Now returns the reference time stored in ctx, or the current UTC time when
// none was set.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(nowKey).(time.Time); ok {
		return t
	}
	return time.Now().UTC()
}

// Middleware stores a single reference time on every request's context.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(WithNow(req.Context(), time.Now())))
			return next(c)
		}
	}
}
