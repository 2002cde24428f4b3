package database

import (
	"github.com/labstack/echo/v4"
)

// Middleware enables SQL logging for every query a request runs. It only has
// an effect when the database was opened with DatabaseDebug.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(WithLogging(req.Context())))
			return next(c)
		}
	}
}
