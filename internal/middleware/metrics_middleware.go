package middleware

import (
	"strconv"

	"saudaMarket/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics counts every served request by method and response status. Handler
// errors are resolved through the error handler first so the recorded status
// is the one the client saw.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequests.WithLabelValues(c.Request().Method, status).Inc()

			return nil
		}
	}
}
