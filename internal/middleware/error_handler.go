package middleware

import (
	"errors"
	"net/http"

	"saudaMarket/domain"
	"saudaMarket/pkg/logger"
	jsonres "saudaMarket/pkg/response"

	"github.com/labstack/echo/v4"
)

func statusForKind(kind domain.ErrKind) (int, string) {
	switch kind {
	case domain.ErrValidation:
		return http.StatusBadRequest, "BAD_REQUEST"
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case domain.ErrForbidden:
		return http.StatusForbidden, "FORBIDDEN"
	case domain.ErrNotFound:
		return http.StatusNotFound, "NOT_FOUND"
	case domain.ErrConflict:
		return http.StatusConflict, "CONFLICT"
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// ErrorHandler is the central echo error handler. Domain errors carry their
// own kind; everything else is reported as a generic 500 with no internal
// detail leaked to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		status, code := statusForKind(domainErr.Kind)
		if status >= http.StatusInternalServerError {
			logger.Error("Internal error", err)
			_ = c.JSON(status, jsonres.Error(code, "internal server error", nil))
			return
		}
		_ = c.JSON(status, jsonres.Error(code, domainErr.Message, nil))
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, jsonres.Error(http.StatusText(httpErr.Code), msg, nil))
		return
	}

	logger.Error("Unhandled error", err)
	_ = c.JSON(http.StatusInternalServerError, jsonres.Error("INTERNAL_ERROR", "internal server error", nil))
}
