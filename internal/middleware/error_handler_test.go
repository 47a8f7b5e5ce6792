package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"saudaMarket/domain"

	"github.com/labstack/echo/v4"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(err, c)
	return rec
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.ValidationError("bad input"), http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", domain.UnauthorizedError("invalid credentials"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", domain.ForbiddenError("not yours"), http.StatusForbidden, "FORBIDDEN"},
		{"not found", domain.NotFoundError("missing"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", domain.ConflictError("insufficient stock"), http.StatusConflict, "CONFLICT"},
		{"internal", domain.InternalError(errors.New("db down"), "query failed"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain error", errors.New("something odd"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runErrorHandler(t, tc.err)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var body struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tc.wantCode)
			}
		})
	}
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	rec := runErrorHandler(t, domain.InternalError(errors.New("password=hunter2"), "query failed"))

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "internal server error" {
		t.Errorf("message = %q, internal detail leaked", body.Message)
	}
}

func TestErrorHandlerEchoHTTPError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestErrorHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("NoContent: %v", err)
	}
	ErrorHandler(domain.ValidationError("late error"), c)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, committed response was overwritten", rec.Code)
	}
}
