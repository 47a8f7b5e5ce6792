package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"saudaMarket/domain"
	"saudaMarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

func init() {
	utils.InitJWT("test-secret")
}

type fakeTokenValidator struct {
	userID string
	err    error
}

func (f *fakeTokenValidator) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return f.userID, f.err
}

func passthrough(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string, setup func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	if err := mw(passthrough)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateJWT("7", domain.RoleUser)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	rec := invoke(t, AuthMiddleware(), "Bearer "+token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", rec.Code)
	}

	rec = invoke(t, AuthMiddleware(), "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want 401", rec.Code)
	}

	rec = invoke(t, AuthMiddleware(), "Bearer not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", rec.Code)
	}

	rec = invoke(t, AuthMiddleware(), "Basic "+token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong scheme: status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareWithRedis(t *testing.T) {
	token, err := utils.GenerateJWT("7", domain.RoleUser)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	rec := invoke(t, AuthMiddlewareWithRedis(&fakeTokenValidator{userID: "7"}), "Bearer "+token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("live session: status = %d, want 200", rec.Code)
	}

	// session revoked server-side even though the JWT is still valid
	revoked := &fakeTokenValidator{err: domain.UnauthorizedError("token expired or invalid")}
	rec = invoke(t, AuthMiddlewareWithRedis(revoked), "Bearer "+token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("revoked session: status = %d, want 401", rec.Code)
	}

	// session belongs to a different user than the JWT claims
	mismatch := &fakeTokenValidator{userID: "8"}
	rec = invoke(t, AuthMiddlewareWithRedis(mismatch), "Bearer "+token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("user mismatch: status = %d, want 401", rec.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	rec := invoke(t, AdminOnly(), "", func(c echo.Context) {
		c.Set("role", domain.RoleAdmin)
	})
	if rec.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", rec.Code)
	}

	rec = invoke(t, AdminOnly(), "", func(c echo.Context) {
		c.Set("role", domain.RoleUser)
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("user: status = %d, want 403", rec.Code)
	}

	rec = invoke(t, AdminOnly(), "", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("no role: status = %d, want 403", rec.Code)
	}
}

func TestSelfOrAdmin(t *testing.T) {
	asUser := func(id uint, role, paramID string) func(echo.Context) {
		return func(c echo.Context) {
			c.Set("user_id", id)
			c.Set("role", role)
			c.SetParamNames("id")
			c.SetParamValues(paramID)
		}
	}

	rec := invoke(t, SelfOrAdmin(), "", asUser(7, domain.RoleUser, "7"))
	if rec.Code != http.StatusOK {
		t.Errorf("own record: status = %d, want 200", rec.Code)
	}

	rec = invoke(t, SelfOrAdmin(), "", asUser(7, domain.RoleUser, "8"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("other record: status = %d, want 403", rec.Code)
	}

	rec = invoke(t, SelfOrAdmin(), "", asUser(7, domain.RoleAdmin, "8"))
	if rec.Code != http.StatusOK {
		t.Errorf("admin on other record: status = %d, want 200", rec.Code)
	}
}
