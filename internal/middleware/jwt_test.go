package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/auth"
)

const testSecret = "test-secret"

func doRequest(t *testing.T, e *echo.Echo, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func TestJWTAuthRejectsMissingAndInvalid(t *testing.T) {
	e := echo.New()
	e.GET("/protected", okHandler, JWTAuth(testSecret))

	if rec := doRequest(t, e, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", rec.Code)
	}
	if rec := doRequest(t, e, "not.a.token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: got %d, want 401", rec.Code)
	}

	wrong, _, err := auth.IssueAccessToken("other-secret", 1, "a@b.c", "admin", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if rec := doRequest(t, e, wrong); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: got %d, want 401", rec.Code)
	}
}

func TestJWTAuthPopulatesContext(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		id, _ := c.Get(CtxUserID).(uint64)
		email, _ := c.Get(CtxEmail).(string)
		role, _ := c.Get(CtxRole).(string)
		if id != 7 || email != "staff@example.com" || role != "admin" {
			t.Fatalf("context claims wrong: id=%d email=%q role=%q", id, email, role)
		}
		return okHandler(c)
	}, JWTAuth(testSecret))

	token, _, err := auth.IssueAccessToken(testSecret, 7, "staff@example.com", "admin", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if rec := doRequest(t, e, token); rec.Code != http.StatusOK {
		t.Fatalf("valid token: got %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	e.GET("/protected", okHandler, JWTAuth(testSecret), RequireRole("admin"))

	vendorToken, _, err := auth.IssueAccessToken(testSecret, 3, "v@x.com", "vendor", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if rec := doRequest(t, e, vendorToken); rec.Code != http.StatusForbidden {
		t.Fatalf("vendor on admin route: got %d, want 403", rec.Code)
	}

	adminToken, _, err := auth.IssueAccessToken(testSecret, 4, "a@x.com", "admin", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if rec := doRequest(t, e, adminToken); rec.Code != http.StatusOK {
		t.Fatalf("admin on admin route: got %d, want 200", rec.Code)
	}
}

func TestRequireCapability(t *testing.T) {
	lookup := func(ctx context.Context, staffID uint64) (auth.CapabilitySet, error) {
		switch staffID {
		case 1:
			return auth.CapabilitySet(0).With(auth.CapBlog), nil
		case 2:
			return 0, nil
		default:
			return 0, errors.New("no such account")
		}
	}

	e := echo.New()
	e.GET("/protected", okHandler, JWTAuth(testSecret), RequireCapability(lookup, auth.CapBlog))

	issue := func(id uint64) string {
		t.Helper()
		token, _, err := auth.IssueAccessToken(testSecret, id, "s@x.com", "admin", 15)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		return token
	}

	if rec := doRequest(t, e, issue(1)); rec.Code != http.StatusOK {
		t.Fatalf("granted capability: got %d, want 200", rec.Code)
	}

	rec := doRequest(t, e, issue(2))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("missing capability: got %d, want 403", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["area"] != "blog" {
		t.Fatalf("area = %q, want blog", body["area"])
	}

	if rec := doRequest(t, e, issue(9)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("lookup failure: got %d, want 401", rec.Code)
	}
}

func TestCapabilityGatesAreIndependent(t *testing.T) {
	// An account holding only the blog flag must not pass the jobs gate.
	lookup := func(ctx context.Context, staffID uint64) (auth.CapabilitySet, error) {
		return auth.CapabilitySet(0).With(auth.CapBlog), nil
	}
	gates := Capabilities(lookup)

	e := echo.New()
	e.GET("/protected", okHandler, JWTAuth(testSecret), gates.Jobs)

	token, _, err := auth.IssueAccessToken(testSecret, 1, "s@x.com", "admin", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if rec := doRequest(t, e, token); rec.Code != http.StatusForbidden {
		t.Fatalf("blog-only account on jobs gate: got %d, want 403", rec.Code)
	}
}
