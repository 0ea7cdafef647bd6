package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/auth"
	"github.com/propdesk/estate-admin/internal/config"
)

// These tests exercise the validation paths that reject a request before
// any repository call, so no database is needed.

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func assertFailure(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, code, rec.Body.String())
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Fatal("failure response must carry success=false")
	}
	if body.Message == "" {
		t.Fatal("failure response must carry a message")
	}
}

func TestStaffRegisterRejectsMissingFields(t *testing.T) {
	h := &StaffAuthHandler{}
	for _, body := range []string{
		`{}`,
		`{"name":"A","email":"a@x.com"}`,
		`{"name":"  ","email":"a@x.com","password":"pw"}`,
		`{"name":"A","email":"","password":"pw"}`,
	} {
		assertFailure(t, postJSON(t, h.Register, body), http.StatusBadRequest)
	}
}

func TestStaffLoginRejectsMissingFields(t *testing.T) {
	h := &StaffAuthHandler{}
	assertFailure(t, postJSON(t, h.Login, `{"email":"a@x.com"}`), http.StatusBadRequest)
	assertFailure(t, postJSON(t, h.Login, `{"password":"pw"}`), http.StatusBadRequest)
}

func TestVendorRegisterRejectsMissingFields(t *testing.T) {
	h := &VendorHandler{}
	assertFailure(t, postJSON(t, h.Register, `{"company":"Acme"}`), http.StatusBadRequest)
}

func TestVendorStatusRejectsBadValues(t *testing.T) {
	h := &VendorHandler{}
	e := echo.New()
	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")
		if err := h.UpdateStatus(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		return rec
	}

	assertFailure(t, put(`{}`), http.StatusBadRequest)
	assertFailure(t, put(`{"status":"pending"}`), http.StatusBadRequest)
	assertFailure(t, put(`{"status":"banana"}`), http.StatusBadRequest)
}

func TestVendorPercentageRejectsOutOfRange(t *testing.T) {
	h := &VendorHandler{}
	e := echo.New()
	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")
		if err := h.UpdatePercentage(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		return rec
	}

	assertFailure(t, put(`{}`), http.StatusBadRequest)
	assertFailure(t, put(`{"percentage":-1}`), http.StatusBadRequest)
	assertFailure(t, put(`{"percentage":101}`), http.StatusBadRequest)
}

func TestRouteDecision(t *testing.T) {
	secret := "route-test-secret"
	h := &SessionHandler{Cfg: config.Config{JWTSecret: secret}}
	e := echo.New()
	e.GET("/session/route", h.RouteDecision)

	get := func(kind, token string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/session/route?kind="+kind, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}
	decision := func(rec *httptest.ResponseRecorder) (bool, string) {
		t.Helper()
		var d struct {
			Render     bool   `json:"render"`
			RedirectTo string `json:"redirect_to"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return d.Render, d.RedirectTo
	}

	if rec := get("sideways", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad kind: got %d, want 400", rec.Code)
	}

	// Anonymous visitor: open renders, private bounces home.
	if render, _ := decision(get("open", "")); !render {
		t.Fatal("anonymous open must render")
	}
	if render, redirect := decision(get("private", "")); render || redirect != "/" {
		t.Fatalf("anonymous private: render=%v redirect=%q", render, redirect)
	}

	// An unparseable token counts as no token at all.
	if render, _ := decision(get("open", "junk.junk.junk")); !render {
		t.Fatal("invalid token on open route must render")
	}

	vendorToken, _, err := auth.IssueAccessToken(secret, 3, "v@x.com", "vendor", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if render, redirect := decision(get("open", vendorToken)); render || redirect != "/vendor/dashboard" {
		t.Fatalf("vendor on open route: render=%v redirect=%q", render, redirect)
	}
	if render, _ := decision(get("private", vendorToken)); !render {
		t.Fatal("vendor on private route must render")
	}

	adminToken, _, err := auth.IssueAccessToken(secret, 1, "a@x.com", "admin", 15)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if render, redirect := decision(get("open", adminToken)); render || redirect != "/admin/dashboard" {
		t.Fatalf("admin on open route: render=%v redirect=%q", render, redirect)
	}
}
