// Package handler implements the HTTP layer: request binding, validation,
// repository calls and the {success, message, ...} response shape.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/middleware"
	"github.com/propdesk/estate-admin/internal/repository"
)

// Session cookie parameters. The token also travels in the response body;
// the cookie exists so browser navigation to the dashboard stays signed in.
const (
	sessionCookieName = "session"
	sessionCookieDays = 3
	dbTimeout         = 5 * time.Second
)

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"success": false, "message": msg})
}

// repoFail translates repository sentinel errors into HTTP responses.
// Unknown errors become a generic 500 with no internal detail echoed back.
func repoFail(c echo.Context, err error, notFoundMsg string) error {
	switch err {
	case repository.ErrNotFound:
		return fail(c, http.StatusNotFound, notFoundMsg)
	case repository.ErrEmailExists:
		return fail(c, http.StatusConflict, "email already exists")
	case repository.ErrForbidden:
		return fail(c, http.StatusForbidden, "forbidden")
	}
	return fail(c, http.StatusInternalServerError, "internal error")
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().UTC().Add(sessionCookieDays * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentUserID extracts the authenticated account id placed in context by
// the JWT middleware.
func currentUserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(middleware.CtxUserID).(uint64)
	return id, ok && id != 0
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
