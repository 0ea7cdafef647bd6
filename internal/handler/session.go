package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/auth"
	"github.com/propdesk/estate-admin/internal/config"
	"github.com/propdesk/estate-admin/internal/guard"
	"github.com/propdesk/estate-admin/internal/middleware"
	"github.com/propdesk/estate-admin/internal/repository"
)

// SessionHandler answers questions about the current session: who am I,
// and where should the dashboard send me.
type SessionHandler struct {
	Cfg   config.Config
	Staff *repository.StaffRepo
}

func NewSessionHandler(cfg config.Config, staff *repository.StaffRepo) *SessionHandler {
	return &SessionHandler{Cfg: cfg, Staff: staff}
}

// Me handles GET /session/me (protected). Admin sessions get their full
// account including capability flags so the dashboard knows which pages to
// show; vendor sessions get the token identity only.
func (h *SessionHandler) Me(c echo.Context) error {
	id, ok := currentUserID(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	role, _ := c.Get(middleware.CtxRole).(string)

	if role == guard.RoleAdmin {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
		defer cancel()

		acct, err := h.Staff.GetByID(ctx, id)
		if err != nil {
			return repoFail(c, err, "account not found")
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": acct, "role": role})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user": echo.Map{
			"id":    id,
			"email": c.Get(middleware.CtxEmail),
		},
		"role": role,
	})
}

// RouteDecision handles GET /session/route?kind=open|private. It is
// deliberately unauthenticated: the guard's whole job is to route sessions
// that may not have a valid token. An invalid or absent bearer simply
// evaluates as "no token".
func (h *SessionHandler) RouteDecision(c echo.Context) error {
	kind := guard.RouteKind(c.QueryParam("kind"))
	if kind != guard.RouteOpen && kind != guard.RoutePrivate {
		return fail(c, http.StatusBadRequest, "kind must be open or private")
	}

	hasToken := false
	role := ""
	if header := c.Request().Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		raw := strings.TrimPrefix(header, "Bearer ")
		if claims, err := auth.ParseAccessToken(h.Cfg.JWTSecret, raw); err == nil {
			hasToken = true
			role = claims.Role
		}
	}

	return c.JSON(http.StatusOK, guard.Evaluate(hasToken, role, kind))
}
