package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/auth"
)

// CapabilityLookup resolves the capability set of a staff account. The
// account is re-loaded per request rather than trusted from the token, so
// revoking a flag takes effect without waiting for the token to expire.
type CapabilityLookup func(ctx context.Context, staffID uint64) (auth.CapabilitySet, error)

// RequireCapability enforces a single capability on a route group. It is
// the server-side mirror of the dashboard's per-page permission check: the
// dashboard may hide a page, but only this gate actually protects the data.
// Assumes JWTAuth already placed the staff id in context.
func RequireCapability(lookup CapabilityLookup, want auth.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := c.Get(CtxUserID).(uint64)
			if !ok || id == 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			set, err := lookup(ctx, id)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			if !set.Has(want) {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "you do not have permission to view this page",
					"area":  want.String(),
				})
			}
			return next(c)
		}
	}
}

// CapabilityGates bundles one gate per admin feature area so the router
// can attach them without repeating the lookup wiring.
type CapabilityGates struct {
	Vendors      echo.MiddlewareFunc
	Properties   echo.MiddlewareFunc
	Inquiries    echo.MiddlewareFunc
	Blog         echo.MiddlewareFunc
	Applications echo.MiddlewareFunc
	Jobs         echo.MiddlewareFunc
}

// Capabilities builds the full set of gates over a single lookup.
func Capabilities(lookup CapabilityLookup) CapabilityGates {
	return CapabilityGates{
		Vendors:      RequireCapability(lookup, auth.CapVendors),
		Properties:   RequireCapability(lookup, auth.CapProperties),
		Inquiries:    RequireCapability(lookup, auth.CapInquiries),
		Blog:         RequireCapability(lookup, auth.CapBlog),
		Applications: RequireCapability(lookup, auth.CapApplications),
		Jobs:         RequireCapability(lookup, auth.CapJobs),
	}
}
