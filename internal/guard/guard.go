// Package guard decides whether a dashboard navigation target renders or
// redirects. The decision is a pure function of token presence, the role
// carried by the session and the kind of route being entered, so the
// dashboard can ask the server for a routing verdict instead of keeping
// ambient auth state on the client.
package guard

// RouteKind distinguishes the two guard behaviours: open routes (login,
// landing page) that an authenticated user should be bounced away from, and
// private routes that require a session.
type RouteKind string

const (
	RouteOpen    RouteKind = "open"
	RoutePrivate RouteKind = "private"
)

// Roles recognised by the guard. Anything else is treated as an unknown
// session and sent back to the landing page.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

// Dashboard landing targets per role.
const (
	adminHome  = "/admin/dashboard"
	vendorHome = "/vendor/dashboard"
	publicHome = "/"
)

// Decision is the guard's verdict: either render the requested route or
// redirect to RedirectTo.
type Decision struct {
	Render     bool   `json:"render"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func render() Decision            { return Decision{Render: true} }
func redirect(to string) Decision { return Decision{RedirectTo: to} }

// Evaluate applies the guard table. An unauthenticated session may see open
// routes and nothing else. An authenticated admin or vendor is bounced from
// open routes to their dashboard and admitted to private routes. A token
// with an unrecognised role is never admitted anywhere but the landing page.
func Evaluate(hasToken bool, role string, kind RouteKind) Decision {
	if !hasToken {
		if kind == RouteOpen {
			return render()
		}
		return redirect(publicHome)
	}
	switch role {
	case RoleAdmin:
		if kind == RouteOpen {
			return redirect(adminHome)
		}
		return render()
	case RoleVendor:
		if kind == RouteOpen {
			return redirect(vendorHome)
		}
		return render()
	default:
		return redirect(publicHome)
	}
}
