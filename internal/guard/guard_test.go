package guard

import "testing"

func TestEvaluateTable(t *testing.T) {
	cases := []struct {
		name     string
		hasToken bool
		role     string
		kind     RouteKind
		render   bool
		redirect string
	}{
		{"no token open renders", false, "", RouteOpen, true, ""},
		{"no token private redirects home", false, "", RoutePrivate, false, "/"},
		{"admin open redirects to admin dashboard", true, RoleAdmin, RouteOpen, false, "/admin/dashboard"},
		{"admin private renders", true, RoleAdmin, RoutePrivate, true, ""},
		{"vendor open redirects to vendor dashboard", true, RoleVendor, RouteOpen, false, "/vendor/dashboard"},
		{"vendor private renders", true, RoleVendor, RoutePrivate, true, ""},
		{"unknown role open redirects home", true, "intern", RouteOpen, false, "/"},
		{"unknown role private redirects home", true, "intern", RoutePrivate, false, "/"},
		{"empty role with token redirects home", true, "", RoutePrivate, false, "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Evaluate(tc.hasToken, tc.role, tc.kind)
			if d.Render != tc.render {
				t.Fatalf("render = %v, want %v", d.Render, tc.render)
			}
			if d.RedirectTo != tc.redirect {
				t.Fatalf("redirect = %q, want %q", d.RedirectTo, tc.redirect)
			}
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	// Same inputs must always yield the same decision.
	for i := 0; i < 3; i++ {
		d := Evaluate(true, RoleVendor, RouteOpen)
		if d.Render || d.RedirectTo != "/vendor/dashboard" {
			t.Fatalf("iteration %d: unexpected decision %+v", i, d)
		}
	}
}
