package model

import (
	"testing"

	"github.com/propdesk/estate-admin/internal/auth"
)

func TestCapabilitiesFoldsFlags(t *testing.T) {
	s := StaffAccount{BlogAdmin: true, JobAdmin: true}
	set := s.Capabilities()
	if !set.Has(auth.CapBlog) || !set.Has(auth.CapJobs) {
		t.Fatalf("expected blog+jobs, got %b", set)
	}
	if set.Has(auth.CapVendors) || set.Has(auth.CapProperties) ||
		set.Has(auth.CapInquiries) || set.Has(auth.CapApplications) {
		t.Fatalf("unset flags leaked into set %b", set)
	}
}

func TestCapabilitiesEmptyAccount(t *testing.T) {
	if set := (StaffAccount{}).Capabilities(); set != 0 {
		t.Fatalf("fresh account should have no capabilities, got %b", set)
	}
}

func TestVendorCanLogin(t *testing.T) {
	for _, status := range []string{VendorPending, VendorRejected, ""} {
		if (Vendor{Status: status}).CanLogin() {
			t.Fatalf("status %q must not be allowed to log in", status)
		}
	}
	if !(Vendor{Status: VendorApproved}).CanLogin() {
		t.Fatal("approved vendor must be allowed to log in")
	}
}

func TestValidVendorStatus(t *testing.T) {
	if !ValidVendorStatus(VendorApproved) || !ValidVendorStatus(VendorRejected) {
		t.Fatal("approved/rejected must be settable")
	}
	for _, s := range []string{VendorPending, "Approved", "active", ""} {
		if ValidVendorStatus(s) {
			t.Fatalf("%q must not be settable", s)
		}
	}
}
