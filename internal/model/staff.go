// Package model holds plain structs mirroring database tables. Repositories
// scan into these; handlers define their own response shapes where the wire
// format differs (password hashes are never serialized).
package model

import (
	"time"

	"github.com/propdesk/estate-admin/internal/auth"
)

// Staff job classifications. Descriptive only; none of them is an
// access-control input.
const (
	StaffTypeCA       = "ca"
	StaffTypeHR       = "hr"
	StaffTypeAdmin    = "admin"
	StaffTypeStaff    = "staff"
	StaffTypeWorker   = "worker"
	StaffTypeSubadmin = "subadmin"
	StaffTypeOther    = "other"
)

// StaffAccount represents a row in the `staff_accounts` table: an employee
// login plus six independent capability flags, each gating one admin
// feature area. Any subset may be true.
type StaffAccount struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Type             string    `json:"type"`
	VendorAdmin      bool      `json:"isVendorAdmin"`
	PropertiesAdmin  bool      `json:"isPropertiesAdmin"`
	InquiryAdmin     bool      `json:"isInquiryAdmin"`
	BlogAdmin        bool      `json:"isBlogAdmin"`
	ApplicationAdmin bool      `json:"isApplicationAdmin"`
	JobAdmin         bool      `json:"isJobAdmin"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Capabilities folds the six stored flags into a checkable set. This is the
// only place flag columns are interpreted; everything downstream asks the
// set.
func (s StaffAccount) Capabilities() auth.CapabilitySet {
	var set auth.CapabilitySet
	if s.VendorAdmin {
		set = set.With(auth.CapVendors)
	}
	if s.PropertiesAdmin {
		set = set.With(auth.CapProperties)
	}
	if s.InquiryAdmin {
		set = set.With(auth.CapInquiries)
	}
	if s.BlogAdmin {
		set = set.With(auth.CapBlog)
	}
	if s.ApplicationAdmin {
		set = set.With(auth.CapApplications)
	}
	if s.JobAdmin {
		set = set.With(auth.CapJobs)
	}
	return set
}
