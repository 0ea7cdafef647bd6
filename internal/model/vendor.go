package model

import "time"

// Vendor approval lifecycle. A vendor is created pending; only an admin
// action moves it to approved or rejected.
const (
	VendorPending  = "pending"
	VendorApproved = "approved"
	VendorRejected = "rejected"
)

// Vendor represents a row in the `vendors` table: a property-listing
// business with its own credentials, separate from staff accounts.
// Percentage is the commission rate set by an admin after approval; it is
// unrelated to status.
type Vendor struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Company      string    `json:"company"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Adhar        string    `json:"adhar"`
	Pan          string    `json:"pan"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Percentage   float64   `json:"percentage"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanLogin reports whether the account has passed admin approval. Login is
// refused for any other status regardless of credential correctness.
func (v Vendor) CanLogin() bool {
	return v.Status == VendorApproved
}

// ValidVendorStatus reports whether s is a status an admin may set on a
// vendor. Pending is the creation state only and cannot be restored.
func ValidVendorStatus(s string) bool {
	return s == VendorApproved || s == VendorRejected
}
