package model

import "time"

// Inquiry is a contact-form submission, optionally referencing a property.
// PropertyID is zero for general inquiries.
type Inquiry struct {
	ID         uint64    `json:"id"`
	PropertyID uint64    `json:"property_id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
