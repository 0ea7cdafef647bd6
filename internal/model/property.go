package model

import "time"

// Property is a listing owned by exactly one vendor. Images are hosted
// externally; only their URLs are stored.
type Property struct {
	ID          uint64    `json:"id"`
	VendorID    uint64    `json:"vendor_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Kind        string    `json:"kind"` // e.g. flat, plot, commercial
	ImageURL    string    `json:"image_url"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
