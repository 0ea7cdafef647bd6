// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// Queue names. Each event type has its own durable queue.
const (
	VendorStatusQueue = "vendor.status"
	InquiryQueue      = "inquiry.received"
)

// VendorStatusChangedEvent is published when an admin approves or rejects a
// vendor. It carries enough for downstream consumers to notify the vendor
// without querying the primary database.
type VendorStatusChangedEvent struct {
	VendorID  uint64 `json:"vendor_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	ChangedAt string `json:"changed_at"`
}

// InquiryReceivedEvent is published when a visitor submits the contact
// form. PropertyID is zero for general inquiries.
type InquiryReceivedEvent struct {
	InquiryID  uint64 `json:"inquiry_id"`
	PropertyID uint64 `json:"property_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ReceivedAt string `json:"received_at"`
}
