package model

import "time"

// Ticket lifecycle.
const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

// Ticket is a customer-support request. Reply holds the latest staff
// answer; replying does not close the ticket by itself.
type Ticket struct {
	ID        uint64    `json:"id"`
	Subject   string    `json:"subject"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
