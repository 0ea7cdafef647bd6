package repository

import (
	"context"
	"database/sql"

	"github.com/propdesk/estate-admin/internal/model"
)

// TicketRepo persists customer-support tickets.
type TicketRepo struct{ DB *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

const ticketColumns = "id,subject,email,message,reply,status,created_at,updated_at"

func scanTicket(row *sql.Row) (model.Ticket, error) {
	var t model.Ticket
	var reply sql.NullString
	err := row.Scan(&t.ID, &t.Subject, &t.Email, &t.Message, &reply,
		&t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return t, ErrNotFound
	}
	t.Reply = reply.String
	return t, err
}

// Create opens a ticket.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	t.Status = model.TicketOpen
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tickets (subject,email,message,status) VALUES (?,?,?,?)",
		t.Subject, t.Email, t.Message, t.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a ticket by id.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (model.Ticket, error) {
	return scanTicket(r.DB.QueryRowContext(ctx,
		"SELECT "+ticketColumns+" FROM tickets WHERE id=? LIMIT 1", id))
}

// List returns tickets, newest first.
func (r *TicketRepo) List(ctx context.Context) ([]model.Ticket, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+ticketColumns+" FROM tickets ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Ticket{}
	for rows.Next() {
		var t model.Ticket
		var reply sql.NullString
		if err := rows.Scan(&t.ID, &t.Subject, &t.Email, &t.Message, &reply,
			&t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Reply = reply.String
		out = append(out, t)
	}
	return out, rows.Err()
}

// Reply stores a staff answer on a ticket. The ticket stays open.
func (r *TicketRepo) Reply(ctx context.Context, id uint64, reply string) (model.Ticket, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Ticket{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE tickets SET reply=? WHERE id=?", reply, id); err != nil {
		return model.Ticket{}, err
	}
	return r.GetByID(ctx, id)
}

// Close marks a ticket closed. Closing twice is a no-op.
func (r *TicketRepo) Close(ctx context.Context, id uint64) (model.Ticket, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Ticket{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE tickets SET status=? WHERE id=?", model.TicketClosed, id); err != nil {
		return model.Ticket{}, err
	}
	return r.GetByID(ctx, id)
}
