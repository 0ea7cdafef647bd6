package repository

import (
	"context"
	"database/sql"

	"github.com/propdesk/estate-admin/internal/model"
)

// InquiryRepo persists contact-form submissions.
type InquiryRepo struct{ DB *sql.DB }

func NewInquiryRepo(db *sql.DB) *InquiryRepo { return &InquiryRepo{DB: db} }

// Create inserts an inquiry. PropertyID may be zero for general inquiries;
// it is stored as NULL in that case.
func (r *InquiryRepo) Create(ctx context.Context, q *model.Inquiry) error {
	var propertyID any
	if q.PropertyID != 0 {
		propertyID = q.PropertyID
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO inquiries (property_id,name,email,phone,message) VALUES (?,?,?,?,?)",
		propertyID, q.Name, q.Email, q.Phone, q.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = uint64(id)
	return nil
}

// List returns inquiries, newest first.
func (r *InquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,property_id,name,email,phone,message,created_at FROM inquiries ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Inquiry{}
	for rows.Next() {
		var q model.Inquiry
		var propertyID sql.NullInt64
		if err := rows.Scan(&q.ID, &propertyID, &q.Name, &q.Email, &q.Phone,
			&q.Message, &q.CreatedAt); err != nil {
			return nil, err
		}
		if propertyID.Valid {
			q.PropertyID = uint64(propertyID.Int64)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Delete removes an inquiry.
func (r *InquiryRepo) Delete(ctx context.Context, id uint64) error {
	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM inquiries WHERE id=?", id).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM inquiries WHERE id=?", id)
	return err
}
