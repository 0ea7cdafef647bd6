package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/propdesk/estate-admin/internal/auth"
	"github.com/propdesk/estate-admin/internal/model"
)

// StaffRepo persists staff accounts and their capability flags.
type StaffRepo struct{ DB *sql.DB }

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{DB: db} }

const staffColumns = "id,name,email,password_hash,type,is_vendor_admin,is_properties_admin,is_inquiry_admin,is_blog_admin,is_application_admin,is_job_admin,created_at,updated_at"

func scanStaff(row *sql.Row) (model.StaffAccount, error) {
	var s model.StaffAccount
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Type,
		&s.VendorAdmin, &s.PropertiesAdmin, &s.InquiryAdmin,
		&s.BlogAdmin, &s.ApplicationAdmin, &s.JobAdmin,
		&s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

// Create inserts a staff account, hashing the plaintext password. The email
// comparison is exact and case-sensitive, hence the BINARY existence check
// in addition to the unique-key mapping.
func (r *StaffRepo) Create(ctx context.Context, s *model.StaffAccount, password string, cost int) error {
	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM staff_accounts WHERE BINARY email=?", s.Email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrEmailExists
	}
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	s.PasswordHash = hash
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO staff_accounts
		 (name,email,password_hash,type,is_vendor_admin,is_properties_admin,is_inquiry_admin,is_blog_admin,is_application_admin,is_job_admin)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		s.Name, s.Email, hash, s.Type,
		s.VendorAdmin, s.PropertiesAdmin, s.InquiryAdmin,
		s.BlogAdmin, s.ApplicationAdmin, s.JobAdmin)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByEmail fetches a staff account by exact email.
func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (model.StaffAccount, error) {
	return scanStaff(r.DB.QueryRowContext(ctx,
		"SELECT "+staffColumns+" FROM staff_accounts WHERE BINARY email=? LIMIT 1", email))
}

// GetByID fetches a staff account by id.
func (r *StaffRepo) GetByID(ctx context.Context, id uint64) (model.StaffAccount, error) {
	return scanStaff(r.DB.QueryRowContext(ctx,
		"SELECT "+staffColumns+" FROM staff_accounts WHERE id=? LIMIT 1", id))
}

// List returns all staff accounts ordered by creation.
func (r *StaffRepo) List(ctx context.Context) ([]model.StaffAccount, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+staffColumns+" FROM staff_accounts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.StaffAccount{}
	for rows.Next() {
		var s model.StaffAccount
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Type,
			&s.VendorAdmin, &s.PropertiesAdmin, &s.InquiryAdmin,
			&s.BlogAdmin, &s.ApplicationAdmin, &s.JobAdmin,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update loads the current record, applies the patch and writes the merged
// result back. Omitted patch fields keep their stored values.
func (r *StaffRepo) Update(ctx context.Context, id uint64, p StaffPatch) (model.StaffAccount, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return model.StaffAccount{}, err
	}
	next := p.Apply(cur)
	_, err = r.DB.ExecContext(ctx,
		`UPDATE staff_accounts
		 SET name=?, email=?, type=?, is_vendor_admin=?, is_properties_admin=?,
		     is_inquiry_admin=?, is_blog_admin=?, is_application_admin=?, is_job_admin=?
		 WHERE id=?`,
		next.Name, next.Email, next.Type,
		next.VendorAdmin, next.PropertiesAdmin, next.InquiryAdmin,
		next.BlogAdmin, next.ApplicationAdmin, next.JobAdmin, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.StaffAccount{}, ErrEmailExists
		}
		return model.StaffAccount{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a staff account and returns the removed record.
func (r *StaffRepo) Delete(ctx context.Context, id uint64) (model.StaffAccount, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return model.StaffAccount{}, err
	}
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM staff_accounts WHERE id=?", id); err != nil {
		return model.StaffAccount{}, err
	}
	return cur, nil
}
