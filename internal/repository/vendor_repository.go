package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/propdesk/estate-admin/internal/auth"
	"github.com/propdesk/estate-admin/internal/model"
)

// VendorRepo persists vendor accounts and their approval lifecycle.
type VendorRepo struct{ DB *sql.DB }

func NewVendorRepo(db *sql.DB) *VendorRepo { return &VendorRepo{DB: db} }

const vendorColumns = "id,name,email,password_hash,company,address,phone,adhar,pan,description,status,percentage,created_at,updated_at"

func scanVendor(row *sql.Row) (model.Vendor, error) {
	var v model.Vendor
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash, &v.Company,
		&v.Address, &v.Phone, &v.Adhar, &v.Pan, &v.Description,
		&v.Status, &v.Percentage, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return v, ErrNotFound
	}
	return v, err
}

// Create inserts a vendor in pending status with zero commission.
func (r *VendorRepo) Create(ctx context.Context, v *model.Vendor, password string, cost int) error {
	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM vendors WHERE BINARY email=?", v.Email).Scan(&exists)
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
	v.PasswordHash = hash
	v.Status = model.VendorPending
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO vendors
		 (name,email,password_hash,company,address,phone,adhar,pan,description,status,percentage)
		 VALUES (?,?,?,?,?,?,?,?,?,?,0)`,
		v.Name, v.Email, hash, v.Company, v.Address, v.Phone,
		v.Adhar, v.Pan, v.Description, v.Status)
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
	v.ID = uint64(id)
	return nil
}

// GetByEmail fetches a vendor by exact email.
func (r *VendorRepo) GetByEmail(ctx context.Context, email string) (model.Vendor, error) {
	return scanVendor(r.DB.QueryRowContext(ctx,
		"SELECT "+vendorColumns+" FROM vendors WHERE BINARY email=? LIMIT 1", email))
}

// GetByID fetches a vendor by id.
func (r *VendorRepo) GetByID(ctx context.Context, id uint64) (model.Vendor, error) {
	return scanVendor(r.DB.QueryRowContext(ctx,
		"SELECT "+vendorColumns+" FROM vendors WHERE id=? LIMIT 1", id))
}

// List returns all vendors ordered by creation.
func (r *VendorRepo) List(ctx context.Context) ([]model.Vendor, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+vendorColumns+" FROM vendors ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Vendor{}
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash, &v.Company,
			&v.Address, &v.Phone, &v.Adhar, &v.Pan, &v.Description,
			&v.Status, &v.Percentage, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// UpdateStatus sets the approval status. Any prior status may be
// overwritten; re-approving an approved vendor is a permitted no-op.
func (r *VendorRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Vendor, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Vendor{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE vendors SET status=? WHERE id=?", status, id); err != nil {
		return model.Vendor{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdatePercentage sets the commission rate, independent of status.
func (r *VendorRepo) UpdatePercentage(ctx context.Context, id uint64, pct float64) (model.Vendor, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Vendor{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE vendors SET percentage=? WHERE id=?", pct, id); err != nil {
		return model.Vendor{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdateProfile merges a patch over the vendor's business fields.
func (r *VendorRepo) UpdateProfile(ctx context.Context, id uint64, p VendorPatch) (model.Vendor, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Vendor{}, err
	}
	next := p.Apply(cur)
	_, err = r.DB.ExecContext(ctx,
		`UPDATE vendors
		 SET name=?, email=?, company=?, address=?, phone=?, adhar=?, pan=?, description=?
		 WHERE id=?`,
		next.Name, next.Email, next.Company, next.Address, next.Phone,
		next.Adhar, next.Pan, next.Description, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Vendor{}, ErrEmailExists
		}
		return model.Vendor{}, err
	}
	return r.GetByID(ctx, id)
}

// VendorPatch is a partial update of a vendor profile. nil preserves the
// stored value; status and percentage have dedicated operations and are not
// patchable here.
type VendorPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Company     *string `json:"company"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Adhar       *string `json:"adhar"`
	Pan         *string `json:"pan"`
	Description *string `json:"description"`
}

// Apply merges the patch over an existing vendor and returns the result.
func (p VendorPatch) Apply(v model.Vendor) model.Vendor {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Company != nil {
		v.Company = *p.Company
	}
	if p.Address != nil {
		v.Address = *p.Address
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Adhar != nil {
		v.Adhar = *p.Adhar
	}
	if p.Pan != nil {
		v.Pan = *p.Pan
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	return v
}
