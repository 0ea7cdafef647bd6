package repository

import (
	"context"
	"database/sql"

	"github.com/propdesk/estate-admin/internal/model"
)

// PropertyRepo persists property listings. Every listing belongs to exactly
// one vendor; write operations take the acting vendor id so ownership is
// enforced at the data layer.
type PropertyRepo struct{ DB *sql.DB }

func NewPropertyRepo(db *sql.DB) *PropertyRepo { return &PropertyRepo{DB: db} }

const propertyColumns = "id,vendor_id,title,description,location,price,kind,image_url,active,created_at,updated_at"

func scanProperty(row *sql.Row) (model.Property, error) {
	var p model.Property
	err := row.Scan(&p.ID, &p.VendorID, &p.Title, &p.Description, &p.Location,
		&p.Price, &p.Kind, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// Create inserts a listing for a vendor.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO properties (vendor_id,title,description,location,price,kind,image_url,active)
		 VALUES (?,?,?,?,?,?,?,?)`,
		p.VendorID, p.Title, p.Description, p.Location, p.Price, p.Kind, p.ImageURL, p.Active)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByID fetches a listing by id.
func (r *PropertyRepo) GetByID(ctx context.Context, id uint64) (model.Property, error) {
	return scanProperty(r.DB.QueryRowContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE id=? LIMIT 1", id))
}

// List returns listings, active ones only when activeOnly is set. Admin
// views pass false; the public site passes true.
func (r *PropertyRepo) List(ctx context.Context, activeOnly bool) ([]model.Property, error) {
	q := "SELECT " + propertyColumns + " FROM properties ORDER BY id DESC"
	if activeOnly {
		q = "SELECT " + propertyColumns + " FROM properties WHERE active=1 ORDER BY id DESC"
	}
	return r.queryList(ctx, q)
}

// ListByVendor returns all of a vendor's listings.
func (r *PropertyRepo) ListByVendor(ctx context.Context, vendorID uint64) ([]model.Property, error) {
	return r.queryList(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE vendor_id=? ORDER BY id DESC", vendorID)
}

func (r *PropertyRepo) queryList(ctx context.Context, q string, args ...any) ([]model.Property, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Property{}
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(&p.ID, &p.VendorID, &p.Title, &p.Description, &p.Location,
			&p.Price, &p.Kind, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateOwned merges a patch over a listing after verifying ownership.
func (r *PropertyRepo) UpdateOwned(ctx context.Context, id, vendorID uint64, p PropertyPatch) (model.Property, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Property{}, err
	}
	if cur.VendorID != vendorID {
		return model.Property{}, ErrForbidden
	}
	next := p.Apply(cur)
	_, err = r.DB.ExecContext(ctx,
		`UPDATE properties SET title=?, description=?, location=?, price=?, kind=?, image_url=?, active=?
		 WHERE id=?`,
		next.Title, next.Description, next.Location, next.Price, next.Kind,
		next.ImageURL, next.Active, id)
	if err != nil {
		return model.Property{}, err
	}
	return r.GetByID(ctx, id)
}

// DeleteOwned removes a listing after verifying ownership.
func (r *PropertyRepo) DeleteOwned(ctx context.Context, id, vendorID uint64) error {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.VendorID != vendorID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM properties WHERE id=?", id)
	return err
}

// PropertyPatch is a partial update of a listing. nil preserves the stored
// value; explicit false on Active delists the property.
type PropertyPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price"`
	Kind        *string  `json:"kind"`
	ImageURL    *string  `json:"image_url"`
	Active      *bool    `json:"active"`
}

// Apply merges the patch over an existing listing and returns the result.
func (p PropertyPatch) Apply(prop model.Property) model.Property {
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.Description != nil {
		prop.Description = *p.Description
	}
	if p.Location != nil {
		prop.Location = *p.Location
	}
	if p.Price != nil {
		prop.Price = *p.Price
	}
	if p.Kind != nil {
		prop.Kind = *p.Kind
	}
	if p.ImageURL != nil {
		prop.ImageURL = *p.ImageURL
	}
	if p.Active != nil {
		prop.Active = *p.Active
	}
	return prop
}
