package repository

import (
	"context"
	"database/sql"

	"github.com/propdesk/estate-admin/internal/model"
)

// ApplicationRepo persists job applications.
type ApplicationRepo struct{ DB *sql.DB }

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{DB: db} }

const applicationColumns = "id,job_id,name,email,phone,resume_url,message,created_at"

// Create inserts an application against an existing job.
func (r *ApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO applications (job_id,name,email,phone,resume_url,message) VALUES (?,?,?,?,?,?)",
		a.JobID, a.Name, a.Email, a.Phone, a.ResumeURL, a.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// List returns applications, newest first. A non-zero jobID filters to one
// posting.
func (r *ApplicationRepo) List(ctx context.Context, jobID uint64) ([]model.Application, error) {
	q := "SELECT " + applicationColumns + " FROM applications ORDER BY id DESC"
	args := []any{}
	if jobID != 0 {
		q = "SELECT " + applicationColumns + " FROM applications WHERE job_id=? ORDER BY id DESC"
		args = append(args, jobID)
	}
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Application{}
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &a.Phone,
			&a.ResumeURL, &a.Message, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Delete removes an application.
func (r *ApplicationRepo) Delete(ctx context.Context, id uint64) error {
	var exists int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM applications WHERE id=?", id).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM applications WHERE id=?", id)
	return err
}
