package repository

import (
	"context"
	"database/sql"

	"github.com/propdesk/estate-admin/internal/model"
)

// JobRepo persists job postings.
type JobRepo struct{ DB *sql.DB }

func NewJobRepo(db *sql.DB) *JobRepo { return &JobRepo{DB: db} }

const jobColumns = "id,title,description,location,salary,open,created_at,updated_at"

// Create inserts a posting.
func (r *JobRepo) Create(ctx context.Context, j *model.Job) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO jobs (title,description,location,salary,open) VALUES (?,?,?,?,?)",
		j.Title, j.Description, j.Location, j.Salary, j.Open)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	j.ID = uint64(id)
	return nil
}

// GetByID fetches a posting by id.
func (r *JobRepo) GetByID(ctx context.Context, id uint64) (model.Job, error) {
	var j model.Job
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE id=? LIMIT 1", id).
		Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.Open,
			&j.CreatedAt, &j.UpdatedAt)
	if err == sql.ErrNoRows {
		return j, ErrNotFound
	}
	return j, err
}

// List returns postings, open ones only when openOnly is set.
func (r *JobRepo) List(ctx context.Context, openOnly bool) ([]model.Job, error) {
	q := "SELECT " + jobColumns + " FROM jobs ORDER BY id DESC"
	if openOnly {
		q = "SELECT " + jobColumns + " FROM jobs WHERE open=1 ORDER BY id DESC"
	}
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Job{}
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary,
			&j.Open, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// Update merges a patch over a posting.
func (r *JobRepo) Update(ctx context.Context, id uint64, p JobPatch) (model.Job, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Job{}, err
	}
	next := p.Apply(cur)
	_, err = r.DB.ExecContext(ctx,
		"UPDATE jobs SET title=?, description=?, location=?, salary=?, open=? WHERE id=?",
		next.Title, next.Description, next.Location, next.Salary, next.Open, id)
	if err != nil {
		return model.Job{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a posting.
func (r *JobRepo) Delete(ctx context.Context, id uint64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM jobs WHERE id=?", id)
	return err
}

// JobPatch is a partial update of a posting; explicit false on Open closes
// it to new applications.
type JobPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Salary      *string `json:"salary"`
	Open        *bool   `json:"open"`
}

// Apply merges the patch over an existing posting and returns the result.
func (p JobPatch) Apply(j model.Job) model.Job {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.Open != nil {
		j.Open = *p.Open
	}
	return j
}
