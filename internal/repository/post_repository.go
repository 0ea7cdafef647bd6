package repository

import (
	"context"
	"database/sql"

	"github.com/propdesk/estate-admin/internal/model"
)

// PostRepo persists blog posts.
type PostRepo struct{ DB *sql.DB }

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{DB: db} }

const postColumns = "id,title,content,author,image_url,created_at,updated_at"

// Create inserts a post.
func (r *PostRepo) Create(ctx context.Context, p *model.Post) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO posts (title,content,author,image_url) VALUES (?,?,?,?)",
		p.Title, p.Content, p.Author, p.ImageURL)
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

// GetByID fetches a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id uint64) (model.Post, error) {
	var p model.Post
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id=? LIMIT 1", id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// List returns posts, newest first.
func (r *PostRepo) List(ctx context.Context) ([]model.Post, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+postColumns+" FROM posts ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.ImageURL,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update merges a patch over a post.
func (r *PostRepo) Update(ctx context.Context, id uint64, p PostPatch) (model.Post, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Post{}, err
	}
	next := p.Apply(cur)
	_, err = r.DB.ExecContext(ctx,
		"UPDATE posts SET title=?, content=?, author=?, image_url=? WHERE id=?",
		next.Title, next.Content, next.Author, next.ImageURL, id)
	if err != nil {
		return model.Post{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a post.
func (r *PostRepo) Delete(ctx context.Context, id uint64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM posts WHERE id=?", id)
	return err
}

// PostPatch is a partial update of a post; nil preserves the stored value.
type PostPatch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	ImageURL *string `json:"image_url"`
}

// Apply merges the patch over an existing post and returns the result.
func (p PostPatch) Apply(post model.Post) model.Post {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Author != nil {
		post.Author = *p.Author
	}
	if p.ImageURL != nil {
		post.ImageURL = *p.ImageURL
	}
	return post
}
