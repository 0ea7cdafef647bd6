package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/repository"
)

// BlogHandler serves blog CRUD (admin, blog capability) and the public
// reading endpoints.
type BlogHandler struct {
	Posts *repository.PostRepo
}

func NewBlogHandler(posts *repository.PostRepo) *BlogHandler {
	return &BlogHandler{Posts: posts}
}

// Create handles POST /blog/create.
func (h *BlogHandler) Create(c echo.Context) error {
	var body struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Author   string `json:"author"`
		ImageURL string `json:"image_url"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" || strings.TrimSpace(body.Content) == "" {
		return fail(c, http.StatusBadRequest, "title and content are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p := model.Post{
		Title:    body.Title,
		Content:  body.Content,
		Author:   body.Author,
		ImageURL: body.ImageURL,
	}
	if err := h.Posts.Create(ctx, &p); err != nil {
		return fail(c, http.StatusInternalServerError, "could not create post")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "post": p})
}

// List handles GET /blog/getAll.
func (h *BlogHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	posts, err := h.Posts.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "posts": posts})
}

// Get handles GET /blog/:id.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Posts.GetByID(ctx, id)
	if err != nil {
		return repoFail(c, err, "post not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "post": p})
}

// Update handles PUT /blog/update/:id with patch semantics.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var patch repository.PostPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Posts.Update(ctx, id, patch)
	if err != nil {
		return repoFail(c, err, "post not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "post updated", "post": p})
}

// Delete handles DELETE /blog/delete/:id.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Posts.Delete(ctx, id); err != nil {
		return repoFail(c, err, "post not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "post deleted"})
}
