package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/repository"
)

// JobHandler serves job posting CRUD (admin, jobs capability) and the
// public careers listing.
type JobHandler struct {
	Jobs *repository.JobRepo
}

func NewJobHandler(jobs *repository.JobRepo) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// Create handles POST /job/create.
func (h *JobHandler) Create(c echo.Context) error {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Salary      string `json:"salary"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" {
		return fail(c, http.StatusBadRequest, "title is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	j := model.Job{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Salary:      body.Salary,
		Open:        true,
	}
	if err := h.Jobs.Create(ctx, &j); err != nil {
		return fail(c, http.StatusInternalServerError, "could not create job")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "job": j})
}

// ListPublic handles GET /job/getAll: open postings only.
func (h *JobHandler) ListPublic(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	jobs, err := h.Jobs.List(ctx, true)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "jobs": jobs})
}

// ListAll handles GET /job/admin/getAll: open and closed postings.
func (h *JobHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	jobs, err := h.Jobs.List(ctx, false)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "jobs": jobs})
}

// Update handles PUT /job/update/:id with patch semantics.
func (h *JobHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var patch repository.JobPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	j, err := h.Jobs.Update(ctx, id, patch)
	if err != nil {
		return repoFail(c, err, "job not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "job updated", "job": j})
}

// Delete handles DELETE /job/delete/:id.
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Jobs.Delete(ctx, id); err != nil {
		return repoFail(c, err, "job not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "job deleted"})
}
