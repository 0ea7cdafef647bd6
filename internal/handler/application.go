package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/repository"
)

// ApplicationHandler serves the public apply endpoint and the admin review
// surface (applications capability).
type ApplicationHandler struct {
	Apps *repository.ApplicationRepo
	Jobs *repository.JobRepo
}

func NewApplicationHandler(apps *repository.ApplicationRepo, jobs *repository.JobRepo) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps, Jobs: jobs}
}

// Apply handles POST /application/apply. The referenced job must exist and
// still be open.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var body struct {
		JobID     uint64 `json:"job_id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		ResumeURL string `json:"resume_url"`
		Message   string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	if body.JobID == 0 || body.Name == "" || body.Email == "" {
		return fail(c, http.StatusBadRequest, "job_id, name and email are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	job, err := h.Jobs.GetByID(ctx, body.JobID)
	if err != nil {
		return repoFail(c, err, "job not found")
	}
	if !job.Open {
		return fail(c, http.StatusBadRequest, "job is closed to applications")
	}

	a := model.Application{
		JobID:     body.JobID,
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		ResumeURL: body.ResumeURL,
		Message:   body.Message,
	}
	if err := h.Apps.Create(ctx, &a); err != nil {
		return fail(c, http.StatusInternalServerError, "could not submit application")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "application": a})
}

// List handles GET /application/getAll with an optional ?job_id= filter.
func (h *ApplicationHandler) List(c echo.Context) error {
	var jobID uint64
	if s := c.QueryParam("job_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid job_id")
		}
		jobID = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	apps, err := h.Apps.List(ctx, jobID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "applications": apps})
}

// Delete handles DELETE /application/delete/:id.
func (h *ApplicationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Apps.Delete(ctx, id); err != nil {
		return repoFail(c, err, "application not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "application deleted"})
}
