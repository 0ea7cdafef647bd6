package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/queue"
	"github.com/propdesk/estate-admin/internal/repository"
	queue_publisher "github.com/propdesk/estate-admin/internal/service"
)

// InquiryHandler serves the public contact form and the admin inbox
// (inquiries capability).
type InquiryHandler struct {
	Inquiries *repository.InquiryRepo
}

func NewInquiryHandler(inquiries *repository.InquiryRepo) *InquiryHandler {
	return &InquiryHandler{Inquiries: inquiries}
}

// Submit handles POST /inquiry/submit. An event is published best-effort
// so staff can be notified without polling the inbox.
func (h *InquiryHandler) Submit(c echo.Context) error {
	var body struct {
		PropertyID uint64 `json:"property_id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Message    string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	if body.Name == "" || body.Email == "" || strings.TrimSpace(body.Message) == "" {
		return fail(c, http.StatusBadRequest, "name, email and message are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	q := model.Inquiry{
		PropertyID: body.PropertyID,
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		Message:    body.Message,
	}
	if err := h.Inquiries.Create(ctx, &q); err != nil {
		return fail(c, http.StatusInternalServerError, "could not submit inquiry")
	}

	_ = queue_publisher.PublishInquiryReceived(c.Request().Context(), queue.InquiryReceivedEvent{
		InquiryID:  q.ID,
		PropertyID: q.PropertyID,
		Name:       q.Name,
		Email:      q.Email,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "inquiry": q})
}

// List handles GET /inquiry/getAll.
func (h *InquiryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Inquiries.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "inquiries": items})
}

// Delete handles DELETE /inquiry/delete/:id.
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Inquiries.Delete(ctx, id); err != nil {
		return repoFail(c, err, "inquiry not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "inquiry deleted"})
}
