package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/repository"
)

// TicketHandler serves the public support form and the admin ticket desk.
// There is no per-ticket capability flag; the admin role gates the desk.
type TicketHandler struct {
	Tickets *repository.TicketRepo
}

func NewTicketHandler(tickets *repository.TicketRepo) *TicketHandler {
	return &TicketHandler{Tickets: tickets}
}

// Open handles POST /ticket/open.
func (h *TicketHandler) Open(c echo.Context) error {
	var body struct {
		Subject string `json:"subject"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	body.Subject = strings.TrimSpace(body.Subject)
	body.Email = strings.TrimSpace(body.Email)
	if body.Subject == "" || body.Email == "" || strings.TrimSpace(body.Message) == "" {
		return fail(c, http.StatusBadRequest, "subject, email and message are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	t := model.Ticket{Subject: body.Subject, Email: body.Email, Message: body.Message}
	if err := h.Tickets.Create(ctx, &t); err != nil {
		return fail(c, http.StatusInternalServerError, "could not open ticket")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "ticket": t})
}

// List handles GET /ticket/getAll.
func (h *TicketHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	tickets, err := h.Tickets.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "tickets": tickets})
}

// Reply handles PUT /ticket/reply/:id {reply}. The ticket stays open so a
// follow-up exchange is possible.
func (h *TicketHandler) Reply(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Reply string `json:"reply"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(body.Reply) == "" {
		return fail(c, http.StatusBadRequest, "reply is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	t, err := h.Tickets.Reply(ctx, id, body.Reply)
	if err != nil {
		return repoFail(c, err, "ticket not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "reply sent", "ticket": t})
}

// Close handles PUT /ticket/close/:id. Closing twice is a no-op.
func (h *TicketHandler) Close(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	t, err := h.Tickets.Close(ctx, id)
	if err != nil {
		return repoFail(c, err, "ticket not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "ticket closed", "ticket": t})
}
