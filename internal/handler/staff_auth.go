package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/auth"
	"github.com/propdesk/estate-admin/internal/config"
	"github.com/propdesk/estate-admin/internal/guard"
	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/repository"
)

// StaffAuthHandler bundles dependencies for staff account endpoints:
// registration, login, listing, permission updates and deletion.
type StaffAuthHandler struct {
	Cfg   config.Config
	Staff *repository.StaffRepo
}

func NewStaffAuthHandler(cfg config.Config, staff *repository.StaffRepo) *StaffAuthHandler {
	return &StaffAuthHandler{Cfg: cfg, Staff: staff}
}

type staffRegisterReq struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Type             string `json:"type"`
	VendorAdmin      bool   `json:"isVendorAdmin"`
	PropertiesAdmin  bool   `json:"isPropertiesAdmin"`
	InquiryAdmin     bool   `json:"isInquiryAdmin"`
	BlogAdmin        bool   `json:"isBlogAdmin"`
	ApplicationAdmin bool   `json:"isApplicationAdmin"`
	JobAdmin         bool   `json:"isJobAdmin"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register: create a staff account with its
// capability flags taken verbatim from the payload and return a signed
// token immediately. Validation runs before any database work, so a bad
// payload never creates a record.
func (h *StaffAuthHandler) Register(c echo.Context) error {
	var req staffRegisterReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "name, email and password are required")
	}
	if req.Type == "" {
		req.Type = model.StaffTypeOther
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	acct := model.StaffAccount{
		Name:             req.Name,
		Email:            req.Email,
		Type:             req.Type,
		VendorAdmin:      req.VendorAdmin,
		PropertiesAdmin:  req.PropertiesAdmin,
		InquiryAdmin:     req.InquiryAdmin,
		BlogAdmin:        req.BlogAdmin,
		ApplicationAdmin: req.ApplicationAdmin,
		JobAdmin:         req.JobAdmin,
	}
	if err := h.Staff.Create(ctx, &acct, req.Password, h.Cfg.BcryptCost); err != nil {
		return repoFail(c, err, "account not found")
	}

	token, _, err := auth.IssueAccessToken(h.Cfg.JWTSecret, acct.ID, acct.Email, guard.RoleAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue token")
	}
	setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"token":   token,
		"user":    acct,
		"message": "registered",
	})
}

// Login handles POST /auth/login.
func (h *StaffAuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	acct, err := h.Staff.GetByEmail(ctx, req.Email)
	if err != nil {
		return repoFail(c, err, "user not found")
	}
	if !auth.VerifyPassword(acct.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "password is incorrect")
	}

	token, _, err := auth.IssueAccessToken(h.Cfg.JWTSecret, acct.ID, acct.Email, guard.RoleAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue token")
	}
	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"user":    acct,
		"message": "logged in",
	})
}

// List handles GET /auth/getAll.
func (h *StaffAuthHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	users, err := h.Staff.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "users": users})
}

// Update handles PUT /auth/update/:id with merge-not-replace semantics: a
// field absent from the payload keeps its stored value, an explicit false
// clears a capability.
func (h *StaffAuthHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var patch repository.StaffPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	user, err := h.Staff.Update(ctx, id, patch)
	if err != nil {
		return repoFail(c, err, "user not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "permissions updated",
		"user":    user,
	})
}

// Delete handles DELETE /auth/delete/:id. Irreversible.
func (h *StaffAuthHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	deleted, err := h.Staff.Delete(ctx, id)
	if err != nil {
		return repoFail(c, err, "user not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "user deleted",
		"deletedUser": deleted,
	})
}
