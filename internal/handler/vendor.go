package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/auth"
	"github.com/propdesk/estate-admin/internal/config"
	"github.com/propdesk/estate-admin/internal/guard"
	"github.com/propdesk/estate-admin/internal/middleware"
	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/queue"
	"github.com/propdesk/estate-admin/internal/repository"
	queue_publisher "github.com/propdesk/estate-admin/internal/service"
)

// VendorHandler bundles dependencies for vendor endpoints: self-service
// registration/login/profile plus the admin-side approval and commission
// operations.
type VendorHandler struct {
	Cfg     config.Config
	Vendors *repository.VendorRepo
}

func NewVendorHandler(cfg config.Config, vendors *repository.VendorRepo) *VendorHandler {
	return &VendorHandler{Cfg: cfg, Vendors: vendors}
}

type vendorRegisterReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Company     string `json:"company"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Adhar       string `json:"adhar"`
	Pan         string `json:"pan"`
	Description string `json:"description"`
}

// Register handles POST /vendor/register. The account is created pending;
// no token is issued because a pending vendor cannot log in anyway.
func (h *VendorHandler) Register(c echo.Context) error {
	var req vendorRegisterReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "name, email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	v := model.Vendor{
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Address:     req.Address,
		Phone:       req.Phone,
		Adhar:       req.Adhar,
		Pan:         req.Pan,
		Description: req.Description,
	}
	if err := h.Vendors.Create(ctx, &v, req.Password, h.Cfg.BcryptCost); err != nil {
		return repoFail(c, err, "vendor not found")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"vendor":  v,
		"message": "registration received, awaiting approval",
	})
}

// Login handles POST /vendor/login. The approval status is checked before
// the password so the comparison never runs for non-approved accounts.
func (h *VendorHandler) Login(c echo.Context) error {
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

	v, err := h.Vendors.GetByEmail(ctx, req.Email)
	if err != nil {
		return repoFail(c, err, "vendor not found")
	}
	if !v.CanLogin() {
		return fail(c, http.StatusForbidden, "account is not active")
	}
	if !auth.VerifyPassword(v.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "password is incorrect")
	}

	token, _, err := auth.IssueAccessToken(h.Cfg.JWTSecret, v.ID, v.Email, guard.RoleVendor, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue token")
	}
	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"vendor":  v,
		"message": "logged in",
	})
}

// List handles GET /vendor/getAll (admin, vendors capability).
func (h *VendorHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	vendors, err := h.Vendors.List(ctx)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "vendors": vendors})
}

// UpdateStatus handles PUT /vendor/update/:id {status}. There is no
// transition table: any status may be overwritten, so re-approving is an
// idempotent no-op. A status change event is published best-effort.
func (h *VendorHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	status := strings.TrimSpace(strings.ToLower(body.Status))
	if status == "" {
		return fail(c, http.StatusBadRequest, "status is required")
	}
	if !model.ValidVendorStatus(status) {
		return fail(c, http.StatusBadRequest, "status must be approved or rejected")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	v, err := h.Vendors.UpdateStatus(ctx, id, status)
	if err != nil {
		return repoFail(c, err, "vendor not found")
	}

	// Best effort; the status change itself is already durable.
	_ = queue_publisher.PublishVendorStatusChanged(c.Request().Context(), queue.VendorStatusChangedEvent{
		VendorID:  v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Status:    v.Status,
		ChangedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "vendor " + status,
		"vendor":  v,
	})
}

// UpdatePercentage handles PUT /vendor/update-percentage/:id {percentage}.
func (h *VendorHandler) UpdatePercentage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Percentage *float64 `json:"percentage"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if body.Percentage == nil || *body.Percentage < 0 || *body.Percentage > 100 {
		return fail(c, http.StatusBadRequest, "percentage must be between 0 and 100")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	v, err := h.Vendors.UpdatePercentage(ctx, id, *body.Percentage)
	if err != nil {
		return repoFail(c, err, "vendor not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "commission updated",
		"vendor":  v,
	})
}

// UpdateProfile handles PUT /vendor/update-profile/:id. A vendor may edit
// only their own profile; admins may edit any.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if role, _ := c.Get(middleware.CtxRole).(string); role == guard.RoleVendor {
		if uid, ok := currentUserID(c); !ok || uid != id {
			return fail(c, http.StatusForbidden, "forbidden")
		}
	}
	var patch repository.VendorPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	v, err := h.Vendors.UpdateProfile(ctx, id, patch)
	if err != nil {
		return repoFail(c, err, "vendor not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "profile updated",
		"vendor":  v,
	})
}
