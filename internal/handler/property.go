package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/model"
	"github.com/propdesk/estate-admin/internal/repository"
)

// PropertyHandler serves listing CRUD. Vendors manage their own listings;
// admins with the properties capability see everything; the public site
// sees active listings only.
type PropertyHandler struct {
	Props *repository.PropertyRepo
}

func NewPropertyHandler(props *repository.PropertyRepo) *PropertyHandler {
	return &PropertyHandler{Props: props}
}

// Create handles POST /property/create (vendor).
func (h *PropertyHandler) Create(c echo.Context) error {
	vendorID, ok := currentUserID(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var body struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Location    string  `json:"location"`
		Price       float64 `json:"price"`
		Kind        string  `json:"kind"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" || body.Location == "" {
		return fail(c, http.StatusBadRequest, "title and location are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p := model.Property{
		VendorID:    vendorID,
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Price:       body.Price,
		Kind:        body.Kind,
		ImageURL:    body.ImageURL,
		Active:      true,
	}
	if err := h.Props.Create(ctx, &p); err != nil {
		return fail(c, http.StatusInternalServerError, "could not create property")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "property": p})
}

// ListPublic handles GET /property/getAll: active listings only.
func (h *PropertyHandler) ListPublic(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Props.List(ctx, true)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "properties": items})
}

// Get handles GET /property/:id.
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Props.GetByID(ctx, id)
	if err != nil {
		return repoFail(c, err, "property not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "property": p})
}

// ListAll handles GET /property/admin/getAll: every listing, including
// delisted ones (admin, properties capability).
func (h *PropertyHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Props.List(ctx, false)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "properties": items})
}

// ListMine handles GET /property/mine (vendor).
func (h *PropertyHandler) ListMine(c echo.Context) error {
	vendorID, ok := currentUserID(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.Props.ListByVendor(ctx, vendorID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "properties": items})
}

// Update handles PUT /property/update/:id (vendor, own listings only).
func (h *PropertyHandler) Update(c echo.Context) error {
	vendorID, ok := currentUserID(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var patch repository.PropertyPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Props.UpdateOwned(ctx, id, vendorID, patch)
	if err != nil {
		return repoFail(c, err, "property not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "property updated",
		"property": p,
	})
}

// Delete handles DELETE /property/delete/:id (vendor, own listings only).
func (h *PropertyHandler) Delete(c echo.Context) error {
	vendorID, ok := currentUserID(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Props.DeleteOwned(ctx, id, vendorID); err != nil {
		return repoFail(c, err, "property not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "property deleted"})
}
