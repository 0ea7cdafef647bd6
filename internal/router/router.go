// Package router wires HTTP routes to handlers and attaches the middleware
// each surface requires: nothing on public browse routes, JWT + role on the
// dashboards, and a capability gate per admin feature area.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/propdesk/estate-admin/internal/config"
	"github.com/propdesk/estate-admin/internal/guard"
	"github.com/propdesk/estate-admin/internal/handler"
	"github.com/propdesk/estate-admin/internal/middleware"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Staff       *handler.StaffAuthHandler
	Vendor      *handler.VendorHandler
	Session     *handler.SessionHandler
	Property    *handler.PropertyHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Blog        *handler.BlogHandler
	Inquiry     *handler.InquiryHandler
	Ticket      *handler.TicketHandler
}

// RegisterPublic mounts routes that require no authentication: health,
// login/registration for both account classes, the guard endpoint, the
// public browse pages and the inbound public forms. Browse GETs sit behind
// the Redis response cache.
func RegisterPublic(e *echo.Echo, h Handlers, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	e.POST("/auth/register", h.Staff.Register)
	e.POST("/auth/login", h.Staff.Login)
	e.POST("/vendor/register", h.Vendor.Register)
	e.POST("/vendor/login", h.Vendor.Login)

	// Unauthenticated on purpose: the guard routes sessions that may not
	// hold a valid token.
	e.GET("/session/route", h.Session.RouteDecision)

	cached := middleware.NewRedisCache(cacheCfg, rdb)
	e.GET("/property/getAll", h.Property.ListPublic, cached)
	e.GET("/property/:id", h.Property.Get, cached)
	e.GET("/job/getAll", h.Job.ListPublic, cached)
	e.GET("/blog/getAll", h.Blog.List, cached)
	e.GET("/blog/:id", h.Blog.Get, cached)

	e.POST("/application/apply", h.Application.Apply)
	e.POST("/inquiry/submit", h.Inquiry.Submit)
	e.POST("/ticket/open", h.Ticket.Open)
}

// RegisterAdmin mounts the staff dashboard surface. Every route requires a
// valid admin token; feature-area routes additionally carry the capability
// gate mirroring the page the dashboard shows for that flag.
func RegisterAdmin(e *echo.Echo, h Handlers, jwtSecret string, lookup middleware.CapabilityLookup) {
	admin := e.Group("",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(guard.RoleAdmin),
	)

	// Staff account management (any admin).
	admin.GET("/auth/getAll", h.Staff.List)
	admin.PUT("/auth/update/:id", h.Staff.Update)
	admin.DELETE("/auth/delete/:id", h.Staff.Delete)

	// Support desk (any admin; no dedicated capability flag exists).
	admin.GET("/ticket/getAll", h.Ticket.List)
	admin.PUT("/ticket/reply/:id", h.Ticket.Reply)
	admin.PUT("/ticket/close/:id", h.Ticket.Close)

	caps := middleware.Capabilities(lookup)

	vendors := admin.Group("/vendor", caps.Vendors)
	vendors.GET("/getAll", h.Vendor.List)
	vendors.PUT("/update/:id", h.Vendor.UpdateStatus)
	vendors.PUT("/update-percentage/:id", h.Vendor.UpdatePercentage)

	admin.GET("/property/admin/getAll", h.Property.ListAll, caps.Properties)

	jobs := admin.Group("/job", caps.Jobs)
	jobs.POST("/create", h.Job.Create)
	jobs.GET("/admin/getAll", h.Job.ListAll)
	jobs.PUT("/update/:id", h.Job.Update)
	jobs.DELETE("/delete/:id", h.Job.Delete)

	apps := admin.Group("/application", caps.Applications)
	apps.GET("/getAll", h.Application.List)
	apps.DELETE("/delete/:id", h.Application.Delete)

	blog := admin.Group("/blog", caps.Blog)
	blog.POST("/create", h.Blog.Create)
	blog.PUT("/update/:id", h.Blog.Update)
	blog.DELETE("/delete/:id", h.Blog.Delete)

	inquiries := admin.Group("/inquiry", caps.Inquiries)
	inquiries.GET("/getAll", h.Inquiry.List)
	inquiries.DELETE("/delete/:id", h.Inquiry.Delete)
}

// RegisterVendor mounts the vendor dashboard surface: own-listing CRUD and
// profile editing.
func RegisterVendor(e *echo.Echo, h Handlers, jwtSecret string) {
	vendor := e.Group("",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(guard.RoleVendor),
	)
	vendor.POST("/property/create", h.Property.Create)
	vendor.GET("/property/mine", h.Property.ListMine)
	vendor.PUT("/property/update/:id", h.Property.Update)
	vendor.DELETE("/property/delete/:id", h.Property.Delete)

	// Shared by both roles: vendors edit themselves, admins edit anyone.
	shared := e.Group("",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(guard.RoleAdmin, guard.RoleVendor),
	)
	shared.PUT("/vendor/update-profile/:id", h.Vendor.UpdateProfile)
	shared.GET("/session/me", h.Session.Me)
}
