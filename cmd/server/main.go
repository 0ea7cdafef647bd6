package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/propdesk/estate-admin/internal/auth"
	"github.com/propdesk/estate-admin/internal/config"
	"github.com/propdesk/estate-admin/internal/database"
	"github.com/propdesk/estate-admin/internal/handler"
	"github.com/propdesk/estate-admin/internal/middleware"
	"github.com/propdesk/estate-admin/internal/queue"
	"github.com/propdesk/estate-admin/internal/repository"
	"github.com/propdesk/estate-admin/internal/router"
)

func main() {
	// .env is optional; environment variables may come from the deployment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	staffRepo := repository.NewStaffRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	propertyRepo := repository.NewPropertyRepo(db)
	jobRepo := repository.NewJobRepo(db)
	appRepo := repository.NewApplicationRepo(db)
	postRepo := repository.NewPostRepo(db)
	inquiryRepo := repository.NewInquiryRepo(db)
	ticketRepo := repository.NewTicketRepo(db)

	handlers := router.Handlers{
		Staff:       handler.NewStaffAuthHandler(cfg, staffRepo),
		Vendor:      handler.NewVendorHandler(cfg, vendorRepo),
		Session:     handler.NewSessionHandler(cfg, staffRepo),
		Property:    handler.NewPropertyHandler(propertyRepo),
		Job:         handler.NewJobHandler(jobRepo),
		Application: handler.NewApplicationHandler(appRepo, jobRepo),
		Blog:        handler.NewBlogHandler(postRepo),
		Inquiry:     handler.NewInquiryHandler(inquiryRepo),
		Ticket:      handler.NewTicketHandler(ticketRepo),
	}

	// Capability gates re-load the staff record per request so revoking a
	// flag takes effect immediately.
	lookup := func(ctx context.Context, staffID uint64) (auth.CapabilitySet, error) {
		acct, err := staffRepo.GetByID(ctx, staffID)
		if err != nil {
			return 0, err
		}
		return acct.Capabilities(), nil
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterPublic(e, handlers, config.LoadCacheConfig(), rdb)
	router.RegisterAdmin(e, handlers, cfg.JWTSecret, lookup)
	router.RegisterVendor(e, handlers, cfg.JWTSecret)

	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
