package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vaishalishah/portfolio/app/controllers"
	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/cache"
	"github.com/vaishalishah/portfolio/internal/pkg/contact"
	"github.com/vaishalishah/portfolio/internal/pkg/database"
	"github.com/vaishalishah/portfolio/internal/pkg/env"
	"github.com/vaishalishah/portfolio/internal/pkg/hcaptcha"
	"github.com/vaishalishah/portfolio/internal/pkg/mail"
	"github.com/vaishalishah/portfolio/internal/pkg/router"
	"github.com/vaishalishah/portfolio/views"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	cacheClient := cache.GetClient()

	repository.InitializeFactory(database.GetDB())
	factory := repository.GetGlobalFactory()
	database.SeedAdminFromEnv(factory.GetUserRepository())

	// Define possible base paths for static assets
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/portfolio to project root
		"../../../", // Fallback
	}

	basePath := "./"
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); err == nil {
			basePath = path
			break
		}
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		ErrorHandler: controllers.ErrorHandler,
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/icons/favicon.ico",
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	if password := env.GetEnv("METRICS_PASSWORD", ""); password != "" {
		app.Get("/metrics", basicauth.New(basicauth.Config{
			Users: map[string]string{
				env.GetEnv("METRICS_USER", "admin"): password,
			},
		}), monitor.New(monitor.Config{Title: "Portfolio Metrics"}))
	}

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	var captcha contact.Verifier
	if client := hcaptcha.FromEnv(); client != nil {
		captcha = client
	}

	var notifier contact.Notifier
	if n := mail.InquiryNotifierFromEnv(); n != nil {
		notifier = n
	}

	cfg := router.Config{
		Controllers: controllers.Dependencies{
			Factory:        factory,
			Categories:     cache.NewCategories(cache.CategoriesTTL),
			Captcha:        captcha,
			CaptchaSiteKey: hcaptcha.SiteKey(),
			Notifier:       notifier,
		},
		CacheClient:    cacheClient,
		LimiterStorage: cache.NewStorage(cacheClient, cache.LimiterDB),
	}

	// ROUTER
	router.InstallRouter(app, cfg)

	return app
}
