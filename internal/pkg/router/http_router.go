package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"

	"github.com/vaishalishah/portfolio/app/controllers"
	"github.com/vaishalishah/portfolio/internal/pkg/middleware"
	"github.com/vaishalishah/portfolio/internal/pkg/session"
)

// Config carries what the routes need from bootstrap.
type Config struct {
	Controllers controllers.Dependencies
	// CacheClient backs sessions when set; otherwise they stay in memory.
	CacheClient *redis.Client
	// LimiterStorage keeps rate limit counters. Nil uses process memory.
	LimiterStorage fiber.Storage
	// DisableCSRF is only meant for tests that post forms directly.
	DisableCSRF bool
}

type HttpRouter struct {
	cfg Config
}

func NewHttpRouter(cfg Config) *HttpRouter {
	return &HttpRouter{cfg: cfg}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	session.NewSessionStore(h.cfg.CacheClient)

	app.Use(middleware.UserContextMiddleware)
	if !h.cfg.DisableCSRF {
		app.Use(h.csrfMiddleware())
	}

	controllers.InitializeControllers(h.cfg.Controllers)

	h.registerCSRFProtectedRoutes(app)
	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

// formLimiter throttles the public form posts per client IP.
func (h HttpRouter) formLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		Storage:    h.cfg.LimiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests. Please try again in a minute.")
		},
	})
}
