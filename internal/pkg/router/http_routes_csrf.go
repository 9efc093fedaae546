package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/vaishalishah/portfolio/app/controllers"
	"github.com/vaishalishah/portfolio/internal/pkg/constants"
	"github.com/vaishalishah/portfolio/internal/pkg/env"
	"github.com/vaishalishah/portfolio/internal/pkg/middleware"
)

func (h HttpRouter) csrfMiddleware() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     controllers.CSRF_CONTEXT_KEY,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	})
}

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	app.Get(constants.HomeRoute, controllers.HandleHome)
	app.Post(constants.HomeRoute, h.formLimiter(), controllers.HandleContact)
	app.Get(constants.LoginRoute, controllers.HandleAuthLoginForm)
	app.Post(constants.LoginRoute, h.formLimiter(), controllers.HandleAuthLogin)
	app.Post(constants.LogoutRoute, middleware.RequireAuth, controllers.HandleAuthLogout)
}
