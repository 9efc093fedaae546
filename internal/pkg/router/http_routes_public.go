package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vaishalishah/portfolio/app/controllers"
	"github.com/vaishalishah/portfolio/internal/pkg/constants"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get(constants.BlogRoute, controllers.HandleBlogIndex)
	app.Get(constants.BlogRoute+"/:id", controllers.HandleBlogShow)
}
