package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vaishalishah/portfolio/app/controllers"
	"github.com/vaishalishah/portfolio/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)
	adminGroup.Get("/dashboard", controllers.HandleAdminDashboard)

	// Blog management
	adminGroup.Get("/blog", controllers.HandleAdminBlog)
	adminGroup.Post("/blog", controllers.HandleAdminBlogCreate)
	adminGroup.Get("/blog/create", controllers.HandleAdminBlogCreateForm)
	adminGroup.Post("/blog/create", controllers.HandleAdminBlogCreate)
	adminGroup.Get("/blog/edit/:id", controllers.HandleAdminBlogEditForm)
	adminGroup.Post("/blog/edit/:id", controllers.HandleAdminBlogEdit)
	adminGroup.Get("/blog/delete/:id", controllers.HandleAdminBlogDeleteConfirm)
	adminGroup.Post("/blog/delete/:id", controllers.HandleAdminBlogDelete)
}
