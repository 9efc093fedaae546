package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vaishalishah/portfolio/internal/pkg/content"
)

// AdminController renders the back office dashboard
type AdminController struct {
	content *content.Service
}

func NewAdminController(svc *content.Service) *AdminController {
	return &AdminController{content: svc}
}

// HandleDashboard renders the summary figures and recent activity
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	summary, err := ac.content.Dashboard()
	if err != nil {
		return err
	}

	return render(c, "admin/dashboard", " | Dashboard", fiber.Map{
		"Summary": summary,
	})
}
