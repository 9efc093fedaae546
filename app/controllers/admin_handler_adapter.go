package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/blog"
	"github.com/vaishalishah/portfolio/internal/pkg/contact"
	"github.com/vaishalishah/portfolio/internal/pkg/content"
)

// Dependencies are the collaborators shared by all controllers.
// Categories, Captcha and Notifier may be nil.
type Dependencies struct {
	Factory        *repository.Factory
	Categories     blog.CategoryCache
	Captcha        contact.Verifier
	CaptchaSiteKey string
	Notifier       contact.Notifier
}

// Global controller instances used by the router adapters
var (
	homeController      *HomeController
	blogController      *BlogController
	authController      *AuthController
	adminController     *AdminController
	adminBlogController *AdminBlogController
)

// InitializeControllers wires every controller to its service
func InitializeControllers(deps Dependencies) {
	var categories content.CategoryInvalidator
	if deps.Categories != nil {
		categories = deps.Categories
	}

	posts := deps.Factory.GetBlogPostRepository()
	inquiries := deps.Factory.GetContactInquiryRepository()

	contentService := content.NewService(posts, inquiries, categories)

	contactService := contact.NewService(inquiries, deps.Captcha)
	if deps.Notifier != nil {
		contactService.WithNotifier(deps.Notifier)
	}

	homeController = NewHomeController(contactService, deps.CaptchaSiteKey)
	blogController = NewBlogController(blog.NewService(posts, deps.Categories))
	authController = NewAuthController(deps.Factory.GetUserRepository())
	adminController = NewAdminController(contentService)
	adminBlogController = NewAdminBlogController(contentService)
}

// Adapter functions used by the router

func HandleHome(c *fiber.Ctx) error    { return homeController.HandleIndex(c) }
func HandleContact(c *fiber.Ctx) error { return homeController.HandleContact(c) }

func HandleBlogIndex(c *fiber.Ctx) error { return blogController.HandleIndex(c) }
func HandleBlogShow(c *fiber.Ctx) error  { return blogController.HandleShow(c) }

func HandleAuthLoginForm(c *fiber.Ctx) error { return authController.HandleLoginForm(c) }
func HandleAuthLogin(c *fiber.Ctx) error     { return authController.HandleLogin(c) }
func HandleAuthLogout(c *fiber.Ctx) error    { return authController.HandleLogout(c) }

func HandleAdminDashboard(c *fiber.Ctx) error { return adminController.HandleDashboard(c) }

func HandleAdminBlog(c *fiber.Ctx) error              { return adminBlogController.HandleList(c) }
func HandleAdminBlogCreateForm(c *fiber.Ctx) error    { return adminBlogController.HandleCreateForm(c) }
func HandleAdminBlogCreate(c *fiber.Ctx) error        { return adminBlogController.HandleCreate(c) }
func HandleAdminBlogEditForm(c *fiber.Ctx) error      { return adminBlogController.HandleEditForm(c) }
func HandleAdminBlogEdit(c *fiber.Ctx) error          { return adminBlogController.HandleEdit(c) }
func HandleAdminBlogDeleteConfirm(c *fiber.Ctx) error { return adminBlogController.HandleDeleteConfirm(c) }
func HandleAdminBlogDelete(c *fiber.Ctx) error        { return adminBlogController.HandleDelete(c) }
