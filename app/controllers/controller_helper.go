package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sujit-baniya/flash"

	"github.com/vaishalishah/portfolio/internal/pkg/usercontext"
	"github.com/vaishalishah/portfolio/internal/pkg/viewmodel"
	"github.com/vaishalishah/portfolio/views"
)

// CSRF_CONTEXT_KEY is where the csrf middleware leaves the form token.
const CSRF_CONTEXT_KEY = "csrf"

func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(CSRF_CONTEXT_KEY).(string); ok {
		return token
	}
	return ""
}

func layoutData(c *fiber.Ctx, page string, og *viewmodel.OpenGraph) viewmodel.Layout {
	userCtx := usercontext.GetUserContext(c)
	avatar := ""
	if userCtx.IsLoggedIn {
		avatar = viewmodel.AvatarURL(userCtx.Email)
	}
	return viewmodel.Layout{
		Page:          page,
		FromProtected: userCtx.IsLoggedIn,
		IsAdmin:       userCtx.IsAdmin,
		Email:         userCtx.Email,
		AvatarURL:     avatar,
		Msg:           flash.Get(c),
		CSRFToken:     csrfToken(c),
		OGViewModel:   og,
	}
}

// render wraps the page template into the main layout.
func render(c *fiber.Ctx, name, page string, data fiber.Map) error {
	return renderOG(c, name, page, nil, data)
}

func renderOG(c *fiber.Ctx, name, page string, og *viewmodel.OpenGraph, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = layoutData(c, page, og)
	return c.Render(name, data, views.Layout)
}

// parseID reads the :id route parameter. Malformed ids are reported as 404.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// ErrorHandler renders the error pages for handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	template := "errors/500"
	page := " | Error"
	switch code {
	case fiber.StatusNotFound:
		template, page = "errors/404", " | Not found"
	case fiber.StatusForbidden:
		template, page = "errors/403", " | Access denied"
	default:
		if code >= fiber.StatusInternalServerError {
			log.Errorf("Error handling %s %s: %v", c.Method(), c.Path(), err)
		}
	}

	c.Status(code)
	if rerr := render(c, template, page, nil); rerr != nil {
		log.Errorf("Error rendering %s: %v", template, rerr)
		return c.Status(code).SendString(utils.StatusMessage(code))
	}
	return nil
}
