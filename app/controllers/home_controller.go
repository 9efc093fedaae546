package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/vaishalishah/portfolio/internal/pkg/contact"
	"github.com/vaishalishah/portfolio/internal/pkg/notice"
	"github.com/vaishalishah/portfolio/internal/pkg/validation"
)

// HomeController serves the landing page and its contact form
type HomeController struct {
	contact        *contact.Service
	captchaSiteKey string
}

func NewHomeController(svc *contact.Service, captchaSiteKey string) *HomeController {
	return &HomeController{contact: svc, captchaSiteKey: captchaSiteKey}
}

func (hc *HomeController) renderForm(c *fiber.Ctx, in contact.ContactInput, errs validation.Errors) error {
	return render(c, "home/index", "", fiber.Map{
		"Input":          in,
		"Errors":         errs,
		"CaptchaSiteKey": hc.captchaSiteKey,
	})
}

// HandleIndex renders the home page with an empty contact form
func (hc *HomeController) HandleIndex(c *fiber.Ctx) error {
	return hc.renderForm(c, contact.ContactInput{}, nil)
}

// HandleContact stores a contact inquiry
func (hc *HomeController) HandleContact(c *fiber.Ctx) error {
	var in contact.ContactInput
	if err := c.BodyParser(&in); err != nil {
		log.Warnf("Error parsing contact form: %v", err)
		c.Status(fiber.StatusBadRequest)
		return hc.renderForm(c, in, validation.Form("Invalid form submission."))
	}

	out := hc.contact.Submit(in)
	if out.IsRedirect() {
		return notice.Send(c, out.RedirectTo, out.Notice)
	}

	c.Status(fiber.StatusUnprocessableEntity)
	return hc.renderForm(c, out.Input, out.Errors)
}
