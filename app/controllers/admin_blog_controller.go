package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/vaishalishah/portfolio/internal/pkg/constants"
	"github.com/vaishalishah/portfolio/internal/pkg/content"
	"github.com/vaishalishah/portfolio/internal/pkg/notice"
	"github.com/vaishalishah/portfolio/internal/pkg/usercontext"
	"github.com/vaishalishah/portfolio/internal/pkg/validation"
)

const invalidFormMessage = "Invalid form submission."

// AdminBlogController handles the back office post management
type AdminBlogController struct {
	content *content.Service
}

func NewAdminBlogController(svc *content.Service) *AdminBlogController {
	return &AdminBlogController{content: svc}
}

type postForm struct {
	ID     uint
	IsEdit bool
	Input  content.PostInput
	Errors validation.Errors
}

func (abc *AdminBlogController) renderForm(c *fiber.Ctx, form postForm) error {
	page := " | New post"
	action := constants.AdminBlogRoute + "/create"
	if form.IsEdit {
		page = " | Edit post"
		action = fmt.Sprintf("%s/edit/%d", constants.AdminBlogRoute, form.ID)
	}
	return render(c, "admin/blog_form", page, fiber.Map{
		"ID":     form.ID,
		"IsEdit": form.IsEdit,
		"Action": action,
		"Input":  form.Input,
		"Errors": form.Errors,
	})
}

// HandleList renders all posts including drafts
func (abc *AdminBlogController) HandleList(c *fiber.Ctx) error {
	posts, err := abc.content.List()
	if err != nil {
		return err
	}
	return render(c, "admin/blog", " | Manage posts", fiber.Map{
		"Posts": posts,
	})
}

// HandleCreateForm renders an empty post form
func (abc *AdminBlogController) HandleCreateForm(c *fiber.Ctx) error {
	return abc.renderForm(c, postForm{Input: content.PostInput{IsPublished: true}})
}

// HandleCreate stores a new post
func (abc *AdminBlogController) HandleCreate(c *fiber.Ctx) error {
	var in content.PostInput
	if err := c.BodyParser(&in); err != nil {
		log.Warnf("Error parsing post form: %v", err)
		c.Status(fiber.StatusBadRequest)
		return abc.renderForm(c, postForm{Input: in, Errors: validation.Form(invalidFormMessage)})
	}

	out, err := abc.content.Create(usercontext.CurrentPrincipal(c), in)
	switch {
	case errors.Is(err, content.ErrUnauthenticated):
		c.Status(fiber.StatusUnauthorized)
	case err != nil:
		return err
	case out.IsRedirect():
		return notice.Send(c, out.RedirectTo, out.Notice)
	default:
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return abc.renderForm(c, postForm{Input: out.Input, Errors: out.Errors})
}

// HandleEditForm renders the form prefilled with the stored post
func (abc *AdminBlogController) HandleEditForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	post, err := abc.content.Get(id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	in := content.InputFromPost(post)
	return abc.renderForm(c, postForm{ID: in.ID, IsEdit: true, Input: in.PostInput})
}

// HandleEdit applies an edit to a stored post
func (abc *AdminBlogController) HandleEdit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in content.EditInput
	if err := c.BodyParser(&in.PostInput); err != nil {
		log.Warnf("Error parsing post form: %v", err)
		c.Status(fiber.StatusBadRequest)
		return abc.renderForm(c, postForm{ID: id, IsEdit: true, Input: in.PostInput, Errors: validation.Form(invalidFormMessage)})
	}
	if formID, err := strconv.ParseUint(c.FormValue("id"), 10, 64); err == nil {
		in.ID = uint(formID)
	}

	out, err := abc.content.Update(id, in)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	if out.IsRedirect() {
		return notice.Send(c, out.RedirectTo, out.Notice)
	}

	c.Status(fiber.StatusUnprocessableEntity)
	return abc.renderForm(c, postForm{ID: id, IsEdit: true, Input: out.Input.PostInput, Errors: out.Errors})
}

// HandleDeleteConfirm asks for confirmation before deleting
func (abc *AdminBlogController) HandleDeleteConfirm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	post, err := abc.content.Get(id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return render(c, "admin/blog_delete", " | Delete post", fiber.Map{
		"Post": post,
	})
}

// HandleDelete removes a post and returns to the listing
func (abc *AdminBlogController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(content.ListURL, fiber.StatusSeeOther)
	}

	out := abc.content.Delete(id)
	return notice.Send(c, out.RedirectTo, out.Notice)
}
