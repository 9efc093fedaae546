package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/vaishalishah/portfolio/internal/pkg/blog"
	"github.com/vaishalishah/portfolio/internal/pkg/viewmodel"
)

// BlogController serves the public blog pages
type BlogController struct {
	blog *blog.Service
}

func NewBlogController(svc *blog.Service) *BlogController {
	return &BlogController{blog: svc}
}

// HandleIndex renders one page of published posts
func (bc *BlogController) HandleIndex(c *fiber.Ctx) error {
	result, err := bc.blog.List(blog.ListQuery{
		Page:     c.QueryInt("page", 1),
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		return err
	}

	return renderOG(c, "blog/index", " | Blog", &viewmodel.OpenGraph{
		Title:       "Blog - Vaishali Shah",
		Description: "Articles by Vaishali Shah",
		URL:         "/blog",
	}, fiber.Map{
		"Result": result,
	})
}

// HandleShow renders a published post and counts the view
func (bc *BlogController) HandleShow(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := bc.blog.Detail(id)
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return renderOG(c, "blog/show", " | "+detail.Post.Title, &viewmodel.OpenGraph{
		Title:       detail.Post.Title,
		Description: detail.Post.Summary,
		Image:       detail.Post.FeaturedImageURL,
		URL:         fmt.Sprintf("/blog/%d", detail.Post.ID),
	}, fiber.Map{
		"Detail": detail,
	})
}
