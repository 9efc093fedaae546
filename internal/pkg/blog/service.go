// Package blog serves the public blog: filtered pages of published posts,
// post details with related posts, and view counting.
package blog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/vaishalishah/portfolio/app/models"
	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/pagination"
)

const (
	PageSize        = 5
	MaxRelatedPosts = 3
)

// ErrNotFound is returned for ids that do not exist or are not published.
var ErrNotFound = errors.New("blog post not found")

// CategoryCache stores the category list shown in the filter selector.
type CategoryCache interface {
	GetCategories() ([]string, bool)
	SetCategories(categories []string)
	InvalidateCategories()
}

type ListQuery struct {
	Page     int
	Search   string
	Category string
}

type ListResult struct {
	Posts           []models.BlogPost
	CurrentPage     int
	TotalPages      int
	TotalPosts      int64
	HasPreviousPage bool
	HasNextPage     bool
	Categories      []string
	Search          string
	Category        string
}

type DetailResult struct {
	Post    *models.BlogPost
	Related []models.BlogPost
}

type Service struct {
	posts      repository.BlogPostRepository
	categories CategoryCache
}

// NewService builds the service. cache may be nil.
func NewService(posts repository.BlogPostRepository, cache CategoryCache) *Service {
	return &Service{posts: posts, categories: cache}
}

// List returns one page of published posts matching the query.
func (s *Service) List(q ListQuery) (*ListResult, error) {
	filter := repository.BlogPostFilter{
		Search:   strings.TrimSpace(q.Search),
		Category: strings.TrimSpace(q.Category),
	}
	page := pagination.New(q.Page, PageSize)

	total, err := s.posts.CountPublished(filter)
	if err != nil {
		return nil, fmt.Errorf("count published posts: %w", err)
	}
	page.SetNumItems(total)

	posts := []models.BlogPost{}
	if !page.PastEnd() {
		posts, err = s.posts.FindPublished(filter, page.Offset(), page.Size)
		if err != nil {
			return nil, fmt.Errorf("find published posts: %w", err)
		}
	}

	categories, err := s.Categories()
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Posts:           posts,
		CurrentPage:     page.Number,
		TotalPages:      page.TotalPages(),
		TotalPosts:      total,
		HasPreviousPage: page.HasPrevious(),
		HasNextPage:     page.HasNext(),
		Categories:      categories,
		Search:          filter.Search,
		Category:        filter.Category,
	}, nil
}

// Categories returns the distinct categories of all published posts.
func (s *Service) Categories() ([]string, error) {
	if s.categories != nil {
		if cached, ok := s.categories.GetCategories(); ok {
			return cached, nil
		}
	}

	categories, err := s.posts.PublishedCategories()
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	if s.categories != nil {
		s.categories.SetCategories(categories)
	}
	return categories, nil
}

// Detail loads a published post, counts the view and selects related posts.
// Every call counts one view.
func (s *Service) Detail(id uint) (*DetailResult, error) {
	post, err := s.posts.GetPublishedByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load post %d: %w", id, err)
	}

	if err := s.posts.IncrementViewCount(post.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post.ViewCount++

	related, err := s.posts.FindRelated(post, MaxRelatedPosts)
	if err != nil {
		log.Errorf("Error loading related posts for %d: %v", post.ID, err)
		related = []models.BlogPost{}
	}

	return &DetailResult{Post: post, Related: related}, nil
}
