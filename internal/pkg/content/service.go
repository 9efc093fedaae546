// Package content implements the back office operations on blog posts.
// Author and creation fields are assigned here and never taken from input.
package content

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/vaishalishah/portfolio/app/models"
	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/constants"
	"github.com/vaishalishah/portfolio/internal/pkg/notice"
	"github.com/vaishalishah/portfolio/internal/pkg/usercontext"
	"github.com/vaishalishah/portfolio/internal/pkg/validation"
)

const (
	ListURL           = constants.AdminBlogRoute
	DefaultAuthorName = "Vaishali Shah"
	DashboardRecent   = 5
)

var (
	ErrNotFound        = errors.New("blog post not found")
	ErrUnauthenticated = errors.New("user not authenticated")
)

const (
	msgCreated         = "Blog post created successfully!"
	msgUpdated         = "Blog post updated successfully!"
	msgDeleted         = "Blog post deleted successfully!"
	msgCreateFailed    = "An error occurred while creating the blog post."
	msgUpdateFailed    = "An error occurred while updating the blog post."
	msgDeleteFailed    = "An error occurred while deleting the blog post."
	msgUnauthenticated = "User not found. Please log in again."
)

// PostInput holds the fields an admin may set on a post.
type PostInput struct {
	Title            string `form:"title" label:"Title" validate:"required,notblank,max=200"`
	Content          string `form:"content" label:"Content" validate:"required,notblank"`
	Summary          string `form:"summary" label:"Summary" validate:"max=500"`
	FeaturedImageURL string `form:"featured_image_url" label:"Featured image URL" validate:"max=255"`
	Category         string `form:"category" label:"Category" validate:"max=100"`
	Tags             string `form:"tags" label:"Tags" validate:"max=500"`
	IsPublished      bool   `form:"is_published"`
}

// Normalize trims surrounding whitespace from every text field.
func (in *PostInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.Summary = strings.TrimSpace(in.Summary)
	in.FeaturedImageURL = strings.TrimSpace(in.FeaturedImageURL)
	in.Category = strings.TrimSpace(in.Category)
	in.Tags = strings.TrimSpace(in.Tags)
}

func (in PostInput) apply(post *models.BlogPost) {
	post.Title = in.Title
	post.Content = in.Content
	post.Summary = in.Summary
	post.FeaturedImageURL = in.FeaturedImageURL
	post.Category = in.Category
	post.Tags = in.Tags
	post.IsPublished = in.IsPublished
}

// InputFromPost prefills an edit form.
func InputFromPost(post *models.BlogPost) EditInput {
	return EditInput{
		ID: post.ID,
		PostInput: PostInput{
			Title:            post.Title,
			Content:          post.Content,
			Summary:          post.Summary,
			FeaturedImageURL: post.FeaturedImageURL,
			Category:         post.Category,
			Tags:             post.Tags,
			IsPublished:      post.IsPublished,
		},
	}
}

// EditInput is a PostInput bound to the post it edits.
type EditInput struct {
	ID uint `form:"id"`
	PostInput
}

type DashboardSummary struct {
	TotalPosts      int64
	PublishedPosts  int64
	TotalViews      int64
	TotalInquiries  int64
	RecentPosts     []models.BlogPost
	RecentInquiries []models.ContactInquiry
}

// CategoryInvalidator drops cached category lists after writes.
type CategoryInvalidator interface {
	InvalidateCategories()
}

type Service struct {
	posts      repository.BlogPostRepository
	inquiries  repository.ContactInquiryRepository
	categories CategoryInvalidator
	now        func() time.Time
}

// NewService builds the service. categories may be nil.
func NewService(posts repository.BlogPostRepository, inquiries repository.ContactInquiryRepository, categories CategoryInvalidator) *Service {
	return &Service{
		posts:      posts,
		inquiries:  inquiries,
		categories: categories,
		now:        time.Now,
	}
}

// List returns every post, drafts included, newest first.
func (s *Service) List() ([]models.BlogPost, error) {
	posts, err := s.posts.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}

// Get loads a post for the edit and delete screens.
func (s *Service) Get(id uint) (*models.BlogPost, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load blog post %d: %w", id, err)
	}
	return post, nil
}

// Create stores a new post authored by principal.
func (s *Service) Create(principal *usercontext.Principal, in PostInput) (notice.Outcome[PostInput], error) {
	in.Normalize()

	if principal == nil || principal.ID == "" {
		return notice.Redisplay(in, validation.Form(msgUnauthenticated)), ErrUnauthenticated
	}

	if errs := validation.Struct(in); errs != nil {
		return notice.Redisplay(in, errs), nil
	}

	authorName := strings.TrimSpace(principal.Email)
	if authorName == "" {
		authorName = DefaultAuthorName
	}

	post := &models.BlogPost{
		AuthorID:    principal.ID,
		AuthorName:  authorName,
		CreatedDate: s.now(),
	}
	in.apply(post)

	if err := s.posts.Create(post); err != nil {
		log.Errorf("Error creating blog post %q: %v", in.Title, err)
		return notice.Redisplay(in, validation.Form(msgCreateFailed)), nil
	}

	s.invalidate()
	log.Infof("Blog post created: %s by %s", post.Title, post.AuthorName)
	return notice.Redirect[PostInput](ListURL, notice.Success(msgCreated)), nil
}

// Update copies the editable fields onto the stored post.
func (s *Service) Update(pathID uint, in EditInput) (notice.Outcome[EditInput], error) {
	if pathID != in.ID {
		return notice.Outcome[EditInput]{}, ErrNotFound
	}
	in.Normalize()

	if errs := validation.Struct(in.PostInput); errs != nil {
		return notice.Redisplay(in, errs), nil
	}

	post, err := s.Get(pathID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notice.Outcome[EditInput]{}, ErrNotFound
		}
		log.Errorf("Error loading blog post %d for update: %v", pathID, err)
		return notice.Redisplay(in, validation.Form(msgUpdateFailed)), nil
	}

	in.PostInput.apply(post)
	updated := s.now()
	post.UpdatedDate = &updated

	if err := s.posts.UpdateContent(post); err != nil {
		log.Errorf("Error updating blog post %d: %v", pathID, err)
		return notice.Redisplay(in, validation.Form(msgUpdateFailed)), nil
	}

	s.invalidate()
	log.Infof("Blog post updated: %s", post.Title)
	return notice.Redirect[EditInput](ListURL, notice.Success(msgUpdated)), nil
}

// Delete removes a post. A missing id is not an error.
func (s *Service) Delete(id uint) notice.Outcome[struct{}] {
	post, err := s.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notice.Redirect[struct{}](ListURL, nil)
		}
		log.Errorf("Error loading blog post %d for delete: %v", id, err)
		return notice.Redirect[struct{}](ListURL, notice.Error(msgDeleteFailed))
	}

	if err := s.posts.Delete(post.ID); err != nil {
		log.Errorf("Error deleting blog post %d: %v", id, err)
		return notice.Redirect[struct{}](ListURL, notice.Error(msgDeleteFailed))
	}

	s.invalidate()
	log.Infof("Blog post deleted: %s", post.Title)
	return notice.Redirect[struct{}](ListURL, notice.Success(msgDeleted))
}

// Dashboard collects the back office summary figures.
func (s *Service) Dashboard() (*DashboardSummary, error) {
	var (
		summary DashboardSummary
		err     error
	)

	if summary.TotalPosts, err = s.posts.Count(); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if summary.PublishedPosts, err = s.posts.CountPublished(repository.BlogPostFilter{}); err != nil {
		return nil, fmt.Errorf("count published posts: %w", err)
	}
	if summary.TotalViews, err = s.posts.SumViewCount(); err != nil {
		return nil, fmt.Errorf("sum views: %w", err)
	}
	if summary.TotalInquiries, err = s.inquiries.Count(); err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}
	if summary.RecentPosts, err = s.posts.GetRecent(DashboardRecent); err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	if summary.RecentInquiries, err = s.inquiries.GetRecent(DashboardRecent); err != nil {
		return nil, fmt.Errorf("recent inquiries: %w", err)
	}

	return &summary, nil
}

func (s *Service) invalidate() {
	if s.categories != nil {
		s.categories.InvalidateCategories()
	}
}
