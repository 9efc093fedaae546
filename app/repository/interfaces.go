package repository

import (
	"github.com/vaishalishah/portfolio/app/models"
	"gorm.io/gorm"
)

// BlogPostFilter narrows the published-post queries of the public blog.
// Empty fields do not filter.
type BlogPostFilter struct {
	Search   string
	Category string
}

// BlogPostRepository defines the interface for blog post operations
type BlogPostRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id uint) (*models.BlogPost, error)
	GetPublishedByID(id uint) (*models.BlogPost, error)
	FindPublished(filter BlogPostFilter, offset, limit int) ([]models.BlogPost, error)
	CountPublished(filter BlogPostFilter) (int64, error)
	PublishedCategories() ([]string, error)
	FindRelated(post *models.BlogPost, limit int) ([]models.BlogPost, error)
	IncrementViewCount(id uint) error
	GetAll() ([]models.BlogPost, error)
	GetRecent(limit int) ([]models.BlogPost, error)
	UpdateContent(post *models.BlogPost) error
	Delete(id uint) error
	Count() (int64, error)
	SumViewCount() (int64, error)
}

// ContactInquiryRepository defines the interface for contact inquiry operations
type ContactInquiryRepository interface {
	Create(inquiry *models.ContactInquiry) error
	GetRecent(limit int) ([]models.ContactInquiry, error)
	Count() (int64, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateRole(id string, role string) error
	TouchLastLogin(id string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	BlogPost       BlogPostRepository
	ContactInquiry ContactInquiryRepository
	User           UserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		BlogPost:       NewBlogPostRepository(db),
		ContactInquiry: NewContactInquiryRepository(db),
		User:           NewUserRepository(db),
	}
}
