package repository

import (
	"fmt"
	"strings"

	"github.com/vaishalishah/portfolio/app/models"
	"gorm.io/gorm"
)

// Columns an admin edit may write. Author fields, created date and the view
// counter are never part of an edit.
var editableBlogPostColumns = []string{
	"title",
	"content",
	"summary",
	"featured_image_url",
	"category",
	"tags",
	"is_published",
	"updated_date",
}

// likeEscaper escapes LIKE wildcards with '!', which MySQL and SQLite both
// accept as an ESCAPE character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// blogPostRepository implements the BlogPostRepository interface
type blogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new blog post repository instance
func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

// newestFirst applies the listing order shared by every post query.
// Rows created in the same instant fall back to identity order.
func newestFirst(q *gorm.DB) *gorm.DB {
	return q.Order("created_date DESC").Order("id DESC")
}

func (r *blogPostRepository) published(filter BlogPostFilter) *gorm.DB {
	q := r.db.Model(&models.BlogPost{}).Where("is_published = ?", true)

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		q = q.Where(
			"(title LIKE ? ESCAPE '!' OR content LIKE ? ESCAPE '!' OR summary LIKE ? ESCAPE '!')",
			pattern, pattern, pattern,
		)
	}

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	return q
}

// Create inserts a new blog post
func (r *blogPostRepository) Create(post *models.BlogPost) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create blog post: %w", err)
	}
	return nil
}

// GetByID retrieves a blog post by its ID regardless of its published state
func (r *blogPostRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublishedByID retrieves a blog post only when it is published
func (r *blogPostRepository) GetPublishedByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("id = ? AND is_published = ?", id, true).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPublished retrieves one page of published posts matching the filter
func (r *blogPostRepository) FindPublished(filter BlogPostFilter, offset, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := newestFirst(r.published(filter)).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountPublished counts published posts matching the filter
func (r *blogPostRepository) CountPublished(filter BlogPostFilter) (int64, error) {
	var count int64
	err := r.published(filter).Count(&count).Error
	return count, err
}

// PublishedCategories returns the distinct non-empty categories of all published posts
func (r *blogPostRepository) PublishedCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.BlogPost{}).
		Where("is_published = ?", true).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// FindRelated returns other published posts that share the post's category or
// whose tag string contains the post's whole tag string. Posts without a
// category share the empty category.
func (r *blogPostRepository) FindRelated(post *models.BlogPost, limit int) ([]models.BlogPost, error) {
	conditions := []string{"(category IS NULL OR category = '')"}
	var args []interface{}

	if post.Category != "" {
		conditions[0] = "category = ?"
		args = append(args, post.Category)
	}
	if post.Tags != "" {
		conditions = append(conditions, "(tags IS NOT NULL AND tags LIKE ? ESCAPE '!')")
		args = append(args, containsPattern(post.Tags))
	}

	var related []models.BlogPost
	err := newestFirst(
		r.db.Where("id <> ? AND is_published = ?", post.ID, true).
			Where("("+strings.Join(conditions, " OR ")+")", args...),
	).Limit(limit).Find(&related).Error
	return related, err
}

// IncrementViewCount adds one view in a single UPDATE so concurrent readers do not lose increments
func (r *blogPostRepository) IncrementViewCount(id uint) error {
	result := r.db.Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("increment view count of post %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetAll retrieves every blog post, newest first
func (r *blogPostRepository) GetAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := newestFirst(r.db).Find(&posts).Error
	return posts, err
}

// GetRecent retrieves the newest posts regardless of published state
func (r *blogPostRepository) GetRecent(limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := newestFirst(r.db).Limit(limit).Find(&posts).Error
	return posts, err
}

// UpdateContent persists the admin-editable columns of an existing post
func (r *blogPostRepository) UpdateContent(post *models.BlogPost) error {
	result := r.db.Model(post).Select(editableBlogPostColumns).Updates(post)
	if result.Error != nil {
		return fmt.Errorf("update blog post %d: %w", post.ID, result.Error)
	}
	return nil
}

// Delete permanently removes a blog post by its ID
func (r *blogPostRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.BlogPost{}, id).Error; err != nil {
		return fmt.Errorf("delete blog post %d: %w", id, err)
	}
	return nil
}

// Count returns the total number of blog posts
func (r *blogPostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Count(&count).Error
	return count, err
}

// SumViewCount returns the sum of view counts across all posts
func (r *blogPostRepository) SumViewCount() (int64, error) {
	var total int64
	err := r.db.Model(&models.BlogPost{}).Select("COALESCE(SUM(view_count), 0)").Scan(&total).Error
	return total, err
}
