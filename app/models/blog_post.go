package models

import (
	"time"
)

// BlogPost represents a published or draft article.
// AuthorID, AuthorName and CreatedDate are owned by the server and are
// never bound from a request.
type BlogPost struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"type:varchar(200);not null" json:"title"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	Summary          string     `gorm:"type:varchar(500)" json:"summary"`
	FeaturedImageURL string     `gorm:"column:featured_image_url;type:varchar(255)" json:"featured_image_url"`
	AuthorID         string     `gorm:"type:varchar(36);not null;index" json:"author_id"`
	AuthorName       string     `gorm:"type:varchar(100);not null" json:"author_name"`
	CreatedDate      time.Time  `gorm:"not null;index" json:"created_date"`
	UpdatedDate      *time.Time `json:"updated_date"`
	IsPublished      bool       `gorm:"not null;index" json:"is_published"`
	Category         string     `gorm:"type:varchar(100);index" json:"category"`
	Tags             string     `gorm:"type:varchar(500)" json:"tags"`
	ViewCount        int        `gorm:"not null;default:0" json:"view_count"`
}

// TableName specifies the table name for the BlogPost model
func (BlogPost) TableName() string {
	return "blog_posts"
}

// TagList splits the stored tag string for display only. Matching between
// posts always uses the raw string.
func (p BlogPost) TagList() []string {
	return SplitTags(p.Tags)
}
