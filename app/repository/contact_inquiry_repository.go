package repository

import (
	"fmt"

	"github.com/vaishalishah/portfolio/app/models"
	"gorm.io/gorm"
)

// contactInquiryRepository implements the ContactInquiryRepository interface
type contactInquiryRepository struct {
	db *gorm.DB
}

// NewContactInquiryRepository creates a new contact inquiry repository instance
func NewContactInquiryRepository(db *gorm.DB) ContactInquiryRepository {
	return &contactInquiryRepository{db: db}
}

// Create stores a new inquiry
func (r *contactInquiryRepository) Create(inquiry *models.ContactInquiry) error {
	if err := r.db.Create(inquiry).Error; err != nil {
		return fmt.Errorf("create contact inquiry: %w", err)
	}
	return nil
}

// GetRecent retrieves the newest inquiries
func (r *contactInquiryRepository) GetRecent(limit int) ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	err := r.db.Order("created_date DESC").Order("id DESC").Limit(limit).Find(&inquiries).Error
	return inquiries, err
}

// Count returns the total number of inquiries
func (r *contactInquiryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactInquiry{}).Count(&count).Error
	return count, err
}
