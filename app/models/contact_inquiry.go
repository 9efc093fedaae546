package models

import "time"

// ContactInquiry is a visitor message from the public contact form.
// Rows are immutable once written.
type ContactInquiry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	PhoneNumber string    `gorm:"type:varchar(15);not null" json:"phone_number"`
	Message     string    `gorm:"type:varchar(500);not null" json:"message"`
	CreatedDate time.Time `gorm:"not null;index" json:"created_date"`
}

// TableName specifies the table name for the ContactInquiry model
func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}
