package repository

import (
	"github.com/mkobayashi/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create stores a submitted contact message
func (r *GormContactRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}
