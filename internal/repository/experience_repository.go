package repository

import (
	"github.com/mkobayashi/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormExperienceRepository is a GORM implementation of ExperienceRepository
type GormExperienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &GormExperienceRepository{db: db}
}

// Create creates a new experience entry
func (r *GormExperienceRepository) Create(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// FindByID finds an experience entry by ID
func (r *GormExperienceRepository) FindByID(id uint64) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.First(&experience, id).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

// List retrieves experience entries, most recent start date first
func (r *GormExperienceRepository) List() ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.Order("start_date DESC").Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// Save persists changes to an existing experience entry
func (r *GormExperienceRepository) Save(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// Delete removes an experience entry
func (r *GormExperienceRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Experience{}, id).Error
}
