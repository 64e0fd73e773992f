package repository

import (
	"github.com/mkobayashi/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// Create creates a new skill
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// FindByID finds a skill by ID
func (r *GormSkillRepository) FindByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByName finds a skill by name, case-insensitively
func (r *GormSkillRepository) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List retrieves skills sorted by category, then name
func (r *GormSkillRepository) List() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("category ASC, name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// Save persists changes to an existing skill
func (r *GormSkillRepository) Save(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill
func (r *GormSkillRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Skill{}, id).Error
}
