package repository

import (
	"github.com/mkobayashi/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID; soft-deleted rows are excluded unless
// includeDeleted is set.
func (r *GormProjectRepository) FindByID(id uint64, includeDeleted bool) (*models.Project, error) {
	var project models.Project
	query := r.db
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects, newest first
func (r *GormProjectRepository) List(includeDeleted bool) ([]models.Project, error) {
	var projects []models.Project
	query := r.db.Order("created_at DESC")
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Save persists changes to an existing project
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}
