package repository

import (
	"github.com/mkobayashi/portfolio-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (stored lowercased)
	FindByEmail(email string) (*models.User, error)
}

// ProjectRepository defines the interface for project data access.
//
// Reads take an explicit includeDeleted flag so the soft-delete filter is
// visible at every call site; normal callers pass false.
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64, includeDeleted bool) (*models.Project, error)

	// List retrieves projects, newest first
	List(includeDeleted bool) ([]models.Project, error)

	// Save persists changes to an existing project
	Save(project *models.Project) error
}

// ExperienceRepository defines the interface for experience data access
type ExperienceRepository interface {
	// Create creates a new experience entry
	Create(experience *models.Experience) error

	// FindByID finds an experience entry by ID
	FindByID(id uint64) (*models.Experience, error)

	// List retrieves experience entries, most recent start date first
	List() ([]models.Experience, error)

	// Save persists changes to an existing experience entry
	Save(experience *models.Experience) error

	// Delete removes an experience entry
	Delete(id uint64) error
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	// Create creates a new skill
	Create(skill *models.Skill) error

	// FindByID finds a skill by ID
	FindByID(id uint64) (*models.Skill, error)

	// FindByName finds a skill by name, case-insensitively
	FindByName(name string) (*models.Skill, error)

	// List retrieves skills sorted by category, then name
	List() ([]models.Skill, error)

	// Save persists changes to an existing skill
	Save(skill *models.Skill) error

	// Delete removes a skill
	Delete(id uint64) error
}

// ContactRepository defines the interface for contact-message data access
type ContactRepository interface {
	// Create stores a submitted contact message
	Create(message *models.ContactMessage) error
}
