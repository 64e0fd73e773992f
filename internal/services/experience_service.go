package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrExperienceNotFound      = errors.New("experience not found")
	ErrMissingExperienceFields = errors.New("title, company, start date and description are required")
)

// descriptionSeparator joins bullet points into the text column.
const descriptionSeparator = "\n"

// ExperienceService handles work-history business logic.
type ExperienceService struct {
	experienceRepo repository.ExperienceRepository
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(experienceRepo repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo}
}

// CreateExperienceInput represents input for creating an experience entry
type CreateExperienceInput struct {
	Title       string
	Company     string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	IsCurrent   bool
	Description []string
}

// Create validates and stores a new experience entry. A current position
// never carries an end date.
func (s *ExperienceService) Create(input CreateExperienceInput) (*models.Experience, error) {
	if input.Title == "" || input.Company == "" || input.StartDate.IsZero() || len(input.Description) == 0 {
		return nil, ErrMissingExperienceFields
	}

	endDate := input.EndDate
	if input.IsCurrent {
		endDate = nil
	}

	experience := &models.Experience{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     endDate,
		IsCurrent:   input.IsCurrent,
		Description: joinBullets(input.Description),
	}

	if err := s.experienceRepo.Create(experience); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}

	return experience, nil
}

// UpdateExperienceInput represents input for updating an experience entry.
// Nil fields keep their prior values.
type UpdateExperienceInput struct {
	Title       *string
	Company     *string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsCurrent   *bool
	Description []string
}

// Update applies a partial update. Setting IsCurrent clears the end date.
func (s *ExperienceService) Update(id uint64, input UpdateExperienceInput) (*models.Experience, error) {
	experience, err := s.experienceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to find experience: %w", err)
	}

	if input.Title != nil && *input.Title != "" {
		experience.Title = *input.Title
	}
	if input.Company != nil && *input.Company != "" {
		experience.Company = *input.Company
	}
	if input.Location != nil {
		experience.Location = *input.Location
	}
	if input.StartDate != nil {
		experience.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		experience.EndDate = input.EndDate
	}
	if input.IsCurrent != nil {
		experience.IsCurrent = *input.IsCurrent
		if *input.IsCurrent {
			experience.EndDate = nil
		}
	}
	if input.Description != nil {
		experience.Description = joinBullets(input.Description)
	}

	if err := s.experienceRepo.Save(experience); err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}

	return experience, nil
}

// Delete removes an experience entry permanently.
func (s *ExperienceService) Delete(id uint64) (*models.Experience, error) {
	experience, err := s.experienceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("failed to find experience: %w", err)
	}

	if err := s.experienceRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete experience: %w", err)
	}

	return experience, nil
}

// List returns all experience entries, most recent start date first.
func (s *ExperienceService) List() ([]models.Experience, error) {
	experiences, err := s.experienceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return experiences, nil
}

func joinBullets(bullets []string) string {
	return strings.Join(bullets, descriptionSeparator)
}
