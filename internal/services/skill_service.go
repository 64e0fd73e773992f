package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSkillAlreadyExists = errors.New("skill already exists")
	ErrMissingSkillFields = errors.New("name and category are required")
)

// SkillService handles skill business logic.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// CreateSkillInput represents input for creating a skill
type CreateSkillInput struct {
	Name     string
	Category string
}

// Create validates and stores a new skill. Names are unique
// case-insensitively.
func (s *SkillService) Create(input CreateSkillInput) (*models.Skill, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" {
		return nil, ErrMissingSkillFields
	}

	if _, err := s.skillRepo.FindByName(name); err == nil {
		return nil, ErrSkillAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check skill name: %w", err)
	}

	skill := &models.Skill{
		Name:     name,
		Category: category,
	}

	if err := s.skillRepo.Create(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

// UpdateSkillInput represents input for updating a skill. Nil fields keep
// their prior values.
type UpdateSkillInput struct {
	Name     *string
	Category *string
}

// Update applies a partial update.
func (s *SkillService) Update(id uint64, input UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	if input.Name != nil && *input.Name != "" {
		skill.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil && *input.Category != "" {
		skill.Category = strings.TrimSpace(*input.Category)
	}

	if err := s.skillRepo.Save(skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}

	return skill, nil
}

// Delete removes a skill permanently.
func (s *SkillService) Delete(id uint64) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	if err := s.skillRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete skill: %w", err)
	}

	return skill, nil
}

// List returns all skills sorted by category, then name.
func (s *SkillService) List() ([]models.Skill, error) {
	skills, err := s.skillRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}
