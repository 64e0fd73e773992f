package dto

import (
	"time"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/utils"
)

// ExperienceDTO represents a work-history entry in API responses.
// Description bullets are exposed as an array.
type ExperienceDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   bool       `json:"is_current"`
	Description []string   `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToExperienceDTO converts an Experience model to ExperienceDTO
func ToExperienceDTO(experience models.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          experience.ID,
		Title:       experience.Title,
		Company:     experience.Company,
		Location:    experience.Location,
		StartDate:   experience.StartDate,
		EndDate:     experience.EndDate,
		IsCurrent:   experience.IsCurrent,
		Description: utils.SplitAndTrim(experience.Description, "\n"),
		CreatedAt:   experience.CreatedAt,
		UpdatedAt:   experience.UpdatedAt,
	}
}

// ToExperienceDTOs converts a slice of experience entries
func ToExperienceDTOs(experiences []models.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(experiences))
	for i, e := range experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	return dtos
}
