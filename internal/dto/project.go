package dto

import (
	"time"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/utils"
)

// ProjectDTO represents a project in API responses. Tags are exposed as an
// array even though they are stored comma-joined.
type ProjectDTO struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Tags         []string  `json:"tags"`
	GithubLink   string    `json:"github_link,omitempty"`
	LiveDemoLink string    `json:"live_demo_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		ImageURL:     project.ImageURL,
		Tags:         utils.SplitAndTrim(project.Tags, ","),
		GithubLink:   project.GithubLink,
		LiveDemoLink: project.LiveDemoLink,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}
