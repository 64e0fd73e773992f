package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"github.com/mkobayashi/portfolio-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrMissingProjectFields = errors.New("title, description and an image are required")
)

// imageURLPrefix is the public path prefix under which stored files are
// served; Project.ImageURL is always prefix + stored filename.
const imageURLPrefix = "/uploads/"

// ProjectService orchestrates the create/update/delete lifecycle of a
// project and the file it owns.
//
// Ordering invariant: a replaced image is only removed from storage after
// the record update has succeeded, so a crash mid-operation can orphan a
// file but never leave a record pointing at a deleted one.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	files       storage.Storage
	logger      *zap.SugaredLogger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, files storage.Storage, logger *zap.SugaredLogger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		files:       files,
		logger:      logger,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title        string
	Description  string
	Tags         []string
	GithubLink   string
	LiveDemoLink string
}

// Create stores the uploaded image, then creates the record referencing it.
// If the insert fails after the file was stored, the file is removed again
// so a failed create leaves no orphan behind.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput, image io.Reader, imageName string) (*models.Project, error) {
	if input.Title == "" || input.Description == "" || image == nil {
		return nil, ErrMissingProjectFields
	}

	storedName, err := s.files.Store(ctx, image, imageName)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     imageURLPrefix + storedName,
		Tags:         strings.Join(input.Tags, ","),
		GithubLink:   input.GithubLink,
		LiveDemoLink: input.LiveDemoLink,
	}

	if err := s.projectRepo.Create(project); err != nil {
		if cleanupErr := s.files.Delete(ctx, storedName); cleanupErr != nil {
			s.logger.Errorw("failed to remove stored image after create failure",
				"file", storedName, "error", cleanupErr)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProjectInput represents input for updating a project. Nil fields
// keep their prior values.
type UpdateProjectInput struct {
	Title        *string
	Description  *string
	Tags         []string
	GithubLink   *string
	LiveDemoLink *string
}

// Update applies a partial update, optionally replacing the image. The old
// file is deleted only after the record save succeeds, and in the
// background: a failed cleanup is logged, never surfaced.
func (s *ProjectService) Update(ctx context.Context, id uint64, input UpdateProjectInput, image io.Reader, imageName string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	oldImageURL := ""
	newStoredName := ""
	if image != nil {
		newStoredName, err = s.files.Store(ctx, image, imageName)
		if err != nil {
			return nil, err
		}
		oldImageURL = project.ImageURL
		project.ImageURL = imageURLPrefix + newStoredName
	}

	if input.Title != nil && *input.Title != "" {
		project.Title = *input.Title
	}
	if input.Description != nil && *input.Description != "" {
		project.Description = *input.Description
	}
	if input.Tags != nil {
		project.Tags = strings.Join(input.Tags, ",")
	}
	if input.GithubLink != nil {
		project.GithubLink = *input.GithubLink
	}
	if input.LiveDemoLink != nil {
		project.LiveDemoLink = *input.LiveDemoLink
	}

	if err := s.projectRepo.Save(project); err != nil {
		// The record still references the old image; the freshly stored
		// file would be the orphan, so remove it instead.
		if newStoredName != "" {
			if cleanupErr := s.files.Delete(ctx, newStoredName); cleanupErr != nil {
				s.logger.Errorw("failed to remove stored image after update failure",
					"file", newStoredName, "error", cleanupErr)
			}
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if oldImageURL != "" {
		s.removeStoredFile(oldImageURL)
	}

	return project, nil
}

// Delete soft-deletes a project. The row and its image remain; all normal
// reads exclude the flagged record from now on.
func (s *ProjectService) Delete(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	project.IsDeleted = true
	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	return project, nil
}

// List returns all non-deleted projects, newest first.
func (s *ProjectService) List() ([]models.Project, error) {
	projects, err := s.projectRepo.List(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get returns a non-deleted project; a soft-deleted ID behaves exactly like
// a missing one.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// removeStoredFile deletes a replaced image in the background. Best-effort:
// the update already succeeded, a leftover file is harmless.
func (s *ProjectService) removeStoredFile(imageURL string) {
	storedName := strings.TrimPrefix(imageURL, imageURLPrefix)
	go func() {
		if err := s.files.Delete(context.Background(), storedName); err != nil {
			s.logger.Errorw("failed to delete replaced image", "file", storedName, "error", err)
		}
	}()
}
