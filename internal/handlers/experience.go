package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/portfolio-api/internal/dto"
	apierrors "github.com/mkobayashi/portfolio-api/internal/errors"
	"github.com/mkobayashi/portfolio-api/internal/services"
)

// ExperienceHandler coordinates work-history CRUD.
type ExperienceHandler struct {
	experienceService *services.ExperienceService
}

// NewExperienceHandler creates a new ExperienceHandler.
func NewExperienceHandler(experienceService *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// ListExperiences returns all entries, most recent start date first.
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.experienceService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch experiences")
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceDTOs(experiences))
}

// CreateExperience creates a new work-history entry.
func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	type CreateExperienceRequest struct {
		Title       string     `json:"title" binding:"required"`
		Company     string     `json:"company" binding:"required"`
		Location    string     `json:"location"`
		StartDate   time.Time  `json:"startDate" binding:"required"`
		EndDate     *time.Time `json:"endDate"`
		IsCurrent   bool       `json:"isCurrent"`
		Description []string   `json:"description" binding:"required"`
	}

	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Please add all required fields: title, company, startDate, description")
		return
	}

	experience, err := h.experienceService.Create(services.CreateExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
		Description: req.Description,
	})
	if err != nil {
		respondExperienceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExperienceDTO(*experience))
}

// UpdateExperience applies a partial update.
func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateExperienceRequest struct {
		Title       *string    `json:"title"`
		Company     *string    `json:"company"`
		Location    *string    `json:"location"`
		StartDate   *time.Time `json:"startDate"`
		EndDate     *time.Time `json:"endDate"`
		IsCurrent   *bool      `json:"isCurrent"`
		Description []string   `json:"description"`
	}

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	experience, err := h.experienceService.Update(id, services.UpdateExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
		Description: req.Description,
	})
	if err != nil {
		respondExperienceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceDTO(*experience))
}

// DeleteExperience removes an entry permanently.
func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	experience, err := h.experienceService.Delete(id)
	if err != nil {
		respondExperienceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      experience.ID,
		"message": "Experience removed",
	})
}

func respondExperienceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingExperienceFields):
		apierrors.BadRequest(c, "Please add all required fields: title, company, startDate, description")
	case errors.Is(err, services.ErrExperienceNotFound):
		apierrors.NotFound(c, "Experience not found")
	default:
		apierrors.InternalError(c, "")
	}
}
