package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mkobayashi/portfolio-api/internal/errors"
	"github.com/mkobayashi/portfolio-api/internal/services"
)

// SkillHandler coordinates skill CRUD.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// ListSkills returns all skills sorted by category, then name.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch skills")
		return
	}

	c.JSON(http.StatusOK, skills)
}

// CreateSkill creates a new skill.
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	type CreateSkillRequest struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category" binding:"required"`
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Please add all required fields: name, category")
		return
	}

	skill, err := h.skillService.Create(services.CreateSkillInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// UpdateSkill applies a partial update.
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateSkillRequest struct {
		Name     *string `json:"name"`
		Category *string `json:"category"`
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.skillService.Update(id, services.UpdateSkillInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// DeleteSkill removes a skill permanently.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	skill, err := h.skillService.Delete(id)
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      skill.ID,
		"message": "Skill removed",
	})
}

func respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingSkillFields):
		apierrors.BadRequest(c, "Please add all required fields: name, category")
	case errors.Is(err, services.ErrSkillAlreadyExists):
		apierrors.BadRequest(c, "Skill already exists")
	case errors.Is(err, services.ErrSkillNotFound):
		apierrors.NotFound(c, "Skill not found")
	default:
		apierrors.InternalError(c, "")
	}
}
