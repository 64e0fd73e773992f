package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/portfolio-api/internal/constants"
	"github.com/mkobayashi/portfolio-api/internal/dto"
	apierrors "github.com/mkobayashi/portfolio-api/internal/errors"
	"github.com/mkobayashi/portfolio-api/internal/services"
	"github.com/mkobayashi/portfolio-api/internal/storage"
	"github.com/mkobayashi/portfolio-api/internal/utils"
)

// ProjectHandler coordinates project CRUD over multipart requests.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns all non-deleted projects, newest first.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// GetProject returns a single project; soft-deleted IDs look missing.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// CreateProject creates a project from a multipart form with a required
// image field.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	input := services.CreateProjectInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		GithubLink:   c.PostForm("githubLink"),
		LiveDemoLink: c.PostForm("liveDemoLink"),
	}
	if tags := c.PostForm("tags"); tags != "" {
		input.Tags = utils.SplitAndTrim(tags, ",")
	}

	image, imageName, ok := openImage(c)
	if !ok {
		return
	}
	if image != nil {
		defer image.Close()
	}

	var src io.Reader
	if image != nil {
		src = image
	}

	project, err := h.projectService.Create(c.Request.Context(), input, src, imageName)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject applies a partial update; absent form fields keep their
// prior values and the image is optional.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.UpdateProjectInput
	if v, ok := c.GetPostForm("title"); ok {
		input.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		input.Description = &v
	}
	if v, ok := c.GetPostForm("tags"); ok && v != "" {
		input.Tags = utils.SplitAndTrim(v, ",")
	}
	if v, ok := c.GetPostForm("githubLink"); ok {
		input.GithubLink = &v
	}
	if v, ok := c.GetPostForm("liveDemoLink"); ok {
		input.LiveDemoLink = &v
	}

	image, imageName, ok := openImage(c)
	if !ok {
		return
	}
	if image != nil {
		defer image.Close()
	}

	var src io.Reader
	if image != nil {
		src = image
	}

	project, err := h.projectService.Update(c.Request.Context(), id, input, src, imageName)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject soft-deletes a project; the row and its image remain.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.projectService.Delete(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      project.ID,
		"message": "Project removed",
	})
}

// openImage extracts the optional image file from the multipart form. The
// boolean result is false only when a response has already been written.
func openImage(c *gin.Context) (multipart.File, string, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		// No file in the form; the service decides whether that is valid.
		return nil, "", true
	}

	if header.Size > constants.MaxUploadSize {
		apierrors.BadRequest(c, "Image must be smaller than 5 MB")
		return nil, "", false
	}

	file, err := header.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read uploaded file")
		return nil, "", false
	}

	return file, header.Filename, true
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingProjectFields):
		apierrors.BadRequest(c, "Please add all required fields: title, description, and an image")
	case errors.Is(err, storage.ErrUnsupportedType):
		apierrors.BadRequest(c, "Images only (jpg, jpeg, png, gif, webp)")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		apierrors.InternalError(c, "")
	}
}
