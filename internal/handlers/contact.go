package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mkobayashi/portfolio-api/internal/errors"
	"github.com/mkobayashi/portfolio-api/internal/services"
)

// ContactHandler receives contact-form submissions.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContact saves the message and responds; the email notification is
// dispatched in the background by the service.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	type ContactRequest struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Please fill out all fields: name, email, and message")
		return
	}

	message, err := h.contactService.Submit(services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingContactFields) {
			apierrors.BadRequest(c, "Please fill out all fields: name, email, and message")
			return
		}
		apierrors.BadRequest(c, "Error saving message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message received! Thank you for contacting me.",
		"data":    message,
	})
}
