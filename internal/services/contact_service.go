package services

import (
	"errors"
	"fmt"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"go.uber.org/zap"
)

var ErrMissingContactFields = errors.New("name, email and message are required")

// Notifier delivers a contact notification. Delivery is best-effort: the
// saved message is the user-visible contract, the notification is a side
// channel.
type Notifier interface {
	Send(subject, htmlBody string) error
}

// ContactService stores contact-form submissions and dispatches the email
// notification after a durable save.
type ContactService struct {
	contactRepo repository.ContactRepository
	notifier    Notifier
	logger      *zap.SugaredLogger
}

// NewContactService creates a new ContactService. notifier may be nil when
// no mail transport is configured.
func NewContactService(contactRepo repository.ContactRepository, notifier Notifier, logger *zap.SugaredLogger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// ContactInput represents a contact-form submission
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// Submit validates and saves the message, then dispatches the notification
// asynchronously. A delivery failure is logged and never rolls back or
// fails the save.
func (s *ContactService) Submit(input ContactInput) (*models.ContactMessage, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, ErrMissingContactFields
	}

	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := s.contactRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.dispatchNotification(message)

	return message, nil
}

func (s *ContactService) dispatchNotification(message *models.ContactMessage) {
	if s.notifier == nil {
		return
	}

	subject := "New Contact Form Submission!"
	body := fmt.Sprintf(
		"<h2>You have a new contact form message:</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		message.Name, message.Email, message.Message,
	)

	go func() {
		if err := s.notifier.Send(subject, body); err != nil {
			s.logger.Errorw("failed to send contact notification",
				"message_id", message.ID, "error", err)
			return
		}
		s.logger.Infow("contact notification sent", "message_id", message.ID)
	}()
}
