package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mkobayashi/portfolio-api/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeContactRepo struct {
	nextID uint64
	saved  []*models.ContactMessage
	err    error
}

func (r *fakeContactRepo) Create(message *models.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	message.ID = r.nextID
	r.saved = append(r.saved, message)
	return nil
}

type fakeNotifier struct {
	sent chan string
	err  error
}

func (n *fakeNotifier) Send(subject, _ string) error {
	if n.sent != nil {
		n.sent <- subject
	}
	return n.err
}

func TestContactService_SubmitSavesAndNotifies(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	svc := NewContactService(repo, notifier, zap.NewNop().Sugar())

	message, err := svc.Submit(ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello!",
	})
	require.NoError(t, err)
	require.NotZero(t, message.ID)
	require.Len(t, repo.saved, 1)

	select {
	case subject := <-notifier.sent:
		require.Equal(t, "New Contact Form Submission!", subject)
	case <-time.After(time.Second):
		t.Fatal("notification was never dispatched")
	}
}

// Delivery failure is a logged side effect; the save already succeeded and
// the caller never sees the error.
func TestContactService_SubmitSurvivesDeliveryFailure(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{sent: make(chan string, 1), err: errors.New("smtp down")}
	svc := NewContactService(repo, notifier, zap.NewNop().Sugar())

	_, err := svc.Submit(ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello!",
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	select {
	case <-notifier.sent:
	case <-time.After(time.Second):
		t.Fatal("notification was never attempted")
	}
}

func TestContactService_SubmitWithoutNotifier(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, nil, zap.NewNop().Sugar())

	_, err := svc.Submit(ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello!",
	})
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
}

func TestContactService_SubmitRequiresFields(t *testing.T) {
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	svc := NewContactService(&fakeContactRepo{}, notifier, zap.NewNop().Sugar())

	_, err := svc.Submit(ContactInput{Name: "Visitor", Email: "visitor@example.com"})
	require.ErrorIs(t, err, ErrMissingContactFields)

	select {
	case <-notifier.sent:
		t.Fatal("no notification should be sent for a rejected submission")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestContactService_SubmitSaveFailure(t *testing.T) {
	repo := &fakeContactRepo{err: errors.New("insert failed")}
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	svc := NewContactService(repo, notifier, zap.NewNop().Sugar())

	_, err := svc.Submit(ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello!",
	})
	require.Error(t, err)

	select {
	case <-notifier.sent:
		t.Fatal("no notification should be sent when the save fails")
	case <-time.After(50 * time.Millisecond):
	}
}
