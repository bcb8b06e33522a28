package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/notifications"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

// ErrNotificationFailed is wrapped by Submit when the message was stored but
// the operator could not be notified.
var ErrNotificationFailed = errors.New("contact notification failed")

// ContactInput is a visitor submission.
type ContactInput = validation.ContactForm

// ContactService validates, stores and forwards contact submissions.
type ContactService struct {
	repo          repository.ContactRepository
	notifier      notifications.Notifier
	subjectPrefix string
}

func NewContactService(repo repository.ContactRepository, notifier notifications.Notifier, subjectPrefix string) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, subjectPrefix: subjectPrefix}
}

// Submit stores a valid submission and notifies the operator.
//
// Invalid input returns a field validation error and touches nothing. When the
// notification fails the stored message is returned together with an error
// wrapping ErrNotificationFailed.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	form := in.Normalize()
	if err := form.Validate(); err != nil {
		observability.ContactSubmissions.WithLabelValues("invalid").Inc()
		return nil, invalid(err)
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.ContactSubmissions.WithLabelValues("accepted").Inc()

	if s.notifier == nil {
		return msg, nil
	}
	n := notifications.NewContactNotification(s.subjectPrefix, *msg)
	if err := s.notifier.NotifyContact(ctx, n); err != nil {
		observability.LogAsyncOperationError(ctx, "contact_notify", err, map[string]interface{}{
			"message_id": msg.ID,
		})
		return msg, fmt.Errorf("%w: %w", ErrNotificationFailed, models.NewNotificationError(err))
	}
	return msg, nil
}
