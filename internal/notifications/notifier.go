// Package notifications delivers operator notifications for new contact
// messages, by SMTP or to the log.
package notifications

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/models"
)

// ContactNotification is the payload dispatched for one stored contact message.
type ContactNotification struct {
	FromName  string
	FromEmail string
	Subject   string
	Body      string
}

// Notifier dispatches contact notifications to the operator.
type Notifier interface {
	NotifyContact(ctx context.Context, n ContactNotification) error
}

// DefaultSubjectTag is the subject used when neither a prefix nor a visitor
// subject is available. Mail without a subject is rejected by the Mailer.
const DefaultSubjectTag = "Portfolio Contact"

// NewContactNotification formats msg for the operator. The subject carries
// prefix as a tag, "<prefix>: <subject>"; the body names the sender first.
// The subject is never empty.
func NewContactNotification(prefix string, msg models.ContactMessage) ContactNotification {
	prefix = strings.TrimSpace(prefix)
	subject := strings.TrimSpace(msg.Subject)
	switch {
	case prefix == "" && subject == "":
		subject = DefaultSubjectTag
	case prefix == "":
	case subject == "":
		subject = prefix
	default:
		subject = prefix + ": " + subject
	}
	return ContactNotification{
		FromName:  msg.Name,
		FromEmail: msg.Email,
		Subject:   subject,
		Body:      fmt.Sprintf("From: %s (%s)\n\n%s", msg.Name, msg.Email, msg.Message),
	}
}
