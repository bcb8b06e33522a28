package notifications

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/observability"

	"gopkg.in/gomail.v2"
)

// ErrInvalidMessage reports a notification that cannot be turned into mail.
var ErrInvalidMessage = errors.New("invalid mail message")

// MailerConfig holds the SMTP settings for the operator mailbox.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
	Timeout  time.Duration
	From     string
	To       string
}

// Mailer sends contact notifications over SMTP.
type Mailer struct {
	cfg  MailerConfig
	send func(*gomail.Message) error
}

// NewMailer returns a Mailer that dials cfg.Host for every message.
func NewMailer(cfg MailerConfig) *Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	m := &Mailer{cfg: cfg}
	m.send = func(msg *gomail.Message) error {
		return m.newDialer().DialAndSend(msg)
	}
	return m
}

func (m *Mailer) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.SSL = m.cfg.UseTLS
	if m.cfg.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}
	}
	return d
}

// NotifyContact mails n to the operator with Reply-To set to the visitor.
// It gives up after the configured timeout or when ctx ends.
func (m *Mailer) NotifyContact(ctx context.Context, n ContactNotification) error {
	msg, err := m.buildMessage(n)
	if err != nil {
		observability.NotificationsSent.WithLabelValues("smtp", "invalid").Inc()
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- m.send(msg)
	}()

	// Respect ctx deadline if it's sooner than our config timeout.
	wait := m.cfg.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			observability.NotificationsSent.WithLabelValues("smtp", "error").Inc()
			return fmt.Errorf("smtp send: %w", err)
		}
		observability.NotificationsSent.WithLabelValues("smtp", "sent").Inc()
		return nil
	case <-ctx.Done():
		observability.NotificationsSent.WithLabelValues("smtp", "error").Inc()
		return ctx.Err()
	case <-timer.C:
		observability.NotificationsSent.WithLabelValues("smtp", "timeout").Inc()
		return context.DeadlineExceeded
	}
}

func (m *Mailer) buildMessage(n ContactNotification) (*gomail.Message, error) {
	from := strings.TrimSpace(m.cfg.From)
	if from == "" {
		return nil, fmt.Errorf("%w: from is required", ErrInvalidMessage)
	}
	to := strings.TrimSpace(m.cfg.To)
	if to == "" {
		return nil, fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	subject := strings.TrimSpace(n.Subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if addr := strings.TrimSpace(n.FromEmail); addr != "" {
		msg.SetAddressHeader("Reply-To", addr, n.FromName)
	}
	msg.SetBody("text/plain", n.Body)
	return msg, nil
}
