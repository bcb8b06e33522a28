// Package bootstrap wires the process-wide runtime: database, Redis and the
// contact notifier.
package bootstrap

import (
	"fmt"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/middleware"
	"portfolio/internal/notifications"
	"portfolio/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedPortfolio loads the bundled portfolio fixture into an empty database.
	SeedPortfolio bool
}

// InitRuntime connects to the database and Redis and optionally seeds the
// portfolio fixture. A missing Redis is not an error; the contact rate limit
// is then skipped.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if cfg.RedisURL != "" {
		cache.InitRedis(cfg.RedisURL)
	}
	r := cache.GetClient()

	if opts.SeedPortfolio {
		if _, err := seed.Portfolio(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed portfolio: %w", err)
		}
	}

	return db, r, nil
}

// NewNotifier returns the SMTP mailer when mail is enabled and a logging
// notifier otherwise.
func NewNotifier(cfg *config.Config) notifications.Notifier {
	if !cfg.MailEnabled {
		return notifications.NewLogNotifier(middleware.Logger)
	}
	return notifications.NewMailer(notifications.MailerConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		UseTLS:   cfg.SMTPUseTLS,
		Timeout:  time.Duration(cfg.SMTPTimeoutSeconds) * time.Second,
		From:     cfg.DefaultFromEmail,
		To:       cfg.ContactEmail,
	})
}
