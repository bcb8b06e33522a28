package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// SiteRepository reads and writes the singleton site rows.
type SiteRepository interface {
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	CountSettings(ctx context.Context) (int64, error)
	CreateSettings(ctx context.Context, s *models.SiteSettings) error
	UpdateSettings(ctx context.Context, s *models.SiteSettings) error
	DeleteSettings(ctx context.Context, id uint) error
	GetAbout(ctx context.Context) (*models.About, error)
	SaveAbout(ctx context.Context, content string) (*models.About, error)
}

type siteRepository struct {
	db       *gorm.DB
	settings store[models.SiteSettings]
	about    store[models.About]
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{
		db:       db,
		settings: newStore[models.SiteSettings](db, "site_settings"),
		about:    newStore[models.About](db, "about"),
	}
}

// GetSettings returns the first settings row, or ErrNotFound when none exists.
func (r *siteRepository) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	ctx, end := instrument(ctx, r.db, "get", "site_settings")
	defer end()

	var s models.SiteSettings
	if err := r.db.WithContext(ctx).Order("id").First(&s).Error; err != nil {
		return nil, fmt.Errorf("site settings: %w", translateError(err))
	}
	return &s, nil
}

func (r *siteRepository) CountSettings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.SiteSettings{}).Count(&n).Error
	return n, translateError(err)
}

func (r *siteRepository) CreateSettings(ctx context.Context, s *models.SiteSettings) error {
	return r.settings.create(ctx, s)
}

func (r *siteRepository) UpdateSettings(ctx context.Context, s *models.SiteSettings) error {
	return r.settings.save(ctx, s)
}

func (r *siteRepository) DeleteSettings(ctx context.Context, id uint) error {
	return r.settings.delete(ctx, id)
}

// GetAbout returns the first about row, or ErrNotFound when none exists.
func (r *siteRepository) GetAbout(ctx context.Context) (*models.About, error) {
	ctx, end := instrument(ctx, r.db, "get", "about")
	defer end()

	var a models.About
	if err := r.db.WithContext(ctx).Order("id").First(&a).Error; err != nil {
		return nil, fmt.Errorf("about: %w", translateError(err))
	}
	return &a, nil
}

// SaveAbout updates the existing about row or creates the first one.
func (r *siteRepository) SaveAbout(ctx context.Context, content string) (*models.About, error) {
	a, err := r.GetAbout(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		a = &models.About{Content: content}
		if err := r.about.create(ctx, a); err != nil {
			return nil, err
		}
		return a, nil
	case err != nil:
		return nil, err
	}

	a.Content = content
	if err := r.about.save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
