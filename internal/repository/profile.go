package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository covers the résumé sections: education, certifications
// and extracurricular activities.
type ProfileRepository interface {
	ListEducation(ctx context.Context) ([]models.Education, error)
	GetEducation(ctx context.Context, id uint) (*models.Education, error)
	CreateEducation(ctx context.Context, e *models.Education) error
	UpdateEducation(ctx context.Context, e *models.Education) error
	DeleteEducation(ctx context.Context, id uint) error

	ListCertifications(ctx context.Context) ([]models.Certification, error)
	GetCertification(ctx context.Context, id uint) (*models.Certification, error)
	CreateCertification(ctx context.Context, c *models.Certification) error
	UpdateCertification(ctx context.Context, c *models.Certification) error
	DeleteCertification(ctx context.Context, id uint) error

	ListExtracurriculars(ctx context.Context) ([]models.Extracurricular, error)
	GetExtracurricular(ctx context.Context, id uint) (*models.Extracurricular, error)
	CreateExtracurricular(ctx context.Context, e *models.Extracurricular) error
	UpdateExtracurricular(ctx context.Context, e *models.Extracurricular) error
	DeleteExtracurricular(ctx context.Context, id uint) error
}

type profileRepository struct {
	education       store[models.Education]
	certifications  store[models.Certification]
	extracurricular store[models.Extracurricular]
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		education:       newStore[models.Education](db, "education"),
		certifications:  newStore[models.Certification](db, "certifications"),
		extracurricular: newStore[models.Extracurricular](db, "extracurriculars"),
	}
}

func (r *profileRepository) ListEducation(ctx context.Context) ([]models.Education, error) {
	return r.education.list(ctx, "sort_order DESC", "id ASC")
}

func (r *profileRepository) GetEducation(ctx context.Context, id uint) (*models.Education, error) {
	return r.education.get(ctx, id)
}

func (r *profileRepository) CreateEducation(ctx context.Context, e *models.Education) error {
	return r.education.create(ctx, e)
}

func (r *profileRepository) UpdateEducation(ctx context.Context, e *models.Education) error {
	return r.education.save(ctx, e)
}

func (r *profileRepository) DeleteEducation(ctx context.Context, id uint) error {
	return r.education.delete(ctx, id)
}

// ListCertifications orders by issue date, newest first, undated entries last.
func (r *profileRepository) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	return r.certifications.list(ctx, "issue_date IS NULL", "issue_date DESC", "id ASC")
}

func (r *profileRepository) GetCertification(ctx context.Context, id uint) (*models.Certification, error) {
	return r.certifications.get(ctx, id)
}

func (r *profileRepository) CreateCertification(ctx context.Context, c *models.Certification) error {
	return r.certifications.create(ctx, c)
}

func (r *profileRepository) UpdateCertification(ctx context.Context, c *models.Certification) error {
	return r.certifications.save(ctx, c)
}

func (r *profileRepository) DeleteCertification(ctx context.Context, id uint) error {
	return r.certifications.delete(ctx, id)
}

func (r *profileRepository) ListExtracurriculars(ctx context.Context) ([]models.Extracurricular, error) {
	return r.extracurricular.list(ctx, "sort_order DESC", "id ASC")
}

func (r *profileRepository) GetExtracurricular(ctx context.Context, id uint) (*models.Extracurricular, error) {
	return r.extracurricular.get(ctx, id)
}

func (r *profileRepository) CreateExtracurricular(ctx context.Context, e *models.Extracurricular) error {
	return r.extracurricular.create(ctx, e)
}

func (r *profileRepository) UpdateExtracurricular(ctx context.Context, e *models.Extracurricular) error {
	return r.extracurricular.save(ctx, e)
}

func (r *profileRepository) DeleteExtracurricular(ctx context.Context, id uint) error {
	return r.extracurricular.delete(ctx, id)
}
