package repository

import (
	"context"
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	Featured(ctx context.Context, limit int) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	AddImage(ctx context.Context, image *models.ProjectImage) error
	DeleteImage(ctx context.Context, projectID, imageID uint) error
}

type projectRepository struct {
	db *gorm.DB
	store[models.Project]
	images store[models.ProjectImage]
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{
		db:     db,
		store:  newStore[models.Project](db, "projects"),
		images: newStore[models.ProjectImage](db, "project_images"),
	}
}

func (r *projectRepository) withImages(q *gorm.DB) *gorm.DB {
	return q.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// List returns every project, featured first, then by display order.
func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	ctx, end := instrument(ctx, r.db, "list", "projects")
	defer end()

	var projects []models.Project
	err := r.withImages(r.db.WithContext(ctx)).
		Order("featured DESC").
		Order("sort_order ASC").
		Order("id ASC").
		Find(&projects).Error
	return projects, translateError(err)
}

// Featured returns up to limit featured projects by display order.
func (r *projectRepository) Featured(ctx context.Context, limit int) ([]models.Project, error) {
	ctx, end := instrument(ctx, r.db, "featured", "projects")
	defer end()

	var projects []models.Project
	err := r.withImages(r.db.WithContext(ctx)).
		Where("featured = ?", true).
		Order("sort_order ASC").
		Order("id ASC").
		Limit(limit).
		Find(&projects).Error
	return projects, translateError(err)
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	ctx, end := instrument(ctx, r.db, "get_by_slug", "projects")
	defer end()

	var project models.Project
	if err := r.withImages(r.db.WithContext(ctx)).Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, fmt.Errorf("project %q: %w", slug, translateError(err))
	}
	return &project, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	ctx, end := instrument(ctx, r.db, "get", "projects")
	defer end()

	var project models.Project
	if err := r.withImages(r.db.WithContext(ctx)).First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("project %d: %w", id, translateError(err))
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.create(ctx, project)
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.save(ctx, project)
}

// Delete removes the project and its images in one transaction. The foreign
// key cascade covers the same rows; deleting explicitly keeps drivers without
// enforced foreign keys consistent.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	ctx, end := instrument(ctx, r.db, "delete", "projects")
	defer end()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("project %d: %w", id, translateError(err))
	}
	r.log.LogDelete(ctx, map[string]interface{}{"id": id})
	return nil
}

func (r *projectRepository) AddImage(ctx context.Context, image *models.ProjectImage) error {
	if _, err := r.GetByID(ctx, image.ProjectID); err != nil {
		return err
	}
	return r.images.create(ctx, image)
}

func (r *projectRepository) DeleteImage(ctx context.Context, projectID, imageID uint) error {
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.ProjectImage{}, imageID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project image %d: %w", imageID, ErrNotFound)
	}
	return nil
}
