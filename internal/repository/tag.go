package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
}

type tagRepository struct {
	db *gorm.DB
	store[models.Tag]
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db, store: newStore[models.Tag](db, "tags")}
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	return r.list(ctx, "name ASC")
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	return r.get(ctx, id)
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.create(ctx, tag)
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return r.save(ctx, tag)
}

// Delete removes the tag and unlinks it from every post.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM post_tags WHERE tag_id = ?", id).Error; err != nil {
		return translateError(err)
	}
	return r.delete(ctx, id)
}
