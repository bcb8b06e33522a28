package repository

import (
	"context"
	"fmt"

	"portfolio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	ListPublished(ctx context.Context, limit, offset int) ([]models.Post, error)
	CountPublished(ctx context.Context) (int64, error)
	FeaturedPublished(ctx context.Context, limit int) ([]models.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	SaveWithTags(ctx context.Context, post *models.Post, tagIDs []uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
	store[models.Post]
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, store: newStore[models.Post](db, "posts")}
}

func (r *postRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("is_published = ?", true)
}

// ListPublished returns one page of published posts, newest first.
func (r *postRepository) ListPublished(ctx context.Context, limit, offset int) ([]models.Post, error) {
	ctx, end := instrument(ctx, r.db, "list_published", "posts")
	defer end()

	var posts []models.Post
	err := r.published(ctx).
		Order("published_date DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, translateError(err)
}

func (r *postRepository) CountPublished(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("is_published = ?", true).Count(&n).Error
	return n, translateError(err)
}

// FeaturedPublished returns up to limit posts that are both published and featured.
func (r *postRepository) FeaturedPublished(ctx context.Context, limit int) ([]models.Post, error) {
	ctx, end := instrument(ctx, r.db, "featured_published", "posts")
	defer end()

	var posts []models.Post
	err := r.published(ctx).
		Where("is_featured = ?", true).
		Order("published_date DESC").
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, translateError(err)
}

func (r *postRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	ctx, end := instrument(ctx, r.db, "get_published_by_slug", "posts")
	defer end()

	var post models.Post
	if err := r.published(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, fmt.Errorf("post %q: %w", slug, translateError(err))
	}
	return &post, nil
}

// GetBySlug ignores the publish flag; it backs the operator preview.
func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	ctx, end := instrument(ctx, r.db, "get_by_slug", "posts")
	defer end()

	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Tags").Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, fmt.Errorf("post %q: %w", slug, translateError(err))
	}
	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	ctx, end := instrument(ctx, r.db, "get", "posts")
	defer end()

	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Tags").First(&post, id).Error; err != nil {
		return nil, fmt.Errorf("post %d: %w", id, translateError(err))
	}
	return &post, nil
}

// List returns every post regardless of state, newest first.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	ctx, end := instrument(ctx, r.db, "list", "posts")
	defer end()

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Order("published_date DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, translateError(err)
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.create(ctx, post)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.save(ctx, post)
}

// Delete removes the post together with its tag links.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	ctx, end := instrument(ctx, r.db, "delete", "posts")
	defer end()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("post %d: %w", id, translateError(err))
	}
	r.log.LogDelete(ctx, map[string]interface{}{"id": id})
	return nil
}

// SaveWithTags inserts the post when it has no id and saves every column
// otherwise. A non-nil tagIDs replaces the tag set in the same transaction;
// nil leaves the stored links alone. Unknown tag ids roll the whole write
// back with ErrNotFound.
func (r *postRepository) SaveWithTags(ctx context.Context, post *models.Post, tagIDs []uint) error {
	ctx, end := instrument(ctx, r.db, "save_with_tags", "posts")
	defer end()

	creating := post.ID == 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tags []models.Tag
		if len(tagIDs) > 0 {
			if err := tx.Where("id IN ?", tagIDs).Order("name ASC").Find(&tags).Error; err != nil {
				return err
			}
			if len(tags) != len(uniqueIDs(tagIDs)) {
				return fmt.Errorf("tags %v: %w", tagIDs, ErrNotFound)
			}
		}

		write := tx.Omit(clause.Associations)
		if creating {
			write = write.Create(post)
		} else {
			write = write.Save(post)
		}
		if write.Error != nil {
			return write.Error
		}

		switch {
		case tagIDs == nil:
			return nil
		case len(tags) == 0:
			return tx.Model(post).Association("Tags").Clear()
		default:
			return tx.Model(post).Association("Tags").Replace(tags)
		}
	})
	if err != nil {
		if creating {
			post.ID = 0
		}
		r.log.LogError(ctx, err, "save_with_tags")
		return translateError(err)
	}
	fields := map[string]interface{}{"id": post.ID, "tags": len(tagIDs)}
	if creating {
		r.log.LogCreate(ctx, fields)
	} else {
		r.log.LogUpdate(ctx, fields)
	}
	return nil
}

func uniqueIDs(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
