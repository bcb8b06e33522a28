package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ContactRepository stores visitor submissions. Apart from creation, only
// the read flag is ever written.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	SetRead(ctx context.Context, ids []uint, read bool) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type contactRepository struct {
	db *gorm.DB
	store[models.ContactMessage]
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db, store: newStore[models.ContactMessage](db, "contact_messages")}
}

func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	msg.Read = false
	return r.create(ctx, msg)
}

// List returns every message, newest first.
func (r *contactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	return r.list(ctx, "created_at DESC", "id DESC")
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	return r.get(ctx, id)
}

// SetRead flips the read flag on every listed message and returns the number
// of rows matched.
func (r *contactRepository) SetRead(ctx context.Context, ids []uint, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ctx, end := instrument(ctx, r.db, "set_read", "contact_messages")
	defer end()

	result := r.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("id IN ?", ids).
		UpdateColumn("read", read)
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	r.log.LogUpdate(ctx, map[string]interface{}{"ids": ids, "read": read})
	return result.RowsAffected, nil
}

func (r *contactRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("read = ?", false).Count(&n).Error
	return n, translateError(err)
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}
