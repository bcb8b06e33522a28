package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines the interface for skill data operations
type SkillRepository interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uint) error
	SetLevels(ctx context.Context, ids []uint, level int) (int64, error)
}

type skillRepository struct {
	db *gorm.DB
	store[models.Skill]
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db, store: newStore[models.Skill](db, "skills")}
}

// List returns every skill in natural order: category code, level desc, name.
func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	return r.list(ctx, "category ASC", "level DESC", "name ASC", "id ASC")
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return r.get(ctx, id)
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.create(ctx, skill)
}

func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	return r.save(ctx, skill)
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}

// SetLevels writes level to every listed skill in one statement and returns
// the number of rows changed. Hooks are skipped.
func (r *skillRepository) SetLevels(ctx context.Context, ids []uint, level int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ctx, end := instrument(ctx, r.db, "set_levels", "skills")
	defer end()

	result := r.db.WithContext(ctx).Model(&models.Skill{}).
		Where("id IN ?", ids).
		UpdateColumn("level", level)
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}
