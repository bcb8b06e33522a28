// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"fmt"

	"portfolio/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// instrument starts a repository span tagged with db's dialect and a latency
// timer. The returned func must be deferred.
func instrument(ctx context.Context, db *gorm.DB, method, table string) (context.Context, func()) {
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, db.Dialector.Name(), method, table)
	done := observability.TrackQuery(method, table)
	return ctx, func() {
		done()
		span.End()
	}
}

// store implements the by-id operations shared by the simple content tables.
type store[T any] struct {
	db    *gorm.DB
	table string
	log   *observability.RepoLogger
}

func newStore[T any](db *gorm.DB, table string) store[T] {
	return store[T]{db: db, table: table, log: observability.NewRepoLogger(table)}
}

func (s store[T]) get(ctx context.Context, id uint) (*T, error) {
	ctx, end := instrument(ctx, s.db, "get", s.table)
	defer end()

	var v T
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, fmt.Errorf("%s %d: %w", s.table, id, translateError(err))
	}
	return &v, nil
}

func (s store[T]) create(ctx context.Context, v *T) error {
	ctx, end := instrument(ctx, s.db, "create", s.table)
	defer end()

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error; err != nil {
		s.log.LogError(ctx, err, "create")
		return translateError(err)
	}
	s.log.LogCreate(ctx, nil)
	return nil
}

// save writes every column of an existing row. Associations are managed
// explicitly by the owning repository.
func (s store[T]) save(ctx context.Context, v *T) error {
	ctx, end := instrument(ctx, s.db, "update", s.table)
	defer end()

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error; err != nil {
		s.log.LogError(ctx, err, "update")
		return translateError(err)
	}
	s.log.LogUpdate(ctx, nil)
	return nil
}

func (s store[T]) delete(ctx context.Context, id uint) error {
	ctx, end := instrument(ctx, s.db, "delete", s.table)
	defer end()

	var v T
	result := s.db.WithContext(ctx).Delete(&v, id)
	if result.Error != nil {
		s.log.LogError(ctx, result.Error, "delete")
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", s.table, id, ErrNotFound)
	}
	s.log.LogDelete(ctx, map[string]interface{}{"id": id})
	return nil
}

func (s store[T]) list(ctx context.Context, order ...string) ([]T, error) {
	ctx, end := instrument(ctx, s.db, "list", s.table)
	defer end()

	q := s.db.WithContext(ctx)
	for _, o := range order {
		q = q.Order(o)
	}
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}
