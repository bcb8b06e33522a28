// Package service implements the read side of the public site, contact
// intake and the operator's content management on top of the repositories.
package service

import (
	"errors"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

// mapRepoError turns repository sentinels into AppErrors for resource/key.
// AppErrors raised by model hooks pass through unchanged.
func mapRepoError(err error, resource string, key interface{}) error {
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrNotFound):
		return models.NewNotFoundError(resource, key)
	case errors.Is(err, repository.ErrDuplicate):
		return models.NewConflictError(resource+" with this slug or name already exists", err)
	default:
		return models.NewInternalError(err)
	}
}

// invalid wraps an ozzo validation error as a field validation AppError.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return models.NewFieldValidationError(validation.FieldErrors(err))
}

// optional returns nil for a missing singleton and maps other errors.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return v, nil
}
