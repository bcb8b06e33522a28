// Package validation holds the input rules for contact submissions and
// operator-edited content.
package validation

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// MaxSlugLength bounds operator-supplied slugs.
const MaxSlugLength = 255

// slugRule accepts an empty value so derivation can fill it in.
var slugRule = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return ValidateSlug(s)
})

// ValidateSlug checks an explicit slug: lowercase letters, digits and single
// inner hyphens.
func ValidateSlug(slug string) error {
	if len(slug) > MaxSlugLength {
		return errors.New("slug must be at most 255 characters")
	}
	if !slugRegex.MatchString(slug) {
		return errors.New("slug may contain only lowercase letters, numbers, and single hyphens")
	}
	return nil
}

// FieldErrors flattens an ozzo error into field -> message. Errors that are
// not per-field land under "_".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(fieldErrs))
	for field, fe := range fieldErrs {
		if fe != nil {
			out[field] = fe.Error()
		}
	}
	return out
}
