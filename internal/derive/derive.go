// Package derive computes the write-time derived fields of content records:
// URL slugs and post excerpts.
package derive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
)

// ExcerptLength is the number of characters kept when deriving an excerpt.
const ExcerptLength = 150

// ErrEmptySlug is returned when a source string normalizes to nothing.
var ErrEmptySlug = errors.New("slug cannot be derived from an empty title")

// Slug returns current unchanged when it is already set. Otherwise it
// normalizes source into a lowercase, hyphen-delimited identifier.
// Uniqueness is left to the store.
func Slug(source, current string) (string, error) {
	if current != "" {
		return current, nil
	}
	return Slugify(source)
}

// Slugify normalizes s into a URL-safe slug.
func Slugify(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptySlug
	}
	normalized, err := slug.Normalize(s)
	if err != nil {
		return "", fmt.Errorf("normalize slug %q: %w", s, err)
	}
	if normalized == "" {
		return "", ErrEmptySlug
	}
	return normalized, nil
}

// Excerpt returns the first ExcerptLength characters of content, followed by
// "..." only when content was truncated.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= ExcerptLength {
		return content
	}
	return string(runes[:ExcerptLength]) + "..."
}

// Preview shortens s to n characters, appending "..." when it was longer.
// It backs read-only admin columns such as the message subject preview.
func Preview(s string, n int) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
