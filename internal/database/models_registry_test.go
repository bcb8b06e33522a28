package database

import (
	"testing"

	modelspkg "portfolio/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesContentModels(t *testing.T) {
	var hasPost, hasImage, hasMessage bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.Post:
			hasPost = true
		case *modelspkg.ProjectImage:
			hasImage = true
		case *modelspkg.ContactMessage:
			hasMessage = true
		}
	}
	require.True(t, hasPost, "PersistentModels should include Post")
	require.True(t, hasImage, "PersistentModels should include ProjectImage")
	require.True(t, hasMessage, "PersistentModels should include ContactMessage")
}
