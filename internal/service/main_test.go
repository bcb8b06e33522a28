package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepos(t *testing.T) (Repositories, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return Repositories{
		Site:     repository.NewSiteRepository(db),
		Skills:   repository.NewSkillRepository(db),
		Projects: repository.NewProjectRepository(db),
		Profile:  repository.NewProfileRepository(db),
		Posts:    repository.NewPostRepository(db),
		Tags:     repository.NewTagRepository(db),
		Contact:  repository.NewContactRepository(db),
	}, db
}

// seedPosts creates n published posts dated one day apart, oldest first.
func seedPosts(t *testing.T, repos Repositories, n int) {
	t.Helper()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		require.NoError(t, repos.Posts.Create(context.Background(), &models.Post{
			Title:           fmt.Sprintf("Post %02d", i),
			MarkdownContent: fmt.Sprintf("# Heading %d\n\nBody of post %d.", i, i),
			PublishedDate:   base.AddDate(0, 0, i),
			IsPublished:     true,
		}))
	}
}
