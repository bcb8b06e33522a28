package seed

import (
	"strings"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_BuildPostIsReproducible(t *testing.T) {
	a := NewFactory(nil, FactoryOptions{Seed: 42}).BuildPost()
	b := NewFactory(nil, FactoryOptions{Seed: 42}).BuildPost()

	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, a.MarkdownContent, b.MarkdownContent)
	assert.True(t, strings.HasPrefix(a.MarkdownContent, "## "))
	assert.NotContains(t, a.Title, ".")
}

func TestFactory_Overrides(t *testing.T) {
	p := NewFactory(nil, FactoryOptions{Seed: 7}).BuildPost(func(p *models.Post) {
		p.Title = "Fixed Title"
		p.IsPublished = false
	})
	assert.Equal(t, "Fixed Title", p.Title)
	assert.False(t, p.IsPublished)
}

func TestFactory_DraftRatioOne(t *testing.T) {
	f := NewFactory(nil, FactoryOptions{Seed: 3, DraftRatio: 1.01})
	for i := 0; i < 5; i++ {
		assert.False(t, f.BuildPost().IsPublished)
	}
}

func TestFactory_DryRunAssignsIDs(t *testing.T) {
	f := NewFactory(nil, FactoryOptions{Seed: 1, DryRun: true})
	posts, err := f.DemoPosts(3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, uint(1001), posts[0].ID)
	assert.Equal(t, uint(1003), posts[2].ID)
}

func TestFactory_DemoPostsAndClear(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Create(&models.Post{Title: "Keep Me", MarkdownContent: "real", IsPublished: true}).Error)

	f := NewFactory(db, FactoryOptions{Seed: 99, MaxDays: 30})
	posts, err := f.DemoPosts(4)
	require.NoError(t, err)
	require.Len(t, posts, 4)
	for _, p := range posts {
		assert.NotZero(t, p.ID)
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Excerpt)
	}

	var total int64
	require.NoError(t, db.Model(&models.Post{}).Count(&total).Error)
	assert.EqualValues(t, 5, total)

	removed, err := ClearDemoPosts(db)
	require.NoError(t, err)
	assert.EqualValues(t, 4, removed)

	require.NoError(t, db.Model(&models.Post{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}
