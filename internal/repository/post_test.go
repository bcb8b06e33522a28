package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T, repo PostRepository, n int, published bool) []models.Post {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		p := models.Post{
			Title:           fmt.Sprintf("Post %d published=%t", i, published),
			MarkdownContent: "Some content long enough to be a body.",
			PublishedDate:   base.Add(time.Duration(i) * time.Hour),
			IsPublished:     published,
		}
		require.NoError(t, repo.Create(context.Background(), &p))
		posts = append(posts, p)
	}
	return posts
}

func TestPostRepository_Create_DerivesFields(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := &models.Post{Title: "Hello World!", MarkdownContent: "# Hi"}
	require.NoError(t, repo.Create(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello-world", got.Slug)
	assert.Equal(t, "# Hi", got.Excerpt)
	assert.Equal(t, models.DefaultPostAuthor, got.Author)
	assert.False(t, got.PublishedDate.IsZero())
	assert.False(t, got.IsPublished)
}

func TestPostRepository_SlugNeverRecomputed(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	post := &models.Post{Title: "Original Title", MarkdownContent: "body"}
	require.NoError(t, repo.Create(ctx, post))

	post.Title = "A Completely Different Title"
	require.NoError(t, repo.Update(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "original-title", got.Slug)
	assert.Equal(t, "A Completely Different Title", got.Title)
}

func TestPostRepository_DuplicateSlug(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{Title: "Same", MarkdownContent: "a"}))
	err := repo.Create(ctx, &models.Post{Title: "Same", MarkdownContent: "b"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPostRepository_PublishedFiltering(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	published := seedPosts(t, repo, 3, true)
	drafts := seedPosts(t, repo, 2, false)

	n, err := repo.CountPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	page, err := repo.ListPublished(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, published[2].ID, page[0].ID, "newest first")
	assert.Equal(t, published[1].ID, page[1].ID)

	_, err = repo.GetPublishedBySlug(ctx, drafts[0].Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	preview, err := repo.GetBySlug(ctx, drafts[0].Slug)
	require.NoError(t, err)
	assert.Equal(t, drafts[0].ID, preview.ID)
}

func TestPostRepository_FeaturedPublished(t *testing.T) {
	repo := NewPostRepository(setupTestDB(t))
	ctx := context.Background()

	posts := seedPosts(t, repo, 5, true)
	for _, p := range posts {
		p.IsFeatured = true
		require.NoError(t, repo.Update(ctx, &p))
	}
	draft := models.Post{Title: "Featured draft", MarkdownContent: "x", IsFeatured: true}
	require.NoError(t, repo.Create(ctx, &draft))

	featured, err := repo.FeaturedPublished(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, featured, 3)
	for _, p := range featured {
		assert.True(t, p.IsPublished)
	}
}

func TestPostRepository_SaveWithTagsAndDelete(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	goTag := &models.Tag{Name: "Go"}
	webTag := &models.Tag{Name: "Web Dev"}
	require.NoError(t, tags.Create(ctx, goTag))
	require.NoError(t, tags.Create(ctx, webTag))
	assert.Equal(t, "web-dev", webTag.Slug)

	post := &models.Post{Title: "Tagged", MarkdownContent: "body", IsPublished: true}
	require.NoError(t, posts.SaveWithTags(ctx, post, []uint{goTag.ID, webTag.ID}))
	require.NotZero(t, post.ID)
	got, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Tags, 2)

	got.Title = "Retitled"
	require.NoError(t, posts.SaveWithTags(ctx, got, nil))
	got, err = posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Retitled", got.Title)
	assert.Len(t, got.Tags, 2, "nil ids keep the links")

	require.NoError(t, posts.SaveWithTags(ctx, got, []uint{webTag.ID}))
	got, err = posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "Web Dev", got.Tags[0].Name)

	require.NoError(t, posts.Delete(ctx, post.ID))
	var links int64
	require.NoError(t, db.Table("post_tags").Count(&links).Error)
	assert.Zero(t, links)

	assert.ErrorIs(t, posts.Delete(ctx, post.ID), ErrNotFound)
}

func TestPostRepository_SaveWithTags_UnknownTagRollsBack(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	goTag := &models.Tag{Name: "Go"}
	require.NoError(t, tags.Create(ctx, goTag))

	fresh := &models.Post{Title: "Orphan", MarkdownContent: "body"}
	err := posts.SaveWithTags(ctx, fresh, []uint{goTag.ID, 9999})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, fresh.ID)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)

	stored := &models.Post{Title: "Kept", MarkdownContent: "original"}
	require.NoError(t, posts.SaveWithTags(ctx, stored, []uint{goTag.ID}))
	loaded, err := posts.GetByID(ctx, stored.ID)
	require.NoError(t, err)

	loaded.MarkdownContent = "changed"
	err = posts.SaveWithTags(ctx, loaded, []uint{9999})
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := posts.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", after.MarkdownContent)
	require.Len(t, after.Tags, 1)
	assert.Equal(t, "Go", after.Tags[0].Name)
}
