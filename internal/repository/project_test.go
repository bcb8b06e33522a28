package repository

import (
	"context"
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_DeleteCascadesImages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := &models.Project{Title: "Hydraulic Press", ShortDescription: "A press"}
	require.NoError(t, repo.Create(ctx, project))
	assert.Equal(t, "hydraulic-press", project.Slug)

	for _, caption := range []string{"front", "side"} {
		require.NoError(t, repo.AddImage(ctx, &models.ProjectImage{ProjectID: project.ID, Image: caption + ".jpg", Caption: caption}))
	}

	got, err := repo.GetBySlug(ctx, "hydraulic-press")
	require.NoError(t, err)
	assert.Len(t, got.Images, 2)

	require.NoError(t, repo.Delete(ctx, project.ID))

	var remaining int64
	require.NoError(t, db.Model(&models.ProjectImage{}).Count(&remaining).Error)
	assert.Zero(t, remaining)

	_, err = repo.GetBySlug(ctx, "hydraulic-press")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepository_ForeignKeyCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	project := &models.Project{Title: "Wind Turbine", ShortDescription: "Blades"}
	require.NoError(t, repo.Create(ctx, project))
	require.NoError(t, repo.AddImage(ctx, &models.ProjectImage{ProjectID: project.ID, Image: "t.jpg"}))

	// Bypass the repository so only the constraint acts.
	require.NoError(t, db.Exec("DELETE FROM projects WHERE id = ?", project.ID).Error)

	var remaining int64
	require.NoError(t, db.Model(&models.ProjectImage{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestProjectRepository_AddImageUnknownProject(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	err := repo.AddImage(context.Background(), &models.ProjectImage{ProjectID: 42, Image: "x.jpg"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepository_Ordering(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	fixtures := []models.Project{
		{Title: "C", ShortDescription: "c", Order: 1},
		{Title: "A", ShortDescription: "a", Order: 3, Featured: true},
		{Title: "B", ShortDescription: "b", Order: 2, Featured: true},
		{Title: "D", ShortDescription: "d", Order: 0},
		{Title: "E", ShortDescription: "e", Order: 1, Featured: true},
		{Title: "F", ShortDescription: "f", Order: 9, Featured: true},
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(ctx, &fixtures[i]))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(all))
	for _, p := range all {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"E", "B", "A", "F", "D", "C"}, titles)

	featured, err := repo.Featured(ctx, 3)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "E", featured[0].Title)
	assert.Equal(t, "B", featured[1].Title)
	assert.Equal(t, "A", featured[2].Title)
}

func TestProjectRepository_DuplicateSlug(t *testing.T) {
	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Project{Title: "Rover", ShortDescription: "x"}))
	err := repo.Create(ctx, &models.Project{Title: "Rover", ShortDescription: "y"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
