package service

import (
	"context"
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioService_HomeEmptySite(t *testing.T) {
	repos, _ := newTestRepos(t)

	home, err := NewPortfolioService(repos).Home(context.Background())
	require.NoError(t, err)
	assert.Nil(t, home.Settings)
	assert.Nil(t, home.About)
	assert.NotNil(t, home.Skills)
	assert.Empty(t, home.Projects)
	assert.Empty(t, home.RecentPosts)
}

func TestPortfolioService_Home(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Site.CreateSettings(ctx, &models.SiteSettings{SiteName: "Site", HeroTitle: "Hero"}))
	_, err := repos.Site.SaveAbout(ctx, "About me")
	require.NoError(t, err)
	for i, title := range []string{"A", "B", "C", "D"} {
		require.NoError(t, repos.Projects.Create(ctx, &models.Project{
			Title:            title,
			ShortDescription: "d",
			Featured:         true,
			Order:            4 - i,
		}))
	}
	seedPosts(t, repos, 5)

	home, err := NewPortfolioService(repos).Home(ctx)
	require.NoError(t, err)
	require.NotNil(t, home.Settings)
	assert.Equal(t, "Site", home.Settings.SiteName)
	require.NotNil(t, home.About)
	assert.Equal(t, "About me", home.About.Content)

	require.Len(t, home.FeaturedProjects, 3)
	assert.Equal(t, "D", home.FeaturedProjects[0].Title)
	assert.Equal(t, "C", home.FeaturedProjects[1].Title)
	assert.Len(t, home.Projects, 4)

	require.Len(t, home.RecentPosts, 3)
	assert.Equal(t, "Post 05", home.RecentPosts[0].Title)
}

func TestPortfolioService_ProjectDetail(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()
	p := &models.Project{
		Title:            "Wind Turbine",
		ShortDescription: "Small turbine",
		Technologies:     "CAD, Python ,  , FEA",
	}
	require.NoError(t, repos.Projects.Create(ctx, p))
	require.NoError(t, repos.Projects.AddImage(ctx, &models.ProjectImage{ProjectID: p.ID, Image: "blade.png", Caption: "Blade"}))

	svc := NewPortfolioService(repos)
	detail, err := svc.ProjectDetail(ctx, "wind-turbine")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAD", "Python", "FEA"}, detail.Project.Technologies)
	require.Len(t, detail.Images, 1)
	assert.Equal(t, "Blade", detail.Images[0].Caption)
	assert.Equal(t, "blade.png", detail.Project.CoverImage)

	_, err = svc.ProjectDetail(ctx, "missing")
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestPortfolioService_SkillsGrouped(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()
	for _, s := range []models.Skill{
		{Name: "Teamwork", Level: 90, Category: models.SkillCategorySoft},
		{Name: "CAD", Level: 80, Category: models.SkillCategoryEngineering},
		{Name: "Hydraulics", Level: 95, Category: models.SkillCategoryEngineering},
		{Name: "Python", Level: 70, Category: models.SkillCategoryProgramming},
		{Name: "Figma", Level: 99, Category: models.SkillCategoryDesign},
	} {
		s := s
		require.NoError(t, repos.Skills.Create(ctx, &s))
	}

	list, err := NewPortfolioService(repos).Skills(ctx)
	require.NoError(t, err)
	require.Len(t, list.Groups, 4)
	assert.Equal(t, models.SkillCategoryDesign, list.Groups[0].Category)
	assert.Equal(t, models.SkillCategoryEngineering, list.Groups[1].Category)
	assert.Equal(t, "Engineering", list.Groups[1].Label)
	require.Len(t, list.Groups[1].Skills, 2)
	assert.Equal(t, "Hydraulics", list.Groups[1].Skills[0].Name)
	assert.Equal(t, "CAD", list.Groups[1].Skills[1].Name)
	assert.Equal(t, models.SkillCategoryProgramming, list.Groups[2].Category)
	assert.Equal(t, models.SkillCategorySoft, list.Groups[3].Category)
}
