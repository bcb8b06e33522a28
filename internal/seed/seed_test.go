package seed

import (
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixture_Parses(t *testing.T) {
	f, err := DefaultFixture()
	require.NoError(t, err)

	assert.NotEmpty(t, f.Site.SiteName)
	assert.NotEmpty(t, f.About)
	assert.NotEmpty(t, f.Skills)
	assert.NotEmpty(t, f.Projects)
	for _, s := range f.Skills {
		assert.True(t, models.SkillCategory(s.Category).Valid(), "skill %s", s.Name)
	}
}

func TestPortfolio_SeedsOnce(t *testing.T) {
	db := testutil.NewTestDB(t)

	counts, err := Portfolio(db)
	require.NoError(t, err)
	require.NotNil(t, counts)
	assert.Equal(t, 10, counts.Skills)
	assert.Equal(t, 3, counts.Projects)
	assert.Equal(t, 2, counts.Images)
	assert.Equal(t, 3, counts.Posts)

	var post models.Post
	require.NoError(t, db.Preload("Tags").Where("slug = ?", "why-seals-fail-early").First(&post).Error)
	assert.True(t, post.IsPublished)
	assert.Len(t, post.Tags, 2)
	assert.Equal(t, 2024, post.PublishedDate.Year())

	var draft models.Post
	require.NoError(t, db.Where("slug = ?", "drafting-a-gearbox-teardown").First(&draft).Error)
	assert.False(t, draft.IsPublished)
	assert.NotEmpty(t, draft.Excerpt)

	again, err := Portfolio(db)
	require.NoError(t, err)
	assert.Nil(t, again)

	var settings int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&settings).Error)
	assert.EqualValues(t, 1, settings)
}

func TestPortfolioFrom_RollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)

	f, err := LoadFixture([]byte(`
site:
  site_name: Broken
skills:
  - {name: Juggling, level: 50, category: CIRCUS}
`))
	require.NoError(t, err)

	_, err = PortfolioFrom(db, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")

	var settings int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&settings).Error)
	assert.Zero(t, settings)
}

func TestPortfolioFrom_DefaultsBlankSite(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := PortfolioFrom(db, &Fixture{})
	require.NoError(t, err)

	var settings models.SiteSettings
	require.NoError(t, db.First(&settings).Error)
	assert.Equal(t, models.DefaultSiteName, settings.SiteName)

	var about models.About
	require.NoError(t, db.First(&about).Error)
	assert.Equal(t, models.DefaultAboutContent, about.Content)
}

func TestLoadFixture_BadDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	f, err := LoadFixture([]byte("posts:\n  - {title: Dated, content: body, published_date: 01/02/2024}\n"))
	require.NoError(t, err)

	_, err = PortfolioFrom(db, f)
	assert.ErrorContains(t, err, "invalid date")
}
