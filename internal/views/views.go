// Package views defines the typed view models returned for each public page
// and the computed rows of the admin listings.
package views

import (
	"time"

	"portfolio/internal/markdown"
	"portfolio/internal/models"
)

// TagView is a tag as shown next to a post.
type TagView struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostSummary is a post card in lists.
type PostSummary struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Author        string    `json:"author"`
	Excerpt       string    `json:"excerpt"`
	HeaderImage   string    `json:"header_image,omitempty"`
	PublishedDate time.Time `json:"published_date"`
	IsFeatured    bool      `json:"is_featured"`
	Tags          []TagView `json:"tags"`
}

// NewPostSummary builds the card for p.
func NewPostSummary(p models.Post) PostSummary {
	tags := make([]TagView, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, TagView{Name: t.Name, Slug: t.Slug})
	}
	return PostSummary{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Author:        p.Author,
		Excerpt:       p.Excerpt,
		HeaderImage:   p.HeaderImage,
		PublishedDate: p.PublishedDate,
		IsFeatured:    p.IsFeatured,
		Tags:          tags,
	}
}

// NewPostSummaries maps posts to cards, never returning nil.
func NewPostSummaries(posts []models.Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostSummary(p))
	}
	return out
}

// ProjectSummary is a project card in lists.
type ProjectSummary struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ShortDescription string     `json:"short_description"`
	Featured         bool       `json:"featured"`
	Technologies     []string   `json:"technologies"`
	GithubURL        string     `json:"github_url,omitempty"`
	DemoURL          string     `json:"demo_url,omitempty"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	CoverImage       string     `json:"cover_image,omitempty"`
}

// NewProjectSummary builds the card for p. The first image, if any, is the cover.
func NewProjectSummary(p models.Project) ProjectSummary {
	s := ProjectSummary{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		Featured:         p.Featured,
		Technologies:     p.TechnologiesList(),
		GithubURL:        p.GithubURL,
		DemoURL:          p.DemoURL,
		CompletionDate:   p.CompletionDate,
	}
	if len(p.Images) > 0 {
		s.CoverImage = p.Images[0].Image
	}
	return s
}

// NewProjectSummaries maps projects to cards, never returning nil.
func NewProjectSummaries(projects []models.Project) []ProjectSummary {
	out := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectSummary(p))
	}
	return out
}

// Home is the landing page.
type Home struct {
	Settings         *models.SiteSettings     `json:"site_settings"`
	About            *models.About            `json:"about"`
	Skills           []models.Skill           `json:"skills"`
	FeaturedProjects []ProjectSummary         `json:"featured_projects"`
	Projects         []ProjectSummary         `json:"all_projects"`
	Education        []models.Education       `json:"education"`
	Certifications   []models.Certification   `json:"certifications"`
	Extracurriculars []models.Extracurricular `json:"extracurriculars"`
	RecentPosts      []PostSummary            `json:"recent_posts"`
}

// Pagination describes the page returned out of a longer list.
type Pagination struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	HasPrevious  bool  `json:"has_previous"`
	HasNext      bool  `json:"has_next"`
	PreviousPage int   `json:"previous_page,omitempty"`
	NextPage     int   `json:"next_page,omitempty"`
}

// BlogList is one page of the blog index.
type BlogList struct {
	Posts         []PostSummary        `json:"posts"`
	FeaturedPosts []PostSummary        `json:"featured_posts"`
	Pagination    Pagination           `json:"pagination"`
	Settings      *models.SiteSettings `json:"site_settings"`
}

// PostDetail is a published post with its rendered body.
type PostDetail struct {
	Post     PostSummary          `json:"post"`
	Content  string               `json:"post_content"`
	TOC      []markdown.Heading   `json:"toc"`
	Updated  time.Time            `json:"updated_date"`
	Settings *models.SiteSettings `json:"site_settings"`
}

// ProjectImageView is one captioned gallery image.
type ProjectImageView struct {
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// ProjectDetail is the full page of one project.
type ProjectDetail struct {
	Project         ProjectSummary       `json:"project"`
	LongDescription string               `json:"long_description"`
	Images          []ProjectImageView   `json:"images"`
	Settings        *models.SiteSettings `json:"site_settings"`
}

// NewProjectDetail builds the detail page for p.
func NewProjectDetail(p models.Project, settings *models.SiteSettings) ProjectDetail {
	images := make([]ProjectImageView, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProjectImageView{Image: img.Image, Caption: img.Caption})
	}
	return ProjectDetail{
		Project:         NewProjectSummary(p),
		LongDescription: p.LongDescription,
		Images:          images,
		Settings:        settings,
	}
}

// ProjectList is the projects page.
type ProjectList struct {
	Projects []ProjectSummary     `json:"projects"`
	Settings *models.SiteSettings `json:"site_settings"`
}

// SkillGroup is the skills of one category.
type SkillGroup struct {
	Category models.SkillCategory `json:"category"`
	Label    string               `json:"label"`
	Skills   []models.Skill       `json:"skills"`
}

// SkillList is the skills page, grouped by category.
type SkillList struct {
	Groups   []SkillGroup         `json:"groups"`
	Settings *models.SiteSettings `json:"site_settings"`
}

// GroupSkills splits skills, already in natural order, into one group per
// category. Groups follow the order in which their category first appears, so
// the list order decides the group order too. Empty categories are left out
// and the order inside each group is preserved.
func GroupSkills(skills []models.Skill) []SkillGroup {
	index := make(map[models.SkillCategory]int, len(models.SkillCategories))
	groups := make([]SkillGroup, 0, len(models.SkillCategories))
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category, Label: s.Category.Label()})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
