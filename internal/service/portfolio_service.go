package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/views"
)

const (
	// FeaturedProjectsLimit caps the featured projects on the home page.
	FeaturedProjectsLimit = 3
	// RecentPostsLimit caps the recent posts on the home page.
	RecentPostsLimit = 3
)

// Repositories groups the data access dependencies of the services.
type Repositories struct {
	Site     repository.SiteRepository
	Skills   repository.SkillRepository
	Projects repository.ProjectRepository
	Profile  repository.ProfileRepository
	Posts    repository.PostRepository
	Tags     repository.TagRepository
	Contact  repository.ContactRepository
}

// PortfolioService assembles the home, projects and skills pages.
type PortfolioService struct {
	repos Repositories
}

func NewPortfolioService(repos Repositories) *PortfolioService {
	return &PortfolioService{repos: repos}
}

// siteSettings returns the settings row, or nil when it was never created.
func siteSettings(ctx context.Context, repo repository.SiteRepository) (*models.SiteSettings, error) {
	return optional(repo.GetSettings(ctx))
}

// Home gathers everything shown on the landing page.
func (s *PortfolioService) Home(ctx context.Context) (*views.Home, error) {
	settings, err := siteSettings(ctx, s.repos.Site)
	if err != nil {
		return nil, err
	}
	about, err := optional(s.repos.Site.GetAbout(ctx))
	if err != nil {
		return nil, err
	}
	skills, err := s.repos.Skills.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	featured, err := s.repos.Projects.Featured(ctx, FeaturedProjectsLimit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	projects, err := s.repos.Projects.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	education, err := s.repos.Profile.ListEducation(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	certifications, err := s.repos.Profile.ListCertifications(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	extracurriculars, err := s.repos.Profile.ListExtracurriculars(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	recent, err := s.repos.Posts.ListPublished(ctx, RecentPostsLimit, 0)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &views.Home{
		Settings:         settings,
		About:            about,
		Skills:           nonNil(skills),
		FeaturedProjects: views.NewProjectSummaries(featured),
		Projects:         views.NewProjectSummaries(projects),
		Education:        nonNil(education),
		Certifications:   nonNil(certifications),
		Extracurriculars: nonNil(extracurriculars),
		RecentPosts:      views.NewPostSummaries(recent),
	}, nil
}

// Projects lists every project, featured first.
func (s *PortfolioService) Projects(ctx context.Context) (*views.ProjectList, error) {
	settings, err := siteSettings(ctx, s.repos.Site)
	if err != nil {
		return nil, err
	}
	projects, err := s.repos.Projects.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &views.ProjectList{
		Projects: views.NewProjectSummaries(projects),
		Settings: settings,
	}, nil
}

// ProjectDetail returns one project by slug. Projects have no publish state.
func (s *PortfolioService) ProjectDetail(ctx context.Context, slug string) (*views.ProjectDetail, error) {
	project, err := s.repos.Projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, "Project", slug)
	}
	settings, err := siteSettings(ctx, s.repos.Site)
	if err != nil {
		return nil, err
	}
	detail := views.NewProjectDetail(*project, settings)
	return &detail, nil
}

// Skills returns the skills matrix grouped by category.
func (s *PortfolioService) Skills(ctx context.Context) (*views.SkillList, error) {
	settings, err := siteSettings(ctx, s.repos.Site)
	if err != nil {
		return nil, err
	}
	skills, err := s.repos.Skills.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &views.SkillList{
		Groups:   views.GroupSkills(skills),
		Settings: settings,
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
