package service

import (
	"context"
	"strconv"

	"portfolio/internal/markdown"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/views"
)

const (
	// BlogPageSize is the number of posts per blog index page.
	BlogPageSize = 6
	// FeaturedPostsLimit caps the featured posts beside the index.
	FeaturedPostsLimit = 3
)

// BlogService serves the published side of the blog.
type BlogService struct {
	repos    Repositories
	renderer *markdown.Renderer
}

func NewBlogService(repos Repositories, renderer *markdown.Renderer) *BlogService {
	if renderer == nil {
		renderer = markdown.NewRenderer()
	}
	return &BlogService{repos: repos, renderer: renderer}
}

// ParsePage reads a raw page parameter. Anything that is not a positive
// integer means the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// paginate clamps page into [1, last page]. An empty list has one empty page.
func paginate(page int, total int64) views.Pagination {
	totalPages := int((total + BlogPageSize - 1) / BlogPageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	p := views.Pagination{
		Page:        page,
		PageSize:    BlogPageSize,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
	if p.HasPrevious {
		p.PreviousPage = page - 1
	}
	if p.HasNext {
		p.NextPage = page + 1
	}
	return p
}

// List returns one page of published posts, newest first.
func (s *BlogService) List(ctx context.Context, page int) (*views.BlogList, error) {
	total, err := s.repos.Posts.CountPublished(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	pagination := paginate(page, total)

	posts, err := s.repos.Posts.ListPublished(ctx, BlogPageSize, (pagination.Page-1)*BlogPageSize)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	featured, err := s.repos.Posts.FeaturedPublished(ctx, FeaturedPostsLimit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	settings, err := siteSettings(ctx, s.repos.Site)
	if err != nil {
		return nil, err
	}

	return &views.BlogList{
		Posts:         views.NewPostSummaries(posts),
		FeaturedPosts: views.NewPostSummaries(featured),
		Pagination:    pagination,
		Settings:      settings,
	}, nil
}

// Detail renders a published post. Drafts are reported as not found.
func (s *BlogService) Detail(ctx context.Context, slug string) (*views.PostDetail, error) {
	post, err := s.repos.Posts.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, "Post", slug)
	}
	return renderPost(ctx, s.renderer, s.repos.Site, post)
}

// renderPost builds the detail view of post with its body rendered.
func renderPost(ctx context.Context, renderer *markdown.Renderer, site repository.SiteRepository, post *models.Post) (*views.PostDetail, error) {
	doc, err := renderer.Render(post.MarkdownContent)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	settings, err := siteSettings(ctx, site)
	if err != nil {
		return nil, err
	}
	return &views.PostDetail{
		Post:     views.NewPostSummary(*post),
		Content:  doc.HTML,
		TOC:      doc.TOC,
		Updated:  post.UpdatedDate,
		Settings: settings,
	}, nil
}
