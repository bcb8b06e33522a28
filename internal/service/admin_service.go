package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/markdown"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
	"portfolio/internal/views"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminTokenTTL is the lifetime of an operator token.
const AdminTokenTTL = 12 * time.Hour

// PostInput is a post as edited by the operator. A nil TagIDs leaves the tags
// of an existing post untouched; an empty list clears them.
type PostInput struct {
	models.Post
	TagIDs []uint `json:"tag_ids"`
}

// AdminService backs the operator's JSON API.
type AdminService struct {
	repos    Repositories
	cfg      *config.Config
	renderer *markdown.Renderer
	now      func() time.Time
}

func NewAdminService(repos Repositories, cfg *config.Config, renderer *markdown.Renderer) *AdminService {
	if renderer == nil {
		renderer = markdown.NewRenderer()
	}
	return &AdminService{repos: repos, cfg: cfg, renderer: renderer, now: time.Now}
}

// Login checks the operator credentials and issues a signed token.
func (s *AdminService) Login(_ context.Context, username, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" {
		return "", time.Time{}, models.NewUnauthorizedError("Admin login is not configured")
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password))
	if !userOK || passErr != nil {
		return "", time.Time{}, models.NewUnauthorizedError("Invalid credentials")
	}

	now := s.now()
	expires := now.Add(AdminTokenTTL)
	claims := jwt.MapClaims{
		"sub":  s.cfg.AdminUsername,
		"role": "admin",
		"iss":  "portfolio-api",
		"exp":  expires.Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"jti":  fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, models.NewInternalError(err)
	}
	return token, expires, nil
}

// Site settings

func (s *AdminService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.repos.Site.GetSettings(ctx)
	return settings, mapRepoError(err, "Site settings", "row")
}

// CreateSettings creates the settings row. Only one may ever exist.
func (s *AdminService) CreateSettings(ctx context.Context, in *models.SiteSettings) (*models.SiteSettings, error) {
	n, err := s.repos.Site.CountSettings(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if n > 0 {
		return nil, models.NewConflictError("Site settings already exist; edit the existing row", nil)
	}
	in.ID = 0
	in.ApplyDefaults()
	if err := validation.ValidateSettings(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Site.CreateSettings(ctx, in); err != nil {
		return nil, mapRepoError(err, "Site settings", "row")
	}
	return in, nil
}

func (s *AdminService) UpdateSettings(ctx context.Context, in *models.SiteSettings) (*models.SiteSettings, error) {
	current, err := s.repos.Site.GetSettings(ctx)
	if err != nil {
		return nil, mapRepoError(err, "Site settings", "row")
	}
	in.ID = current.ID
	in.CreatedAt = current.CreatedAt
	if err := validation.ValidateSettings(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Site.UpdateSettings(ctx, in); err != nil {
		return nil, mapRepoError(err, "Site settings", in.ID)
	}
	return in, nil
}

func (s *AdminService) DeleteSettings(ctx context.Context) error {
	current, err := s.repos.Site.GetSettings(ctx)
	if err != nil {
		return mapRepoError(err, "Site settings", "row")
	}
	return mapRepoError(s.repos.Site.DeleteSettings(ctx, current.ID), "Site settings", current.ID)
}

// About

func (s *AdminService) GetAbout(ctx context.Context) (*models.About, error) {
	about, err := s.repos.Site.GetAbout(ctx)
	return about, mapRepoError(err, "About", "row")
}

// SaveAbout replaces the biography, creating the row on first use.
func (s *AdminService) SaveAbout(ctx context.Context, content string) (*models.About, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewFieldValidationError(map[string]string{"content": "cannot be blank"})
	}
	about, err := s.repos.Site.SaveAbout(ctx, content)
	return about, mapRepoError(err, "About", "row")
}

// Skills

func (s *AdminService) ListSkills(ctx context.Context) ([]views.AdminSkill, error) {
	skills, err := s.repos.Skills.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return views.NewAdminSkills(skills), nil
}

func (s *AdminService) GetSkill(ctx context.Context, id uint) (*models.Skill, error) {
	skill, err := s.repos.Skills.GetByID(ctx, id)
	return skill, mapRepoError(err, "Skill", id)
}

func (s *AdminService) CreateSkill(ctx context.Context, in *models.Skill) (*models.Skill, error) {
	in.ID = 0
	if err := validation.ValidateSkill(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Skills.Create(ctx, in); err != nil {
		return nil, mapRepoError(err, "Skill", in.Name)
	}
	return in, nil
}

func (s *AdminService) UpdateSkill(ctx context.Context, id uint, in *models.Skill) (*models.Skill, error) {
	if _, err := s.repos.Skills.GetByID(ctx, id); err != nil {
		return nil, mapRepoError(err, "Skill", id)
	}
	in.ID = id
	if err := validation.ValidateSkill(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Skills.Update(ctx, in); err != nil {
		return nil, mapRepoError(err, "Skill", id)
	}
	return in, nil
}

func (s *AdminService) DeleteSkill(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Skills.Delete(ctx, id), "Skill", id)
}

// ResetSkillLevels sets every listed skill to the middle level.
func (s *AdminService) ResetSkillLevels(ctx context.Context, ids []uint) (int64, error) {
	n, err := s.repos.Skills.SetLevels(ctx, ids, models.ResetSkillLevel)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

// Projects

func (s *AdminService) ListProjects(ctx context.Context) ([]views.AdminProject, error) {
	projects, err := s.repos.Projects.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return views.NewAdminProjects(projects), nil
}

func (s *AdminService) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.repos.Projects.GetByID(ctx, id)
	return project, mapRepoError(err, "Project", id)
}

func (s *AdminService) CreateProject(ctx context.Context, in *models.Project) (*models.Project, error) {
	in.ID = 0
	in.Images = nil
	if err := validation.ValidateProject(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Projects.Create(ctx, in); err != nil {
		return nil, mapRepoError(err, "Project", in.Title)
	}
	return in, nil
}

// UpdateProject saves the editable columns. A blank slug keeps the stored one.
func (s *AdminService) UpdateProject(ctx context.Context, id uint, in *models.Project) (*models.Project, error) {
	current, err := s.repos.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Project", id)
	}
	in.ID = id
	in.CreatedAt = current.CreatedAt
	if in.Slug == "" {
		in.Slug = current.Slug
	}
	if err := validation.ValidateProject(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Projects.Update(ctx, in); err != nil {
		return nil, mapRepoError(err, "Project", id)
	}
	in.Images = current.Images
	return in, nil
}

func (s *AdminService) DeleteProject(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Projects.Delete(ctx, id), "Project", id)
}

func (s *AdminService) AddProjectImage(ctx context.Context, projectID uint, in *models.ProjectImage) (*models.ProjectImage, error) {
	in.ID = 0
	in.ProjectID = projectID
	if err := validation.ValidateProjectImage(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Projects.AddImage(ctx, in); err != nil {
		return nil, mapRepoError(err, "Project", projectID)
	}
	return in, nil
}

func (s *AdminService) DeleteProjectImage(ctx context.Context, projectID, imageID uint) error {
	return mapRepoError(s.repos.Projects.DeleteImage(ctx, projectID, imageID), "Project image", imageID)
}

// Education

func (s *AdminService) ListEducation(ctx context.Context) ([]models.Education, error) {
	out, err := s.repos.Profile.ListEducation(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return nonNil(out), nil
}

func (s *AdminService) GetEducation(ctx context.Context, id uint) (*models.Education, error) {
	e, err := s.repos.Profile.GetEducation(ctx, id)
	return e, mapRepoError(err, "Education", id)
}

func (s *AdminService) CreateEducation(ctx context.Context, in *models.Education) (*models.Education, error) {
	in.ID = 0
	if err := validation.ValidateEducation(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Profile.CreateEducation(ctx, in); err != nil {
		return nil, mapRepoError(err, "Education", in.Degree)
	}
	return in, nil
}

func (s *AdminService) UpdateEducation(ctx context.Context, id uint, in *models.Education) (*models.Education, error) {
	if _, err := s.repos.Profile.GetEducation(ctx, id); err != nil {
		return nil, mapRepoError(err, "Education", id)
	}
	in.ID = id
	if err := validation.ValidateEducation(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Profile.UpdateEducation(ctx, in); err != nil {
		return nil, mapRepoError(err, "Education", id)
	}
	return in, nil
}

func (s *AdminService) DeleteEducation(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Profile.DeleteEducation(ctx, id), "Education", id)
}

// Certifications

func (s *AdminService) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	out, err := s.repos.Profile.ListCertifications(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return nonNil(out), nil
}

func (s *AdminService) GetCertification(ctx context.Context, id uint) (*models.Certification, error) {
	c, err := s.repos.Profile.GetCertification(ctx, id)
	return c, mapRepoError(err, "Certification", id)
}

func (s *AdminService) CreateCertification(ctx context.Context, in *models.Certification) (*models.Certification, error) {
	in.ID = 0
	if err := validation.ValidateCertification(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Profile.CreateCertification(ctx, in); err != nil {
		return nil, mapRepoError(err, "Certification", in.Title)
	}
	return in, nil
}

func (s *AdminService) UpdateCertification(ctx context.Context, id uint, in *models.Certification) (*models.Certification, error) {
	if _, err := s.repos.Profile.GetCertification(ctx, id); err != nil {
		return nil, mapRepoError(err, "Certification", id)
	}
	in.ID = id
	if err := validation.ValidateCertification(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Profile.UpdateCertification(ctx, in); err != nil {
		return nil, mapRepoError(err, "Certification", id)
	}
	return in, nil
}

func (s *AdminService) DeleteCertification(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Profile.DeleteCertification(ctx, id), "Certification", id)
}

// Extracurriculars

func (s *AdminService) ListExtracurriculars(ctx context.Context) ([]models.Extracurricular, error) {
	out, err := s.repos.Profile.ListExtracurriculars(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return nonNil(out), nil
}

func (s *AdminService) GetExtracurricular(ctx context.Context, id uint) (*models.Extracurricular, error) {
	e, err := s.repos.Profile.GetExtracurricular(ctx, id)
	return e, mapRepoError(err, "Extracurricular", id)
}

func (s *AdminService) CreateExtracurricular(ctx context.Context, in *models.Extracurricular) (*models.Extracurricular, error) {
	in.ID = 0
	if err := validation.ValidateExtracurricular(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Profile.CreateExtracurricular(ctx, in); err != nil {
		return nil, mapRepoError(err, "Extracurricular", in.Title)
	}
	return in, nil
}

func (s *AdminService) UpdateExtracurricular(ctx context.Context, id uint, in *models.Extracurricular) (*models.Extracurricular, error) {
	if _, err := s.repos.Profile.GetExtracurricular(ctx, id); err != nil {
		return nil, mapRepoError(err, "Extracurricular", id)
	}
	in.ID = id
	if err := validation.ValidateExtracurricular(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Profile.UpdateExtracurricular(ctx, in); err != nil {
		return nil, mapRepoError(err, "Extracurricular", id)
	}
	return in, nil
}

func (s *AdminService) DeleteExtracurricular(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Profile.DeleteExtracurricular(ctx, id), "Extracurricular", id)
}

// Tags

func (s *AdminService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.repos.Tags.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return nonNil(tags), nil
}

func (s *AdminService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.repos.Tags.GetByID(ctx, id)
	return tag, mapRepoError(err, "Tag", id)
}

func (s *AdminService) CreateTag(ctx context.Context, in *models.Tag) (*models.Tag, error) {
	in.ID = 0
	if err := validation.ValidateTag(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Tags.Create(ctx, in); err != nil {
		return nil, mapRepoError(err, "Tag", in.Name)
	}
	return in, nil
}

func (s *AdminService) UpdateTag(ctx context.Context, id uint, in *models.Tag) (*models.Tag, error) {
	current, err := s.repos.Tags.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Tag", id)
	}
	in.ID = id
	if in.Slug == "" {
		in.Slug = current.Slug
	}
	if err := validation.ValidateTag(in); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Tags.Update(ctx, in); err != nil {
		return nil, mapRepoError(err, "Tag", id)
	}
	return in, nil
}

func (s *AdminService) DeleteTag(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Tags.Delete(ctx, id), "Tag", id)
}

// Posts

func (s *AdminService) ListPosts(ctx context.Context) ([]views.PostSummary, error) {
	posts, err := s.repos.Posts.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return views.NewPostSummaries(posts), nil
}

func (s *AdminService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.repos.Posts.GetByID(ctx, id)
	return post, mapRepoError(err, "Post", id)
}

// PreviewPost renders a post by slug whether or not it is published.
func (s *AdminService) PreviewPost(ctx context.Context, slug string) (*views.PostDetail, error) {
	post, err := s.repos.Posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, "Post", slug)
	}
	return renderPost(ctx, s.renderer, s.repos.Site, post)
}

// mapPostWriteError reports a missing row from SaveWithTags as an unknown tag;
// the post itself was either new or loaded just before the write.
func mapPostWriteError(err error, key interface{}, tagIDs []uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return models.NewNotFoundError("Tag", tagIDs)
	}
	return mapRepoError(err, "Post", key)
}

// CreatePost stores a new post and its tags in one write.
func (s *AdminService) CreatePost(ctx context.Context, in *PostInput) (*models.Post, error) {
	post := in.Post
	post.ID = 0
	post.Tags = nil
	if post.Author == "" {
		post.Author = s.cfg.DefaultPostAuthor
	}
	if err := validation.ValidatePost(&post); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Posts.SaveWithTags(ctx, &post, in.TagIDs); err != nil {
		return nil, mapPostWriteError(err, post.Title, in.TagIDs)
	}
	return s.GetPost(ctx, post.ID)
}

// UpdatePost saves the editable columns. A blank slug, author or published
// date keeps the stored value.
func (s *AdminService) UpdatePost(ctx context.Context, id uint, in *PostInput) (*models.Post, error) {
	current, err := s.repos.Posts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Post", id)
	}
	post := in.Post
	post.ID = id
	post.Tags = current.Tags
	if post.Slug == "" {
		post.Slug = current.Slug
	}
	if post.Author == "" {
		post.Author = current.Author
	}
	if post.PublishedDate.IsZero() {
		post.PublishedDate = current.PublishedDate
	}
	if err := validation.ValidatePost(&post); err != nil {
		return nil, invalid(err)
	}
	if err := s.repos.Posts.SaveWithTags(ctx, &post, in.TagIDs); err != nil {
		return nil, mapPostWriteError(err, id, in.TagIDs)
	}
	return s.GetPost(ctx, id)
}

func (s *AdminService) DeletePost(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Posts.Delete(ctx, id), "Post", id)
}

// Contact messages

func (s *AdminService) ListMessages(ctx context.Context) ([]views.AdminMessage, error) {
	messages, err := s.repos.Contact.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return views.NewAdminMessages(messages), nil
}

func (s *AdminService) GetMessage(ctx context.Context, id uint) (*views.AdminMessage, error) {
	msg, err := s.repos.Contact.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Message", id)
	}
	row := views.NewAdminMessage(*msg)
	return &row, nil
}

func (s *AdminService) DeleteMessage(ctx context.Context, id uint) error {
	return mapRepoError(s.repos.Contact.Delete(ctx, id), "Message", id)
}

// MarkMessages sets the read flag of every listed message and returns how
// many rows were changed.
func (s *AdminService) MarkMessages(ctx context.Context, ids []uint, read bool) (int64, error) {
	n, err := s.repos.Contact.SetRead(ctx, ids, read)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func (s *AdminService) UnreadMessages(ctx context.Context) (int64, error) {
	n, err := s.repos.Contact.CountUnread(ctx)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}
