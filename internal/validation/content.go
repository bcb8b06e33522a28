package validation

import (
	"portfolio/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var skillCategoryRule = validation.By(func(value any) error {
	c, _ := value.(models.SkillCategory)
	if c == "" || c.Valid() {
		return nil
	}
	return validation.NewError("validation_skill_category", "must be one of ENG, PROG, DESIGN, SOFT")
})

// ValidateSettings checks the site settings row.
func ValidateSettings(s *models.SiteSettings) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.SiteName, validation.Required, validation.RuneLength(0, 64)),
		validation.Field(&s.HeroTitle, validation.Required, validation.RuneLength(0, 128)),
		validation.Field(&s.AboutTitle, validation.RuneLength(0, 128)),
	)
}

// ValidateSkill checks a skill.
func ValidateSkill(s *models.Skill) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required, validation.RuneLength(0, 64)),
		validation.Field(&s.Level, validation.Min(models.MinSkillLevel), validation.Max(models.MaxSkillLevel)),
		validation.Field(&s.Category, skillCategoryRule),
		validation.Field(&s.Order, validation.Min(0)),
	)
}

// ValidateProject checks a project.
func ValidateProject(p *models.Project) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(0, 128)),
		validation.Field(&p.Slug, slugRule),
		validation.Field(&p.ShortDescription, validation.Required),
		validation.Field(&p.Technologies, validation.RuneLength(0, 200)),
		validation.Field(&p.GithubURL, is.URL),
		validation.Field(&p.DemoURL, is.URL),
		validation.Field(&p.Order, validation.Min(0)),
	)
}

// ValidateProjectImage checks a gallery image.
func ValidateProjectImage(img *models.ProjectImage) error {
	return validation.ValidateStruct(img,
		validation.Field(&img.Image, validation.Required, validation.RuneLength(0, 255)),
		validation.Field(&img.Caption, validation.RuneLength(0, 140)),
	)
}

// ValidatePost checks a post.
func ValidatePost(p *models.Post) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&p.Slug, slugRule),
		validation.Field(&p.Author, validation.RuneLength(0, 80)),
		validation.Field(&p.MarkdownContent, validation.Required),
	)
}

// ValidateTag checks a tag.
func ValidateTag(t *models.Tag) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Name, validation.Required, validation.RuneLength(0, 50)),
		validation.Field(&t.Slug, slugRule),
	)
}

// ValidateEducation checks an education entry.
func ValidateEducation(e *models.Education) error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Degree, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&e.Institution, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&e.Period, validation.Required, validation.RuneLength(0, 100)),
	)
}

// ValidateCertification checks a certification.
func ValidateCertification(c *models.Certification) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&c.Issuer, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&c.CredentialURL, is.URL),
	)
}

// ValidateExtracurricular checks an extracurricular entry.
func ValidateExtracurricular(e *models.Extracurricular) error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Title, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&e.Organization, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&e.Role, validation.RuneLength(0, 100)),
		validation.Field(&e.Period, validation.Required, validation.RuneLength(0, 100)),
	)
}
