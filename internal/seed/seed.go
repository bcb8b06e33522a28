// Package seed loads the initial portfolio content and generates demo posts
// for development databases.
package seed

import (
	_ "embed"
	"fmt"
	"log"
	"time"

	"portfolio/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed portfolio.yml
var portfolioYAML []byte

const dateLayout = "2006-01-02"

// Fixture is the on-disk shape of a portfolio seed file.
type Fixture struct {
	Site             fixtureSite        `yaml:"site"`
	About            string             `yaml:"about"`
	Skills           []fixtureSkill     `yaml:"skills"`
	Projects         []fixtureProject   `yaml:"projects"`
	Education        []fixtureEducation `yaml:"education"`
	Certifications   []fixtureCert      `yaml:"certifications"`
	Extracurriculars []fixtureActivity  `yaml:"extracurriculars"`
	Tags             []string           `yaml:"tags"`
	Posts            []fixturePost      `yaml:"posts"`
}

type fixtureSite struct {
	SiteName      string `yaml:"site_name"`
	HeroTitle     string `yaml:"hero_title"`
	HeroSubtitle  string `yaml:"hero_subtitle"`
	AboutTitle    string `yaml:"about_title"`
	AboutSubtitle string `yaml:"about_subtitle"`
}

type fixtureSkill struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Category string `yaml:"category"`
	Order    int    `yaml:"order"`
}

type fixtureImage struct {
	Image   string `yaml:"image"`
	Caption string `yaml:"caption"`
}

type fixtureProject struct {
	Title            string         `yaml:"title"`
	ShortDescription string         `yaml:"short_description"`
	LongDescription  string         `yaml:"long_description"`
	Featured         bool           `yaml:"featured"`
	Technologies     string         `yaml:"technologies"`
	GithubURL        string         `yaml:"github_url"`
	DemoURL          string         `yaml:"demo_url"`
	Order            int            `yaml:"order"`
	CompletionDate   string         `yaml:"completion_date"`
	Images           []fixtureImage `yaml:"images"`
}

type fixtureEducation struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
	Current     bool   `yaml:"current"`
	Order       int    `yaml:"order"`
}

type fixtureCert struct {
	Title         string `yaml:"title"`
	Issuer        string `yaml:"issuer"`
	IssueDate     string `yaml:"issue_date"`
	CredentialURL string `yaml:"credential_url"`
	InProgress    bool   `yaml:"in_progress"`
}

type fixtureActivity struct {
	Title        string `yaml:"title"`
	Organization string `yaml:"organization"`
	Role         string `yaml:"role"`
	Period       string `yaml:"period"`
	Description  string `yaml:"description"`
	Current      bool   `yaml:"current"`
	Order        int    `yaml:"order"`
}

type fixturePost struct {
	Title         string   `yaml:"title"`
	Excerpt       string   `yaml:"excerpt"`
	Content       string   `yaml:"content"`
	PublishedDate string   `yaml:"published_date"`
	Published     bool     `yaml:"published"`
	Featured      bool     `yaml:"featured"`
	Tags          []string `yaml:"tags"`
}

// Counts reports how many rows of each kind a seed run inserted.
type Counts struct {
	Skills           int
	Projects         int
	Images           int
	Education        int
	Certifications   int
	Extracurriculars int
	Tags             int
	Posts            int
}

// LoadFixture parses a portfolio seed file.
func LoadFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse portfolio fixture: %w", err)
	}
	return &f, nil
}

// DefaultFixture returns the portfolio bundled with the binary.
func DefaultFixture() (*Fixture, error) {
	return LoadFixture(portfolioYAML)
}

// Portfolio seeds the bundled portfolio into an empty database. A database
// that already has site settings is left alone and nil counts are returned.
func Portfolio(db *gorm.DB) (*Counts, error) {
	f, err := DefaultFixture()
	if err != nil {
		return nil, err
	}
	return PortfolioFrom(db, f)
}

// PortfolioFrom seeds f into an empty database in one transaction.
func PortfolioFrom(db *gorm.DB, f *Fixture) (*Counts, error) {
	var existing int64
	if err := db.Model(&models.SiteSettings{}).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("check site settings: %w", err)
	}
	if existing > 0 {
		log.Println("Portfolio already seeded, skipping")
		return nil, nil
	}

	counts := &Counts{}
	err := db.Transaction(func(tx *gorm.DB) error {
		site := models.SiteSettings{
			SiteName:      f.Site.SiteName,
			HeroTitle:     f.Site.HeroTitle,
			HeroSubtitle:  f.Site.HeroSubtitle,
			AboutTitle:    f.Site.AboutTitle,
			AboutSubtitle: f.Site.AboutSubtitle,
		}
		site.ApplyDefaults()
		if err := tx.Create(&site).Error; err != nil {
			return fmt.Errorf("site settings: %w", err)
		}

		about := models.About{Content: f.About}
		if about.Content == "" {
			about.Content = models.DefaultAboutContent
		}
		if err := tx.Create(&about).Error; err != nil {
			return fmt.Errorf("about: %w", err)
		}

		if err := seedSkills(tx, f.Skills, counts); err != nil {
			return err
		}
		if err := seedProjects(tx, f.Projects, counts); err != nil {
			return err
		}
		if err := seedProfile(tx, f, counts); err != nil {
			return err
		}
		return seedPosts(tx, f, counts)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Seeded portfolio: %d skills, %d projects, %d posts", counts.Skills, counts.Projects, counts.Posts)
	return counts, nil
}

func seedSkills(tx *gorm.DB, skills []fixtureSkill, counts *Counts) error {
	for _, s := range skills {
		skill := models.Skill{
			Name:     s.Name,
			Level:    s.Level,
			Category: models.SkillCategory(s.Category),
			Order:    s.Order,
		}
		if !skill.Category.Valid() {
			return fmt.Errorf("skill %q: unknown category %q", s.Name, s.Category)
		}
		if err := tx.Create(&skill).Error; err != nil {
			return fmt.Errorf("skill %q: %w", s.Name, err)
		}
		counts.Skills++
	}
	return nil
}

func seedProjects(tx *gorm.DB, projects []fixtureProject, counts *Counts) error {
	for _, p := range projects {
		completed, err := parseDate(p.CompletionDate)
		if err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
		project := models.Project{
			Title:            p.Title,
			ShortDescription: p.ShortDescription,
			LongDescription:  p.LongDescription,
			Featured:         p.Featured,
			Technologies:     p.Technologies,
			GithubURL:        p.GithubURL,
			DemoURL:          p.DemoURL,
			Order:            p.Order,
			CompletionDate:   completed,
		}
		for _, img := range p.Images {
			project.Images = append(project.Images, models.ProjectImage{Image: img.Image, Caption: img.Caption})
		}
		if err := tx.Create(&project).Error; err != nil {
			return fmt.Errorf("project %q: %w", p.Title, err)
		}
		counts.Projects++
		counts.Images += len(project.Images)
	}
	return nil
}

func seedProfile(tx *gorm.DB, f *Fixture, counts *Counts) error {
	for _, e := range f.Education {
		row := models.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			Period:      e.Period,
			Description: e.Description,
			Current:     e.Current,
			Order:       e.Order,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("education %q: %w", e.Degree, err)
		}
		counts.Education++
	}

	for _, c := range f.Certifications {
		issued, err := parseDate(c.IssueDate)
		if err != nil {
			return fmt.Errorf("certification %q: %w", c.Title, err)
		}
		row := models.Certification{
			Title:         c.Title,
			Issuer:        c.Issuer,
			IssueDate:     issued,
			CredentialURL: c.CredentialURL,
			InProgress:    c.InProgress,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("certification %q: %w", c.Title, err)
		}
		counts.Certifications++
	}

	for _, a := range f.Extracurriculars {
		row := models.Extracurricular{
			Title:        a.Title,
			Organization: a.Organization,
			Role:         a.Role,
			Period:       a.Period,
			Description:  a.Description,
			Current:      a.Current,
			Order:        a.Order,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("extracurricular %q: %w", a.Title, err)
		}
		counts.Extracurriculars++
	}
	return nil
}

func seedPosts(tx *gorm.DB, f *Fixture, counts *Counts) error {
	tags := make(map[string]models.Tag, len(f.Tags))
	for _, name := range f.Tags {
		tag := models.Tag{Name: name}
		if err := tx.Create(&tag).Error; err != nil {
			return fmt.Errorf("tag %q: %w", name, err)
		}
		tags[name] = tag
		counts.Tags++
	}

	for _, p := range f.Posts {
		published, err := parseDate(p.PublishedDate)
		if err != nil {
			return fmt.Errorf("post %q: %w", p.Title, err)
		}
		post := models.Post{
			Title:           p.Title,
			Excerpt:         p.Excerpt,
			MarkdownContent: p.Content,
			IsPublished:     p.Published,
			IsFeatured:      p.Featured,
		}
		if published != nil {
			post.PublishedDate = *published
		}
		for _, name := range p.Tags {
			tag, ok := tags[name]
			if !ok {
				return fmt.Errorf("post %q: unknown tag %q", p.Title, name)
			}
			post.Tags = append(post.Tags, tag)
		}
		if err := tx.Create(&post).Error; err != nil {
			return fmt.Errorf("post %q: %w", p.Title, err)
		}
		counts.Posts++
	}
	return nil
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return &t, nil
}
