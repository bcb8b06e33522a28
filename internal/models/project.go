package models

import (
	"strings"
	"time"

	"portfolio/internal/derive"

	"gorm.io/gorm"
)

// Project is a showcase entry. Technologies is stored comma-delimited and
// must be read through TechnologiesList.
type Project struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"size:128;not null" json:"title"`
	Slug             string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ShortDescription string         `gorm:"type:text;not null" json:"short_description"`
	LongDescription  string         `gorm:"type:text" json:"long_description"`
	Featured         bool           `gorm:"not null;default:false;index" json:"featured"`
	Technologies     string         `gorm:"size:200" json:"technologies"`
	GithubURL        string         `gorm:"size:255" json:"github_url,omitempty"`
	DemoURL          string         `gorm:"size:255" json:"demo_url,omitempty"`
	Order            int            `gorm:"column:sort_order;not null;default:0" json:"order"`
	CompletionDate   *time.Time     `gorm:"type:date" json:"completion_date,omitempty"`
	Images           []ProjectImage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt        time.Time      `json:"-"`
	UpdatedAt        time.Time      `json:"-"`
}

// BeforeSave derives the slug from the title the first time it is missing.
func (p *Project) BeforeSave(_ *gorm.DB) error {
	slug, err := derive.Slug(p.Title, p.Slug)
	if err != nil {
		return NewValidationError("Title cannot produce a slug")
	}
	p.Slug = slug
	return nil
}

// TechnologiesList parses the comma-delimited technologies column.
func (p *Project) TechnologiesList() []string {
	parts := strings.Split(p.Technologies, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if tech := strings.TrimSpace(part); tech != "" {
			out = append(out, tech)
		}
	}
	return out
}

// ProjectImage is a captioned image owned by a Project.
type ProjectImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Image     string `gorm:"size:255;not null" json:"image"`
	Caption   string `gorm:"size:140" json:"caption,omitempty"`
}
