// Package models contains data structures for the application's domain models.
package models

import "time"

// Default texts used when the singleton rows are first created.
const (
	DefaultSiteName     = "Muwemi's Portfolio"
	DefaultHeroTitle    = "Mechanical Engineering Innovator"
	DefaultHeroSubtitle = "Specializing in hydraulic systems, automation, and sustainable energy solutions"
	DefaultAboutContent = "I am a goal-oriented mechanical engineering student with a passion for problem-solving and innovation..."
)

// SiteSettings is the single configuration row for the public site.
// At most one row may exist; the admin service rejects a second create.
type SiteSettings struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SiteName      string    `gorm:"size:64;not null" json:"site_name"`
	HeroTitle     string    `gorm:"size:128;not null" json:"hero_title"`
	HeroSubtitle  string    `gorm:"type:text" json:"hero_subtitle"`
	AboutTitle    string    `gorm:"size:128" json:"about_title"`
	AboutSubtitle string    `gorm:"type:text" json:"about_subtitle"`
	ProfileImage  *string   `gorm:"size:255" json:"profile_image,omitempty"`
	Resume        *string   `gorm:"size:255" json:"resume,omitempty"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName pins the table name so it stays singular-looking in SQL.
func (SiteSettings) TableName() string {
	return "site_settings"
}

// ApplyDefaults fills blank text fields with the site defaults.
func (s *SiteSettings) ApplyDefaults() {
	if s.SiteName == "" {
		s.SiteName = DefaultSiteName
	}
	if s.HeroTitle == "" {
		s.HeroTitle = DefaultHeroTitle
	}
	if s.HeroSubtitle == "" {
		s.HeroSubtitle = DefaultHeroSubtitle
	}
}

// About holds the biography shown on the home page. One row by convention.
type About struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable.
func (About) TableName() string {
	return "about"
}
