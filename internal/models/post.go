package models

import (
	"strings"
	"time"

	"portfolio/internal/derive"

	"gorm.io/gorm"
)

// DefaultPostAuthor is used when a post is saved without an author.
const DefaultPostAuthor = "Muwemi Ndovie"

// Post is a Markdown-authored blog post. MarkdownContent is the source of
// truth; HTML is rendered on read and never stored.
type Post struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Slug            string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Author          string    `gorm:"size:80;not null" json:"author"`
	MarkdownContent string    `gorm:"type:text;not null" json:"markdown_content"`
	Excerpt         string    `gorm:"type:text" json:"excerpt"`
	HeaderImage     string    `gorm:"size:255" json:"header_image,omitempty"`
	PublishedDate   time.Time `gorm:"not null;index" json:"published_date"`
	UpdatedDate     time.Time `gorm:"autoUpdateTime" json:"updated_date"`
	IsPublished     bool      `gorm:"not null;default:false;index" json:"is_published"`
	IsFeatured      bool      `gorm:"not null;default:false" json:"is_featured"`
	Tags            []Tag     `gorm:"many2many:post_tags;" json:"tags"`
}

// BeforeSave derives the slug and, when blank, the excerpt.
func (p *Post) BeforeSave(_ *gorm.DB) error {
	slug, err := derive.Slug(p.Title, p.Slug)
	if err != nil {
		return NewValidationError("Title cannot produce a slug")
	}
	p.Slug = slug

	if strings.TrimSpace(p.Excerpt) == "" && p.MarkdownContent != "" {
		p.Excerpt = derive.Excerpt(p.MarkdownContent)
	}
	return nil
}

// BeforeCreate applies the creation-time defaults.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.Author == "" {
		p.Author = DefaultPostAuthor
	}
	if p.PublishedDate.IsZero() {
		p.PublishedDate = time.Now().UTC()
	}
	return nil
}

// Tag labels posts. Name and slug are both unique.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
}

// BeforeSave derives the slug from the name the first time it is missing.
func (t *Tag) BeforeSave(_ *gorm.DB) error {
	slug, err := derive.Slug(t.Name, t.Slug)
	if err != nil {
		return NewValidationError("Name cannot produce a slug")
	}
	t.Slug = slug
	return nil
}
