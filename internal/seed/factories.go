package seed

import (
	"fmt"
	"log"
	"strings"
	"time"

	"portfolio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DemoTagName labels every generated post so they can be found and removed.
const DemoTagName = "Demo"

// FactoryOptions tune demo content generation.
type FactoryOptions struct {
	// Seed makes output reproducible; zero seeds from the clock.
	Seed int64
	// MaxDays spreads published dates over this many past days.
	MaxDays int
	// DraftRatio is the share of posts left unpublished, 0..1.
	DraftRatio float64
	DryRun     bool
}

// Factory builds demo blog posts and persists them.
type Factory struct {
	db    *gorm.DB
	opts  FactoryOptions
	faker *gofakeit.Faker
	now   time.Time
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a Factory bound to db.
func NewFactory(db *gorm.DB, opts FactoryOptions) *Factory {
	if opts.MaxDays <= 0 {
		opts.MaxDays = 365
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{
		db:     db,
		opts:   opts,
		faker:  gofakeit.New(seed),
		now:    time.Now().UTC(),
		nextID: 1000,
	}
}

// BuildPost returns an unsaved post with a Markdown body made of a few
// headed sections. Overrides run last.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) *models.Post {
	title := strings.TrimSuffix(f.faker.Sentence(f.faker.Number(3, 7)), ".")

	var body strings.Builder
	sections := f.faker.Number(2, 4)
	for i := 0; i < sections; i++ {
		heading := strings.TrimSuffix(f.faker.Sentence(f.faker.Number(2, 4)), ".")
		fmt.Fprintf(&body, "## %s\n\n", heading)
		body.WriteString(f.faker.Paragraph(1, f.faker.Number(2, 5), 12, "\n\n"))
		body.WriteString("\n\n")
		if f.faker.Bool() {
			fmt.Fprintf(&body, "- %s\n- %s\n\n", f.faker.HackerPhrase(), f.faker.HackerPhrase())
		}
	}

	daysBack := f.faker.Number(0, f.opts.MaxDays)
	post := &models.Post{
		Title:           title,
		MarkdownContent: strings.TrimSpace(body.String()),
		PublishedDate:   f.now.AddDate(0, 0, -daysBack).Truncate(time.Hour),
		IsPublished:     f.faker.Float64Range(0, 1) >= f.opts.DraftRatio,
		IsFeatured:      f.faker.Number(1, 10) == 1,
	}
	if f.faker.Bool() {
		post.HeaderImage = fmt.Sprintf("https://picsum.photos/seed/%s/1200/600", f.faker.UUID())
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists posts in a single insert, tagging each with the
// demo tag.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	if len(posts) == 0 {
		return nil
	}

	tag := models.Tag{Name: DemoTagName}
	if err := f.db.Where(models.Tag{Name: DemoTagName}).FirstOrCreate(&tag).Error; err != nil {
		return fmt.Errorf("demo tag: %w", err)
	}
	for _, p := range posts {
		p.Tags = append(p.Tags, tag)
	}
	return f.db.Create(&posts).Error
}

// DemoPosts builds and stores n posts.
func (f *Factory) DemoPosts(n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	titles := make(map[string]bool, n)
	for len(posts) < n {
		p := f.BuildPost()
		// Titles drive slugs, which must be unique.
		if titles[p.Title] {
			continue
		}
		titles[p.Title] = true
		posts = append(posts, p)
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return nil, fmt.Errorf("create demo posts: %w", err)
	}
	return posts, nil
}

// ClearDemoPosts removes every post carrying the demo tag.
func ClearDemoPosts(db *gorm.DB) (int64, error) {
	var tag models.Tag
	err := db.Where("name = ?", DemoTagName).Limit(1).Find(&tag).Error
	if err != nil || tag.ID == 0 {
		return 0, err
	}

	var ids []uint
	if err := db.Table("post_tags").Where("tag_id = ?", tag.ID).Pluck("post_id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var removed int64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id IN ?", ids).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Post{})
		removed = res.RowsAffected
		return res.Error
	})
	return removed, err
}
