// Command seed loads the bundled portfolio and optional demo posts.
package main

import (
	"flag"
	"log"

	"portfolio/internal/bootstrap"
	"portfolio/internal/config"
	"portfolio/internal/seed"
)

func main() {
	demoPosts := flag.Int("demo-posts", 0, "Number of generated demo posts to add")
	drafts := flag.Float64("draft-ratio", 0.2, "Share of demo posts left unpublished")
	clearDemo := flag.Bool("clear-demo", false, "Remove previously generated demo posts first")
	skipPortfolio := flag.Bool("skip-portfolio", false, "Do not load the bundled portfolio")
	dryRun := flag.Bool("dry-run", false, "Build demo posts without writing them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.AutoMigrate = true

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedPortfolio: !*skipPortfolio})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if *clearDemo {
		removed, err := seed.ClearDemoPosts(db)
		if err != nil {
			log.Fatalf("Demo cleanup failed: %v", err)
		}
		log.Printf("Removed %d demo posts", removed)
	}

	if *demoPosts > 0 {
		f := seed.NewFactory(db, seed.FactoryOptions{DraftRatio: *drafts, DryRun: *dryRun})
		posts, err := f.DemoPosts(*demoPosts)
		if err != nil {
			log.Fatalf("Demo seeding failed: %v", err)
		}
		log.Printf("Created %d demo posts", len(posts))
	}

	log.Println("Seeding complete")
}
