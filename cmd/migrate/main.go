// Command migrate runs schema operations for the portfolio database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"portfolio/internal/config"
	"portfolio/internal/database"

	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// The command decides when the schema is touched.
	cfg.AutoMigrate = false

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	ctx := context.Background()
	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "up":
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		log.Println("schema up to date")
	case "status":
		missing := 0
		for _, model := range database.PersistentModels() {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return fmt.Errorf("parse model: %w", err)
			}
			if db.Migrator().HasTable(model) {
				log.Printf("present: %s", stmt.Schema.Table)
			} else {
				missing++
				log.Printf("missing: %s", stmt.Schema.Table)
			}
		}
		log.Printf("models=%d missing=%d", len(database.PersistentModels()), missing)
	default:
		return usage()
	}
	return nil
}
