// Command admin provides operator utilities: password hashing for
// ADMIN_PASSWORD_HASH and a quick look at the contact inbox.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin hash-password <password>   - Print a bcrypt hash for ADMIN_PASSWORD_HASH")
		fmt.Println("  go run ./cmd/admin inbox                      - Show total and unread contact messages")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "hash-password":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin hash-password <password>")
			os.Exit(1)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[2]), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(string(hash))

	case "inbox":
		showInbox()

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func showInbox() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	repo := repository.NewContactRepository(db)
	messages, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list messages: %v", err)
	}
	unread, err := repo.CountUnread(ctx)
	if err != nil {
		log.Fatalf("Failed to count unread messages: %v", err)
	}

	fmt.Printf("%d messages, %d unread\n", len(messages), unread)
	for _, m := range messages {
		marker := " "
		if !m.Read {
			marker = "*"
		}
		fmt.Printf("%s %4d  %s  %-24s %s\n", marker, m.ID, m.CreatedAt.Format("2006-01-02"), m.Email, m.Subject)
	}
}
