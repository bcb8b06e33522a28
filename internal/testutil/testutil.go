// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"context"
	"sync"
	"testing"

	"portfolio/internal/database"
	"portfolio/internal/notifications"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NotifierStub records every dispatched notification and fails with Err when set.
type NotifierStub struct {
	mu   sync.Mutex
	Err  error
	sent []notifications.ContactNotification
}

// NotifyContact records n and returns s.Err.
func (s *NotifierStub) NotifyContact(_ context.Context, n notifications.ContactNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return s.Err
}

// Sent returns a copy of the recorded notifications.
func (s *NotifierStub) Sent() []notifications.ContactNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notifications.ContactNotification(nil), s.sent...)
}

// NewTestDB opens a private in-memory SQLite database with the full schema.
// The pool is pinned to one connection because each new connection to
// :memory: would see an empty database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
