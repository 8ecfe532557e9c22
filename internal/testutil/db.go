// Package testutil holds database fixtures, response assertions and container helpers shared by tests
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/pantrydb/internal/database"
	"gorm.io/gorm"
)

// NewTestDB creates a migrated in-memory SQLite database with foreign keys enforced.
// The pool is held at one connection so every query sees the same in-memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), "silent")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close(db)
	})

	return db
}
