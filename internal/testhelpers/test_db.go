package testhelpers

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learntrack/internal/model"
)

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated. Each test gets its own database keyed by test name.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.UserStats{},
		&model.LessonProgress{},
		&model.Achievement{},
		&model.TestResult{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
