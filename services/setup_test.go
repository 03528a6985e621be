package services_test

import (
	"path/filepath"
	"testing"

	"peer2learn/config"
	"peer2learn/database"
	"peer2learn/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with the schema migrated and
// the course catalog seeded, mirroring what ConnectDb does at startup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{SaltRound: bcrypt.MinCost}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Course{}, &models.Enrollment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := database.SeedCourses(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	return db
}
