package database

import (
	"path/filepath"
	"testing"

	"peer2learn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T, path string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	runMigrations(db)
	return db
}

func TestSeedCourses_SeedsDefaultCatalog(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "seed.db"))

	require.NoError(t, SeedCourses(db))

	var courses []models.Course
	require.NoError(t, db.Order("id asc").Find(&courses).Error)
	require.Len(t, courses, len(DefaultCatalog))
	for i, course := range courses {
		assert.Equal(t, DefaultCatalog[i], course.Name)
	}
}

// Seeding against an already-seeded store is a no-op: two startups against
// the same file leave 4 courses, not 8.
func TestSeedCourses_IdempotentAcrossStartups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")

	db := openTestDB(t, path)
	require.NoError(t, SeedCourses(db))

	// Simulate a second process startup on the same persisted store.
	db2 := openTestDB(t, path)
	require.NoError(t, SeedCourses(db2))

	var count int64
	require.NoError(t, db2.Model(&models.Course{}).Count(&count).Error)
	assert.EqualValues(t, len(DefaultCatalog), count)
}

func TestSeedCourses_LeavesExistingCatalogAlone(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "seed.db"))

	require.NoError(t, db.Create(&models.Course{Name: "Kimyo"}).Error)
	require.NoError(t, SeedCourses(db))

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a non-empty catalog must not be re-seeded")
}
