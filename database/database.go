package database

import (
	"log"
	"strings"

	"peer2learn/config"
	"peer2learn/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// DefaultCatalog is the fixed course catalog seeded on first startup.
var DefaultCatalog = []string{"Matematika", "Ingliz tili", "Fizika", "Dasturlash"}

// ConnectDb opens the database selected by DATABASE_URL (postgres or mysql),
// falling back to the embedded sqlite file when it is unset, then runs
// migrations and seeds the course catalog before any request is served.
func ConnectDb() {
	db, err := gorm.Open(openDialector(), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	if err := SeedCourses(db); err != nil {
		log.Fatalf("Failed to seed course catalog: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// openDialector picks the GORM driver from the DATABASE_URL scheme.
func openDialector() gorm.Dialector {
	dsn := config.AppConfig.DatabaseURL
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn)
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.Open(strings.TrimPrefix(dsn, "mysql://"))
	default:
		return sqlite.Open(config.AppConfig.DBName)
	}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedCourses inserts the default catalog if the course table is empty.
// The count check and the insert share one transaction so that the seed
// runs exactly once per store, no matter how many times the process starts.
func SeedCourses(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Course{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		courses := make([]models.Course, 0, len(DefaultCatalog))
		for _, name := range DefaultCatalog {
			courses = append(courses, models.Course{Name: name})
		}
		log.Printf("Seeding course catalog (%d courses)...", len(courses))
		return tx.Create(&courses).Error
	})
}
