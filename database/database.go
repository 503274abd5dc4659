package database

import (
	"coursepanel/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the local SQLite database and runs migrations.
// The handle is returned to the caller instead of stored globally so the
// content store can be wired explicitly through main.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&models.ContentRecord{}); err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
