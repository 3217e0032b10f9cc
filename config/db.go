package config

import (
	"fmt"
	"os"

	"stillwithyou/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB initializes the database connection and runs migrations.
func BootDB() (*gorm.DB, error) {
	url := GetDatabaseURL()
	var err error

	db, err = gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	return db, nil
}

// autoMigrate creates the patients table. The unique index on email is the
// durable uniqueness constraint the rest of the system relies on.
func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Patient{}); err != nil {
		return fmt.Errorf("failed to migrate patient table: %w", err)
	}
	return nil
}
