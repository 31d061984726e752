package db

import (
	"eprasadam/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema.
// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},     // users
		&domain.Temple{},   // temples
		&domain.Prasadam{}, // prasadam
		&domain.Order{},    // orders
		&domain.Payment{},  // payments
	)
}
