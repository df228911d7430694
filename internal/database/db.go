package database

import (
	"fmt"

	"warehouse-backend/internal/config"
	"warehouse-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The handle is
// returned rather than stored in a package variable; every service function
// takes it as an explicit parameter.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the transaction engine relies on when two
	// creates race for the same bin.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema. Order matters: parents before the
// tables that carry foreign keys to them.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.SKU{},
		&models.Rack{},
		&models.StorageBin{},
		&models.Item{},
		&models.Transaction{},
		&models.Request{},
		&models.EmailSubscriber{},
	)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
