package db

import (
	"fmt"
	"storyapp/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. TranslateError is on
// so unique-index violations surface as gorm.ErrDuplicatedKey; the indexes
// on users.email and users.username are the real uniqueness guarantee,
// application-level pre-checks are only an optimization.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Story{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return gdb, nil
}
