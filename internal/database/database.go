package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"valorant-coach-service/internal/domain"
)

// Open establishes the primary store connection. gorm's *DB pools
// connections and is safe for concurrent use, so it is created once and
// shared.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Match{},
		&domain.PracticeSession{},
		&domain.Strategy{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
