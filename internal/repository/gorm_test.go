package repository

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"valorant-coach-service/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Match{}, &domain.PracticeSession{}, &domain.Strategy{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestUserRecord(username, email string) *domain.User {
	return &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		IsActive:     true,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		IsActive:     true,
	}
	if err := NewUserRepository(db).Create(u); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}
