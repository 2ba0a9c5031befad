package repository

import (
	"errors"
	"testing"
)

func TestUserRepositoryFindByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	created := createTestUser(t, db, "testcoach")

	found, err := repo.FindByUsername("testcoach")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != created.ID || found.Email != "testcoach@example.com" {
		t.Fatalf("unexpected user %+v", found)
	}

	if _, err := repo.FindByUsername("nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	created := createTestUser(t, db, "testcoach")

	found, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Username != "testcoach" {
		t.Fatalf("unexpected user %+v", found)
	}

	if _, err := repo.FindByID(created.ID + 100); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryExistsByUsernameOrEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "testcoach")

	cases := []struct {
		name     string
		username string
		email    string
		want     bool
	}{
		{"both taken", "testcoach", "testcoach@example.com", true},
		{"username taken", "testcoach", "other@example.com", true},
		{"email taken", "other", "testcoach@example.com", true},
		{"both free", "other", "other@example.com", false},
	}
	for _, tc := range cases {
		got, err := repo.ExistsByUsernameOrEmail(tc.username, tc.email)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestUserRepositoryRejectsDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "testcoach")

	dupe := createTestUserRecord("testcoach", "different@example.com")
	if err := repo.Create(dupe); err == nil {
		t.Fatal("expected unique index violation for duplicate username")
	}
}
