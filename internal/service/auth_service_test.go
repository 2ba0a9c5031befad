package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/repository"
	"valorant-coach-service/internal/security"
)

type inMemoryUserRepo struct {
	mu     sync.Mutex
	nextID uint
	byName map[string]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{nextID: 1, byName: map[string]*domain.User{}}
}

func (r *inMemoryUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	cp.ID = r.nextID
	cp.CreatedAt = time.Now()
	r.nextID++
	r.byName[cp.Username] = &cp
	*u = cp
	return nil
}

func (r *inMemoryUserRepo) FindByID(id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byName {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *inMemoryUserRepo) FindByUsername(username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byName[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byName {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type recordingBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newRecordingBlacklist() *recordingBlacklist {
	return &recordingBlacklist{revoked: map[string]time.Time{}}
}

func (b *recordingBlacklist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[tokenID] = expiresAt
}

func (b *recordingBlacklist) IsRevoked(_ context.Context, tokenID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.revoked[tokenID]
	return ok
}

func newTestAuthService(blacklist TokenBlacklist) (*AuthService, *inMemoryUserRepo) {
	repo := newInMemoryUserRepo()
	jwtMgr := security.NewJWTManager(
		"valorant-coach",
		"abcdefghijklmnopqrstuvwxyz123456",
		"abcdefghijklmnopqrstuvwxyz654321",
	)
	svc := NewAuthService(repo, security.NewPasswordHasher(4), jwtMgr, blacklist, 15*time.Minute, 24*time.Hour)
	return svc, repo
}

func registerTestUser(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	user, err := svc.Register(RegisterInput{
		Username: "testcoach",
		Email:    "t@x.com",
		Password: "Str0ngPass!",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestAuthService(nil)
	user := registerTestUser(t, svc)

	if user.PasswordHash == "Str0ngPass!" {
		t.Fatal("password must not be stored in plaintext")
	}
	stored, err := repo.FindByUsername("testcoach")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.PasswordHash != user.PasswordHash {
		t.Fatal("stored hash mismatch")
	}
	if !stored.IsActive {
		t.Fatal("new users start active")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newTestAuthService(nil)
	registerTestUser(t, svc)

	_, err := svc.Register(RegisterInput{Username: "testcoach", Email: "other@x.com", Password: "Str0ngPass!"})
	if !errors.Is(err, ErrUserConflict) {
		t.Fatalf("expected ErrUserConflict for duplicate username, got %v", err)
	}
	_, err = svc.Register(RegisterInput{Username: "othercoach", Email: "t@x.com", Password: "Str0ngPass!"})
	if !errors.Is(err, ErrUserConflict) {
		t.Fatalf("expected ErrUserConflict for duplicate email, got %v", err)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"short username", RegisterInput{Username: "ab", Email: "t@x.com", Password: "Str0ngPass!"}},
		{"bad email", RegisterInput{Username: "testcoach", Email: "not-an-email", Password: "Str0ngPass!"}},
		{"short password", RegisterInput{Username: "testcoach", Email: "t@x.com", Password: "short"}},
	}
	for _, tc := range cases {
		_, err := svc.Register(tc.in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := newTestAuthService(nil)
	user := registerTestUser(t, svc)

	pair, err := svc.Login("testcoach", "Str0ngPass!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}
	if pair.TokenType != "bearer" {
		t.Fatalf("unexpected token type %q", pair.TokenType)
	}
	if pair.UserID != user.ID || pair.Username != "testcoach" {
		t.Fatalf("unexpected identity in pair: %+v", pair)
	}
	if !pair.ExpiresAt.After(time.Now()) {
		t.Fatal("expires_at must be in the future")
	}
}

func TestLoginFailsUniformly(t *testing.T) {
	svc, _ := newTestAuthService(nil)
	registerTestUser(t, svc)

	if _, err := svc.Login("testcoach", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody", "Str0ngPass!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshMintsNewPair(t *testing.T) {
	svc, _ := newTestAuthService(nil)
	registerTestUser(t, svc)
	pair, err := svc.Login("testcoach", "Str0ngPass!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatal("expected a fresh token pair")
	}
	if fresh.Username != "testcoach" {
		t.Fatalf("unexpected subject %q", fresh.Username)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService(nil)
	registerTestUser(t, svc)
	pair, err := svc.Login("testcoach", "Str0ngPass!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("access token in refresh slot: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshConsumesTokenWhenBlacklistPresent(t *testing.T) {
	bl := newRecordingBlacklist()
	svc, _ := newTestAuthService(bl)
	registerTestUser(t, svc)
	pair, err := svc.Login("testcoach", "Str0ngPass!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("replayed refresh token: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutBlacklistsAccessToken(t *testing.T) {
	bl := newRecordingBlacklist()
	svc, _ := newTestAuthService(bl)
	registerTestUser(t, svc)
	pair, err := svc.Login("testcoach", "Str0ngPass!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	jwtMgr := security.NewJWTManager(
		"valorant-coach",
		"abcdefghijklmnopqrstuvwxyz123456",
		"abcdefghijklmnopqrstuvwxyz654321",
	)
	claims, err := jwtMgr.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}

	svc.Logout(context.Background(), claims)
	if !bl.IsRevoked(context.Background(), claims.ID) {
		t.Fatal("expected access token id to be blacklisted after logout")
	}
}
