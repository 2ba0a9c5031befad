package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/repository"
	"valorant-coach-service/internal/security"
)

var (
	// ErrInvalidCredentials covers bad passwords and invalid, expired,
	// wrong-purpose or revoked tokens alike. The caller never learns which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserConflict       = errors.New("username or email already exists")
	ErrInactiveUser       = errors.New("inactive user")
)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in RegisterInput) validate() error {
	f := fieldErrors{}
	requireLength(f, "username", in.Username, 3, 32)
	if _, err := mail.ParseAddress(in.Email); err != nil || len(in.Email) > 128 {
		f.add("email", "must be a valid email address")
	}
	if len(in.Password) < 8 {
		f.add("password", "must be at least 8 characters")
	}
	return f.err()
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
}

type AuthService struct {
	users      repository.UserRepository
	hasher     *security.PasswordHasher
	jwtMgr     *security.JWTManager
	blacklist  TokenBlacklist
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(
	users repository.UserRepository,
	hasher *security.PasswordHasher,
	jwtMgr *security.JWTManager,
	blacklist TokenBlacklist,
	accessTTL, refreshTTL time.Duration,
) *AuthService {
	if blacklist == nil {
		blacklist = NoopTokenBlacklist{}
	}
	return &AuthService{
		users:      users,
		hasher:     hasher,
		jwtMgr:     jwtMgr,
		blacklist:  blacklist,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Register(in RegisterInput) (*domain.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	taken, err := s.users.ExistsByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserConflict
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.mintTokenPair(user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The consumed
// refresh token's id is blacklisted best-effort so it cannot be replayed
// while the revocation store is reachable.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtMgr.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if s.blacklist.IsRevoked(ctx, claims.ID) {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindByUsername(claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	pair, err := s.mintTokenPair(user)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt != nil {
		s.blacklist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
	}
	return pair, nil
}

// Logout blacklists the presented access token until its natural expiry.
// Without a revocation store this is a no-op and the token simply ages out.
func (s *AuthService) Logout(ctx context.Context, claims *security.Claims) {
	if claims == nil || claims.ExpiresAt == nil {
		return
	}
	s.blacklist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *AuthService) mintTokenPair(user *domain.User) (*TokenPair, error) {
	access, err := s.jwtMgr.SignAccessToken(user.Username, user.ID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMgr.SignRefreshToken(user.Username, user.ID, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(s.accessTTL),
		UserID:       user.ID,
		Username:     user.Username,
	}, nil
}
