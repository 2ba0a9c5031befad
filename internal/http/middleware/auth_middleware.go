package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/observability"
	"valorant-coach-service/internal/repository"
	"valorant-coach-service/internal/security"
	"valorant-coach-service/internal/service"
)

type contextKey string

const (
	ClaimsContextKey contextKey = "claims"
	UserContextKey   contextKey = "user"
)

// AuthMiddleware resolves the bearer token to an active user. Cryptographic
// failures (missing, malformed, expired, revoked) surface as a generic 401;
// an inactive account is a distinct 400 because the credential itself was
// valid.
func AuthMiddleware(jwtMgr *security.JWTManager, users repository.UserRepository, blacklist service.TokenBlacklist) func(http.Handler) http.Handler {
	if blacklist == nil {
		blacklist = service.NoopTokenBlacklist{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				observability.RecordAccessTokenValidation(r.Context(), "missing")
				unauthorized(w, r, "missing access token")
				return
			}
			claims, err := jwtMgr.ParseAccessToken(raw)
			if err != nil {
				observability.RecordAccessTokenValidation(r.Context(), "invalid")
				unauthorized(w, r, "could not validate credentials")
				return
			}
			if blacklist.IsRevoked(r.Context(), claims.ID) {
				observability.RecordAccessTokenValidation(r.Context(), "revoked")
				unauthorized(w, r, "could not validate credentials")
				return
			}
			user, err := users.FindByUsername(claims.Subject)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					observability.RecordAccessTokenValidation(r.Context(), "unknown_subject")
					unauthorized(w, r, "could not validate credentials")
					return
				}
				observability.RecordAccessTokenValidation(r.Context(), "error")
				response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
				return
			}
			if !user.IsActive {
				observability.RecordAccessTokenValidation(r.Context(), "inactive")
				response.Error(w, r, http.StatusBadRequest, "INACTIVE_USER", "inactive user", nil)
				return
			}
			observability.RecordAccessTokenValidation(r.Context(), "valid")
			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			ctx = context.WithValue(ctx, UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	c, ok := ctx.Value(ClaimsContextKey).(*security.Claims)
	return c, ok
}

func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(UserContextKey).(*domain.User)
	return u, ok
}
