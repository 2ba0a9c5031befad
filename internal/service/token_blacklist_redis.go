package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"valorant-coach-service/internal/observability"
)

type RedisTokenBlacklist struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisTokenBlacklist(client redis.UniversalClient, prefix string) *RedisTokenBlacklist {
	if prefix == "" {
		prefix = "blacklist"
	}
	return &RedisTokenBlacklist{client: client, prefix: prefix}
}

// Revoke stores the token id with a TTL matching the token's remaining
// lifetime, so entries expire exactly when the token would anyway. Failures
// are logged and swallowed.
func (b *RedisTokenBlacklist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) {
	if b.client == nil || tokenID == "" {
		return
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if err := b.client.Set(ctx, b.key(tokenID), "1", ttl).Err(); err != nil {
		observability.RecordBlacklistDegraded(ctx, "revoke")
		slog.WarnContext(ctx, "token blacklist unavailable, revocation dropped", "error", err.Error())
	}
}

// IsRevoked answers false when the store is absent or unreachable: an
// unreachable blacklist degrades to natural-expiry-only, never to a hard
// failure.
func (b *RedisTokenBlacklist) IsRevoked(ctx context.Context, tokenID string) bool {
	if b.client == nil || tokenID == "" {
		return false
	}
	_, err := b.client.Get(ctx, b.key(tokenID)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		observability.RecordBlacklistDegraded(ctx, "is_revoked")
		slog.WarnContext(ctx, "token blacklist unavailable, treating token as not revoked", "error", err.Error())
		return false
	}
	return true
}

func (b *RedisTokenBlacklist) key(tokenID string) string {
	return b.prefix + ":" + tokenID
}
