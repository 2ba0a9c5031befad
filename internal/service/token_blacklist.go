package service

import (
	"context"
	"time"
)

// TokenBlacklist tracks token ids that were invalidated before their natural
// expiry. Implementations are best-effort: a revocation that cannot be
// stored is dropped, and a lookup that cannot be answered reports
// not-revoked. The request path never fails because the store is down.
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time)
	IsRevoked(ctx context.Context, tokenID string) bool
}

// NoopTokenBlacklist is used when no revocation store is configured.
// Tokens then expire naturally.
type NoopTokenBlacklist struct{}

func (NoopTokenBlacklist) Revoke(context.Context, string, time.Time) {}

func (NoopTokenBlacklist) IsRevoked(context.Context, string) bool { return false }
