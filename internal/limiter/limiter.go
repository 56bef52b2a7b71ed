// Package limiter defines interfaces and implementations for login rate limiting.
// Attempts are counted per (account, client IP) pair, where account is the
// checksummed wallet address the client claims to own.
package limiter

import (
	"context"
	"crypto/sha256"
	"time"
)

// Limiter controls login attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether login is currently allowed and optional retry-after.
	Allow(ctx context.Context, account string, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, account string, ipHash []byte) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, account string, ipHash []byte) (bool, time.Duration, error)
}

// Settings holds the sliding window parameters shared by every implementation.
type Settings struct {
	Window   time.Duration
	MaxFails int
	BlockFor time.Duration
}

// DefaultSettings allows five failures in fifteen minutes.
var DefaultSettings = Settings{Window: 15 * time.Minute, MaxFails: 5, BlockFor: 15 * time.Minute}

// HashIP returns a stable hash for an IP string to avoid storing raw addresses.
func HashIP(ip string) []byte {
	h := sha256.Sum256([]byte(ip))
	return h[:]
}
