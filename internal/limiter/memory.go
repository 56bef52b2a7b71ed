package limiter

import (
	"context"
	"sync"
	"time"
)

type memKey struct {
	account string
	ip      string
}

type memEntry struct {
	fails        int
	blockedUntil time.Time
	updatedAt    time.Time
}

// Memory is an in-process limiter used together with the memory repositories.
type Memory struct {
	mu      sync.Mutex
	entries map[memKey]*memEntry
	now     func() time.Time
	Settings
}

// NewMemory constructs an in-process limiter.
func NewMemory(s Settings) *Memory {
	return &Memory{entries: make(map[memKey]*memEntry), now: time.Now, Settings: s}
}

// Allow reports whether login is currently allowed and a retry-after duration.
func (l *Memory) Allow(_ context.Context, account string, ipHash []byte) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[memKey{account, string(ipHash)}]
	if !ok {
		return true, 0, nil
	}
	if now := l.now(); e.blockedUntil.After(now) {
		return false, e.blockedUntil.Sub(now), nil
	}
	return true, 0, nil
}

// Success resets counters for (account, ip).
func (l *Memory) Success(_ context.Context, account string, ipHash []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, memKey{account, string(ipHash)})
	return nil
}

// Failure records a failed attempt. A gap longer than Window restarts the count.
func (l *Memory) Failure(_ context.Context, account string, ipHash []byte) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	k := memKey{account, string(ipHash)}
	e, ok := l.entries[k]
	if !ok || now.Sub(e.updatedAt) > l.Window {
		e = &memEntry{}
		l.entries[k] = e
	}
	e.fails++
	e.updatedAt = now
	if e.fails >= l.MaxFails {
		e.blockedUntil = now.Add(l.BlockFor)
		return true, l.BlockFor, nil
	}
	return false, 0, nil
}
