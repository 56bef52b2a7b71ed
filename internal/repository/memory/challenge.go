package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/model"
	"github.com/and161185/unlockable/internal/repository"
)

// Challenges is an in-memory ChallengeRepository.
type Challenges struct {
	mu  sync.Mutex
	m   map[common.Address]map[string]model.Challenge
	now func() time.Time
}

// NewChallenges constructs an empty challenge store.
func NewChallenges() *Challenges {
	return &Challenges{m: make(map[common.Address]map[string]model.Challenge), now: time.Now}
}

// Put adds c to the open challenges of c.Address, dropping expired ones first.
func (s *Challenges) Put(_ context.Context, c model.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	open := s.m[c.Address]
	if open == nil {
		open = make(map[string]model.Challenge)
		s.m[c.Address] = open
	}
	now := s.now()
	for n, old := range open {
		if !now.Before(old.ExpiresAt) {
			delete(open, n)
		}
	}
	if len(open) >= repository.MaxOpenChallenges {
		return errs.ErrRateLimited
	}
	open[c.Nonce] = c
	return nil
}

// Take consumes the challenge (addr, nonce). Expired challenges are dropped.
func (s *Challenges) Take(_ context.Context, addr common.Address, nonce string) (model.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	open := s.m[addr]
	c, ok := open[nonce]
	if !ok {
		return model.Challenge{}, errs.ErrChallengeExpired
	}
	delete(open, nonce)
	if len(open) == 0 {
		delete(s.m, addr)
	}
	if !s.now().Before(c.ExpiresAt) {
		return model.Challenge{}, errs.ErrChallengeExpired
	}
	return c, nil
}
