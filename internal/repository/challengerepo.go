package repository

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/unlockable/internal/model"
)

// MaxOpenChallenges caps the unexpired challenges one address may hold. Issuing
// a new one never evicts an older one.
const MaxOpenChallenges = 8

// ChallengeRepository keeps outstanding login challenges keyed by (address, nonce).
type ChallengeRepository interface {
	// Put stores c next to the other open challenges of c.Address. It fails
	// with errs.ErrRateLimited once MaxOpenChallenges unexpired ones exist.
	Put(ctx context.Context, c model.Challenge) error
	// Take removes and returns the challenge (addr, nonce) or errs.ErrChallengeExpired.
	Take(ctx context.Context, addr common.Address, nonce string) (model.Challenge, error)
}
