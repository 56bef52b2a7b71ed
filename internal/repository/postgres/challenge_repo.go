package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/model"
	"github.com/and161185/unlockable/internal/repository"
)

// ChallengeRepo implements ChallengeRepository using PostgreSQL.
type ChallengeRepo struct {
	db  *DB
	now func() time.Time
}

// NewChallengeRepo constructs a challenge repository.
func NewChallengeRepo(db *DB) *ChallengeRepo { return &ChallengeRepo{db: db, now: time.Now} }

// Put prunes expired challenges of c.Address and inserts c unless the address
// already holds MaxOpenChallenges.
func (r *ChallengeRepo) Put(ctx context.Context, c model.Challenge) error {
	const prune = `DELETE FROM login_challenges WHERE address=$1 AND expires_at <= $2`
	const ins = `
INSERT INTO login_challenges (address, nonce, message, expires_at)
SELECT $1,$2,$3,$4
WHERE (SELECT count(*) FROM login_challenges WHERE address=$1) < $5`
	addr := c.Address.Hex()
	if _, err := r.db.Pool.Exec(ctx, prune, addr, r.now()); err != nil {
		return err
	}
	tag, err := r.db.Pool.Exec(ctx, ins, addr, c.Nonce, c.Message, c.ExpiresAt, repository.MaxOpenChallenges)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrRateLimited
	}
	return nil
}

// Take deletes the challenge row and returns it if still valid.
func (r *ChallengeRepo) Take(ctx context.Context, addr common.Address, nonce string) (model.Challenge, error) {
	const q = `DELETE FROM login_challenges WHERE address=$1 AND nonce=$2 RETURNING message, expires_at`
	c := model.Challenge{Address: addr, Nonce: nonce}
	if err := r.db.Pool.QueryRow(ctx, q, addr.Hex(), nonce).Scan(&c.Message, &c.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Challenge{}, errs.ErrChallengeExpired
		}
		return model.Challenge{}, err
	}
	if !r.now().Before(c.ExpiresAt) {
		return model.Challenge{}, errs.ErrChallengeExpired
	}
	return c, nil
}
