// Package service contains application services for wallet sessions and the market ledger.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/and161185/unlockable/internal/crypto"
	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/limiter"
	"github.com/and161185/unlockable/internal/model"
	"github.com/and161185/unlockable/internal/repository"
)

// AuthService defines the wallet sign-in flow.
type AuthService interface {
	// Challenge issues a single-use message for addr to sign.
	Challenge(ctx context.Context, addr common.Address) (model.Challenge, error)
	// LoginWithIP verifies the signed challenge (addr, nonce) with rate limiting
	// and issues a token.
	LoginWithIP(ctx context.Context, addr common.Address, nonce, signature, ip string) (model.Tokens, error)
}

// AuthConfig holds session parameters.
type AuthConfig struct {
	SignKey      []byte
	AccessTTL    time.Duration
	ChallengeTTL time.Duration
	ChainID      int64
}

type AuthServiceImpl struct {
	challenges repository.ChallengeRepository
	lim        limiter.Limiter
	cfg        AuthConfig
	now        func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(challenges repository.ChallengeRepository, lim limiter.Limiter, cfg AuthConfig) *AuthServiceImpl {
	if cfg.ChallengeTTL <= 0 {
		cfg.ChallengeTTL = 5 * time.Minute
	}
	return &AuthServiceImpl{challenges: challenges, lim: lim, cfg: cfg, now: time.Now}
}

// Challenge stores a fresh nonce for addr. Earlier open challenges stay valid.
func (s *AuthServiceImpl) Challenge(ctx context.Context, addr common.Address) (model.Challenge, error) {
	if addr == (common.Address{}) {
		return model.Challenge{}, errors.New("validation: empty address")
	}
	nonce, err := uuid.NewV4()
	if err != nil {
		return model.Challenge{}, err
	}
	exp := s.now().Add(s.cfg.ChallengeTTL).UTC()
	c := model.Challenge{
		Address:   addr,
		Nonce:     nonce.String(),
		Message:   challengeMessage(addr, s.cfg.ChainID, nonce.String(), exp),
		ExpiresAt: exp,
	}
	if err := s.challenges.Put(ctx, c); err != nil {
		return model.Challenge{}, err
	}
	return c, nil
}

func challengeMessage(addr common.Address, chainID int64, nonce string, exp time.Time) string {
	return fmt.Sprintf("unlockable wants you to sign in with your Ethereum account:\n%s\n\nChain ID: %d\nNonce: %s\nExpiration Time: %s",
		addr.Hex(), chainID, nonce, exp.Format(time.RFC3339))
}

// LoginWithIP authenticates with rate limiting by (address, ip).
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, addr common.Address, nonce, signature, ip string) (model.Tokens, error) {
	ipHash := limiter.HashIP(ip)
	account := addr.Hex()

	allowed, _, err := s.lim.Allow(ctx, account, ipHash)
	if err != nil {
		return model.Tokens{}, err
	}
	if !allowed {
		return model.Tokens{}, errs.ErrRateLimited
	}

	c, err := s.challenges.Take(ctx, addr, nonce)
	if err == nil {
		err = pkgcrypto.VerifyText(addr, []byte(c.Message), signature)
	}
	if err != nil {
		if blocked, _, ferr := s.lim.Failure(ctx, account, ipHash); ferr == nil && blocked {
			return model.Tokens{}, errs.ErrRateLimited
		}
		if errors.Is(err, errs.ErrChallengeExpired) {
			return model.Tokens{}, err
		}
		return model.Tokens{}, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, account, ipHash)

	access, exp, err := s.issueAccessToken(addr)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, nil
}

// issueAccessToken creates a signed HS256 JWT whose subject is the address.
func (s *AuthServiceImpl) issueAccessToken(addr common.Address) (string, time.Time, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", time.Time{}, err
	}
	now := s.now()
	exp := now.Add(s.cfg.AccessTTL)
	claims := jwt.RegisteredClaims{
		ID:        jti.String(),
		Subject:   addr.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.cfg.SignKey)
	return signed, exp, err
}
