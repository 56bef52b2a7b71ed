// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Market failures. The messages double as revert reasons shown to clients.
var (
	// ErrItemNotFound indicates an operation on an item id that was never listed.
	ErrItemNotFound = errors.New("item does not exist")

	// ErrIncorrectPayment indicates the attached value differs from the item price.
	ErrIncorrectPayment = errors.New("incorrect ETH amount sent")

	// ErrAlreadyPurchased indicates the (buyer, item) access grant already exists.
	ErrAlreadyPurchased = errors.New("already purchased")

	// ErrNotOwner indicates an admin call from an address other than the owner.
	ErrNotOwner = errors.New("caller is not the owner")

	// ErrInsufficientFunds indicates the caller balance cannot cover the attached value.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidFee indicates a platform fee percent outside 0..100.
	ErrInvalidFee = errors.New("invalid fee percent")

	// ErrInvalidAmount indicates a malformed or negative amount.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Session failures.
var (
	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrChallengeExpired indicates a missing, consumed or stale login challenge.
	ErrChallengeExpired = errors.New("challenge expired")
)
