// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/unlockable/internal/model"
)

// MarketRepository is the ledger state container. Every mutating method is
// applied atomically: on error no part of it is observable.
type MarketRepository interface {
	// Init creates the fee configuration if none exists yet.
	Init(ctx context.Context, owner common.Address, feePercent uint8) error

	// CreateItem stores a new item under the next sequential id and emits ItemListed.
	CreateItem(ctx context.Context, publisher common.Address, title, description string, price *big.Int) (model.Item, error)
	// GetItem returns an item by id or errs.ErrItemNotFound.
	GetItem(ctx context.Context, id uint64) (model.Item, error)
	// NextItemID returns the id the next listing will receive.
	NextItemID(ctx context.Context) (uint64, error)

	// Purchase moves value from buyer to publisher and fee owner and grants access.
	Purchase(ctx context.Context, buyer common.Address, itemID uint64, value *big.Int) (model.Receipt, error)
	// HasAccess reports whether account bought itemID.
	HasAccess(ctx context.Context, account common.Address, itemID uint64) (bool, error)

	// FeeConfig returns the current owner and fee percent.
	FeeConfig(ctx context.Context) (model.FeeConfig, error)
	// SetFeePercent replaces the fee percent if caller is the owner.
	SetFeePercent(ctx context.Context, caller common.Address, pct uint8) error
	// TransferOwnership hands the fee configuration to next if caller is the owner.
	TransferOwnership(ctx context.Context, caller, next common.Address) error

	// Deposit credits account and returns the new balance.
	Deposit(ctx context.Context, account common.Address, amount *big.Int) (*big.Int, error)
	// Balance returns the account balance (zero for unknown accounts).
	Balance(ctx context.Context, account common.Address) (*big.Int, error)

	// EventsSince returns up to limit events with seq > since, ascending.
	EventsSince(ctx context.Context, since int64, limit int) ([]model.Event, error)
}
