package service

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/events"
	"github.com/and161185/unlockable/internal/ledger"
	"github.com/and161185/unlockable/internal/model"
	"github.com/and161185/unlockable/internal/repository"
)

// MarketService defines the ledger operations exposed to clients.
type MarketService interface {
	// ListItem registers a new item owned by publisher.
	ListItem(ctx context.Context, publisher common.Address, title, description string, price *big.Int) (model.Item, error)
	// PurchaseItem pays exactly the item price and grants access to buyer.
	PurchaseItem(ctx context.Context, buyer common.Address, itemID uint64, value *big.Int) (model.Receipt, error)
	// HasAccess reports whether account bought itemID. Unknown ids yield false.
	HasAccess(ctx context.Context, account common.Address, itemID uint64) (bool, error)
	// GetAllItemIDs returns 0..nextItemId-1 in creation order.
	GetAllItemIDs(ctx context.Context) ([]uint64, error)
	// GetItem returns a single item.
	GetItem(ctx context.Context, id uint64) (model.Item, error)
	// FeeConfig returns the owner and current fee percent.
	FeeConfig(ctx context.Context) (model.FeeConfig, error)
	// SetPlatformFeePercent changes the fee; owner only.
	SetPlatformFeePercent(ctx context.Context, caller common.Address, pct int64) error
	// TransferOwnership hands the owner role to next; owner only.
	TransferOwnership(ctx context.Context, caller, next common.Address) error
	// Deposit credits the caller's balance.
	Deposit(ctx context.Context, account common.Address, amount *big.Int) (*big.Int, error)
	// Balance returns the account balance.
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
	// EventsSince pages through the event log.
	EventsSince(ctx context.Context, since int64, limit int) ([]model.Event, error)
	// Updates returns a channel closed after the next committed change.
	Updates() <-chan struct{}
}

type MarketServiceImpl struct {
	repo   repository.MarketRepository
	notify *events.Notifier
}

// NewMarketService constructs MarketService. A nil notifier gets a private one.
func NewMarketService(repo repository.MarketRepository, n *events.Notifier) *MarketServiceImpl {
	if n == nil {
		n = events.NewNotifier()
	}
	return &MarketServiceImpl{repo: repo, notify: n}
}

// Init creates the fee configuration on first start. Existing state is kept.
func (s *MarketServiceImpl) Init(ctx context.Context, owner common.Address, feePercent int64) error {
	if owner == (common.Address{}) {
		return errors.New("validation: owner is the zero address")
	}
	pct, err := ledger.CheckFeePercent(feePercent)
	if err != nil {
		return err
	}
	return s.repo.Init(ctx, owner, pct)
}

// ListItem validates the price and stores the item.
func (s *MarketServiceImpl) ListItem(
	ctx context.Context, publisher common.Address, title, description string, price *big.Int,
) (model.Item, error) {
	if err := ledger.CheckAmount(price); err != nil {
		return model.Item{}, err
	}
	it, err := s.repo.CreateItem(ctx, publisher, title, description, price)
	if err != nil {
		return model.Item{}, err
	}
	s.notify.Broadcast()
	return it, nil
}

// PurchaseItem delegates the atomic check-and-transfer to the repository.
func (s *MarketServiceImpl) PurchaseItem(
	ctx context.Context, buyer common.Address, itemID uint64, value *big.Int,
) (model.Receipt, error) {
	if err := ledger.CheckAmount(value); err != nil {
		return model.Receipt{}, err
	}
	rc, err := s.repo.Purchase(ctx, buyer, itemID, value)
	if err != nil {
		return model.Receipt{}, err
	}
	s.notify.Broadcast()
	return rc, nil
}

func (s *MarketServiceImpl) HasAccess(ctx context.Context, account common.Address, itemID uint64) (bool, error) {
	return s.repo.HasAccess(ctx, account, itemID)
}

// GetAllItemIDs enumerates ids from the listing counter.
func (s *MarketServiceImpl) GetAllItemIDs(ctx context.Context) ([]uint64, error) {
	n, err := s.repo.NextItemID(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = uint64(i)
	}
	return ids, nil
}

func (s *MarketServiceImpl) GetItem(ctx context.Context, id uint64) (model.Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *MarketServiceImpl) FeeConfig(ctx context.Context) (model.FeeConfig, error) {
	return s.repo.FeeConfig(ctx)
}

// SetPlatformFeePercent rejects values outside 0..100 before the owner check.
func (s *MarketServiceImpl) SetPlatformFeePercent(ctx context.Context, caller common.Address, pct int64) error {
	p, err := ledger.CheckFeePercent(pct)
	if err != nil {
		return err
	}
	if err := s.repo.SetFeePercent(ctx, caller, p); err != nil {
		return err
	}
	s.notify.Broadcast()
	return nil
}

func (s *MarketServiceImpl) TransferOwnership(ctx context.Context, caller, next common.Address) error {
	if next == (common.Address{}) {
		return errors.New("validation: new owner is the zero address")
	}
	if err := s.repo.TransferOwnership(ctx, caller, next); err != nil {
		return err
	}
	s.notify.Broadcast()
	return nil
}

// Deposit requires a strictly positive amount.
func (s *MarketServiceImpl) Deposit(ctx context.Context, account common.Address, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	bal, err := s.repo.Deposit(ctx, account, amount)
	if err != nil {
		return nil, err
	}
	s.notify.Broadcast()
	return bal, nil
}

func (s *MarketServiceImpl) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	return s.repo.Balance(ctx, account)
}

func (s *MarketServiceImpl) EventsSince(ctx context.Context, since int64, limit int) ([]model.Event, error) {
	return s.repo.EventsSince(ctx, since, limit)
}

func (s *MarketServiceImpl) Updates() <-chan struct{} { return s.notify.Wait() }
