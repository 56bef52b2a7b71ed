// Package memory contains in-process implementations of repository interfaces.
// State lives in a single container guarded by one mutex, so every operation
// is serialized and applied in full or not at all.
package memory

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/ledger"
	"github.com/and161185/unlockable/internal/model"
)

var errMarketNotInitialized = errors.New("market not initialized")

type grantKey struct {
	buyer common.Address
	item  uint64
}

// Market is an in-memory MarketRepository.
type Market struct {
	mu       sync.Mutex
	fee      *model.FeeConfig
	items    []model.Item // index == id
	grants   map[grantKey]struct{}
	balances map[common.Address]*big.Int
	events   []model.Event
	now      func() time.Time
}

// NewMarket constructs an empty market. The fee configuration is created by Init.
func NewMarket() *Market {
	return &Market{
		grants:   make(map[grantKey]struct{}),
		balances: make(map[common.Address]*big.Int),
		now:      time.Now,
	}
}

// Init creates the fee configuration once.
func (m *Market) Init(_ context.Context, owner common.Address, feePercent uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fee == nil {
		m.fee = &model.FeeConfig{Owner: owner, FeePercent: feePercent}
	}
	return nil
}

// CreateItem appends an item under the next id.
func (m *Market) CreateItem(_ context.Context, publisher common.Address, title, description string, price *big.Int) (model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it := model.Item{
		ID:          uint64(len(m.items)),
		Publisher:   publisher,
		Title:       title,
		Description: description,
		Price:       new(big.Int).Set(price),
		Exists:      true,
		CreatedAt:   m.now().UTC(),
	}
	m.items = append(m.items, it)
	m.emit(model.ItemListed(it))
	return copyItem(it), nil
}

// GetItem returns an item by id.
func (m *Market) GetItem(_ context.Context, id uint64) (model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id >= uint64(len(m.items)) {
		return model.Item{}, errs.ErrItemNotFound
	}
	return copyItem(m.items[id]), nil
}

// NextItemID returns the number of listed items.
func (m *Market) NextItemID(context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint64(len(m.items)), nil
}

// Purchase checks every precondition before touching state.
func (m *Market) Purchase(_ context.Context, buyer common.Address, itemID uint64, value *big.Int) (model.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fee == nil {
		return model.Receipt{}, errMarketNotInitialized
	}
	if itemID >= uint64(len(m.items)) {
		return model.Receipt{}, errs.ErrItemNotFound
	}
	it := m.items[itemID]
	if value.Cmp(it.Price) != 0 {
		return model.Receipt{}, fmt.Errorf("%w: want %s, got %s", errs.ErrIncorrectPayment, it.Price, value)
	}
	key := grantKey{buyer: buyer, item: itemID}
	if _, ok := m.grants[key]; ok {
		return model.Receipt{}, errs.ErrAlreadyPurchased
	}
	if m.balanceOf(buyer).Cmp(value) < 0 {
		return model.Receipt{}, errs.ErrInsufficientFunds
	}

	fee, toPublisher := ledger.Split(it.Price, m.fee.FeePercent)
	m.credit(buyer, new(big.Int).Neg(value))
	m.credit(it.Publisher, toPublisher)
	m.credit(m.fee.Owner, fee)
	m.grants[key] = struct{}{}

	r := model.Receipt{
		ItemID:          itemID,
		Buyer:           buyer,
		Publisher:       it.Publisher,
		FeeRecipient:    m.fee.Owner,
		Price:           new(big.Int).Set(it.Price),
		PlatformFee:     fee,
		PublisherAmount: toPublisher,
	}
	r.Seq = m.emit(model.ItemPurchased(r))
	return r, nil
}

// HasAccess reports whether the grant exists.
func (m *Market) HasAccess(_ context.Context, account common.Address, itemID uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.grants[grantKey{buyer: account, item: itemID}]
	return ok, nil
}

// FeeConfig returns the singleton fee configuration.
func (m *Market) FeeConfig(context.Context) (model.FeeConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fee == nil {
		return model.FeeConfig{}, errMarketNotInitialized
	}
	return *m.fee, nil
}

// SetFeePercent replaces the fee percent when called by the owner.
func (m *Market) SetFeePercent(_ context.Context, caller common.Address, pct uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fee == nil {
		return errMarketNotInitialized
	}
	if caller != m.fee.Owner {
		return errs.ErrNotOwner
	}
	m.fee.FeePercent = pct
	m.emit(model.PlatformFeeUpdated(pct))
	return nil
}

// TransferOwnership moves the fee configuration to next when called by the owner.
func (m *Market) TransferOwnership(_ context.Context, caller, next common.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fee == nil {
		return errMarketNotInitialized
	}
	if caller != m.fee.Owner {
		return errs.ErrNotOwner
	}
	prev := m.fee.Owner
	m.fee.Owner = next
	m.emit(model.OwnershipTransferred(prev, next))
	return nil
}

// Deposit credits account.
func (m *Market) Deposit(_ context.Context, account common.Address, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credit(account, amount)
	m.emit(model.Deposited(account, amount))
	return m.balanceOf(account), nil
}

// Balance returns a copy of the account balance.
func (m *Market) Balance(_ context.Context, account common.Address) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balanceOf(account), nil
}

// EventsSince pages through the log. Seq n lives at index n-1.
func (m *Market) EventsSince(_ context.Context, since int64, limit int) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if since < 0 {
		since = 0
	}
	if since >= int64(len(m.events)) {
		return nil, nil
	}
	tail := m.events[since:]
	if limit > 0 && len(tail) > limit {
		tail = tail[:limit]
	}
	return append([]model.Event(nil), tail...), nil
}

// emit appends ev to the log and returns its seq. Callers hold mu.
func (m *Market) emit(ev model.Event) int64 {
	ev.Seq = int64(len(m.events)) + 1
	ev.At = m.now().UTC()
	m.events = append(m.events, ev)
	return ev.Seq
}

// credit adds delta (possibly negative) to account. Callers hold mu.
func (m *Market) credit(account common.Address, delta *big.Int) {
	if delta.Sign() == 0 {
		return
	}
	b, ok := m.balances[account]
	if !ok {
		b = new(big.Int)
		m.balances[account] = b
	}
	b.Add(b, delta)
}

// balanceOf returns a copy of the account balance. Callers hold mu.
func (m *Market) balanceOf(account common.Address) *big.Int {
	if b, ok := m.balances[account]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func copyItem(it model.Item) model.Item {
	it.Price = new(big.Int).Set(it.Price)
	return it
}
