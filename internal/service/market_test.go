package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/model"
	"github.com/and161185/unlockable/internal/repository"
	"github.com/and161185/unlockable/internal/repository/memory"
)

var (
	owner     = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	publisher = common.HexToAddress("0x00000000000000000000000000000000000000B2")
	buyer     = common.HexToAddress("0x00000000000000000000000000000000000000C3")
)

func ether(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return v
}

func newMarket(t *testing.T) *MarketServiceImpl {
	t.Helper()
	s := NewMarketService(memory.NewMarket(), nil)
	require.NoError(t, s.Init(context.Background(), owner, 5))
	return s
}

func notified(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestMarket_Init_Validation(t *testing.T) {
	t.Parallel()
	s := NewMarketService(memory.NewMarket(), nil)
	require.Error(t, s.Init(context.Background(), common.Address{}, 5))
	require.ErrorIs(t, s.Init(context.Background(), owner, 101), errs.ErrInvalidFee)
	require.NoError(t, s.Init(context.Background(), owner, 0))
}

func TestMarket_ListAndEnumerate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newMarket(t)

	ids, err := s.GetAllItemIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	upd := s.Updates()
	_, err = s.ListItem(ctx, publisher, "a", "", big.NewInt(1))
	require.NoError(t, err)
	require.True(t, notified(upd))
	_, err = s.ListItem(ctx, publisher, "b", "", big.NewInt(0))
	require.NoError(t, err)

	ids, err = s.GetAllItemIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, ids)

	_, err = s.ListItem(ctx, publisher, "neg", "", big.NewInt(-1))
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestMarket_PurchaseScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newMarket(t)

	it, err := s.ListItem(ctx, publisher, "Guide", "Desc", ether("1000000000000000000"))
	require.NoError(t, err)
	_, err = s.Deposit(ctx, buyer, ether("2000000000000000000"))
	require.NoError(t, err)

	rc, err := s.PurchaseItem(ctx, buyer, it.ID, ether("1000000000000000000"))
	require.NoError(t, err)
	require.Equal(t, ether("50000000000000000"), rc.PlatformFee)
	require.Equal(t, ether("950000000000000000"), rc.PublisherAmount)

	ok, err := s.HasAccess(ctx, buyer, it.ID)
	require.NoError(t, err)
	require.True(t, ok)

	pub, _ := s.Balance(ctx, publisher)
	own, _ := s.Balance(ctx, owner)
	require.Equal(t, ether("950000000000000000"), pub)
	require.Equal(t, ether("50000000000000000"), own)

	_, err = s.PurchaseItem(ctx, buyer, it.ID, ether("1000000000000000000"))
	require.ErrorIs(t, err, errs.ErrAlreadyPurchased)
	_, err = s.PurchaseItem(ctx, buyer, 42, big.NewInt(0))
	require.ErrorIs(t, err, errs.ErrItemNotFound)
}

func TestMarket_FeeAndOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newMarket(t)

	require.ErrorIs(t, s.SetPlatformFeePercent(ctx, owner, 150), errs.ErrInvalidFee)
	require.ErrorIs(t, s.SetPlatformFeePercent(ctx, buyer, 10), errs.ErrNotOwner)
	require.NoError(t, s.SetPlatformFeePercent(ctx, owner, 10))

	require.Error(t, s.TransferOwnership(ctx, owner, common.Address{}))
	require.ErrorIs(t, s.TransferOwnership(ctx, buyer, buyer), errs.ErrNotOwner)
	require.NoError(t, s.TransferOwnership(ctx, owner, buyer))

	cfg, err := s.FeeConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, model.FeeConfig{Owner: buyer, FeePercent: 10}, cfg)

	evs, err := s.EventsSince(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	require.Equal(t, model.EventPlatformFeeUpdated, evs[0].Kind)
	require.Equal(t, model.EventOwnershipTransferred, evs[1].Kind)
}

func TestMarket_Deposit_Validation(t *testing.T) {
	t.Parallel()
	s := newMarket(t)
	_, err := s.Deposit(context.Background(), buyer, big.NewInt(0))
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
	_, err = s.Deposit(context.Background(), buyer, nil)
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
}

type failingRepo struct {
	repository.MarketRepository
	err error
}

func (f failingRepo) CreateItem(context.Context, common.Address, string, string, *big.Int) (model.Item, error) {
	return model.Item{}, f.err
}
func (f failingRepo) NextItemID(context.Context) (uint64, error) { return 0, f.err }

func TestMarket_RepoErrorsPropagateWithoutNotify(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	s := NewMarketService(failingRepo{err: boom}, nil)
	upd := s.Updates()

	_, err := s.ListItem(context.Background(), publisher, "t", "d", big.NewInt(1))
	require.ErrorIs(t, err, boom)
	require.False(t, notified(upd))

	_, err = s.GetAllItemIDs(context.Background())
	require.ErrorIs(t, err, boom)
}
