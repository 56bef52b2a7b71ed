package postgres

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/model"
	"github.com/and161185/unlockable/internal/repository"
)

var (
	_ repository.MarketRepository    = (*MarketRepo)(nil)
	_ repository.ChallengeRepository = (*ChallengeRepo)(nil)
)

var (
	owner     = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	publisher = common.HexToAddress("0x00000000000000000000000000000000000000B2")
	buyer     = common.HexToAddress("0x00000000000000000000000000000000000000C3")
)

const (
	qSelFee    = `SELECT owner, fee_percent FROM market_state WHERE id = 1 FOR SHARE`
	qSelItem   = `SELECT publisher, price::text FROM items WHERE id=\$1`
	qGrant     = `INSERT INTO access_grants \(buyer, item_id\) VALUES \(\$1,\$2\)`
	qDebit     = `UPDATE balances SET amount = amount - \$2::numeric WHERE account=\$1 AND amount >= \$2::numeric`
	qCredit    = `INSERT INTO balances \(account, amount\) VALUES \(\$1, \$2::numeric\)`
	qEvent     = `INSERT INTO events \(kind, payload\) VALUES \(\$1, \$2\) RETURNING seq`
	qLockOwner = `SELECT owner FROM market_state WHERE id = 1 FOR UPDATE`
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func TestMarketRepo_Init(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectExec(`INSERT INTO market_state \(id, next_item_id, owner, fee_percent\) VALUES \(1, 0, \$1, \$2\) ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(owner.Hex(), int16(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Init(context.Background(), owner, 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_CreateItem_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE market_state SET next_item_id = next_item_id \+ 1 WHERE id = 1 RETURNING next_item_id - 1`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(`INSERT INTO items \(id, publisher, title, description, price\) VALUES \(\$1,\$2,\$3,\$4,\$5::numeric\) RETURNING created_at`).
		WithArgs(int64(3), publisher.Hex(), "Guide", "Desc", "100000000000000000").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(qEvent).
		WithArgs(string(model.EventItemListed), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(7)))
	mock.ExpectCommit()

	price, _ := new(big.Int).SetString("100000000000000000", 10)
	it, err := r.CreateItem(context.Background(), publisher, "Guide", "Desc", price)
	require.NoError(t, err)
	require.Equal(t, uint64(3), it.ID)
	require.True(t, it.Exists)
	require.Equal(t, now, it.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_CreateItem_NotInitialized(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE market_state SET next_item_id`).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := r.CreateItem(context.Background(), publisher, "t", "d", big.NewInt(1))
	require.ErrorIs(t, err, errMarketNotInitialized)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_GetItem(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT publisher, title, description, price::text, created_at FROM items WHERE id=\$1`).
		WithArgs(int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"publisher", "title", "description", "price", "created_at"}).
			AddRow(publisher.Hex(), "T", "D", "42", now))

	it, err := r.GetItem(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, publisher, it.Publisher)
	require.Equal(t, int64(42), it.Price.Int64())
	require.True(t, it.Exists)

	mock.ExpectQuery(`SELECT publisher, title, description, price::text, created_at FROM items WHERE id=\$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetItem(context.Background(), 9)
	require.ErrorIs(t, err, errs.ErrItemNotFound)
}

func TestMarketRepo_NextItemID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectQuery(`SELECT next_item_id FROM market_state WHERE id = 1`).
		WillReturnRows(pgxmock.NewRows([]string{"next_item_id"}).AddRow(int64(3)))
	n, err := r.NextItemID(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
}

func expectPurchaseHead(mock pgxmock.PgxPoolIface, price string) {
	mock.ExpectBegin()
	mock.ExpectQuery(qSelFee).
		WillReturnRows(pgxmock.NewRows([]string{"owner", "fee_percent"}).AddRow(owner.Hex(), int16(5)))
	mock.ExpectQuery(qSelItem).
		WithArgs(int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"publisher", "price"}).AddRow(publisher.Hex(), price))
}

func TestMarketRepo_Purchase_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	expectPurchaseHead(mock, "1000000000000000000")
	mock.ExpectExec(qGrant).
		WithArgs(buyer.Hex(), int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(qDebit).
		WithArgs(buyer.Hex(), "1000000000000000000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(qCredit).
		WithArgs(publisher.Hex(), "950000000000000000").
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow("950000000000000000"))
	mock.ExpectQuery(qCredit).
		WithArgs(owner.Hex(), "50000000000000000").
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow("50000000000000000"))
	mock.ExpectQuery(qEvent).
		WithArgs(string(model.EventItemPurchased), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(4)))
	mock.ExpectCommit()

	value, _ := new(big.Int).SetString("1000000000000000000", 10)
	rc, err := r.Purchase(context.Background(), buyer, 0, value)
	require.NoError(t, err)
	require.Equal(t, "50000000000000000", rc.PlatformFee.String())
	require.Equal(t, "950000000000000000", rc.PublisherAmount.String())
	require.Equal(t, owner, rc.FeeRecipient)
	require.Equal(t, publisher, rc.Publisher)
	require.Equal(t, int64(4), rc.Seq)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_Purchase_IncorrectPayment_RollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	expectPurchaseHead(mock, "100")
	mock.ExpectRollback()

	_, err := r.Purchase(context.Background(), buyer, 0, big.NewInt(99))
	require.ErrorIs(t, err, errs.ErrIncorrectPayment)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_Purchase_ItemNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(qSelFee).
		WillReturnRows(pgxmock.NewRows([]string{"owner", "fee_percent"}).AddRow(owner.Hex(), int16(5)))
	mock.ExpectQuery(qSelItem).WithArgs(int64(0)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := r.Purchase(context.Background(), buyer, 0, big.NewInt(1))
	require.ErrorIs(t, err, errs.ErrItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_Purchase_AlreadyPurchased(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	expectPurchaseHead(mock, "100")
	mock.ExpectExec(qGrant).
		WithArgs(buyer.Hex(), int64(0)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := r.Purchase(context.Background(), buyer, 0, big.NewInt(100))
	require.ErrorIs(t, err, errs.ErrAlreadyPurchased)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_Purchase_InsufficientFunds(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	expectPurchaseHead(mock, "100")
	mock.ExpectExec(qGrant).
		WithArgs(buyer.Hex(), int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(qDebit).
		WithArgs(buyer.Hex(), "100").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := r.Purchase(context.Background(), buyer, 0, big.NewInt(100))
	require.ErrorIs(t, err, errs.ErrInsufficientFunds)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_Purchase_ZeroPriceSkipsTransfers(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	expectPurchaseHead(mock, "0")
	mock.ExpectExec(qGrant).
		WithArgs(buyer.Hex(), int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(qEvent).
		WithArgs(string(model.EventItemPurchased), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(2)))
	mock.ExpectCommit()

	rc, err := r.Purchase(context.Background(), buyer, 0, big.NewInt(0))
	require.NoError(t, err)
	require.Zero(t, rc.PlatformFee.Sign())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_HasAccess(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM access_grants WHERE buyer=\$1 AND item_id=\$2\)`).
		WithArgs(buyer.Hex(), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := r.HasAccess(context.Background(), buyer, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMarketRepo_SetFeePercent(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(qLockOwner).WillReturnRows(pgxmock.NewRows([]string{"owner"}).AddRow(owner.Hex()))
	mock.ExpectExec(`UPDATE market_state SET fee_percent=\$1 WHERE id = 1`).
		WithArgs(int16(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(qEvent).
		WithArgs(string(model.EventPlatformFeeUpdated), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(1)))
	mock.ExpectCommit()

	require.NoError(t, r.SetFeePercent(context.Background(), owner, 10))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_SetFeePercent_NotOwner(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(qLockOwner).WillReturnRows(pgxmock.NewRows([]string{"owner"}).AddRow(owner.Hex()))
	mock.ExpectRollback()

	require.ErrorIs(t, r.SetFeePercent(context.Background(), buyer, 10), errs.ErrNotOwner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_TransferOwnership(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(qLockOwner).WillReturnRows(pgxmock.NewRows([]string{"owner"}).AddRow(owner.Hex()))
	mock.ExpectExec(`UPDATE market_state SET owner=\$1 WHERE id = 1`).
		WithArgs(buyer.Hex()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(qEvent).
		WithArgs(string(model.EventOwnershipTransferred), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(1)))
	mock.ExpectCommit()

	require.NoError(t, r.TransferOwnership(context.Background(), owner, buyer))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_FeeConfig(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectQuery(`SELECT owner, fee_percent FROM market_state WHERE id = 1`).
		WillReturnRows(pgxmock.NewRows([]string{"owner", "fee_percent"}).AddRow(owner.Hex(), int16(5)))
	cfg, err := r.FeeConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.FeeConfig{Owner: owner, FeePercent: 5}, cfg)
}

func TestMarketRepo_DepositAndBalance(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(qCredit).
		WithArgs(buyer.Hex(), "500").
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow("700"))
	mock.ExpectQuery(qEvent).
		WithArgs(string(model.EventDeposited), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(1)))
	mock.ExpectCommit()

	bal, err := r.Deposit(context.Background(), buyer, big.NewInt(500))
	require.NoError(t, err)
	require.Equal(t, int64(700), bal.Int64())

	_, err = r.Deposit(context.Background(), buyer, big.NewInt(0))
	require.ErrorIs(t, err, errs.ErrInvalidAmount)

	mock.ExpectQuery(`SELECT amount::text FROM balances WHERE account=\$1`).
		WithArgs(publisher.Hex()).
		WillReturnError(pgx.ErrNoRows)
	zero, err := r.Balance(context.Background(), publisher)
	require.NoError(t, err)
	require.Zero(t, zero.Sign())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepo_EventsSince_DecodesPayload(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewMarketRepo(db)
	now := time.Now().UTC()

	payload := []byte(`{"item_id":2,"buyer":"` + buyer.Hex() + `","publisher":"` + publisher.Hex() + `","price":100,"platform_fee":5}`)
	mock.ExpectQuery(`SELECT seq, kind, payload, created_at\s+FROM events\s+WHERE seq>\$1\s+ORDER BY seq ASC\s+LIMIT \$2`).
		WithArgs(int64(3), maxEventsPage).
		WillReturnRows(pgxmock.NewRows([]string{"seq", "kind", "payload", "created_at"}).
			AddRow(int64(4), string(model.EventItemPurchased), payload, now))

	evs, err := r.EventsSince(context.Background(), 3, 0)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	ev := evs[0]
	require.Equal(t, int64(4), ev.Seq)
	require.Equal(t, model.EventItemPurchased, ev.Kind)
	require.Equal(t, uint64(2), ev.ItemID)
	require.Equal(t, buyer, *ev.Buyer)
	require.Equal(t, int64(5), ev.PlatformFee.Int64())
	require.Equal(t, now, ev.At)
}
