package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/ledger"
	"github.com/and161185/unlockable/internal/model"
)

// maxEventsPage caps a single EventsSince read.
const maxEventsPage = 1000

var errMarketNotInitialized = errors.New("market_state row missing (init not run)")

// MarketRepo implements MarketRepository using PostgreSQL. The market_state
// row is the singleton fee configuration and item counter; locking it
// serializes listings and admin calls.
type MarketRepo struct{ db *DB }

// NewMarketRepo constructs a market repository.
func NewMarketRepo(db *DB) *MarketRepo { return &MarketRepo{db: db} }

// Init inserts the market_state row unless it already exists.
func (r *MarketRepo) Init(ctx context.Context, owner common.Address, feePercent uint8) error {
	const q = `INSERT INTO market_state (id, next_item_id, owner, fee_percent) VALUES (1, 0, $1, $2) ON CONFLICT (id) DO NOTHING`
	_, err := r.db.Pool.Exec(ctx, q, owner.Hex(), int16(feePercent))
	return err
}

// CreateItem allocates the next id from market_state and stores the item.
func (r *MarketRepo) CreateItem(
	ctx context.Context, publisher common.Address, title, description string, price *big.Int,
) (it model.Item, err error) {
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		const next = `UPDATE market_state SET next_item_id = next_item_id + 1 WHERE id = 1 RETURNING next_item_id - 1`
		const ins = `INSERT INTO items (id, publisher, title, description, price) VALUES ($1,$2,$3,$4,$5::numeric) RETURNING created_at`

		var id int64
		if err := tx.QueryRow(ctx, next).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errMarketNotInitialized
			}
			return err
		}
		var createdAt time.Time
		if err := tx.QueryRow(ctx, ins, id, publisher.Hex(), title, description, price.String()).Scan(&createdAt); err != nil {
			return err
		}
		it = model.Item{
			ID:          uint64(id),
			Publisher:   publisher,
			Title:       title,
			Description: description,
			Price:       new(big.Int).Set(price),
			Exists:      true,
			CreatedAt:   createdAt,
		}
		_, err := insertEvent(ctx, tx, model.ItemListed(it))
		return err
	})
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// GetItem returns a single item by id.
func (r *MarketRepo) GetItem(ctx context.Context, id uint64) (model.Item, error) {
	const q = `SELECT publisher, title, description, price::text, created_at FROM items WHERE id=$1`
	var (
		pub, price string
		it         = model.Item{ID: id, Exists: true}
	)
	err := r.db.Pool.QueryRow(ctx, q, int64(id)).Scan(&pub, &it.Title, &it.Description, &price, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	it.Publisher = common.HexToAddress(pub)
	if it.Price, err = parseWei(price); err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// NextItemID reads the listing counter.
func (r *MarketRepo) NextItemID(ctx context.Context) (uint64, error) {
	const q = `SELECT next_item_id FROM market_state WHERE id = 1`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errMarketNotInitialized
		}
		return 0, err
	}
	return uint64(n), nil
}

// Purchase runs every check and transfer in one transaction. The fee row is
// read FOR SHARE so a concurrent fee change cannot interleave.
func (r *MarketRepo) Purchase(
	ctx context.Context, buyer common.Address, itemID uint64, value *big.Int,
) (rc model.Receipt, err error) {
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		const selFee = `SELECT owner, fee_percent FROM market_state WHERE id = 1 FOR SHARE`
		const selItem = `SELECT publisher, price::text FROM items WHERE id=$1`
		const grant = `INSERT INTO access_grants (buyer, item_id) VALUES ($1,$2)`
		const debit = `UPDATE balances SET amount = amount - $2::numeric WHERE account=$1 AND amount >= $2::numeric`

		var (
			ownerHex string
			pct      int16
		)
		if err := tx.QueryRow(ctx, selFee).Scan(&ownerHex, &pct); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errMarketNotInitialized
			}
			return err
		}

		var pubHex, priceText string
		if err := tx.QueryRow(ctx, selItem, int64(itemID)).Scan(&pubHex, &priceText); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrItemNotFound
			}
			return err
		}
		price, err := parseWei(priceText)
		if err != nil {
			return err
		}
		if value.Cmp(price) != 0 {
			return fmt.Errorf("%w: want %s, got %s", errs.ErrIncorrectPayment, price, value)
		}

		if _, err := tx.Exec(ctx, grant, buyer.Hex(), int64(itemID)); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrAlreadyPurchased
			}
			return err
		}

		if value.Sign() > 0 {
			tag, err := tx.Exec(ctx, debit, buyer.Hex(), value.String())
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return errs.ErrInsufficientFunds
			}
		}

		owner, publisher := common.HexToAddress(ownerHex), common.HexToAddress(pubHex)
		fee, toPublisher := ledger.Split(price, uint8(pct))
		if toPublisher.Sign() > 0 {
			if _, err := credit(ctx, tx, publisher, toPublisher); err != nil {
				return err
			}
		}
		if fee.Sign() > 0 {
			if _, err := credit(ctx, tx, owner, fee); err != nil {
				return err
			}
		}

		rc = model.Receipt{
			ItemID:          itemID,
			Buyer:           buyer,
			Publisher:       publisher,
			FeeRecipient:    owner,
			Price:           price,
			PlatformFee:     fee,
			PublisherAmount: toPublisher,
		}
		seq, err := insertEvent(ctx, tx, model.ItemPurchased(rc))
		rc.Seq = seq
		return err
	})
	if err != nil {
		return model.Receipt{}, err
	}
	return rc, nil
}

// HasAccess reports whether the grant row exists.
func (r *MarketRepo) HasAccess(ctx context.Context, account common.Address, itemID uint64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM access_grants WHERE buyer=$1 AND item_id=$2)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, account.Hex(), int64(itemID)).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// FeeConfig reads the singleton row.
func (r *MarketRepo) FeeConfig(ctx context.Context) (model.FeeConfig, error) {
	const q = `SELECT owner, fee_percent FROM market_state WHERE id = 1`
	var (
		ownerHex string
		pct      int16
	)
	if err := r.db.Pool.QueryRow(ctx, q).Scan(&ownerHex, &pct); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FeeConfig{}, errMarketNotInitialized
		}
		return model.FeeConfig{}, err
	}
	return model.FeeConfig{Owner: common.HexToAddress(ownerHex), FeePercent: uint8(pct)}, nil
}

// SetFeePercent updates fee_percent under the owner check.
func (r *MarketRepo) SetFeePercent(ctx context.Context, caller common.Address, pct uint8) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := lockOwner(ctx, tx, caller); err != nil {
			return err
		}
		const upd = `UPDATE market_state SET fee_percent=$1 WHERE id = 1`
		if _, err := tx.Exec(ctx, upd, int16(pct)); err != nil {
			return err
		}
		_, err := insertEvent(ctx, tx, model.PlatformFeeUpdated(pct))
		return err
	})
}

// TransferOwnership updates owner under the owner check.
func (r *MarketRepo) TransferOwnership(ctx context.Context, caller, next common.Address) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		prev, err := lockOwner(ctx, tx, caller)
		if err != nil {
			return err
		}
		const upd = `UPDATE market_state SET owner=$1 WHERE id = 1`
		if _, err := tx.Exec(ctx, upd, next.Hex()); err != nil {
			return err
		}
		_, err = insertEvent(ctx, tx, model.OwnershipTransferred(prev, next))
		return err
	})
}

// Deposit credits account and records the event.
func (r *MarketRepo) Deposit(ctx context.Context, account common.Address, amount *big.Int) (bal *big.Int, err error) {
	if amount.Sign() <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		if bal, err = credit(ctx, tx, account, amount); err != nil {
			return err
		}
		_, err = insertEvent(ctx, tx, model.Deposited(account, amount))
		return err
	})
	if err != nil {
		return nil, err
	}
	return bal, nil
}

// Balance returns the stored balance or zero.
func (r *MarketRepo) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	const q = `SELECT amount::text FROM balances WHERE account=$1`
	var s string
	if err := r.db.Pool.QueryRow(ctx, q, account.Hex()).Scan(&s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return new(big.Int), nil
		}
		return nil, err
	}
	return parseWei(s)
}

// EventsSince returns events strictly after since.
func (r *MarketRepo) EventsSince(ctx context.Context, since int64, limit int) ([]model.Event, error) {
	if limit <= 0 || limit > maxEventsPage {
		limit = maxEventsPage
	}
	const q = `
SELECT seq, kind, payload, created_at
FROM events
WHERE seq>$1
ORDER BY seq ASC
LIMIT $2`
	rows, err := r.db.Pool.Query(ctx, q, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var (
			ev      model.Event
			kind    string
			payload []byte
		)
		if err = rows.Scan(&ev.Seq, &kind, &payload, &ev.At); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(payload, &ev); err != nil {
			return nil, fmt.Errorf("event %d payload: %w", ev.Seq, err)
		}
		ev.Kind = model.EventKind(kind)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// lockOwner locks market_state and verifies the caller owns it. Returns the owner.
func lockOwner(ctx context.Context, tx pgx.Tx, caller common.Address) (common.Address, error) {
	const sel = `SELECT owner FROM market_state WHERE id = 1 FOR UPDATE`
	var ownerHex string
	if err := tx.QueryRow(ctx, sel).Scan(&ownerHex); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.Address{}, errMarketNotInitialized
		}
		return common.Address{}, err
	}
	owner := common.HexToAddress(ownerHex)
	if owner != caller {
		return common.Address{}, errs.ErrNotOwner
	}
	return owner, nil
}

// credit adds a positive amount to a balance row and returns the new balance.
func credit(ctx context.Context, tx pgx.Tx, account common.Address, amount *big.Int) (*big.Int, error) {
	const q = `
INSERT INTO balances (account, amount) VALUES ($1, $2::numeric)
ON CONFLICT (account) DO UPDATE SET amount = balances.amount + EXCLUDED.amount
RETURNING amount::text`
	var s string
	if err := tx.QueryRow(ctx, q, account.Hex(), amount.String()).Scan(&s); err != nil {
		return nil, err
	}
	return parseWei(s)
}

// insertEvent appends ev to the log and returns its seq.
func insertEvent(ctx context.Context, tx pgx.Tx, ev model.Event) (int64, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return 0, err
	}
	const q = `INSERT INTO events (kind, payload) VALUES ($1, $2) RETURNING seq`
	var seq int64
	if err := tx.QueryRow(ctx, q, string(ev.Kind), payload).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}
