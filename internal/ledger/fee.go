// Package ledger holds the payment arithmetic shared by every market store.
package ledger

import (
	"fmt"
	"math/big"

	"github.com/and161185/unlockable/internal/errs"
)

// MaxFeePercent is the upper bound accepted for the platform fee.
const MaxFeePercent = 100

var hundred = big.NewInt(100)

// Split divides price into the platform fee, floor(price*pct/100), and the
// publisher remainder. The two parts always sum to price.
func Split(price *big.Int, pct uint8) (fee, publisher *big.Int) {
	fee = new(big.Int).Mul(price, big.NewInt(int64(pct)))
	fee.Quo(fee, hundred)
	publisher = new(big.Int).Sub(price, fee)
	return fee, publisher
}

// CheckFeePercent validates a fee percent.
func CheckFeePercent(pct int64) (uint8, error) {
	if pct < 0 || pct > MaxFeePercent {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidFee, pct)
	}
	return uint8(pct), nil
}

// CheckAmount validates a price, payment or deposit amount.
func CheckAmount(v *big.Int) error {
	if v == nil || v.Sign() < 0 {
		return errs.ErrInvalidAmount
	}
	return nil
}
