package convert

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/model"
)

var pub = common.HexToAddress("0x00000000000000000000000000000000000000B2")

func TestParseAddress(t *testing.T) {
	t.Parallel()
	a, err := ParseAddress("0x00000000000000000000000000000000000000b2")
	if err != nil || a != pub {
		t.Fatalf("ParseAddress: %v %v", a, err)
	}
	for _, bad := range []string{"", "0x12", "zz00000000000000000000000000000000000000", "0xZZ000000000000000000000000000000000000B2"} {
		if _, err := ParseAddress(bad); err == nil {
			t.Fatalf("want error for %q", bad)
		}
	}
}

func TestParseWei(t *testing.T) {
	t.Parallel()
	v, err := ParseWei("1000000000000000000000")
	if err != nil || v.String() != "1000000000000000000000" {
		t.Fatalf("ParseWei: %v %v", v, err)
	}
	for _, bad := range []string{"", "-1", "1.5", "0x10", "abc"} {
		if _, err := ParseWei(bad); !errors.Is(err, errs.ErrInvalidAmount) {
			t.Fatalf("want ErrInvalidAmount for %q, got %v", bad, err)
		}
	}
}

func TestItem_RoundTrip(t *testing.T) {
	t.Parallel()
	now := time.Unix(1_700_000_000, 0).UTC()
	in := model.Item{ID: 3, Publisher: pub, Title: "T", Description: "D", Price: big.NewInt(42), Exists: true, CreatedAt: now}

	w := ToWireItem(in)
	if w.PriceWei != "42" || w.Publisher != pub.Hex() || w.CreatedAt == nil {
		t.Fatalf("wire mismatch: %+v", w)
	}
	out, err := FromWireItem(w)
	if err != nil {
		t.Fatalf("FromWireItem: %v", err)
	}
	if out.ID != 3 || out.Price.Cmp(in.Price) != 0 || !out.CreatedAt.Equal(now) || !out.Exists {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}

	if it, err := FromWireItem(nil); err != nil || it.Exists {
		t.Fatalf("nil item must be the zero item")
	}
	w.PriceWei = "-5"
	if _, err := FromWireItem(w); err == nil {
		t.Fatalf("want error on negative price")
	}
}

func TestToWireEvent_OnlyKindFields(t *testing.T) {
	t.Parallel()
	ev := model.PlatformFeeUpdated(7)
	ev.Seq = 9
	w := ToWireEvent(ev)
	if w.Kind != "PlatformFeeUpdated" || w.Seq != 9 || w.FeePercent != 7 {
		t.Fatalf("bad event: %+v", w)
	}
	if w.Publisher != "" || w.PriceWei != "" || w.At != nil {
		t.Fatalf("unexpected fields set: %+v", w)
	}

	r := model.Receipt{ItemID: 1, Buyer: pub, Publisher: pub, Price: big.NewInt(100), PlatformFee: big.NewInt(5), PublisherAmount: big.NewInt(95)}
	w = ToWireEvent(model.ItemPurchased(r))
	if w.Buyer != pub.Hex() || w.PlatformFeeWei != "5" || w.FeePercent != 0 {
		t.Fatalf("bad purchase event: %+v", w)
	}
	if got := ToWireReceipt(r); got.PublisherAmountWei != "95" {
		t.Fatalf("bad receipt: %+v", got)
	}
}
