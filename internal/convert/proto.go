// Package convert maps domain types to protobuf messages and back.
package convert

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/model"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTS(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

func wei(v *big.Int) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func hexOrEmpty(a *common.Address) string {
	if a == nil {
		return ""
	}
	return a.Hex()
}

// ParseAddress accepts a 0x-prefixed 20 byte hex address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseWei parses a non-negative decimal wei amount.
func ParseWei(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, s)
	}
	return v, nil
}

// --- Item ---

// ToWireItem converts a domain item.
func ToWireItem(it model.Item) *pb.Item {
	return &pb.Item{
		Id:          it.ID,
		Publisher:   it.Publisher.Hex(),
		Title:       it.Title,
		Description: it.Description,
		PriceWei:    wei(it.Price),
		Exists:      it.Exists,
		CreatedAt:   ts(it.CreatedAt),
	}
}

// FromWireItem converts a wire item; a nil input yields the non-existent item.
func FromWireItem(in *pb.Item) (model.Item, error) {
	if in == nil {
		return model.Item{}, nil
	}
	pub, err := ParseAddress(in.GetPublisher())
	if err != nil {
		return model.Item{}, fmt.Errorf("publisher: %w", err)
	}
	price, err := ParseWei(in.GetPriceWei())
	if err != nil {
		return model.Item{}, fmt.Errorf("price: %w", err)
	}
	return model.Item{
		ID:          in.GetId(),
		Publisher:   pub,
		Title:       in.GetTitle(),
		Description: in.GetDescription(),
		Price:       price,
		Exists:      in.GetExists(),
		CreatedAt:   fromTS(in.GetCreatedAt()),
	}, nil
}

// --- Receipt ---

// ToWireReceipt converts a purchase receipt.
func ToWireReceipt(r model.Receipt) *pb.Receipt {
	return &pb.Receipt{
		ItemId:             r.ItemID,
		Buyer:              r.Buyer.Hex(),
		Publisher:          r.Publisher.Hex(),
		FeeRecipient:       r.FeeRecipient.Hex(),
		PriceWei:           wei(r.Price),
		PlatformFeeWei:     wei(r.PlatformFee),
		PublisherAmountWei: wei(r.PublisherAmount),
		Seq:                r.Seq,
	}
}

// --- Event ---

// ToWireEvent converts a log entry.
func ToWireEvent(ev model.Event) *pb.Event {
	out := &pb.Event{
		Seq:            ev.Seq,
		Kind:           string(ev.Kind),
		At:             ts(ev.At),
		ItemId:         ev.ItemID,
		Publisher:      hexOrEmpty(ev.Publisher),
		Buyer:          hexOrEmpty(ev.Buyer),
		Title:          ev.Title,
		PriceWei:       wei(ev.Price),
		PlatformFeeWei: wei(ev.PlatformFee),
		PreviousOwner:  hexOrEmpty(ev.PreviousOwner),
		NewOwner:       hexOrEmpty(ev.NewOwner),
		Account:        hexOrEmpty(ev.Account),
		AmountWei:      wei(ev.Amount),
	}
	if ev.FeePercent != nil {
		out.FeePercent = uint32(*ev.FeePercent)
	}
	return out
}

// ToWireEvents converts a page of log entries.
func ToWireEvents(in []model.Event) []*pb.Event {
	out := make([]*pb.Event, 0, len(in))
	for _, ev := range in {
		out = append(out, ToWireEvent(ev))
	}
	return out
}
