// Package model defines domain entities used by services and repositories.
package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Tokens collects an issued access token.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// Item is a listed, priced unit of content. Every field is fixed at listing time.
type Item struct {
	ID          uint64
	Publisher   common.Address
	Title       string
	Description string
	Price       *big.Int // wei, >= 0
	Exists      bool     // false only on the zero value
	CreatedAt   time.Time
}

// FeeConfig is the market-wide singleton: the owner administers the fee and receives it.
type FeeConfig struct {
	Owner      common.Address
	FeePercent uint8
}

// Receipt reports the value movement of a successful purchase.
type Receipt struct {
	ItemID          uint64
	Buyer           common.Address
	Publisher       common.Address
	FeeRecipient    common.Address
	Price           *big.Int
	PlatformFee     *big.Int
	PublisherAmount *big.Int
	Seq             int64 // sequence of the ItemPurchased event
}

// Challenge is a single-use login message issued to an address.
type Challenge struct {
	Address   common.Address
	Nonce     string
	Message   string
	ExpiresAt time.Time
}

// EventKind names an emitted market event.
type EventKind string

const (
	EventItemListed           EventKind = "ItemListed"
	EventItemPurchased        EventKind = "ItemPurchased"
	EventPlatformFeeUpdated   EventKind = "PlatformFeeUpdated"
	EventOwnershipTransferred EventKind = "OwnershipTransferred"
	EventDeposited            EventKind = "Deposited"
)

// Event is one entry of the append-only market log. Only the fields of its
// Kind are set:
//
//	ItemListed           ItemID, Publisher, Title, Price
//	ItemPurchased        ItemID, Buyer, Publisher, Price, PlatformFee
//	PlatformFeeUpdated   FeePercent
//	OwnershipTransferred PreviousOwner, NewOwner
//	Deposited            Account, Amount
type Event struct {
	Seq  int64     `json:"-"`
	Kind EventKind `json:"-"`
	At   time.Time `json:"-"`

	ItemID        uint64          `json:"item_id,omitempty"`
	Publisher     *common.Address `json:"publisher,omitempty"`
	Buyer         *common.Address `json:"buyer,omitempty"`
	Title         string          `json:"title,omitempty"`
	Price         *big.Int        `json:"price,omitempty"`
	PlatformFee   *big.Int        `json:"platform_fee,omitempty"`
	FeePercent    *uint8          `json:"fee_percent,omitempty"`
	PreviousOwner *common.Address `json:"previous_owner,omitempty"`
	NewOwner      *common.Address `json:"new_owner,omitempty"`
	Account       *common.Address `json:"account,omitempty"`
	Amount        *big.Int        `json:"amount,omitempty"`
}

// ItemListed builds the event emitted by a listing.
func ItemListed(it Item) Event {
	pub := it.Publisher
	return Event{Kind: EventItemListed, ItemID: it.ID, Publisher: &pub, Title: it.Title, Price: new(big.Int).Set(it.Price)}
}

// ItemPurchased builds the event emitted by a purchase.
func ItemPurchased(r Receipt) Event {
	buyer, pub := r.Buyer, r.Publisher
	return Event{
		Kind:        EventItemPurchased,
		ItemID:      r.ItemID,
		Buyer:       &buyer,
		Publisher:   &pub,
		Price:       new(big.Int).Set(r.Price),
		PlatformFee: new(big.Int).Set(r.PlatformFee),
	}
}

// PlatformFeeUpdated builds the event emitted by a fee change.
func PlatformFeeUpdated(pct uint8) Event {
	return Event{Kind: EventPlatformFeeUpdated, FeePercent: &pct}
}

// OwnershipTransferred builds the event emitted by an owner change.
func OwnershipTransferred(prev, next common.Address) Event {
	return Event{Kind: EventOwnershipTransferred, PreviousOwner: &prev, NewOwner: &next}
}

// Deposited builds the event emitted by a balance top-up.
func Deposited(acct common.Address, amount *big.Int) Event {
	return Event{Kind: EventDeposited, Account: &acct, Amount: new(big.Int).Set(amount)}
}
