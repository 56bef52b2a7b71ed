package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
	"github.com/and161185/unlockable/internal/convert"
	"github.com/and161185/unlockable/internal/crypto"
	"github.com/and161185/unlockable/internal/model"
	"github.com/and161185/unlockable/internal/units"
)

const passphraseEnv = "UNLOCKABLE_PASSPHRASE"

// ------- helpers -------

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, callTimeout)
}

func passphrase(flagValue string) ([]byte, error) {
	if flagValue == "" {
		flagValue = os.Getenv(passphraseEnv)
	}
	if flagValue == "" {
		return nil, fmt.Errorf("need -p or %s", passphraseEnv)
	}
	return []byte(flagValue), nil
}

// ether renders a wei string as ether; malformed input is returned as is.
func ether(weiStr string) string {
	v, err := convert.ParseWei(weiStr)
	if err != nil {
		return weiStr
	}
	return units.FormatEther(v) + " ETH"
}

// newestFirst returns ids in descending order without touching the input.
func newestFirst(ids []uint64) []uint64 {
	out := slices.Clone(ids)
	slices.Reverse(out)
	return out
}

func accountArg(flagValue string, me common.Address) (common.Address, error) {
	if flagValue == "" {
		if me == (common.Address{}) {
			return common.Address{}, errNoWallet
		}
		return me, nil
	}
	return convert.ParseAddress(flagValue)
}

// itemView is what the CLI knows about one item for the current wallet.
type itemView struct {
	item       model.Item
	mine       bool
	hasAccess  bool
	secret     string
	haveSecret bool
}

func renderItem(w io.Writer, v itemView) {
	fmt.Fprintf(w, "#%d %s (%s)\n", v.item.ID, v.item.Title, units.FormatEther(v.item.Price)+" ETH")
	if v.item.Description != "" {
		fmt.Fprintf(w, "  %s\n", v.item.Description)
	}
	fmt.Fprintf(w, "  publisher %s\n", v.item.Publisher.Hex())
	if v.mine {
		fmt.Fprintln(w, "  you published this item")
	}
	switch {
	case v.hasAccess && v.haveSecret:
		fmt.Fprintf(w, "  unlocked: %s\n", v.secret)
	case v.hasAccess:
		fmt.Fprintln(w, "  unlocked (secret not stored on this machine)")
	default:
		fmt.Fprintln(w, "  locked")
	}
}

func renderEvent(w io.Writer, ev *pb.Event) {
	at := ""
	if ev.GetAt() != nil {
		at = ev.GetAt().AsTime().UTC().Format(time.RFC3339)
	}
	switch ev.GetKind() {
	case string(model.EventItemListed):
		fmt.Fprintf(w, "%d %s ItemListed id=%d publisher=%s title=%q price=%s\n",
			ev.GetSeq(), at, ev.GetItemId(), ev.GetPublisher(), ev.GetTitle(), ether(ev.GetPriceWei()))
	case string(model.EventItemPurchased):
		fmt.Fprintf(w, "%d %s ItemPurchased id=%d buyer=%s price=%s fee=%s\n",
			ev.GetSeq(), at, ev.GetItemId(), ev.GetBuyer(), ether(ev.GetPriceWei()), ether(ev.GetPlatformFeeWei()))
	case string(model.EventPlatformFeeUpdated):
		fmt.Fprintf(w, "%d %s PlatformFeeUpdated fee=%d%%\n", ev.GetSeq(), at, ev.GetFeePercent())
	case string(model.EventOwnershipTransferred):
		fmt.Fprintf(w, "%d %s OwnershipTransferred from=%s to=%s\n", ev.GetSeq(), at, ev.GetPreviousOwner(), ev.GetNewOwner())
	case string(model.EventDeposited):
		fmt.Fprintf(w, "%d %s Deposited account=%s amount=%s\n", ev.GetSeq(), at, ev.GetAccount(), ether(ev.GetAmountWei()))
	default:
		fmt.Fprintf(w, "%d %s %s\n", ev.GetSeq(), at, ev.GetKind())
	}
}

// loadView fetches an item and, when me is known, its access state.
func loadView(ctx context.Context, cli pb.MarketClient, id uint64, me common.Address) (itemView, error) {
	resp, err := cli.GetItem(ctx, &pb.GetItemRequest{ItemId: id})
	if err != nil {
		return itemView{}, err
	}
	it, err := convert.FromWireItem(resp.GetItem())
	if err != nil {
		return itemView{}, err
	}
	v := itemView{item: it}
	if me == (common.Address{}) {
		return v, nil
	}
	v.mine = it.Publisher == me
	acc, err := cli.HasAccess(ctx, &pb.HasAccessRequest{Account: me.Hex(), ItemId: id})
	if err != nil {
		return itemView{}, err
	}
	v.hasAccess = acc.GetHasAccess()
	if v.hasAccess {
		v.secret, v.haveSecret, err = secrets().GetInsecure(id)
		if err != nil {
			return itemView{}, err
		}
	}
	return v, nil
}

// ------- commands -------

func cmdKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	p := fs.String("p", "", "passphrase")
	force := fs.Bool("force", false, "replace an existing wallet")
	_ = fs.Parse(args)

	pass, err := passphrase(*p)
	if err != nil {
		fail("create wallet", err)
	}
	if _, err := activeAddress(); err == nil && !*force {
		fail("create wallet", errors.New("wallet already exists; use -force to replace it"))
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		fail("create wallet", err)
	}
	addr, err := saveWallet(pass, key)
	if err != nil {
		fail("create wallet", err)
	}
	fmt.Println(addr.Hex())
}

func cmdAddress() {
	addr, err := activeAddress()
	if err != nil {
		fail("read wallet", err)
	}
	fmt.Println(addr.Hex())
}

func cmdLogin(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	p := fs.String("p", "", "passphrase")
	_ = fs.Parse(args)

	pass, err := passphrase(*p)
	if err != nil {
		fail("log in", err)
	}
	key, err := unlockWallet(pass)
	if err != nil {
		fail("log in", err)
	}
	addr := crypto.Address(key)

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, _, err := t.connect(ctx, false)
	if err != nil {
		fail("log in", err)
	}
	defer cc.Close()

	ch, err := cli.Challenge(ctx, &pb.ChallengeRequest{Address: addr.Hex()})
	if err != nil {
		fail("log in", err)
	}
	sig, err := crypto.SignText(key, []byte(ch.GetMessage()))
	if err != nil {
		fail("log in", err)
	}
	resp, err := cli.Login(ctx, &pb.LoginRequest{Address: addr.Hex(), Nonce: ch.GetNonce(), Signature: sig})
	if err != nil {
		fail("log in", err)
	}
	exp := time.Now().Add(15 * time.Minute)
	if resp.GetExpiresAt() != nil {
		exp = resp.GetExpiresAt().AsTime()
	}
	if err := saveToken(resp.GetAccessToken(), exp, addr); err != nil {
		fail("log in", err)
	}
	fmt.Printf("logged in as %s until %s\n", addr.Hex(), exp.Local().Format(time.RFC3339))
}

func cmdNetwork(ctx context.Context, t target) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, err := t.dial(ctx, "")
	if err != nil {
		fail("read network", err)
	}
	defer cc.Close()
	n, err := cli.GetNetwork(ctx, &pb.GetNetworkRequest{})
	if err != nil {
		fail("read network", err)
	}
	fmt.Printf("chain %d (%s)\n", n.GetChainId(), n.GetName())
	if n.GetChainId() != t.chainID {
		fmt.Println(errWrongNetwork{want: t.chainID, got: n.GetChainId(), name: n.GetName()}.Error())
	}
}

func cmdList(ctx context.Context, t target) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, me, err := t.connect(ctx, false)
	if err != nil {
		fail("load items", err)
	}
	defer cc.Close()

	ids, err := cli.GetAllItemIds(ctx, &pb.GetAllItemIdsRequest{})
	if err != nil {
		fail("load items", err)
	}
	if len(ids.GetItemIds()) == 0 {
		fmt.Println("no items listed yet")
		return
	}
	for _, id := range newestFirst(ids.GetItemIds()) {
		v, err := loadView(ctx, cli, id, me)
		if err != nil {
			fail("load items", err)
		}
		renderItem(os.Stdout, v)
	}
}

func cmdListItem(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("list-item", flag.ExitOnError)
	title := fs.String("title", "", "item title")
	desc := fs.String("desc", "", "item description")
	price := fs.String("price", "", "price in ETH")
	secret := fs.String("secret", "", "secret revealed to buyers (stored locally, unencrypted)")
	_ = fs.Parse(args)
	if *price == "" {
		fmt.Fprintln(os.Stderr, "need -price")
		os.Exit(1)
	}
	wei, err := units.ParseEther(*price)
	if err != nil {
		fail("list item", err)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, me, err := t.connect(ctx, true)
	if err != nil {
		fail("list item", err)
	}
	defer cc.Close()

	resp, err := cli.ListItem(ctx, &pb.ListItemRequest{Title: *title, Description: *desc, PriceWei: wei.String()})
	if err != nil {
		fail("list item", err)
	}
	id := resp.GetItem().GetId()
	if *secret != "" {
		if err := secrets().PutInsecure(id, *secret); err != nil {
			fail("store secret", err)
		}
	}
	v, err := loadView(ctx, cli, id, me)
	if err != nil {
		fail("load item", err)
	}
	renderItem(os.Stdout, v)
}

func cmdBuy(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	id := fs.Uint64("id", 0, "item id")
	_ = fs.Parse(args)

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, me, err := t.connect(ctx, true)
	if err != nil {
		fail("purchase item", err)
	}
	defer cc.Close()

	item, err := cli.GetItem(ctx, &pb.GetItemRequest{ItemId: *id})
	if err != nil {
		fail("purchase item", err)
	}
	out, err := cli.PurchaseItem(ctx, &pb.PurchaseItemRequest{ItemId: *id, ValueWei: item.GetItem().GetPriceWei()})
	if err != nil {
		fail("purchase item", err)
	}
	r := out.GetReceipt()
	fmt.Printf("purchased #%d for %s (publisher %s, platform fee %s)\n",
		r.GetItemId(), ether(r.GetPriceWei()), ether(r.GetPublisherAmountWei()), ether(r.GetPlatformFeeWei()))

	v, err := loadView(ctx, cli, *id, me)
	if err != nil {
		fail("load item", err)
	}
	renderItem(os.Stdout, v)
}

func cmdAccess(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("access", flag.ExitOnError)
	id := fs.Uint64("id", 0, "item id")
	account := fs.String("account", "", "account (default: wallet)")
	_ = fs.Parse(args)

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, me, err := t.connect(ctx, false)
	if err != nil {
		fail("check access", err)
	}
	defer cc.Close()

	who, err := accountArg(*account, me)
	if err != nil {
		fail("check access", err)
	}
	resp, err := cli.HasAccess(ctx, &pb.HasAccessRequest{Account: who.Hex(), ItemId: *id})
	if err != nil {
		fail("check access", err)
	}
	fmt.Println(resp.GetHasAccess())
	if resp.GetHasAccess() && who == me {
		if s, ok, err := secrets().GetInsecure(*id); err == nil && ok {
			fmt.Println(s)
		}
	}
}

func cmdBalance(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	account := fs.String("account", "", "account (default: wallet)")
	_ = fs.Parse(args)

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, me, err := t.connect(ctx, false)
	if err != nil {
		fail("read balance", err)
	}
	defer cc.Close()

	who, err := accountArg(*account, me)
	if err != nil {
		fail("read balance", err)
	}
	resp, err := cli.GetBalance(ctx, &pb.GetBalanceRequest{Account: who.Hex()})
	if err != nil {
		fail("read balance", err)
	}
	fmt.Println(ether(resp.GetBalanceWei()))
}

func cmdDeposit(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("deposit", flag.ExitOnError)
	amount := fs.String("amount", "", "amount in ETH")
	_ = fs.Parse(args)
	wei, err := units.ParseEther(*amount)
	if err != nil {
		fail("deposit", err)
	}
	if wei.Sign() <= 0 {
		fail("deposit", errors.New("amount must be positive"))
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, _, err := t.connect(ctx, true)
	if err != nil {
		fail("deposit", err)
	}
	defer cc.Close()

	resp, err := cli.Deposit(ctx, &pb.DepositRequest{AmountWei: wei.String()})
	if err != nil {
		fail("deposit", err)
	}
	fmt.Printf("balance %s\n", ether(resp.GetBalanceWei()))
}

func printFee(ctx context.Context, cli pb.MarketClient) error {
	fee, err := cli.GetFeeConfig(ctx, &pb.GetFeeConfigRequest{})
	if err != nil {
		return err
	}
	fmt.Printf("owner %s, platform fee %d%%\n", fee.GetOwner(), fee.GetFeePercent())
	return nil
}

func cmdFee(ctx context.Context, t target) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, _, err := t.connect(ctx, false)
	if err != nil {
		fail("read fee", err)
	}
	defer cc.Close()
	if err := printFee(ctx, cli); err != nil {
		fail("read fee", err)
	}
}

func cmdSetFee(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("set-fee", flag.ExitOnError)
	pct := fs.Int64("pct", -1, "fee percent (0..100)")
	_ = fs.Parse(args)
	if *pct < 0 {
		fmt.Fprintln(os.Stderr, "need -pct")
		os.Exit(1)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, _, err := t.connect(ctx, true)
	if err != nil {
		fail("update fee", err)
	}
	defer cc.Close()

	if _, err := cli.SetPlatformFeePercent(ctx, &pb.SetPlatformFeePercentRequest{FeePercent: *pct}); err != nil {
		fail("update fee", err)
	}
	if err := printFee(ctx, cli); err != nil {
		fail("read fee", err)
	}
}

func cmdTransferOwner(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("transfer-owner", flag.ExitOnError)
	to := fs.String("to", "", "new owner address")
	_ = fs.Parse(args)
	next, err := convert.ParseAddress(*to)
	if err != nil {
		fail("transfer ownership", err)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()
	cc, cli, _, err := t.connect(ctx, true)
	if err != nil {
		fail("transfer ownership", err)
	}
	defer cc.Close()

	if _, err := cli.TransferOwnership(ctx, &pb.TransferOwnershipRequest{NewOwner: next.Hex()}); err != nil {
		fail("transfer ownership", err)
	}
	if err := printFee(ctx, cli); err != nil {
		fail("read fee", err)
	}
}

func cmdWatch(ctx context.Context, t target, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	since := fs.Int64("since", 0, "replay events after this seq")
	_ = fs.Parse(args)

	dctx, cancel := withTimeout(ctx)
	cc, cli, _, err := t.connect(dctx, false)
	cancel()
	if err != nil {
		fail("watch events", err)
	}
	defer cc.Close()

	stream, err := cli.WatchEvents(ctx, &pb.WatchEventsRequest{SinceSeq: *since})
	if err != nil {
		fail("watch events", err)
	}
	if err := drainEvents(os.Stdout, stream.Recv); err != nil {
		fail("watch events", err)
	}
}

// drainEvents prints events until the stream ends or the caller cancels.
func drainEvents(w io.Writer, recv func() (*pb.Event, error)) error {
	for {
		ev, err := recv()
		if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
			return nil
		}
		if err != nil {
			return err
		}
		renderEvent(w, ev)
	}
}
