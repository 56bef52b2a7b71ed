package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
	"github.com/and161185/unlockable/internal/crypto"
	"github.com/and161185/unlockable/internal/crypto/clientcrypto"
	"github.com/and161185/unlockable/internal/model"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "unlockable")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	for _, p := range []string{keyPath(), tokenPath(), secretsPath()} {
		if !strings.HasPrefix(p, base) {
			t.Fatalf("path outside config dir: %s", p)
		}
	}
	if !strings.Contains(secretsPath(), "insecure") {
		t.Fatalf("secret store path should say it is insecure: %s", secretsPath())
	}
}

func Test_wallet_SaveUnlock(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := activeAddress(); !errors.Is(err, errNoWallet) {
		t.Fatalf("want errNoWallet, got %v", err)
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	addr, err := saveWallet([]byte("pw"), key)
	if err != nil {
		t.Fatalf("saveWallet: %v", err)
	}
	if addr != crypto.Address(key) {
		t.Fatalf("address mismatch")
	}
	got, err := activeAddress()
	if err != nil || got != addr {
		t.Fatalf("activeAddress: %s %v", got.Hex(), err)
	}
	back, err := unlockWallet([]byte("pw"))
	if err != nil {
		t.Fatalf("unlockWallet: %v", err)
	}
	if crypto.Address(back) != addr {
		t.Fatalf("unlocked another key")
	}
	if _, err := unlockWallet([]byte("nope")); !errors.Is(err, clientcrypto.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
	st, err := os.Stat(keyPath())
	if err != nil || st.Mode().Perm() != 0o600 {
		t.Fatalf("wallet file mode: %v %v", st, err)
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)
	me := common.HexToAddress("0x00000000000000000000000000000000000000a1")

	if _, err := loadToken(me); !errors.Is(err, errLoginNeeded) {
		t.Fatalf("expected errLoginNeeded when token file missing, got %v", err)
	}
	if err := saveToken("tok", time.Now().Add(time.Minute), me); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tok, err := loadToken(me)
	if err != nil || tok != "tok" {
		t.Fatalf("loadToken: tok=%q err=%v", tok, err)
	}
	if err := saveToken("tok2", time.Now().Add(-time.Minute), me); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(me); !errors.Is(err, errLoginNeeded) {
		t.Fatalf("want errLoginNeeded for expired token, got %v", err)
	}
}

func Test_token_AccountChangeDiscardsSession(t *testing.T) {
	_ = withTmpConfig(t)
	me := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	other := common.HexToAddress("0x00000000000000000000000000000000000000b2")

	if err := saveToken("tok", time.Now().Add(time.Minute), me); err != nil {
		t.Fatal(err)
	}
	if _, err := loadToken(other); !errors.Is(err, errAccountMoved) {
		t.Fatalf("want errAccountMoved, got %v", err)
	}
	if _, err := os.Stat(tokenPath()); !os.IsNotExist(err) {
		t.Fatalf("session file should be removed, stat err=%v", err)
	}
	if _, err := loadToken(me); !errors.Is(err, errLoginNeeded) {
		t.Fatalf("old account must log in again, got %v", err)
	}
}

func Test_secrets_RoundTrip(t *testing.T) {
	_ = withTmpConfig(t)
	if err := secrets().PutInsecure(3, "s3cr3t"); err != nil {
		t.Fatal(err)
	}
	s, ok, err := secrets().GetInsecure(3)
	if err != nil || !ok || s != "s3cr3t" {
		t.Fatalf("GetInsecure: %q %v %v", s, ok, err)
	}
	if _, ok, _ := secrets().GetInsecure(4); ok {
		t.Fatalf("unexpected secret for 4")
	}
}

func Test_errorMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{status.Error(codes.InvalidArgument, "incorrect ETH amount sent"), "Failed to purchase item: incorrect ETH amount sent"},
		{status.Error(codes.AlreadyExists, "item already purchased"), "Failed to purchase item: item already purchased"},
		{status.Error(codes.PermissionDenied, ""), "Failed to purchase item: PermissionDenied"},
		{status.Error(codes.Internal, "purchase: pq: boom"), "Failed to purchase item: the server could not complete the request"},
		{status.Error(codes.Unavailable, "connection refused"), "Failed to purchase item: server unavailable"},
		{errors.New("need -p"), "Failed to purchase item: need -p"},
	}
	for _, c := range cases {
		if got := errorMessage("purchase item", c.err); got != c.want {
			t.Fatalf("errorMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

type fakeNet struct {
	pb.MarketClient
	resp *pb.GetNetworkResponse
	err  error
}

func (f fakeNet) GetNetwork(context.Context, *pb.GetNetworkRequest, ...grpc.CallOption) (*pb.GetNetworkResponse, error) {
	return f.resp, f.err
}

func Test_checkNetwork(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if err := checkNetwork(ctx, fakeNet{resp: &pb.GetNetworkResponse{ChainId: 1, Name: "mainnet"}}, 1); err != nil {
		t.Fatalf("matching chain: %v", err)
	}
	err := checkNetwork(ctx, fakeNet{resp: &pb.GetNetworkResponse{ChainId: 5, Name: "goerli"}}, 1)
	var wn errWrongNetwork
	if !errors.As(err, &wn) || wn.got != 5 || wn.want != 1 {
		t.Fatalf("want errWrongNetwork, got %v", err)
	}
	if !strings.Contains(err.Error(), "goerli") {
		t.Fatalf("message should name the server network: %s", err)
	}
	boom := status.Error(codes.Unavailable, "down")
	if err := checkNetwork(ctx, fakeNet{err: boom}, 1); !errors.Is(err, boom) {
		t.Fatalf("want rpc error passthrough, got %v", err)
	}
}

func Test_newestFirst(t *testing.T) {
	t.Parallel()
	in := []uint64{0, 1, 2}
	got := newestFirst(in)
	if len(got) != 3 || got[0] != 2 || got[2] != 0 {
		t.Fatalf("newestFirst = %v", got)
	}
	if in[0] != 0 {
		t.Fatalf("input modified: %v", in)
	}
}

func Test_ether(t *testing.T) {
	t.Parallel()
	if got := ether("1000000000000000000"); got != "1 ETH" {
		t.Fatalf("ether = %q", got)
	}
	if got := ether("50000000000000000"); got != "0.05 ETH" {
		t.Fatalf("ether = %q", got)
	}
	if got := ether("junk"); got != "junk" {
		t.Fatalf("ether(junk) = %q", got)
	}
}

func Test_accountArg(t *testing.T) {
	t.Parallel()
	me := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	if got, err := accountArg("", me); err != nil || got != me {
		t.Fatalf("default account: %s %v", got.Hex(), err)
	}
	if _, err := accountArg("", common.Address{}); !errors.Is(err, errNoWallet) {
		t.Fatalf("want errNoWallet, got %v", err)
	}
	if _, err := accountArg("0x12", me); err == nil {
		t.Fatalf("short address must fail")
	}
}

func Test_renderItem(t *testing.T) {
	t.Parallel()
	pub := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	it := model.Item{ID: 2, Publisher: pub, Title: "Guide", Description: "how to", Price: big.NewInt(1e17), Exists: true}

	var b bytes.Buffer
	renderItem(&b, itemView{item: it})
	out := b.String()
	if !strings.Contains(out, "#2 Guide (0.1 ETH)") || !strings.Contains(out, "locked") {
		t.Fatalf("locked render: %s", out)
	}
	if strings.Contains(out, "you published") {
		t.Fatalf("not mine: %s", out)
	}

	b.Reset()
	renderItem(&b, itemView{item: it, mine: true})
	if !strings.Contains(b.String(), "you published this item") {
		t.Fatalf("mine render: %s", b.String())
	}

	b.Reset()
	renderItem(&b, itemView{item: it, hasAccess: true, secret: "s3cr3t", haveSecret: true})
	if !strings.Contains(b.String(), "unlocked: s3cr3t") {
		t.Fatalf("unlocked render: %s", b.String())
	}

	b.Reset()
	renderItem(&b, itemView{item: it, hasAccess: true})
	if !strings.Contains(b.String(), "secret not stored") {
		t.Fatalf("unlocked without secret: %s", b.String())
	}
}

func Test_renderEvent(t *testing.T) {
	t.Parallel()
	at := timestamppb.New(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	var b bytes.Buffer
	renderEvent(&b, &pb.Event{Seq: 1, Kind: "ItemListed", At: at, ItemId: 0, Title: "t", PriceWei: "1000000000000000000"})
	renderEvent(&b, &pb.Event{Seq: 2, Kind: "PlatformFeeUpdated", FeePercent: 7})
	renderEvent(&b, &pb.Event{Seq: 3, Kind: "Mystery"})
	out := b.String()
	for _, want := range []string{"1 2024-01-02T03:04:05Z ItemListed", "price=1 ETH", "fee=7%", "3  Mystery"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func Test_drainEvents(t *testing.T) {
	t.Parallel()

	evs := []*pb.Event{{Seq: 1, Kind: "Deposited", AmountWei: "1"}, {Seq: 2, Kind: "Deposited", AmountWei: "2"}}
	i := 0
	recv := func() (*pb.Event, error) {
		if i == len(evs) {
			return nil, io.EOF
		}
		i++
		return evs[i-1], nil
	}
	var b bytes.Buffer
	if err := drainEvents(&b, recv); err != nil {
		t.Fatalf("drainEvents: %v", err)
	}
	if strings.Count(b.String(), "Deposited") != 2 {
		t.Fatalf("want 2 lines: %s", b.String())
	}

	canceled := func() (*pb.Event, error) { return nil, status.Error(codes.Canceled, "bye") }
	if err := drainEvents(io.Discard, canceled); err != nil {
		t.Fatalf("cancel should end quietly: %v", err)
	}
	broken := func() (*pb.Event, error) { return nil, status.Error(codes.Unavailable, "gone") }
	if err := drainEvents(io.Discard, broken); status.Code(err) != codes.Unavailable {
		t.Fatalf("want Unavailable, got %v", err)
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T"}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds must require TLS")
	}
	if (bearerCreds{token: "T", plaintext: true}).RequireTransportSecurity() {
		t.Fatalf("plaintext dev mode must not require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", false, true)
	if err != nil || creds == nil || creds.Info().SecurityProtocol != "insecure" {
		t.Fatalf("plaintext: %v %v", creds, err)
	}
	creds, err = loadTLS("", true, false)
	if err != nil || creds == nil {
		t.Fatalf("skip verify: %v %v", creds, err)
	}
	creds, err = loadTLS("", false, false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}
}
