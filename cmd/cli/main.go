// Command unl is a wallet CLI for the unlockable content market.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
)

// ---- grpc dial ----

type bearerCreds struct {
	token     string
	plaintext bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return !b.plaintext }

func loadTLS(caPath string, skipVerify, plaintext bool) (credentials.TransportCredentials, error) {
	if plaintext {
		return insecure.NewCredentials(), nil
	}
	if skipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

// target holds the global connection flags.
type target struct {
	addr       string
	caPath     string
	skipVerify bool
	plaintext  bool
	chainID    int64
}

func (t target) dial(ctx context.Context, bearer string) (*grpc.ClientConn, pb.MarketClient, error) {
	creds, err := loadTLS(t.caPath, t.skipVerify, t.plaintext)
	if err != nil {
		return nil, nil, err
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, plaintext: t.plaintext}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(ctx, t.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewMarketClient(cc), nil
}

// errWrongNetwork is returned when the server serves another chain.
type errWrongNetwork struct {
	want, got int64
	name      string
}

func (e errWrongNetwork) Error() string {
	return fmt.Sprintf("server is on chain %d (%s), expected chain %d; switch networks with -chain-id", e.got, e.name, e.want)
}

// checkNetwork refuses to continue unless the server reports the configured chain id.
func checkNetwork(ctx context.Context, cli pb.MarketClient, want int64) error {
	n, err := cli.GetNetwork(ctx, &pb.GetNetworkRequest{})
	if err != nil {
		return err
	}
	if n.GetChainId() != want {
		return errWrongNetwork{want: want, got: n.GetChainId(), name: n.GetName()}
	}
	return nil
}

// connect dials, verifies the network and, when session is set, attaches the
// saved token of the active wallet.
func (t target) connect(ctx context.Context, session bool) (*grpc.ClientConn, pb.MarketClient, common.Address, error) {
	me, err := activeAddress()
	if err != nil && session {
		return nil, nil, common.Address{}, err
	}
	var token string
	if session {
		if token, err = loadToken(me); err != nil {
			return nil, nil, common.Address{}, err
		}
	}
	cc, cli, err := t.dial(ctx, token)
	if err != nil {
		return nil, nil, common.Address{}, err
	}
	if err := checkNetwork(ctx, cli, t.chainID); err != nil {
		_ = cc.Close()
		return nil, nil, common.Address{}, err
	}
	return cc, cli, me, nil
}

// ---- errors ----

// errorMessage renders err for people. Server status messages carry the
// rejection reason; internal failures get an opaque text.
func errorMessage(action string, err error) string {
	reason := err.Error()
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Internal, codes.Unknown, codes.DataLoss:
			reason = "the server could not complete the request"
		case codes.Unavailable:
			reason = "server unavailable"
		case codes.DeadlineExceeded:
			reason = "request timed out"
		default:
			if s.Message() != "" {
				reason = s.Message()
			} else {
				reason = s.Code().String()
			}
		}
	}
	return fmt.Sprintf("Failed to %s: %s", action, reason)
}

func fail(action string, err error) {
	fmt.Fprintln(os.Stderr, errorMessage(action, err))
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `unl CLI
Usage:
  unl [-addr HOST:PORT] [-cacert file | -insecure | -plaintext] [-chain-id N] <cmd> [args]

Commands:
  version
  keygen        -p <passphrase> [-force]        (creates the local wallet)
  address                                         (prints the wallet address)
  login         -p <passphrase>                   (signs a challenge, saves session)
  network                                         (prints the server network)
  list                                            (newest first)
  list-item     -title T -desc D -price ETH -secret S
  buy           -id <item id>
  access        -id <item id> [-account 0x..]
  balance       [-account 0x..]
  deposit       -amount ETH                       (dev servers only)
  fee
  set-fee       -pct <0..100>                     (owner only)
  transfer-owner -to 0x..                         (owner only)
  watch         [-since seq]
`)
	os.Exit(2)
}

var (
	version   = "dev"
	buildDate = "unknown"
)

const callTimeout = 30 * time.Second

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	var t target
	flag.StringVar(&t.addr, "addr", "localhost:8443", "server addr")
	flag.StringVar(&t.caPath, "cacert", "", "CA cert (PEM)")
	flag.BoolVar(&t.skipVerify, "insecure", false, "skip cert verify (dev)")
	flag.BoolVar(&t.plaintext, "plaintext", false, "connect without TLS (dev)")
	flag.Int64Var(&t.chainID, "chain-id", 31337, "expected network chain id")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "version":
		fmt.Printf("unl %s (%s)\n", version, buildDate)
	case "keygen":
		cmdKeygen(args)
	case "address":
		cmdAddress()
	case "login":
		cmdLogin(ctx, t, args)
	case "network":
		cmdNetwork(ctx, t)
	case "list":
		cmdList(ctx, t)
	case "list-item":
		cmdListItem(ctx, t, args)
	case "buy":
		cmdBuy(ctx, t, args)
	case "access":
		cmdAccess(ctx, t, args)
	case "balance":
		cmdBalance(ctx, t, args)
	case "deposit":
		cmdDeposit(ctx, t, args)
	case "fee":
		cmdFee(ctx, t)
	case "set-fee":
		cmdSetFee(ctx, t, args)
	case "transfer-owner":
		cmdTransferOwner(ctx, t, args)
	case "watch":
		cmdWatch(ctx, t, args)
	default:
		usage()
	}
}
