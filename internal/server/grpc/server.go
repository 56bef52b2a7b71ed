// Package grpcserver exposes the market gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
	"github.com/and161185/unlockable/internal/convert"
	"github.com/and161185/unlockable/internal/errs"
	"github.com/and161185/unlockable/internal/service"
)

// watchPage is the number of events read per WatchEvents round.
const watchPage = 256

// Network identifies the ledger instance clients must target.
type Network struct {
	ChainID int64
	Name    string
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedMarketServer
	auth      service.AuthService
	market    service.MarketService
	signKey   []byte
	network   Network
	pollEvery time.Duration
	deposits  bool
}

// Option tunes a Server.
type Option func(*Server)

// WithDeposits serves the Deposit faucet. Balances otherwise only grow from
// sale proceeds, so it is meant for dev deployments.
func WithDeposits(enabled bool) Option {
	return func(s *Server) { s.deposits = enabled }
}

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, market service.MarketService, signKey []byte, network Network, opts ...Option) *Server {
	s := &Server{auth: auth, market: market, signKey: signKey, network: network, pollEvery: time.Second}
	for _, o := range opts {
		o(s)
	}
	return s
}

// toStatus maps domain errors to gRPC codes. Sentinel messages are the revert
// reasons shown to users.
func toStatus(op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrItemNotFound):
		return status.Error(codes.NotFound, errs.ErrItemNotFound.Error())
	case errors.Is(err, errs.ErrIncorrectPayment):
		return status.Error(codes.InvalidArgument, errs.ErrIncorrectPayment.Error())
	case errors.Is(err, errs.ErrInvalidAmount), errors.Is(err, errs.ErrInvalidFee):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrAlreadyPurchased):
		return status.Error(codes.AlreadyExists, errs.ErrAlreadyPurchased.Error())
	case errors.Is(err, errs.ErrNotOwner):
		return status.Error(codes.PermissionDenied, errs.ErrNotOwner.Error())
	case errors.Is(err, errs.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, errs.ErrInsufficientFunds.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "bad credentials")
	case errors.Is(err, errs.ErrChallengeExpired):
		return status.Error(codes.Unauthenticated, errs.ErrChallengeExpired.Error())
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	case strings.HasPrefix(err.Error(), "validation:"):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// remoteIP returns the peer host without its port, so reconnecting from a new
// source port keeps hitting the same limiter bucket.
func remoteIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	a := p.Addr.String()
	host, _, err := net.SplitHostPort(a)
	if err != nil {
		return a
	}
	return host
}

// --- Session ---

// GetNetwork reports the chain id clients must be configured for.
func (s *Server) GetNetwork(context.Context, *pb.GetNetworkRequest) (*pb.GetNetworkResponse, error) {
	return &pb.GetNetworkResponse{ChainId: s.network.ChainID, Name: s.network.Name}, nil
}

// Challenge issues a sign-in message for an address.
func (s *Server) Challenge(ctx context.Context, req *pb.ChallengeRequest) (*pb.ChallengeResponse, error) {
	addr, err := convert.ParseAddress(req.GetAddress())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	c, err := s.auth.Challenge(ctx, addr)
	if err != nil {
		return nil, toStatus("challenge", err)
	}
	return &pb.ChallengeResponse{Message: c.Message, Nonce: c.Nonce, ExpiresAt: timestamppb.New(c.ExpiresAt)}, nil
}

// Login verifies the signed challenge and returns an access token.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	addr, err := convert.ParseAddress(req.GetAddress())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	tok, err := s.auth.LoginWithIP(ctx, addr, req.GetNonce(), req.GetSignature(), remoteIP(ctx))
	if err != nil {
		return nil, toStatus("login", err)
	}
	return &pb.LoginResponse{
		AccessToken: tok.AccessToken,
		ExpiresAt:   timestamppb.New(tok.ExpiresAt),
		Address:     addr.Hex(),
	}, nil
}

// --- Ledger writes ---

// ListItem stores a new item published by the caller.
func (s *Server) ListItem(ctx context.Context, req *pb.ListItemRequest) (*pb.ListItemResponse, error) {
	caller, ok := AccountFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	price, err := convert.ParseWei(req.GetPriceWei())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	it, err := s.market.ListItem(ctx, caller, req.GetTitle(), req.GetDescription(), price)
	if err != nil {
		return nil, toStatus("list item", err)
	}
	return &pb.ListItemResponse{Item: convert.ToWireItem(it)}, nil
}

// PurchaseItem pays for an item from the caller's balance.
func (s *Server) PurchaseItem(ctx context.Context, req *pb.PurchaseItemRequest) (*pb.PurchaseItemResponse, error) {
	caller, ok := AccountFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	value, err := convert.ParseWei(req.GetValueWei())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	rc, err := s.market.PurchaseItem(ctx, caller, req.GetItemId(), value)
	if err != nil {
		return nil, toStatus("purchase", err)
	}
	return &pb.PurchaseItemResponse{Receipt: convert.ToWireReceipt(rc)}, nil
}

// SetPlatformFeePercent changes the platform fee; owner only.
func (s *Server) SetPlatformFeePercent(ctx context.Context, req *pb.SetPlatformFeePercentRequest) (*pb.SetPlatformFeePercentResponse, error) {
	caller, ok := AccountFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	if err := s.market.SetPlatformFeePercent(ctx, caller, req.GetFeePercent()); err != nil {
		return nil, toStatus("set fee", err)
	}
	return &pb.SetPlatformFeePercentResponse{}, nil
}

// TransferOwnership hands the owner role to another address; owner only.
func (s *Server) TransferOwnership(ctx context.Context, req *pb.TransferOwnershipRequest) (*pb.TransferOwnershipResponse, error) {
	caller, ok := AccountFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	next, err := convert.ParseAddress(req.GetNewOwner())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.market.TransferOwnership(ctx, caller, next); err != nil {
		return nil, toStatus("transfer ownership", err)
	}
	return &pb.TransferOwnershipResponse{}, nil
}

// Deposit credits the caller's balance when the faucet is enabled.
func (s *Server) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.DepositResponse, error) {
	caller, ok := AccountFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	if !s.deposits {
		return nil, status.Error(codes.PermissionDenied, "deposits are disabled outside dev mode")
	}
	amount, err := convert.ParseWei(req.GetAmountWei())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	bal, err := s.market.Deposit(ctx, caller, amount)
	if err != nil {
		return nil, toStatus("deposit", err)
	}
	return &pb.DepositResponse{BalanceWei: bal.String()}, nil
}

// --- Ledger reads ---

// HasAccess reports whether the account purchased the item.
func (s *Server) HasAccess(ctx context.Context, req *pb.HasAccessRequest) (*pb.HasAccessResponse, error) {
	acct, err := convert.ParseAddress(req.GetAccount())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ok, err := s.market.HasAccess(ctx, acct, req.GetItemId())
	if err != nil {
		return nil, toStatus("has access", err)
	}
	return &pb.HasAccessResponse{HasAccess: ok}, nil
}

// GetAllItemIds lists every id in creation order.
func (s *Server) GetAllItemIds(ctx context.Context, _ *pb.GetAllItemIdsRequest) (*pb.GetAllItemIdsResponse, error) {
	ids, err := s.market.GetAllItemIDs(ctx)
	if err != nil {
		return nil, toStatus("get item ids", err)
	}
	return &pb.GetAllItemIdsResponse{ItemIds: ids}, nil
}

// GetItem returns a single item by id.
func (s *Server) GetItem(ctx context.Context, req *pb.GetItemRequest) (*pb.GetItemResponse, error) {
	it, err := s.market.GetItem(ctx, req.GetItemId())
	if err != nil {
		return nil, toStatus("get item", err)
	}
	return &pb.GetItemResponse{Item: convert.ToWireItem(it)}, nil
}

// GetFeeConfig returns the owner and fee percent.
func (s *Server) GetFeeConfig(ctx context.Context, _ *pb.GetFeeConfigRequest) (*pb.GetFeeConfigResponse, error) {
	cfg, err := s.market.FeeConfig(ctx)
	if err != nil {
		return nil, toStatus("get fee config", err)
	}
	return &pb.GetFeeConfigResponse{Owner: cfg.Owner.Hex(), FeePercent: uint32(cfg.FeePercent)}, nil
}

// GetBalance returns an account balance.
func (s *Server) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	acct, err := convert.ParseAddress(req.GetAccount())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	bal, err := s.market.Balance(ctx, acct)
	if err != nil {
		return nil, toStatus("get balance", err)
	}
	return &pb.GetBalanceResponse{BalanceWei: bal.String()}, nil
}

// WatchEvents replays events after since_seq and then follows the log. New
// events are picked up on a local commit signal or, for changes written by
// other server instances, on the poll tick.
func (s *Server) WatchEvents(req *pb.WatchEventsRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	ctx := stream.Context()
	since := req.GetSinceSeq()
	tick := time.NewTicker(s.pollEvery)
	defer tick.Stop()

	for {
		wake := s.market.Updates()
		evs, err := s.market.EventsSince(ctx, since, watchPage)
		if err != nil {
			return toStatus("watch events", err)
		}
		for _, ev := range evs {
			if err := stream.Send(convert.ToWireEvent(ev)); err != nil {
				return err
			}
			since = ev.Seq
		}
		if len(evs) == watchPage {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-wake:
		case <-tick.C:
		}
	}
}

// addressFromCtx: extract "authorization: Bearer <JWT>", verify HS256, return sub as an address.
func (s *Server) addressFromCtx(ctx context.Context) (common.Address, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return common.Address{}, err
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return common.Address{}, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return common.Address{}, errors.New("token expired or not valid yet")
	}

	addr, err := convert.ParseAddress(claims.Subject)
	if err != nil {
		return common.Address{}, errors.New("bad subject")
	}
	return addr, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}
