package grpcserver

import (
	"context"
	"crypto/ecdsa"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
	pkgcrypto "github.com/and161185/unlockable/internal/crypto"
	"github.com/and161185/unlockable/internal/limiter"
	"github.com/and161185/unlockable/internal/repository/memory"
	"github.com/and161185/unlockable/internal/service"
)

const bufSize = 1 << 20

var testNetwork = Network{ChainID: 31337, Name: "devnet"}

type harness struct {
	cl    pb.MarketClient
	cc    *grpc.ClientConn
	owner *ecdsa.PrivateKey
}

func startBufGRPC(t *testing.T, opts ...Option) (*harness, func()) {
	t.Helper()
	signKey := []byte("test-secret")

	ownerKey, err := pkgcrypto.GenerateKey()
	require.NoError(t, err)

	market := service.NewMarketService(memory.NewMarket(), nil)
	require.NoError(t, market.Init(context.Background(), pkgcrypto.Address(ownerKey), 5))
	auth := service.NewAuthService(memory.NewChallenges(), limiter.NewMemory(limiter.DefaultSettings), service.AuthConfig{
		SignKey:      signKey,
		AccessTTL:    time.Minute,
		ChallengeTTL: time.Minute,
		ChainID:      testNetwork.ChainID,
	})
	srv := New(auth, market, signKey, testNetwork, opts...)
	srv.pollEvery = 50 * time.Millisecond

	log := zaptest.NewLogger(t)
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(RecoverUnary(log), LoggingUnary(log), srv.AuthUnary()),
		grpc.ChainStreamInterceptor(RecoverStream(log), LoggingStream(log)),
	)
	pb.RegisterMarketServer(gs, srv)
	healthpb.RegisterHealthServer(gs, health.NewServer())
	reflection.Register(gs)
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	stop := func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() }
	return &harness{cl: pb.NewMarketClient(cc), cc: cc, owner: ownerKey}, stop
}

/************ helpers ************/

// login runs the challenge/sign/login handshake and returns an authorized context.
func login(t *testing.T, cl pb.MarketClient, key *ecdsa.PrivateKey) context.Context {
	t.Helper()
	addr := pkgcrypto.Address(key).Hex()
	ch, err := cl.Challenge(context.Background(), &pb.ChallengeRequest{Address: addr})
	require.NoError(t, err)
	lr, err := cl.Login(context.Background(), signedLogin(t, key, ch))
	require.NoError(t, err)
	require.Equal(t, addr, lr.GetAddress())
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+lr.GetAccessToken())
}

func signedLogin(t *testing.T, key *ecdsa.PrivateKey, ch *pb.ChallengeResponse) *pb.LoginRequest {
	t.Helper()
	sig, err := pkgcrypto.SignText(key, []byte(ch.GetMessage()))
	require.NoError(t, err)
	return &pb.LoginRequest{Address: pkgcrypto.Address(key).Hex(), Nonce: ch.GetNonce(), Signature: sig}
}

func newKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	k, err := pkgcrypto.GenerateKey()
	require.NoError(t, err)
	return k
}

func TestServer_E2E_PurchaseFlow(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t, WithDeposits(true))
	defer stop()
	cl := h.cl

	netResp, err := cl.GetNetwork(context.Background(), &pb.GetNetworkRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(31337), netResp.GetChainId())

	pubKey, buyerKey := newKey(t), newKey(t)
	pubCtx, buyerCtx := login(t, cl, pubKey), login(t, cl, buyerKey)
	buyer := pkgcrypto.Address(buyerKey).Hex()

	lr, err := cl.ListItem(pubCtx, &pb.ListItemRequest{Title: "Guide", Description: "Desc", PriceWei: "1000000000000000000"})
	require.NoError(t, err)
	require.Equal(t, uint64(0), lr.GetItem().GetId())
	require.Equal(t, pkgcrypto.Address(pubKey).Hex(), lr.GetItem().GetPublisher())

	_, err = cl.PurchaseItem(buyerCtx, &pb.PurchaseItemRequest{ItemId: 0, ValueWei: "1000000000000000000"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	dr, err := cl.Deposit(buyerCtx, &pb.DepositRequest{AmountWei: "1000000000000000000"})
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", dr.GetBalanceWei())

	_, err = cl.PurchaseItem(buyerCtx, &pb.PurchaseItemRequest{ItemId: 0, ValueWei: "900000000000000000"})
	st, _ := status.FromError(err)
	require.Equal(t, codes.InvalidArgument, st.Code())
	require.Equal(t, "incorrect ETH amount sent", st.Message())

	pr, err := cl.PurchaseItem(buyerCtx, &pb.PurchaseItemRequest{ItemId: 0, ValueWei: "1000000000000000000"})
	require.NoError(t, err)
	require.Equal(t, "50000000000000000", pr.GetReceipt().GetPlatformFeeWei())
	require.Equal(t, "950000000000000000", pr.GetReceipt().GetPublisherAmountWei())
	require.Equal(t, pkgcrypto.Address(h.owner).Hex(), pr.GetReceipt().GetFeeRecipient())

	_, err = cl.PurchaseItem(buyerCtx, &pb.PurchaseItemRequest{ItemId: 0, ValueWei: "1000000000000000000"})
	require.Equal(t, codes.AlreadyExists, status.Code(err))

	ha, err := cl.HasAccess(context.Background(), &pb.HasAccessRequest{Account: buyer, ItemId: 0})
	require.NoError(t, err)
	require.True(t, ha.GetHasAccess())
	ha, err = cl.HasAccess(context.Background(), &pb.HasAccessRequest{Account: buyer, ItemId: 99})
	require.NoError(t, err)
	require.False(t, ha.GetHasAccess())

	ids, err := cl.GetAllItemIds(context.Background(), &pb.GetAllItemIdsRequest{})
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, ids.GetItemIds())

	bal, err := cl.GetBalance(context.Background(), &pb.GetBalanceRequest{Account: pkgcrypto.Address(pubKey).Hex()})
	require.NoError(t, err)
	require.Equal(t, "950000000000000000", bal.GetBalanceWei())

	_, err = cl.GetItem(context.Background(), &pb.GetItemRequest{ItemId: 5})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_E2E_AuthRequired(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t)
	defer stop()

	_, err := h.cl.ListItem(context.Background(), &pb.ListItemRequest{Title: "x", PriceWei: "1"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.cl.Login(context.Background(), &pb.LoginRequest{Address: "nope", Signature: "0x"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	key := newKey(t)
	addr := pkgcrypto.Address(key).Hex()
	_, err = h.cl.Login(context.Background(), &pb.LoginRequest{Address: addr, Signature: "0x00"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_E2E_ChallengesDoNotEvictEachOther(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t)
	defer stop()

	key := newKey(t)
	addr := pkgcrypto.Address(key).Hex()
	mine, err := h.cl.Challenge(context.Background(), &pb.ChallengeRequest{Address: addr})
	require.NoError(t, err)
	// anyone may ask for a challenge on behalf of addr
	other, err := h.cl.Challenge(context.Background(), &pb.ChallengeRequest{Address: addr})
	require.NoError(t, err)
	require.NotEqual(t, mine.GetNonce(), other.GetNonce())

	_, err = h.cl.Login(context.Background(), signedLogin(t, key, mine))
	require.NoError(t, err)

	// single use
	_, err = h.cl.Login(context.Background(), signedLogin(t, key, mine))
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_E2E_DepositDisabledByDefault(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t)
	defer stop()

	ctx := login(t, h.cl, newKey(t))
	_, err := h.cl.Deposit(ctx, &pb.DepositRequest{AmountWei: "1"})
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = h.cl.Deposit(context.Background(), &pb.DepositRequest{AmountWei: "1"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_E2E_OwnerGating(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t)
	defer stop()
	cl := h.cl

	ownerCtx, otherCtx := login(t, cl, h.owner), login(t, cl, newKey(t))

	_, err := cl.SetPlatformFeePercent(otherCtx, &pb.SetPlatformFeePercentRequest{FeePercent: 10})
	require.Equal(t, codes.PermissionDenied, status.Code(err))
	_, err = cl.SetPlatformFeePercent(ownerCtx, &pb.SetPlatformFeePercentRequest{FeePercent: 101})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = cl.SetPlatformFeePercent(ownerCtx, &pb.SetPlatformFeePercentRequest{FeePercent: 10})
	require.NoError(t, err)

	fc, err := cl.GetFeeConfig(context.Background(), &pb.GetFeeConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, uint32(10), fc.GetFeePercent())

	next := pkgcrypto.Address(newKey(t)).Hex()
	_, err = cl.TransferOwnership(ownerCtx, &pb.TransferOwnershipRequest{NewOwner: next})
	require.NoError(t, err)
	fc, _ = cl.GetFeeConfig(context.Background(), &pb.GetFeeConfigRequest{})
	require.Equal(t, next, fc.GetOwner())
}

func TestServer_E2E_WatchEvents(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t, WithDeposits(true))
	defer stop()
	cl := h.cl

	pubCtx := login(t, cl, newKey(t))
	_, err := cl.ListItem(pubCtx, &pb.ListItemRequest{Title: "a", PriceWei: "0"})
	require.NoError(t, err)
	_, err = cl.ListItem(pubCtx, &pb.ListItemRequest{Title: "b", PriceWei: "2"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stream, err := cl.WatchEvents(ctx, &pb.WatchEventsRequest{SinceSeq: 1})
	require.NoError(t, err)

	ev, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, int64(2), ev.GetSeq())
	require.Equal(t, "ItemListed", ev.GetKind())
	require.Equal(t, "b", ev.GetTitle())

	// live push after the replay
	_, err = cl.Deposit(pubCtx, &pb.DepositRequest{AmountWei: "7"})
	require.NoError(t, err)
	ev, err = stream.Recv()
	require.NoError(t, err)
	require.Equal(t, int64(3), ev.GetSeq())
	require.Equal(t, "Deposited", ev.GetKind())
	require.Equal(t, "7", ev.GetAmountWei())
}

func TestServer_Reflection(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rs, err := reflectionpb.NewServerReflectionClient(h.cc).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	require.NoError(t, rs.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: "unlockable.market.v1.Market"},
	}))
	resp, err := rs.Recv()
	require.NoError(t, err)
	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)

	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	require.Equal(t, "unlockable/market/v1/market.proto", fd.GetName())
	require.Len(t, fd.GetService(), 1)
	require.Len(t, fd.GetService()[0].GetMethod(), len(pb.Market_ServiceDesc.Methods)+len(pb.Market_ServiceDesc.Streams))
}

func TestServer_Health(t *testing.T) {
	t.Parallel()
	h, stop := startBufGRPC(t)
	defer stop()

	resp, err := healthpb.NewHealthClient(h.cc).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
