package grpcserver

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
)

type ctxKey string

const accountKey ctxKey = "ul.account"

// sessionMethods change ledger state and need a signed-in caller. Reads are public.
var sessionMethods = map[string]bool{
	pb.Market_ListItem_FullMethodName:              true,
	pb.Market_PurchaseItem_FullMethodName:          true,
	pb.Market_SetPlatformFeePercent_FullMethodName: true,
	pb.Market_TransferOwnership_FullMethodName:     true,
	pb.Market_Deposit_FullMethodName:               true,
}

// WithAccount stores the authenticated wallet address in context.
func WithAccount(ctx context.Context, addr common.Address) context.Context {
	return context.WithValue(ctx, accountKey, addr)
}

// AccountFromCtx fetches the wallet address from context.
func AccountFromCtx(ctx context.Context) (common.Address, bool) {
	v := ctx.Value(accountKey)
	if v == nil {
		return common.Address{}, false
	}
	addr, ok := v.(common.Address)
	return addr, ok
}

// AuthUnary validates the bearer token of session methods and stores the
// caller address in the handler context.
func (s *Server) AuthUnary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !sessionMethods[info.FullMethod] {
			return next(ctx, req)
		}
		addr, err := s.addressFromCtx(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "no auth")
		}
		return next(WithAccount(ctx, addr), req)
	}
}
