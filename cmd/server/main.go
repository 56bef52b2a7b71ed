// Command unlockable-server starts the market gRPC server.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/unlockable/gen/go/unlockable/market/v1"
	"github.com/and161185/unlockable/internal/config"
	"github.com/and161185/unlockable/internal/events"
	"github.com/and161185/unlockable/internal/limiter"
	"github.com/and161185/unlockable/internal/migrate"
	"github.com/and161185/unlockable/internal/repository"
	"github.com/and161185/unlockable/internal/repository/memory"
	"github.com/and161185/unlockable/internal/repository/postgres"
	grpcserver "github.com/and161185/unlockable/internal/server/grpc"
	"github.com/and161185/unlockable/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type stores struct {
	market     repository.MarketRepository
	challenges repository.ChallengeRepository
	lim        limiter.Limiter
	close      func()
}

// openStores picks the in-process store for dsn "memory" and PostgreSQL otherwise.
func openStores(ctx context.Context, cfg config.Server, logger *zap.Logger) (stores, error) {
	if cfg.UseMemory() {
		logger.Warn("using in-memory store; state is lost on exit")
		return stores{
			market:     memory.NewMarket(),
			challenges: memory.NewChallenges(),
			lim:        limiter.NewMemory(cfg.LimiterSettings()),
			close:      func() {},
		}, nil
	}

	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		return stores{}, err
	}
	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		return stores{}, err
	}
	return stores{
		market:     postgres.NewMarketRepo(db),
		challenges: postgres.NewChallengeRepo(db),
		lim:        limiter.NewPG(db.Pool, cfg.LimiterSettings()),
		close:      db.Close,
	}, nil
}

// main parses configuration, opens storage, and starts the gRPC server.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.Int64("chainID", cfg.ChainID),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer st.close()

	// Services
	marketSvc := service.NewMarketService(st.market, events.NewNotifier())
	if err := marketSvc.Init(ctx, cfg.OwnerAddress(), cfg.FeePercent); err != nil {
		logger.Fatal("init market", zap.Error(err))
	}
	fee, err := marketSvc.FeeConfig(ctx)
	if err != nil {
		logger.Fatal("read fee config", zap.Error(err))
	}
	if fee.Owner != cfg.OwnerAddress() || int64(fee.FeePercent) != cfg.FeePercent {
		logger.Info("keeping stored fee configuration",
			zap.String("owner", fee.Owner.Hex()),
			zap.Uint8("feePercent", fee.FeePercent),
		)
	}
	authSvc := service.NewAuthService(st.challenges, st.lim, service.AuthConfig{
		SignKey:      []byte(cfg.JWTKey),
		AccessTTL:    cfg.AccessTTL,
		ChallengeTTL: cfg.ChallengeTTL,
		ChainID:      cfg.ChainID,
	})

	// Deposit mints balance out of thin air; only dev deployments serve it.
	app := grpcserver.New(authSvc, marketSvc, []byte(cfg.JWTKey),
		grpcserver.Network{ChainID: cfg.ChainID, Name: cfg.NetworkName},
		grpcserver.WithDeposits(cfg.Dev))

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			app.AuthUnary(),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.RecoverStream(logger),
			grpcserver.LoggingStream(logger),
		),
	}
	if !cfg.Insecure {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("serving without TLS")
	}
	s := grpc.NewServer(opts...)
	pb.RegisterMarketServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	// Listen
	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", !cfg.Insecure))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		// graceful shutdown; open WatchEvents streams are cut after the deadline
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		st.close()
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
