package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/order/v1"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	ordergrpc "github.com/dwikikusuma/storefront/internal/order/grpc"
	orderadapter "github.com/dwikikusuma/storefront/internal/order/infra/adapter"
	ordermem "github.com/dwikikusuma/storefront/internal/order/infra/memory"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

const stopTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	// Catalog
	src, closeSrc, err := newCatalogSource(ctx, cfg.Catalog, log)
	if err != nil {
		return err
	}
	defer closeSrc()
	catalogSvc := catalogapp.NewService(src)

	// Orders are placed by the cart's submit hook.
	orderSvc := orderapp.NewService(ordermem.NewOrderRepo())
	checkout := orderadapter.NewCartCheckout(orderSvc, log)

	// Cart
	store := cartapp.NewStore(checkout, log)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	grpcServer, healthSrv := newGRPCServer(catalogSvc, store, orderSvc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("grpc starting", slog.String("addr", addr), slog.String("catalog", cfg.Catalog.Source))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		healthSrv.Shutdown()
		gracefulStop(grpcServer, log)
		return nil
	})

	return g.Wait()
}

// newGRPCServer registers the storefront services and grpc health on a new
// server. Every service starts out SERVING.
func newGRPCServer(catalogSvc *catalogapp.Service, store *cartapp.Store, orderSvc *orderapp.Service) (*grpc.Server, *health.Server) {
	s := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(s, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(s, cartgrpc.NewServer(store))
	orderv1.RegisterOrderServiceServer(s, ordergrpc.NewServer(orderSvc))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(s, healthSrv)
	for _, name := range []string{
		cartv1.CartService_ServiceName,
		catalogv1.CatalogService_ServiceName,
		orderv1.OrderService_ServiceName,
	} {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	return s, healthSrv
}

func gracefulStop(s *grpc.Server, log *slog.Logger) {
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(stopTimeout):
		log.Warn("graceful stop timeout, forcing stop")
		s.Stop()
	case <-stopped:
	}
}
