package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Leerm14/restaurantmanagement/internal/api/http"
	"github.com/Leerm14/restaurantmanagement/internal/api/http/handlers"
	"github.com/Leerm14/restaurantmanagement/internal/backend"
	"github.com/Leerm14/restaurantmanagement/internal/cart"
	"github.com/Leerm14/restaurantmanagement/internal/config"
	"github.com/Leerm14/restaurantmanagement/internal/events"
	"github.com/Leerm14/restaurantmanagement/internal/identity"
	"github.com/Leerm14/restaurantmanagement/internal/observability"
	"github.com/Leerm14/restaurantmanagement/internal/prefs"
	"github.com/Leerm14/restaurantmanagement/internal/session"
	"github.com/Leerm14/restaurantmanagement/internal/storage"
	"github.com/Leerm14/restaurantmanagement/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	dispatcher := events.NewInMemoryDispatcher()

	provider := identity.NewLocalProvider(cfg.Identity, store, dispatcher, logger)
	client := backend.NewClient(cfg.Backend, provider, logger)

	sessions := session.NewStore(provider, client, dispatcher, logger)
	sessions.Start(ctx)

	cartStore := cart.NewStore(ctx, store, logger)
	prefStore := prefs.NewStore(ctx, store, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Sessions: sessions,
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Auth:     handlers.NewSessionHandler(provider, sessions, client, logger),
		Menu:     handlers.NewMenuHandler(client),
		Cart:     handlers.NewCartHandler(cartStore, sessions, prefStore, client),
		Booking:  handlers.NewBookingHandler(sessions, client),
		Orders:   handlers.NewOrdersHandler(sessions, client),
		Payments: handlers.NewPaymentsHandler(client, logger),
		Account:  handlers.NewAccountHandler(sessions, client),
		Settings: handlers.NewSettingsHandler(prefStore),
		Staff:    handlers.NewStaffHandler(client),
		Admin:    handlers.NewAdminHandler(client),
	})

	if cfg.Poller.Enabled {
		poller := worker.NewPaymentPoller(cfg.Poller, client, dispatcher, logger)
		go poller.Run(ctx)
	}

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
