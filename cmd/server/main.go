package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"household-ledger/internal/config"
	"household-ledger/internal/database"
	"household-ledger/internal/handlers"
	"household-ledger/internal/repositories"
	"household-ledger/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open ledger store", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	srv := server.New(server.Dependencies{
		Config:     cfg,
		Repository: repo,
		Store:      store,
	})

	address := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting household ledger",
		"address", address,
		"environment", cfg.Server.Environment,
		"driver", cfg.Database.Driver,
		"timezone", cfg.Ledger.Location.String(),
	)

	if err := srv.Start(ctx, address, cfg.Server.ShutdownTimeout); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped gracefully")
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

// openStore connects the backend selected by DB_DRIVER and returns its
// repository, its health probe and a close function.
func openStore(ctx context.Context, cfg *config.Config) (repositories.TransactionRepositoryInterface, handlers.HealthChecker, func(), error) {
	if cfg.Database.Driver == config.DriverMongo {
		mongoStore, err := database.ConnectMongo(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repositories.EnsureMongoIndexes(ctx, mongoStore.Collection); err != nil {
			slog.Warn("Failed to create MongoDB indexes", "error", err)
		}
		closeFn := func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				slog.Error("Failed to close MongoDB client", "error", err)
			}
		}
		return repositories.NewMongoTransactionRepository(mongoStore.Collection), mongoStore, closeFn, nil
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}
	return repositories.NewTransactionRepository(db.DB), db, closeFn, nil
}
