package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/goldbook-app/goldbook-backend/internal/adapter/http"
	"github.com/goldbook-app/goldbook-backend/internal/adapter/repository/sqlite"
	"github.com/goldbook-app/goldbook-backend/internal/config"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/catalog"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/checks"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/expense"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/ledger"
	"github.com/goldbook-app/goldbook-backend/internal/usecase/seeder"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	// 2. Open the database (bootstraps the schema)
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", cfg.Database.Path)
		os.Exit(1)
	}
	defer db.Close()

	// 3. Initialize repositories
	metalRepo := sqlite.NewMetalRepository(db)
	checkRepo := sqlite.NewCheckRepository(db)
	accessoryRepo := sqlite.NewAccessoryRepository(db)
	expenseRepo := sqlite.NewExpenseRepository(db)

	// 4. Initialize services
	ledgerService := ledger.NewLedgerService(metalRepo)
	checkService := checks.NewCheckService(checkRepo)
	catalogService := catalog.NewCatalogService(accessoryRepo)
	expenseService := expense.NewExpenseService(expenseRepo)

	// Seed the two metal balance rows before serving anything
	balanceSeeder := seeder.NewBalanceSeeder(metalRepo)
	if err := balanceSeeder.Seed(context.Background()); err != nil {
		logger.Error("failed to seed metal balances", "error", err)
		os.Exit(1)
	}
	logger.Info("metal balances ready")

	// 5. Start the HTTP server
	server := httpadapter.NewServer(ledgerService, checkService, catalogService, expenseService)
	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.Router(logger),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(httpServer, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(httpServer *http.Server, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		return
	}
	logger.Info("http server stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
