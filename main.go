package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olivertwistor/financial-assets-manager/internal/config"
	"github.com/olivertwistor/financial-assets-manager/internal/handler"
	"github.com/olivertwistor/financial-assets-manager/internal/repository/sqlite"
	"github.com/olivertwistor/financial-assets-manager/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Upgrade(context.Background()); err != nil {
		slog.Error("failed to upgrade database schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database schema up to date", "path", db.Path())

	typeRepo := sqlite.NewAssetTypeRepository(db)
	authService := service.NewAuthService(sqlite.NewUserRepository(db), cfg.JWTSecret, cfg.BcryptCost)
	typeService := service.NewAssetTypeService(typeRepo)
	assetService := service.NewAssetService(sqlite.NewAssetRepository(db), typeRepo)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, typeService, assetService, cfg.CookieSecure)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler.SecurityHeaders(handler.LogRequests(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
