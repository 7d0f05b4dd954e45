package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/wodomi/HomiMeet-FullApp/internal/auth"
	"github.com/wodomi/HomiMeet-FullApp/internal/config"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage/sqlite"
	"github.com/wodomi/HomiMeet-FullApp/pkg/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		return err
	}
	logger.Info("Serving static files", "path", staticDir)

	jwtManager := auth.NewJWTManager(cfg.SecretKey, cfg.TokenTTL)
	handler := newRouter(serverDeps{
		store:        store,
		jwtManager:   jwtManager,
		authn:        auth.NewPasswordAuthenticator(store),
		logger:       logger,
		staticDir:    staticDir,
		googleAPIKey: cfg.GoogleAPIKey,
	})

	// h2c serves HTTP/2 without TLS for Connect and gRPC clients.
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Connect server starting", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
