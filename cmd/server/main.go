package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xburian/volejbal-app-v2/internal/api"
	"github.com/xburian/volejbal-app-v2/internal/auth"
	"github.com/xburian/volejbal-app-v2/internal/config"
	"github.com/xburian/volejbal-app-v2/internal/service"
	"github.com/xburian/volejbal-app-v2/internal/storage"
	"github.com/xburian/volejbal-app-v2/internal/storage/localstore"
	"github.com/xburian/volejbal-app-v2/internal/storage/mongostore"
	"github.com/xburian/volejbal-app-v2/pkg/logging"
)

const (
	tokenDuration   = 30 * 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

func main() {
	logging.Setup()
	cfg := config.Load()

	store, err := newStore(cfg)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	users := service.NewUserService(store)
	events := service.NewEventService(store)
	tokens := auth.NewJWTManager(cfg.JWTSecret, tokenDuration)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.New(users, events, tokens).Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// newStore selects the backend once at startup: Mongo when MONGO_URI is
// configured, otherwise the local SQLite blob store.
func newStore(cfg config.Config) (storage.Store, error) {
	if cfg.UseMongo() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		slog.Info("storage initialized", "backend", "mongo", "database", cfg.MongoDB)
		return store, nil
	}

	store, err := localstore.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Info("storage initialized", "backend", "local", "path", cfg.DBPath)
	return store, nil
}
