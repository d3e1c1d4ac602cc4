package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/capycare/capycare/backend/internal/auth"
	"github.com/capycare/capycare/backend/internal/config"
	"github.com/capycare/capycare/backend/internal/controller"
	"github.com/capycare/capycare/backend/internal/gateway"
	"github.com/capycare/capycare/backend/internal/handler"
	"github.com/capycare/capycare/backend/internal/moodlog"
	"github.com/capycare/capycare/backend/internal/music"
	"github.com/capycare/capycare/backend/internal/session"
	"github.com/capycare/capycare/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := openStore(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("warning: failed to close store: %v", err)
		}
	}()

	sessions := session.NewRepository(db)
	moods := moodlog.NewLog(db)
	accounts := auth.NewService(db)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	gw, err := gateway.New(ctx, cfg.AI)
	if err != nil {
		log.Printf("warning: failed to initialize model gateway: %v", err)
		log.Println("falling back to the unconfigured gateway; chat replies will report the missing credential")
		gw = gateway.NewGeminiClient(config.AIConfig{}, gateway.SystemPrompt)
	} else if cfg.AI.Enabled() {
		log.Printf("model gateway initialized (provider=%s model=%s)", cfg.AI.Provider, cfg.AI.Model)
	} else {
		log.Println("no model credential configured; chat replies will report the missing credential")
	}

	var lookup music.Lookup
	if cfg.Music.DeezerEnabled {
		lookup = music.NewDeezerClient(cfg.Music.DeezerBaseURL, cfg.Music.Timeout)
		log.Println("deezer track lookup enabled")
	}
	resolver := music.NewResolver(lookup, time.Now().UnixNano())

	ctrl := controller.New(sessions, gw, resolver, moods)

	router := handler.NewRouter(ctrl, sessions, moods, accounts, tokens)

	startServer(ctx, cfg.Server, router)
}

func openStore(cfg config.StorageConfig) (store.Store, error) {
	if cfg.InMemory {
		log.Println("using in-memory store; data will not survive a restart")
		return store.NewMemoryStore(), nil
	}
	return store.OpenBadger(cfg.Path)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("CapyCare backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
