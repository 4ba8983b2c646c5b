package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/lunch-vote/cliparse"
	"github.com/danielhkuo/lunch-vote/kvstore"
	"github.com/danielhkuo/lunch-vote/metrics"
	"github.com/danielhkuo/lunch-vote/middleware"
	"github.com/danielhkuo/lunch-vote/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to the configured backend
	backend, err := kvstore.Open(ctx, cfg)
	if err != nil {
		slog.Error("storage backend unavailable", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}

	store := kvstore.NewStore(backend)
	defer store.Close()

	// Seed the roster and empty collections
	if err := store.Initialize(ctx); err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Store ready", "type", cfg.DatabaseType, "timezone", cfg.Location.String())

	// Create router
	mux := router.NewRouter(store, metrics.New(), clockwork.NewRealClock(), cfg)

	var handler http.Handler = mux
	if cfg.RateLimit > 0 {
		handler = middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, time.Now), handler)
	}

	// Create server
	server := http.Server{
		Handler: middleware.CORS(handler),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
