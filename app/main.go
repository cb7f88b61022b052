package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lysyi3m/yt-mirror/app/api"
	"github.com/lysyi3m/yt-mirror/app/cfg"
	"github.com/lysyi3m/yt-mirror/app/config"
	"github.com/lysyi3m/yt-mirror/app/database"
	"github.com/lysyi3m/yt-mirror/app/feed"
	"github.com/lysyi3m/yt-mirror/app/nfo"
	"github.com/lysyi3m/yt-mirror/app/tasks"
	"golang.org/x/time/rate"
)

func main() {
	godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was requested
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	slog.Info("Starting yt-mirror", "version", appCfg.Version)

	loader := config.NewLoader(appCfg.ConfigPath)
	if _, err := loader.Load(); err != nil {
		slog.Error("Failed to load channels configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.NewDB(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open cycle journal", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	schemaVersion, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Debug("Cycle journal ready", "schema_version", schemaVersion, "dirty", dirty)

	cache := feed.NewCache()
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)
	resolver := feed.NewResolver(cache, limiter, appCfg.UserAgent)
	fetcher := feed.NewFetcher(limiter, appCfg.UserAgent)
	filterer := feed.NewFilterer()
	nfoWriter := nfo.NewWriter()

	cycleRepo := database.NewCycleRepository(db)
	tracker := tasks.NewTracker()

	runner := tasks.NewRunner(loader, resolver, fetcher, filterer, nfoWriter, cache, cycleRepo, tracker)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var httpServer *http.Server
	if appCfg.Listen != "" {
		handler := api.NewHandler(tracker, cycleRepo)
		httpServer = &http.Server{
			Addr:         appCfg.Listen,
			Handler:      api.NewServer(handler),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		go func() {
			slog.Info("Starting status API", "addr", appCfg.Listen)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Status API server error", "error", err)
			}
		}()
	}

	if err := runner.Run(ctx); err != nil {
		slog.Error("Failed to run cycle", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutting down")

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down status API", "error", err)
		}
	}
}
