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

	"github.com/embercove/content-sync/app/api"
	"github.com/embercove/content-sync/app/cache"
	"github.com/embercove/content-sync/app/cfg"
	"github.com/embercove/content-sync/app/database"
	"github.com/embercove/content-sync/app/instagram"
	"github.com/embercove/content-sync/app/places"
	"github.com/embercove/content-sync/app/sync"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting Content Sync server", "version", appCfg.Version)

	db, err := database.NewConnection(
		appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "migration_version", version, "dirty", dirty)

	mediaRepo := database.NewMediaItemRepository(db)
	reviewRepo := database.NewStoredReviewRepository(db)
	settingsRepo := database.NewSiteSettingsRepository(db)

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.UpstreamTimeout) * time.Second,
	}

	instagramClient := instagram.NewClient(instagram.Config{
		AccessToken: appCfg.InstagramAccessToken,
		UserAgent:   appCfg.UserAgent,
	}, httpClient)

	placesClient := places.NewClient(places.Config{
		APIKey:    appCfg.GooglePlacesAPIKey,
		UserAgent: appCfg.UserAgent,
	}, httpClient)

	gate := sync.NewGate(appCfg.SyncSecret)

	mediaSyncer := sync.NewMediaSyncer(gate, instagramClient, mediaRepo,
		&sync.CaptionMatcher{}, appCfg.InstagramAccessToken)
	reviewSyncer := sync.NewReviewSyncer(gate, placesClient, reviewRepo,
		settingsRepo, sync.NewAuthorQuoteMatcher(), appCfg.GooglePlacesAPIKey,
		appCfg.GooglePlaceID)

	var reportCache *cache.Cache
	if appCfg.RedisAddr != "" {
		reportCache, err = cache.New(appCfg.RedisAddr)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer reportCache.Close()
	} else {
		slog.Info("Redis not configured, sync status endpoint disabled")
	}

	// A nil *Cache must stay a nil interface value downstream
	var reportStore sync.ReportStore
	var reportReader api.ReportReaderInterface
	if reportCache != nil {
		reportStore = reportCache
		reportReader = reportCache
	}

	orchestrator := sync.NewOrchestrator(gate, mediaSyncer, reviewSyncer, reportStore)

	handler := api.NewHandler(orchestrator, mediaSyncer, reviewSyncer, gate,
		reportReader, mediaRepo, reviewRepo, appCfg.Version)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
