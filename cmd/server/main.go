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

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/fr0stylo/partnerhub/internal/adapters/sqlite"
	appservices "github.com/fr0stylo/partnerhub/internal/app/services"
	"github.com/fr0stylo/partnerhub/internal/config"
	"github.com/fr0stylo/partnerhub/internal/db"
	"github.com/fr0stylo/partnerhub/internal/observability"
	"github.com/fr0stylo/partnerhub/internal/server"
	"github.com/fr0stylo/partnerhub/internal/server/routes"
)

const (
	shutdownTimeout      = 10 * time.Second
	latencyLogInterval   = 60 * time.Second
	latencyLogTopQueries = 5
)

func Run(ctx context.Context) error {
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(observability.WrapSlogHandler(baseHandler))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.LoadWithoutSecrets()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	shutdownTelemetry, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVer:        cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	imports := appservices.NewCatalogImportService(sqlite.NewSharedCatalogStoreFactory(database), appservices.CatalogImportConfig{
		MaxUploadBytes: cfg.Catalog.MaxUploadBytes,
		DefaultSource:  cfg.Catalog.DefaultSource,
		Logger:         log,
	})

	srv := server.New(log, cfg.Observability.ServiceName)
	srv.RegisterRouter(routes.NewHealthRoutes(database))
	srv.RegisterRouter(routes.NewCatalogRoutes(imports, cfg.Catalog.MaxUploadBytes))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("Starting server", "port", cfg.Server.Port, "environment", cfg.Environment)
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("Stopping server")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.Database.LogTiming {
		group.Go(func() error {
			logDBLatencyStats(groupCtx, log, database)
			return nil
		})
	}
	return group.Wait()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func logDBLatencyStats(ctx context.Context, log *slog.Logger, database *db.Database) {
	ticker := time.NewTicker(latencyLogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		stats := database.QueryLatencyStats()
		limit := min(latencyLogTopQueries, len(stats))
		for _, entry := range stats[:limit] {
			log.Info("db_query_latency",
				"query", entry.Name,
				"count", entry.Count,
				"p50_ms", entry.P50.Milliseconds(),
				"p95_ms", entry.P95.Milliseconds(),
				"max_ms", entry.Max.Milliseconds(),
			)
		}
	}
}
