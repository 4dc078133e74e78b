package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"realty-catalog/internal/cache"
	"realty-catalog/internal/catalog"
	"realty-catalog/internal/common/config"
	"realty-catalog/internal/common/database"
	"realty-catalog/internal/common/logger"
	"realty-catalog/internal/datasets"
	"realty-catalog/internal/server"
	"realty-catalog/internal/service"
	"realty-catalog/internal/storage"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting catalog server...",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// --- Optional Postgres archive ---
	var archive *storage.ListingRepository
	if cfg.Database.Postgres.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres unavailable", zap.Error(err))
		}
		defer pg.Close()

		archive = storage.NewListingRepository(pg.DB, log)
		if err := archive.Init(ctx); err != nil {
			zapLog.Fatal("listings table init failed", zap.Error(err))
		}
	}

	// --- Optional Redis similar-cache ---
	var similarCache *cache.SimilarCache
	if cfg.Database.Redis.Enabled {
		rc := database.NewRedis(cfg.Database.Redis)
		err = retryWithBackoff(func() error {
			return rc.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis unavailable", zap.Error(err))
		}
		defer rc.Close()

		ttl := time.Duration(cfg.Catalog.SimilarCacheTTL) * time.Second
		similarCache = cache.NewSimilarCache(rc.Client, ttl, log)
	}

	// --- Catalog engine ---
	formatter := catalog.NewPriceFormatter(cfg.Pricing.Locale, cfg.Pricing.CurrencySymbol)
	loader := catalog.NewLoader(formatter, log)
	loadCatalog := func() ([]catalog.Listing, error) {
		ds, err := datasets.Load()
		if err != nil {
			return nil, err
		}
		return loader.Load(ds...), nil
	}

	listings, err := loadCatalog()
	if err != nil {
		zapLog.Fatal("initial catalog load failed", zap.Error(err))
	}
	store := catalog.NewStore(listings)
	zapLog.Info("catalog loaded", zap.Int("listings", store.Len()))

	svc := service.New(store, similarCache, archive, loadCatalog, cfg.Catalog.SimilarLimit, log)

	if archive != nil {
		if err := archive.ReplaceCatalog(ctx, listings); err != nil {
			log.Error("initial catalog archive failed", map[string]interface{}{"error": err})
		}
	}

	// --- REST server ---
	srv := server.NewServer(cfg.Server, server.NewHandler(svc, log), log)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	zapLog.Info("Catalog server stopped")
}
