package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"cryptoex/internal/cache"
	"cryptoex/internal/config"
	"cryptoex/internal/logger"
	"cryptoex/internal/models"
	"cryptoex/internal/poller"
	"cryptoex/internal/provider"
	"cryptoex/internal/seed"
	"cryptoex/internal/services"
	"cryptoex/internal/validator"

	_ "cryptoex/internal/docs" // Import swagger docs
)

// @title           CryptoEx API
// @version         1.0
// @description     Mock crypto exchange backend: live prices, markets, portfolio, wallet and news.

// @host      localhost:8080
// @BasePath  /api

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Init(appConfig.Env, appConfig.LogLevel)
	log = logger.Get()

	data, err := seed.Load(appConfig.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newPriceCache(ctx, appConfig)
	if err != nil {
		return err
	}
	defer closeStore()

	index := provider.NewCoinGeckoProvider(provider.NewHTTPClient(appConfig.PriceIndexTimeout), appConfig.PriceIndexURL)
	fetcher := provider.NewFetcher(index, store, appConfig.PriceCacheTTL, logger.Named("prices"))

	validator.Register()

	svc := appServices{
		market:    services.NewMarketService(fetcher, data, appConfig.APIPageSize),
		portfolio: services.NewPortfolioService(fetcher, data, appConfig.APIPageSize, appConfig.APIPageSize, logger.Named("portfolio")),
		wallet:    services.NewWalletService(data, appConfig.APIPageSize, time.Local),
		news:      services.NewNewsService(fetcher, data, appConfig.LandingPageSize, appConfig.APIPageSize),
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           newRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting CryptoEx API on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		_ = poller.Run(gctx, warmTask(fetcher, store, appConfig), logger.Named("poller"))
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newPriceCache builds the configured snapshot cache. The returned func
// releases it.
func newPriceCache(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	if cfg.CacheBackend == config.CacheBackendRedis {
		rc, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rc, func() { _ = rc.Close() }, nil
	}
	return cache.NewMemory(), func() {}, nil
}

// warmTask refreshes both snapshot sizes every poll interval so page loads
// rarely wait on the price index. Expired in-memory entries are purged on
// each refresh.
func warmTask(fetcher *provider.Fetcher, store cache.Cache, cfg *config.Config) poller.Task[int] {
	log := logger.Named("warmer")
	return poller.Task[int]{
		Name:     "price_warmer",
		Interval: cfg.PollInterval,
		Fetch: func(ctx context.Context) (int, error) {
			var assets []models.PriceAsset
			var err error
			for _, size := range []int{cfg.APIPageSize, cfg.LandingPageSize} {
				if assets, err = fetcher.Markets(ctx, size); err != nil {
					return 0, err
				}
			}
			return len(assets), nil
		},
		Apply: func(n int) {
			purged := 0
			if mem, ok := store.(*cache.Memory); ok {
				purged = mem.Purge()
			}
			log.Debugw("price snapshot refreshed", "assets", n, "purged", purged)
		},
	}
}
