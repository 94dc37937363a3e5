package provider

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"cryptoex/internal/cache"
	"cryptoex/internal/metrics"
	"cryptoex/internal/models"
)

// DefaultTTL is how long a snapshot is reused before the index is queried
// again.
const DefaultTTL = 60 * time.Second

// sharedFetchTimeout bounds a coalesced upstream request, which runs
// detached from the caller that started it.
const sharedFetchTimeout = 30 * time.Second

// Fetcher wraps a Provider with a response cache. Concurrent misses for the
// same query share one upstream request.
type Fetcher struct {
	provider Provider
	cache    cache.Cache
	ttl      time.Duration
	group    singleflight.Group
	log      *zap.SugaredLogger
}

// NewFetcher creates a Fetcher. A nil store falls back to an in-memory
// cache; a non-positive ttl selects DefaultTTL.
func NewFetcher(p Provider, store cache.Cache, ttl time.Duration, log *zap.SugaredLogger) *Fetcher {
	if store == nil {
		store = cache.NewMemory()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Fetcher{provider: p, cache: store, ttl: ttl, log: log}
}

// Markets returns the top perPage assets in USD. Upstream failures are
// returned to the caller; cache failures only degrade to a direct fetch.
func (f *Fetcher) Markets(ctx context.Context, perPage int) ([]models.PriceAsset, error) {
	q := MarketsQuery{VsCurrency: "usd", PerPage: perPage, Page: 1}.withDefaults()
	key := q.cacheKey(f.provider.Name())

	if assets, ok := f.cached(ctx, key); ok {
		return assets, nil
	}

	// The shared request outlives any single caller; each caller stops
	// waiting when its own context ends.
	ch := f.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		return f.fetch(fetchCtx, key, q)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			f.log.Debugw("coalesced price index request", "key", key)
		}
		return res.Val.([]models.PriceAsset), nil
	}
}

// MarketsOrEmpty is Markets for callers that render a fallback: any failure
// is logged and an empty, non-nil list returned.
func (f *Fetcher) MarketsOrEmpty(ctx context.Context, perPage int) []models.PriceAsset {
	assets, err := f.Markets(ctx, perPage)
	if err != nil {
		f.log.Warnw("price index unavailable, using fallback", "per_page", perPage, "error", err)
		return []models.PriceAsset{}
	}
	return assets
}

func (f *Fetcher) cached(ctx context.Context, key string) ([]models.PriceAsset, bool) {
	raw, err := f.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			f.log.Warnw("price cache read failed", "backend", f.cache.Name(), "key", key, "error", err)
		}
		metrics.CacheLookup(f.cache.Name(), false)
		return nil, false
	}

	var assets []models.PriceAsset
	if err := json.Unmarshal(raw, &assets); err != nil {
		f.log.Warnw("discarding corrupt cache entry", "key", key, "error", err)
		metrics.CacheLookup(f.cache.Name(), false)
		return nil, false
	}
	metrics.CacheLookup(f.cache.Name(), true)
	return assets, true
}

func (f *Fetcher) fetch(ctx context.Context, key string, q MarketsQuery) ([]models.PriceAsset, error) {
	start := time.Now()
	assets, err := f.provider.FetchMarkets(ctx, q)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveUpstream(f.provider.Name(), "error", elapsed)
		f.log.Errorw("price index request failed",
			"provider", f.provider.Name(),
			"per_page", q.PerPage,
			"latency_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	metrics.ObserveUpstream(f.provider.Name(), "ok", elapsed)

	raw, err := json.Marshal(assets)
	if err == nil {
		err = f.cache.Set(ctx, key, raw, f.ttl)
	}
	if err != nil {
		f.log.Warnw("price cache write failed", "backend", f.cache.Name(), "key", key, "error", err)
	}
	return assets, nil
}
