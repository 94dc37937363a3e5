package config

import (
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.PriceIndexURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("unexpected price index URL %s", cfg.PriceIndexURL)
	}
	if cfg.PriceCacheTTL != 60*time.Second {
		t.Errorf("expected 60s cache TTL, got %v", cfg.PriceCacheTTL)
	}
	if cfg.PollInterval != 60*time.Second {
		t.Errorf("expected 60s poll interval, got %v", cfg.PollInterval)
	}
	if cfg.LandingPageSize != 10 || cfg.APIPageSize != 20 {
		t.Errorf("expected page sizes 10/20, got %d/%d", cfg.LandingPageSize, cfg.APIPageSize)
	}
	if cfg.CacheBackend != CacheBackendMemory {
		t.Errorf("expected memory backend, got %s", cfg.CacheBackend)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":                "9090",
		"ENV":                 "production",
		"PRICE_INDEX_URL":     "http://localhost:4000/api/v3/",
		"PRICE_CACHE_TTL":     "5m",
		"PRICE_CACHE_BACKEND": "REDIS",
		"REDIS_DB":            "2",
		"API_PAGE_SIZE":       "50",
		"SEED_FILE":           "/etc/cryptoex/seed.yaml",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PriceIndexURL != "http://localhost:4000/api/v3" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.PriceIndexURL)
	}
	if cfg.PriceCacheTTL != 5*time.Minute {
		t.Errorf("expected 5m, got %v", cfg.PriceCacheTTL)
	}
	if cfg.CacheBackend != CacheBackendRedis || cfg.RedisDB != 2 {
		t.Errorf("unexpected redis settings %s/%d", cfg.CacheBackend, cfg.RedisDB)
	}
	if cfg.APIPageSize != 50 {
		t.Errorf("expected 50, got %d", cfg.APIPageSize)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad ttl", map[string]string{"PRICE_CACHE_TTL": "soon"}},
		{"zero ttl", map[string]string{"PRICE_CACHE_TTL": "0s"}},
		{"negative poll", map[string]string{"POLL_INTERVAL": "-1m"}},
		{"bad page size", map[string]string{"LANDING_PAGE_SIZE": "ten"}},
		{"zero page size", map[string]string{"API_PAGE_SIZE": "0"}},
		{"bad redis db", map[string]string{"REDIS_DB": "x"}},
		{"unknown backend", map[string]string{"PRICE_CACHE_BACKEND": "memcached"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(tt.env)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
