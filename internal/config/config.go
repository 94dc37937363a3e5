// Package config loads API server configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends accepted by PRICE_CACHE_BACKEND.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Price index
	PriceIndexURL     string
	PriceIndexTimeout time.Duration
	PriceCacheTTL     time.Duration
	LandingPageSize   int
	APIPageSize       int

	// Cache
	CacheBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Views
	PollInterval time.Duration
	SeedFile     string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from lookup, applying defaults for unset keys.
func FromEnv(lookup func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:          get("PORT", "8080"),
		Env:           get("ENV", "development"),
		LogLevel:      get("LOG_LEVEL", ""),
		PriceIndexURL: strings.TrimRight(get("PRICE_INDEX_URL", "https://api.coingecko.com/api/v3"), "/"),
		CacheBackend:  strings.ToLower(get("PRICE_CACHE_BACKEND", CacheBackendMemory)),
		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: lookup("REDIS_PASSWORD"),
		SeedFile:      get("SEED_FILE", ""),
	}

	var err error
	if cfg.PriceIndexTimeout, err = parseDuration("PRICE_INDEX_TIMEOUT", get("PRICE_INDEX_TIMEOUT", "10s")); err != nil {
		return nil, err
	}
	if cfg.PriceCacheTTL, err = parseDuration("PRICE_CACHE_TTL", get("PRICE_CACHE_TTL", "60s")); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = parseDuration("POLL_INTERVAL", get("POLL_INTERVAL", "60s")); err != nil {
		return nil, err
	}
	if cfg.LandingPageSize, err = parsePositiveInt("LANDING_PAGE_SIZE", get("LANDING_PAGE_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.APIPageSize, err = parsePositiveInt("API_PAGE_SIZE", get("API_PAGE_SIZE", "20")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	switch cfg.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return nil, fmt.Errorf("invalid PRICE_CACHE_BACKEND %q: must be memory or redis", cfg.CacheBackend)
	}

	appConfig = cfg
	return cfg, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func parseDuration(key, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

func parsePositiveInt(key, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
