package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	NewsAPIKey     string
	NewsAPIBaseURL string
	GNewsAPIKey    string
	GNewsBaseURL   string
	NDTVBaseURL    string
	NDTVEnabled    bool

	GNewsDailyLimit int

	// One duration per cache tier. The master tier holds the broad
	// unfiltered corpus, the category tier holds per-category slices.
	MasterCacheTTL   time.Duration
	CategoryCacheTTL time.Duration

	ProviderTimeout time.Duration
	PipelineTimeout time.Duration

	DefaultPageSize int
	MaxPageSize     int
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsAPIBaseURL: getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
		GNewsAPIKey:    os.Getenv("GNEWS_API_KEY"),
		GNewsBaseURL:   getEnv("GNEWS_BASE_URL", "https://gnews.io/api/v4"),
		NDTVBaseURL:    getEnv("NDTV_BASE_URL", "https://ndtvnews-api.herokuapp.com"),
		NDTVEnabled:    getEnv("NDTV_ENABLED", "true") == "true",

		DefaultPageSize: 8,
		MaxPageSize:     100,
	}

	var err error
	cfg.GNewsDailyLimit, err = strconv.Atoi(getEnv("GNEWS_DAILY_LIMIT", "95"))
	if err != nil {
		return nil, fmt.Errorf("invalid GNEWS_DAILY_LIMIT: %w", err)
	}

	cfg.MasterCacheTTL, err = time.ParseDuration(getEnv("MASTER_CACHE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid MASTER_CACHE_TTL: %w", err)
	}
	cfg.CategoryCacheTTL, err = time.ParseDuration(getEnv("CATEGORY_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATEGORY_CACHE_TTL: %w", err)
	}
	cfg.ProviderTimeout, err = time.ParseDuration(getEnv("PROVIDER_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.PipelineTimeout, err = time.ParseDuration(getEnv("PIPELINE_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_TIMEOUT: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
