package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, "*" for any

	// Rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration
	RedisURL        string // Shared limiter storage; in-memory when empty

	// Engine
	CatalogFile string // YAML catalog and taxonomy; built-in data when absent
	MatchMode   string // "substring" or "token"

	// Posts
	PostsFile        string // env: POSTS_FILE, default: "real_data.json"
	MockSeed         int64  // 0 seeds from the start time
	StatisticsSample int

	// Link checker
	LinkCheckInterval time.Duration // 0 disables the checker

	// Logging
	LogLevel  string
	LogFormat string // "text" or "json"
}

// LoadDotEnv loads a .env file into the environment when one exists.
// Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
// PORT, when set, overrides the port of SERVER_ADDR.
func Load() (*Config, error) {
	p := &parser{}
	cfg := &Config{
		Env:               getEnv("ENV", "development"),
		ServerAddr:        getEnv("SERVER_ADDR", ":5000"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:5000"),
		TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
		RateLimitMax:      p.getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:   p.getDuration("RATE_LIMIT_WINDOW", time.Minute),
		RedisURL:          getEnv("REDIS_URL", ""),
		CatalogFile:       getEnv("CATALOG_FILE", ""),
		MatchMode:         getEnv("MATCH_MODE", "substring"),
		PostsFile:         getEnv("POSTS_FILE", "real_data.json"),
		MockSeed:          p.getInt64("MOCK_SEED", 0),
		StatisticsSample:  p.getInt("STATISTICS_SAMPLE", 100),
		LinkCheckInterval: p.getDuration("LINK_CHECK_INTERVAL", 0),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	if port := os.Getenv("PORT"); port != "" {
		host := ""
		if i := strings.LastIndex(cfg.ServerAddr, ":"); i >= 0 {
			host = cfg.ServerAddr[:i]
		}
		cfg.ServerAddr = host + ":" + port
	}
	if cfg.StatisticsSample <= 0 {
		p.errs = append(p.errs, fmt.Errorf("STATISTICS_SAMPLE must be positive, got %d", cfg.StatisticsSample))
	}
	if cfg.RateLimitMax <= 0 {
		p.errs = append(p.errs, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", cfg.RateLimitMax))
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parser collects conversion errors so every bad variable is reported at once.
type parser struct {
	errs []error
}

func (p *parser) getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return fallback
	}
	return n
}

func (p *parser) getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return fallback
	}
	return n
}

func (p *parser) getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// TLSEnabled returns true when both a certificate and key are configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// AllowedOrigins splits CORSOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
