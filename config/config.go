package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
	App       AppConfig
}

type ServerConfig struct {
	Port            string
	StaticDir       string
	AllowedOrigins  []string
	// TrustedProxies may set the client IP through X-Forwarded-For.
	// Empty trusts none, so the socket address is used.
	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

type CatalogConfig struct {
	// File is a .json/.yaml catalog. Empty uses the built-in seed records.
	File string
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type AppConfig struct {
	Name           string
	Environment    string
	LogLevel       string
	Version        string
	MetricsEnabled bool
}

// Warnings collects env values that were present but unusable and replaced
// by their defaults. Load returns them so the caller can log them once a
// logger exists.
type Warnings []string

func Load() (*Config, Warnings, error) {
	var warns Warnings

	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		warns = append(warns, fmt.Sprintf(".env: %v", err))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "4000"),
			StaticDir:       getEnv("STATIC_DIR", "public"),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			TrustedProxies:  getEnvAsList("TRUSTED_PROXIES", nil),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &warns),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", ""),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 200, &warns),
			Burst:     getEnvAsInt("RATE_LIMIT_BURST", 0, &warns),
		},
		App: AppConfig{
			Name:           getEnv("APP_NAME", "project-showcase-api"),
			Environment:    getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true, &warns),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, warns, err
	}

	return cfg, warns, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must not be negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int, warns *Warnings) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*warns = append(*warns, fmt.Sprintf("invalid integer for %s, using default: %d", key, defaultValue))
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool, warns *Warnings) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		*warns = append(*warns, fmt.Sprintf("invalid boolean for %s, using default: %t", key, defaultValue))
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration, warns *Warnings) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*warns = append(*warns, fmt.Sprintf("invalid duration for %s, using default: %s", key, defaultValue))
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	out := make([]string, 0, 4)
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
