package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the EFP Wealth tooling.
// Only this package reads environment variables.
type Config struct {
	Env string // development, staging, production

	// Site generation
	Site SiteConfig

	// Chart.js assets
	Assets AssetsConfig

	// Database
	Database DatabaseConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// SiteConfig holds input/output locations and the static facts about the
// walk-forward run that appear on the landing page. The original tooling
// kept these as module-level globals; they are explicit configuration here.
type SiteConfig struct {
	DataDir         string // directory containing the equity curve CSV
	OutputDir       string // where site_metrics.json / landing.html land
	CurveFile       string // CSV file name inside DataDir
	StrategyColumn  string
	BenchmarkColumn string
	DateColumn      string // empty = first column of the CSV

	// Facts about the external walk-forward run, shown in the hero strip.
	TradeCount  int
	WindowCount int

	PreviewPort string
}

// AssetsConfig holds the Chart.js download/cache configuration.
type AssetsConfig struct {
	CacheDir       string
	ChartJSURL     string
	DateAdapterURL string
	RequestsPerSec float64
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	URL string

	// Connection pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file. Only this function calls os.Getenv.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Site: SiteConfig{
			DataDir:         getEnv("SITE_DATA_DIR", "data"),
			OutputDir:       getEnv("SITE_OUTPUT_DIR", "output"),
			CurveFile:       getEnv("SITE_CURVE_FILE", "all_equity_curves.csv"),
			StrategyColumn:  getEnv("SITE_STRATEGY_COLUMN", "WalkForward"),
			BenchmarkColumn: getEnv("SITE_BENCHMARK_COLUMN", "NIFTY_100pct"),
			DateColumn:      getEnv("SITE_DATE_COLUMN", ""),
			TradeCount:      getEnvAsInt("SITE_TRADE_COUNT", 2722),
			WindowCount:     getEnvAsInt("SITE_WINDOW_COUNT", 17),
			PreviewPort:     getEnv("SITE_PREVIEW_PORT", "8090"),
		},

		Assets: AssetsConfig{
			CacheDir: getEnv("ASSET_CACHE_DIR", filepath.Join("data", "libs")),
			ChartJSURL: getEnv("ASSET_CHARTJS_URL",
				"https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.min.js"),
			DateAdapterURL: getEnv("ASSET_DATE_ADAPTER_URL",
				"https://cdn.jsdelivr.net/npm/chartjs-adapter-date-fns@3.0.0/dist/chartjs-adapter-date-fns.bundle.min.js"),
			RequestsPerSec: getEnvAsFloat("ASSET_REQUESTS_PER_SEC", 2.0),
		},

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks configuration values that every command depends on.
// DATABASE_URL is checked by pkg/database instead, since the site generation
// commands run without a database.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Site.StrategyColumn == "" || c.Site.BenchmarkColumn == "" {
		return fmt.Errorf("SITE_STRATEGY_COLUMN and SITE_BENCHMARK_COLUMN must not be empty")
	}

	if c.Assets.RequestsPerSec <= 0 {
		return fmt.Errorf("ASSET_REQUESTS_PER_SEC must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from the working directory and next to the
// executable.
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
