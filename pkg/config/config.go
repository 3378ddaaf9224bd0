package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all application configuration. Everything here is a
// presentation or tooling concern; the core reporting packages take no
// configuration at all.
type Config struct {
	Display DisplayConfig
	Export  ExportConfig
	Logging LoggingConfig
}

type DisplayConfig struct {
	CurrencyCode string
	MaxTableRows int
}

type ExportConfig struct {
	Dir string
}

type LoggingConfig struct {
	Level slog.Level
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Display: DisplayConfig{
			CurrencyCode: getEnv("REPORTS_CURRENCY", "EUR"),
			MaxTableRows: getEnvAsInt("REPORTS_MAX_TABLE_ROWS", 50),
		},
		Export: ExportConfig{
			Dir: getEnv("REPORTS_EXPORT_DIR", "."),
		},
		Logging: LoggingConfig{
			Level: parseLevel(getEnv("REPORTS_LOG_LEVEL", "info")),
		},
	}

	if len(cfg.Display.CurrencyCode) != 3 {
		return nil, fmt.Errorf("REPORTS_CURRENCY must be a 3-letter ISO-4217 code, got %q", cfg.Display.CurrencyCode)
	}

	return cfg, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
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
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
