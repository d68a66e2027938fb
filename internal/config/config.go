package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultDailyMenuURL is the published CSV export of the daily menu sheet
const DefaultDailyMenuURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRy2FMbCjSFhv0TV1ReNnoEwOi3U0VudWfah_XfQUy1VIqzZEQv_Jnn9iDlU7Xpm6vqp98STUrZR92E/pub?gid=0&single=true&output=csv"

// Cache drivers
const (
	CacheDriverBadger = "badger"
	CacheDriverMemory = "memory"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Menu     MenuConfig
	Cache    CacheConfig
	Order    OrderConfig
	CORS     CORSConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type MenuConfig struct {
	DailyURL        string
	FullURL         string
	DailyCategory   string
	FallbackDir     string // empty uses the embedded snapshots
	FetchTimeout    int    // seconds, 0 disables the client timeout
	RefreshInterval int    // seconds, 0 reloads on every request
}

type CacheConfig struct {
	Driver string
	Path   string
	Key    string
}

type OrderConfig struct {
	WhatsAppNumber string
	ZonesFile      string
	RateLimit      float64 // requests per second per client
	RateBurst      int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Menu: MenuConfig{
			DailyURL:        getEnv("DAILY_MENU_CSV_URL", DefaultDailyMenuURL),
			FullURL:         getEnv("FULL_MENU_CSV_URL", ""),
			DailyCategory:   getEnv("DAILY_DEFAULT_CATEGORY", "Today"),
			FallbackDir:     getEnv("FALLBACK_DIR", ""),
			FetchTimeout:    getEnvAsInt("MENU_FETCH_TIMEOUT", 0),
			RefreshInterval: getEnvAsInt("MENU_REFRESH_INTERVAL", 60),
		},
		Cache: CacheConfig{
			Driver: strings.ToLower(getEnv("CACHE_DRIVER", CacheDriverBadger)),
			Path:   getEnv("CACHE_PATH", ".cache/menu"),
			Key:    getEnv("CACHE_KEY", "eat_with_maddie:last_synced_daily_menu:v1"),
		},
		Order: OrderConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "237679719340"),
			ZonesFile:      getEnv("ZONES_FILE", ""),
			RateLimit:      getEnvAsFloat("ORDER_RATE_LIMIT", 5),
			RateBurst:      getEnvAsInt("ORDER_RATE_BURST", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT: %s", c.Server.Port)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Cache.Driver {
	case CacheDriverBadger:
		if c.Cache.Path == "" {
			return fmt.Errorf("CACHE_PATH is required for the badger cache driver")
		}
	case CacheDriverMemory:
	default:
		return fmt.Errorf("invalid cache driver: %s (must be badger or memory)", c.Cache.Driver)
	}

	if c.Cache.Key == "" {
		return fmt.Errorf("CACHE_KEY is required")
	}

	if c.Order.WhatsAppNumber == "" || strings.TrimFunc(c.Order.WhatsAppNumber, isDigit) != "" {
		return fmt.Errorf("invalid WhatsApp number: %q (digits only, country code first)", c.Order.WhatsAppNumber)
	}

	if c.Order.RateLimit <= 0 || c.Order.RateBurst <= 0 {
		return fmt.Errorf("order rate limit and burst must be positive")
	}

	if c.Menu.FetchTimeout < 0 || c.Menu.RefreshInterval < 0 {
		return fmt.Errorf("menu timeouts must not be negative")
	}

	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Helper functions for reading environment variables

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

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
