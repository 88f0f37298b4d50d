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

// Server holds configuration for the HTTP service.
type Server struct {
	BindAddr        string
	DatabaseURL     string
	Development     bool
	LogLevel        string
	LogFile         string
	KeySource       string
	KeyEnvPrefix    string
	SearchTimeout   time.Duration
	SearchRateLimit float64
	SearchRateBurst int
	AdminToken      string
}

// LoadDotEnv loads a .env file when present. It reports whether one was found.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// LoadServer builds a Server config from environment variables.
func LoadServer() (*Server, error) {
	c := &Server{
		BindAddr:        Get("BIND_ADDR", ":8080"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Development:     strings.EqualFold(Get("APP_ENV", "production"), "development"),
		LogLevel:        Get("LOG_LEVEL", "info"),
		LogFile:         Get("LOG_FILE", "logs/app.log"),
		KeySource:       strings.ToLower(Get("KEY_SOURCE", "db")),
		KeyEnvPrefix:    Get("KEY_ENV_PREFIX", "KEY_"),
		SearchTimeout:   GetDuration("SEARCH_TIMEOUT", "15s"),
		SearchRateLimit: GetFloat("SEARCH_RATE_LIMIT", 5),
		SearchRateBurst: GetInt("SEARCH_RATE_BURST", 10),
		AdminToken:      strings.TrimSpace(os.Getenv("ADMIN_TOKEN")),
	}

	if c.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if c.KeySource != "db" && c.KeySource != "env" {
		return nil, fmt.Errorf("KEY_SOURCE must be \"db\" or \"env\", got %q", c.KeySource)
	}
	if c.SearchTimeout <= 0 {
		return nil, errors.New("SEARCH_TIMEOUT must be positive")
	}
	if c.SearchRateLimit <= 0 {
		return nil, errors.New("SEARCH_RATE_LIMIT must be positive")
	}
	if c.SearchRateBurst <= 0 {
		return nil, errors.New("SEARCH_RATE_BURST must be positive")
	}

	return c, nil
}

// Get returns the value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func GetFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetDuration parses key as a time.Duration, falling back on parse errors.
// The fallback itself must be a valid duration.
func GetDuration(key, fallback string) time.Duration {
	if d, err := time.ParseDuration(Get(key, fallback)); err == nil {
		return d
	}

	d, err := time.ParseDuration(fallback)
	if err != nil {
		panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, err))
	}
	return d
}
