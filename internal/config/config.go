package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars. It is built
// once at startup and passed into components; nothing mutates it afterwards.
type Config struct {
	AppName     string
	AppVersion  string
	Port        string
	DatabaseURL string
	SecretKey   string
	Algorithm   string
	TokenTTL    time.Duration
	Environment string
	Debug       bool
	CORSOrigins []string
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		AppName:     fallback(os.Getenv("APP_NAME"), "Simple Auth API"),
		AppVersion:  fallback(os.Getenv("APP_VERSION"), "1.0.0"),
		Port:        fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SecretKey:   strings.TrimSpace(os.Getenv("SECRET_KEY")),
		Algorithm:   fallback(os.Getenv("ALGORITHM"), "HS256"),
		Environment: fallback(os.Getenv("ENVIRONMENT"), "production"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	// 1440 minutes = 24 hours
	minutes := fallback(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"), "1440")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.TokenTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.TokenTTL = 1440 * time.Minute
	}

	if debug, err := strconv.ParseBool(fallback(os.Getenv("DEBUG"), "false")); err == nil {
		cfg.Debug = debug
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.SecretKey == "" {
		return Config{}, errors.New("SECRET_KEY is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
