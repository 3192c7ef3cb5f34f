package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/scoutconnect-dev/scoutconnect/internal/auth"
)

type Config struct {
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	Port           string
	AllowedOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Load reads the configuration from the environment once at startup.
// DATABASE_URL and JWT_SECRET are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    auth.DefaultTokenTTL,
		Port:        "3000",
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if ttl := os.Getenv("TOKEN_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES: %q", ttl)
		}
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	cfg.AllowedOrigins = make([]string, len(defaultOrigins))
	copy(cfg.AllowedOrigins, defaultOrigins)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg, nil
}
