package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env       string `env:"ENV"        envDefault:"local" validate:"required,oneof=local staging production"`
	Port      string `env:"PORT"       envDefault:"3000"  validate:"required"`
	APIPrefix string `env:"API_PREFIX" envDefault:"/api"  validate:"omitempty,startswith=/"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"  validate:"oneof=debug info warn error"`

	DatabaseURL    string `env:"DATABASE_URL,required" validate:"required"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START"      envDefault:"true"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret    string        `env:"JWT_SECRET,required" validate:"required"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN"      envDefault:"24h" validate:"gt=0"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:"," validate:"dive,http_url|eq=*"`

	RedisURL         string        `env:"REDIS_URL"`
	CategoryCacheTTL time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"5m" validate:"gt=0"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.APIPrefix = strings.TrimSuffix(cfg.APIPrefix, "/")
	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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
