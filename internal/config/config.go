package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      AppConfig
	AI       AIConfig
	JWT      JWTConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"careeriq"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
}

// AIConfig is optional. An empty APIKey disables every AI feature.
type AIConfig struct {
	APIKey        string `env:"API_KEY"`
	Model         string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	AnalysisModel string `env:"GEMINI_ANALYSIS_MODEL" envDefault:"gemini-2.5-pro"`
}

type JWTConfig struct {
	AccessSecret    string        `env:"JWT_ACCESS_SECRET,required,notEmpty"`
	AccessExpiresIn time.Duration `env:"JWT_ACCESS_EXPIRES_IN" envDefault:"1h"`
}

// DatabaseConfig selects the Postgres catalog when DBHost is set.
type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns   int32         `env:"DB_POOL_MAX_CONNS" envDefault:"4"`
}

func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.DBHost) != ""
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

var errInvalidConfig = errors.New("invalid configuration")

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.AI.APIKey = strings.TrimSpace(cfg.AI.APIKey)

	if cfg.JWT.AccessExpiresIn <= 0 {
		return Config{}, fmt.Errorf("%w: JWT_ACCESS_EXPIRES_IN must be positive", errInvalidConfig)
	}
	if cfg.Database.Enabled() && strings.TrimSpace(cfg.Database.DBName) == "" {
		return Config{}, fmt.Errorf("%w: DB_NAME is required when DB_HOST is set", errInvalidConfig)
	}

	return cfg, nil
}

// LoadDatabase reads only the DB_* settings, for tools that run without the
// server configuration.
func LoadDatabase() (DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := env.Parse(&cfg); err != nil {
		return DatabaseConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if !cfg.Enabled() {
		return DatabaseConfig{}, fmt.Errorf("%w: DB_HOST is required", errInvalidConfig)
	}
	if strings.TrimSpace(cfg.DBName) == "" {
		return DatabaseConfig{}, fmt.Errorf("%w: DB_NAME is required when DB_HOST is set", errInvalidConfig)
	}
	return cfg, nil
}
