package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration, populated from the environment
type Config struct {
	DatabaseType   string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabasePath   string `env:"DB_PATH" envDefault:"./playprotect.db"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./migrations"`

	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	SESFromEmail string `env:"SES_FROM_EMAIL"`
	SESFromName  string `env:"SES_FROM_NAME" envDefault:"Play, Learn & Protect"`
	AppBaseURL   string `env:"APP_BASE_URL" envDefault:"http://localhost:3000"`
	EmailDebug   bool   `env:"EMAIL_DEBUG"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first, if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
