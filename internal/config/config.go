// Package config loads the storefront settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string        `env:"STOREFRONT_ADDR" envDefault:":8080"`
	ContentFile      string        `env:"STOREFRONT_CONTENT_FILE" envDefault:"content.json"`
	BackendURL       string        `env:"STOREFRONT_BACKEND_URL" envDefault:"http://localhost:8000"`
	BackendToken     string        `env:"STOREFRONT_BACKEND_TOKEN"`
	BackendTimeout   time.Duration `env:"STOREFRONT_BACKEND_TIMEOUT" envDefault:"10s"`
	SessionSecret    string        `env:"STOREFRONT_SESSION_SECRET,required,notEmpty"`
	CategoryPageSize int           `env:"STOREFRONT_CATEGORY_PAGE_SIZE" envDefault:"6"`
}

// Load reads envFile into the process environment, when it exists, and then
// parses the configuration. Variables already set take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	return ParseEnv()
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CategoryPageSize < 1 {
		return Config{}, fmt.Errorf("parse env: STOREFRONT_CATEGORY_PAGE_SIZE must be positive, got %d", cfg.CategoryPageSize)
	}
	return cfg, nil
}
