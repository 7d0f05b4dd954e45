// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings. Every field maps to one environment variable.
type Config struct {
	Port            int           `env:"PORT"             envDefault:"8080"`
	DBPath          string        `env:"DB_PATH"          envDefault:"./data/homimeet.db"`
	SecretKey       string        `env:"SECRET_KEY,required,notEmpty"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"        envDefault:"24h"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	StaticPath      string        `env:"STATIC_PATH"      envDefault:"./static"`
	GoogleAPIKey    string        `env:"GOOGLE_API_KEY"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads an optional dotenv file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}
