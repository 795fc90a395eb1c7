package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds the optional knobs of the game. The zero environment gives
// the classic interactive text session.
type Config struct {
	LogLevel string `env:"SUPERTRUNFO_LOG_LEVEL" envDefault:"warn" validate:"required,oneof=debug info warn error"`
	Format   string `env:"SUPERTRUNFO_FORMAT" envDefault:"text" validate:"required,oneof=text json yaml"`
	Locale   string `env:"SUPERTRUNFO_LOCALE" validate:"omitempty,bcp47_language_tag"`
}

var validate = validator.New()

// FromEnv loads the configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration after flags have been applied.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
