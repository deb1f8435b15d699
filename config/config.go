// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable, e.g. GRADEBOOK_SERVER_PORT
const EnvPrefix = "GRADEBOOK"

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `envconfig:"SERVER"`
	Redis   RedisConfig   `envconfig:"REDIS"`
	Logging LoggingConfig `envconfig:"LOGGING"`
	Session SessionConfig `envconfig:"SESSION"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int           `envconfig:"PORT" default:"5000" validate:"min=1,max=65535"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s" validate:"gt=0"`
	MaxUploadBytes int64         `envconfig:"MAX_UPLOAD_BYTES" default:"10485760" validate:"gt=0"`
	Mode           string        `envconfig:"MODE" default:"release" validate:"oneof=debug release test"`
}

// RedisConfig contains the report cache connection settings
type RedisConfig struct {
	Enabled  bool          `envconfig:"ENABLED" default:"false"`
	Addr     string        `envconfig:"ADDR" default:"127.0.0.1:6379" validate:"required_if=Enabled true"`
	Password string        `envconfig:"PASSWORD"`
	DB       int           `envconfig:"DB" default:"0" validate:"min=0,max=15"`
	TTL      time.Duration `envconfig:"TTL" default:"30m" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
}

// SessionConfig controls the cookie carrying flash messages
type SessionConfig struct {
	Name   string `envconfig:"NAME" default:"gradebook_session" validate:"required"`
	Secret string `envconfig:"SECRET" default:"change_this_to_a_random_secret_key" validate:"min=16"`
}

// Load reads an optional .env file, then the environment, then validates
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every field against its validate tag
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Address returns the listen address for the HTTP server
func (c ServerConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
