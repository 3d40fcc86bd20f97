// Package config provides application configuration with multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (CHATTERD_ prefix, runtime override)
//  2. Config file (./config.yaml)
//  3. Default values
//
// Error handling uses sentinel errors so callers can match with errors.Is().
// The signing secret ships with an insecure hardcoded fallback so the server
// runs out of the box; IsDefaultSecret lets the caller flag that hazard at
// startup.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrInvalidPort indicates the HTTP port is out of range.
	ErrInvalidPort = errors.New("invalid port")

	// ErrEmptySecret indicates the token signing secret is empty.
	ErrEmptySecret = errors.New("empty signing secret")

	// ErrInvalidTokenTTL indicates the token lifetime is not positive.
	ErrInvalidTokenTTL = errors.New("invalid token TTL")

	// ErrNoCORSOrigins indicates the CORS origin list is empty.
	ErrNoCORSOrigins = errors.New("no CORS origins configured")
)

// DefaultSecretKey is the development fallback for the token signing secret.
// Matches the original deployment behavior: the server starts without any
// environment setup, and the serve command logs a warning when this value is
// in use.
const DefaultSecretKey = "your-secret-key-change-in-production"

// DefaultTokenTTL is the session token lifetime when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// Config stores application configuration.
// SECURITY: SecretKey is sensitive and must never be logged.
type Config struct {
	// Port is the HTTP listen port.
	Port int `mapstructure:"port"`

	// SecretKey signs session tokens (HMAC-SHA256). SENSITIVE.
	SecretKey string `mapstructure:"secret_key"`

	// TokenTTL is how long an issued session token stays valid.
	TokenTTL time.Duration `mapstructure:"token_ttl"`

	// CORSOrigins lists origins allowed to call the API. "*" permits any
	// origin, which is the default for this service.
	CORSOrigins []string `mapstructure:"cors_origins"`

	// LogLevel is the minimum log level ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level"`

	// LogJSON switches log output to JSON format.
	LogJSON bool `mapstructure:"log_json"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > default values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CHATTERD")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error; defaults and env apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 5001)
	v.SetDefault("secret_key", DefaultSecretKey)
	v.SetDefault("token_ttl", DefaultTokenTTL)
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

// Validate checks configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: must be between 1 and 65535, got %d", ErrInvalidPort, c.Port)
	}

	if c.SecretKey == "" {
		return fmt.Errorf("%w: secret_key cannot be empty", ErrEmptySecret)
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("%w: must be positive, got %s", ErrInvalidTokenTTL, c.TokenTTL)
	}

	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("%w: cors_origins cannot be empty", ErrNoCORSOrigins)
	}

	return nil
}

// IsDefaultSecret reports whether the insecure development fallback secret is
// in use. Callers should surface this as a deployment warning.
func (c *Config) IsDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// Addr returns the HTTP listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
