package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. CONTACTS_DATABASE_URL for database.url.
const EnvPrefix = "CONTACTS"

// Default values applied before files and environment are read.
const (
	DefaultPort                 = 5000
	DefaultLogLevel             = "info"
	DefaultTokenLifetimeSeconds = 10000
	DefaultBcryptCost           = 10
)

// configKeys lists every key that may come from the environment.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"database.url",
	"auth.jwt_secret",
	"auth.token_lifetime_seconds",
	"auth.bcrypt_cost",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("auth.token_lifetime_seconds", DefaultTokenLifetimeSeconds)
	v.SetDefault("auth.bcrypt_cost", DefaultBcryptCost)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about, so keys without
	// a default must be bound explicitly.
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
