// Package config loads the function configuration from the environment.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment, e.g. OSUSEARCH_SECRET_ID.
const EnvPrefix = "OSUSEARCH"

// Defaults for the deployed function.
const (
	DefaultSecretRegion    = "us-west-2"
	DefaultSecretID        = "osusearch/apigeeToken"
	DefaultUpstreamBaseURL = "https://api.oregonstate.edu/v1"
	DefaultLogLevel        = "info"
)

// Config holds everything the handler needs to be wired together.
type Config struct {
	SecretRegion    string `json:"secret-region"`
	SecretID        string `json:"secret-id"`
	UpstreamBaseURL string `json:"upstream-base-url"`
	LogLevel        string `json:"log-level"`
}

// Load reads the configuration from the environment, applying an optional
// .env file first. Missing keys fall back to the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("secret_region", DefaultSecretRegion)
	v.SetDefault("secret_id", DefaultSecretID)
	v.SetDefault("upstream_base_url", DefaultUpstreamBaseURL)
	v.SetDefault("log_level", DefaultLogLevel)

	cfg := &Config{
		SecretRegion:    v.GetString("secret_region"),
		SecretID:        v.GetString("secret_id"),
		UpstreamBaseURL: v.GetString("upstream_base_url"),
		LogLevel:        v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error describing the first missing or invalid value.
func (cfg *Config) Validate() error {
	if cfg.SecretRegion == "" {
		return errors.New("secret region is required")
	}

	if cfg.SecretID == "" {
		return errors.New("secret id is required")
	}

	if cfg.UpstreamBaseURL == "" {
		return errors.New("upstream base url is required")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log level '%s'", cfg.LogLevel)
	}

	return nil
}

// Logger returns a JSON logger at the configured level.
func (cfg *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level '%s'", cfg.LogLevel)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.JSONFormatter{})

	return log, nil
}
