package config

import (
	"fmt"
	"os"
	"time"
)

// Environment variable names recognized by parseEnv.
const (
	EnvAddress           = "ADDRESS"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvDatabaseName      = "DATABASE_NAME"
	EnvAccessTokenSecret = "ACCESS_TOKEN_SECRET"
	EnvTokenValidity     = "TOKEN_VALIDITY"
)

// parseEnv overlays cfg with values from the process environment.
// Unset or empty variables leave the current value untouched.
func parseEnv(cfg *Config) error {
	if v := os.Getenv(EnvAddress); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv(EnvDatabaseName); v != "" {
		cfg.DatabaseName = v
	}
	if v := os.Getenv(EnvAccessTokenSecret); v != "" {
		cfg.AccessTokenSecret = v
	}
	if v := os.Getenv(EnvTokenValidity); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvTokenValidity, v, err)
		}
		cfg.AccessTokenValidityDuration = d
	}
	return nil
}
