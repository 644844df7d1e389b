// Package config handles configuration for the server, including defaults
// and environment-variable overrides.
package config

import "time"

// Config holds runtime settings for the NoteKeeper server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DatabaseURL: MongoDB connection string.
//   - DatabaseName: name of the database holding the users and notes collections.
//   - AccessTokenSecret: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: access token lifetime.
type Config struct {
	Address                     string
	DatabaseURL                 string
	DatabaseName                string
	AccessTokenSecret           string
	AccessTokenValidityDuration time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Address = ":8000"
	c.DatabaseURL = "mongodb://localhost:27017"
	c.DatabaseName = "notekeeper"
	c.AccessTokenSecret = "secretKey"
	c.AccessTokenValidityDuration = 36000 * time.Minute
}

// LoadConfig builds a Config by applying defaults and then overlaying values
// from the process environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
