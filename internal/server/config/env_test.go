package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Address != ":8000" {
		t.Errorf("unexpected default address: %q", cfg.Address)
	}
	if cfg.DatabaseName != "notekeeper" {
		t.Errorf("unexpected default database name: %q", cfg.DatabaseName)
	}
	if cfg.AccessTokenValidityDuration != 36000*time.Minute {
		t.Errorf("unexpected default token validity: %v", cfg.AccessTokenValidityDuration)
	}
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv(EnvAddress, ":9090")
	t.Setenv(EnvDatabaseURL, "mongodb://db:27017")
	t.Setenv(EnvDatabaseName, "notes_test")
	t.Setenv(EnvAccessTokenSecret, "s3cret")
	t.Setenv(EnvTokenValidity, "15m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Address != ":9090" {
		t.Errorf("address not overridden: %q", cfg.Address)
	}
	if cfg.DatabaseURL != "mongodb://db:27017" {
		t.Errorf("database url not overridden: %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "notes_test" {
		t.Errorf("database name not overridden: %q", cfg.DatabaseName)
	}
	if cfg.AccessTokenSecret != "s3cret" {
		t.Errorf("secret not overridden")
	}
	if cfg.AccessTokenValidityDuration != 15*time.Minute {
		t.Errorf("token validity not overridden: %v", cfg.AccessTokenValidityDuration)
	}
}

func TestParseEnv_EmptyValueKeepsDefault(t *testing.T) {
	t.Setenv(EnvAddress, "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Address != ":8000" {
		t.Errorf("empty env var should keep default, got %q", cfg.Address)
	}
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv(EnvTokenValidity, "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
