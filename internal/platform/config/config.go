package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the tool reads, e.g. STAYCOST_LOG_LEVEL.
const EnvPrefix = "STAYCOST"

// Config holds application configuration.
type Config struct {
	LogLevel       slog.Level
	LogFormat      string // "json" or "text"
	SeedLedger     bool   // start sessions with the default comparison entries
	ConfirmDeletes bool   // ask y/N before deleting in the interactive shell
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SEED_LEDGER", true)
	v.SetDefault("CONFIRM_DELETES", true)
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
// Invalid values fall back to their defaults with a warning.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelWarn
		log.Printf("Warning: Invalid value for %s_LOG_LEVEL ('%s'). Defaulting to %s.\n", EnvPrefix, levelStr, cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		log.Printf("Warning: Invalid value for %s_LOG_FORMAT ('%s'). Defaulting to json.\n", EnvPrefix, cfg.LogFormat)
		cfg.LogFormat = "json"
	}

	cfg.SeedLedger = v.GetBool("SEED_LEDGER")
	cfg.ConfirmDeletes = v.GetBool("CONFIRM_DELETES")

	return cfg, nil
}
