package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MOVIEPEEK_OMDB_API_KEY.
const EnvPrefix = "MOVIEPEEK"

// Load loads the configuration from file. Without an explicit path a
// missing file is not an error and defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".moviepeek"))
		}

		v.AddConfigPath("/etc/moviepeek/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// OMDb defaults
	v.SetDefault("omdb.url", "http://www.omdbapi.com")
	v.SetDefault("omdb.api_key", "c79ee41a")
	v.SetDefault("omdb.timeout", "5s")
	v.SetDefault("omdb.plot", "full")
	v.SetDefault("omdb.rate_limit", 0)
	v.SetDefault("omdb.burst", 1)

	// Search defaults
	v.SetDefault("search.debounce", "1500ms")
	v.SetDefault("search.discard_stale", true)

	// Poster defaults
	v.SetDefault("poster.enabled", true)
	v.SetDefault("poster.timeout", "5s")

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
// Validate checks a configuration that was changed after Load.
func (c *Config) Validate() error {
	return validate(c)
}

func validate(cfg *Config) error {
	if cfg.OMDb.URL == "" {
		return fmt.Errorf("omdb.url is required")
	}

	if cfg.OMDb.APIKey == "" {
		return fmt.Errorf("omdb.api_key must be set")
	}

	if cfg.OMDb.Timeout <= 0 {
		return fmt.Errorf("omdb.timeout must be positive")
	}

	switch cfg.OMDb.Plot {
	case "", "short", "full":
	default:
		return fmt.Errorf("invalid omdb.plot: %s (must be 'short' or 'full')", cfg.OMDb.Plot)
	}

	if cfg.OMDb.RateLimit < 0 {
		return fmt.Errorf("omdb.rate_limit cannot be negative")
	}

	if cfg.Search.Debounce <= 0 {
		return fmt.Errorf("search.debounce must be positive")
	}

	if cfg.Poster.Enabled && cfg.Poster.Timeout <= 0 {
		return fmt.Errorf("poster.timeout must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
