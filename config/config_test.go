package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		OMDb: OMDbConfig{
			URL:     "http://www.omdbapi.com",
			APIKey:  "key",
			Timeout: 5 * time.Second,
			Plot:    "full",
		},
		Search:  SearchConfig{Debounce: 1500 * time.Millisecond, DiscardStale: true},
		Poster:  PosterConfig{Enabled: true, Timeout: 5 * time.Second},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty plot uses API default", mutate: func(c *Config) { c.OMDb.Plot = "" }},
		{name: "poster disabled ignores timeout", mutate: func(c *Config) { c.Poster = PosterConfig{} }},
		{name: "missing url", mutate: func(c *Config) { c.OMDb.URL = "" }, wantErr: "omdb.url is required"},
		{name: "missing api key", mutate: func(c *Config) { c.OMDb.APIKey = "" }, wantErr: "omdb.api_key"},
		{name: "zero timeout", mutate: func(c *Config) { c.OMDb.Timeout = 0 }, wantErr: "omdb.timeout"},
		{name: "bad plot", mutate: func(c *Config) { c.OMDb.Plot = "medium" }, wantErr: "invalid omdb.plot: medium (must be 'short' or 'full')"},
		{name: "negative rate", mutate: func(c *Config) { c.OMDb.RateLimit = -1 }, wantErr: "omdb.rate_limit"},
		{name: "zero debounce", mutate: func(c *Config) { c.Search.Debounce = 0 }, wantErr: "search.debounce"},
		{name: "zero poster timeout", mutate: func(c *Config) { c.Poster.Timeout = 0 }, wantErr: "poster.timeout"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "invalid logging level: trace"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "invalid logging format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://www.omdbapi.com", cfg.OMDb.URL)
	assert.Equal(t, "c79ee41a", cfg.OMDb.APIKey)
	assert.Equal(t, 5*time.Second, cfg.OMDb.Timeout)
	assert.Equal(t, "full", cfg.OMDb.Plot)
	assert.Equal(t, 1500*time.Millisecond, cfg.Search.Debounce)
	assert.True(t, cfg.Search.DiscardStale)
	assert.True(t, cfg.Poster.Enabled)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
omdb:
  api_key: from-file
  timeout: 2s
  plot: short
search:
  debounce: 300ms
  discard_stale: false
logging:
  level: debug
  format: json
`), 0o600))

	t.Setenv("MOVIEPEEK_OMDB_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.OMDb.APIKey)
	assert.Equal(t, 2*time.Second, cfg.OMDb.Timeout)
	assert.Equal(t, "short", cfg.OMDb.Plot)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.False(t, cfg.Search.DiscardStale)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestConfig_ValidateAfterOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.EqualError(t, cfg.Validate(), "invalid logging level: verbose")
}
