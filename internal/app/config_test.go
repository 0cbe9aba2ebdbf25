package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/tablefeed/internal/fetch"
)

func TestValidateConfig(t *testing.T) {
	valid := Config{
		URL:       DefaultURL,
		Range:     DefaultRange,
		ValuesOut: DefaultValuesOut,
		BodyOut:   DefaultBodyOut,
	}
	require.NoError(t, ValidateConfig(valid))

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing url", func(c *Config) { c.URL = " " }},
		{"missing range", func(c *Config) { c.Range = "" }},
		{"missing values path", func(c *Config) { c.ValuesOut = "" }},
		{"missing body path", func(c *Config) { c.BodyOut = "" }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultURL, cfg.URL)
	assert.Equal(t, DefaultRange, cfg.Range)
	assert.Equal(t, DefaultValuesOut, cfg.ValuesOut)
	assert.Equal(t, DefaultBodyOut, cfg.BodyOut)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, fetch.DefaultTimeout, cfg.Timeout)

	custom := Config{URL: "https://example.com", Range: "Data!A:D"}.WithDefaults()
	assert.Equal(t, "https://example.com", custom.URL)
	assert.Equal(t, "Data!A:D", custom.Range)
}

func TestLoadConfigFile_AppliesDefaultsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablefeed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
url: https://example.org/finals
range: Data!A:D
out:
  values: alt/values.json
  body: alt/body.json
timeout: 10s
verbose: true
`), 0o644))

	fc, err := LoadConfigFile(path)
	require.NoError(t, err)

	// All fields at flag defaults: file supplies everything.
	cfg := Config{
		URL:       DefaultURL,
		Range:     DefaultRange,
		ValuesOut: DefaultValuesOut,
		BodyOut:   DefaultBodyOut,
	}
	ApplyFileConfig(&cfg, fc)
	assert.Equal(t, "https://example.org/finals", cfg.URL)
	assert.Equal(t, "Data!A:D", cfg.Range)
	assert.Equal(t, "alt/values.json", cfg.ValuesOut)
	assert.Equal(t, "alt/body.json", cfg.BodyOut)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.Verbose)

	// Explicit flag values survive the overlay.
	cfg = Config{
		URL:       "https://flags.example/page",
		Range:     "Flags!A:D",
		ValuesOut: DefaultValuesOut,
		BodyOut:   DefaultBodyOut,
	}
	ApplyFileConfig(&cfg, fc)
	assert.Equal(t, "https://flags.example/page", cfg.URL)
	assert.Equal(t, "Flags!A:D", cfg.Range)
	assert.Equal(t, "alt/values.json", cfg.ValuesOut)
}

func TestLoadConfigFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("url: [unclosed"), 0o644))
	_, err := LoadConfigFile(path)
	require.Error(t, err)
}
