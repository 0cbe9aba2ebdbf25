package app

import (
	"errors"
	"strings"
	"time"

	"github.com/hyperifyio/tablefeed/internal/fetch"
)

// Defaults for flag parsing and file-config overlay.
const (
	DefaultURL       = "https://en.wikipedia.org/wiki/List_of_FIFA_World_Cup_finals"
	DefaultRange     = "Sheet1!A:D"
	DefaultValuesOut = "data/values.json"
	DefaultBodyOut   = "data/append_body.json"
	DefaultUserAgent = "tablefeed/1.0 (+https://github.com/hyperifyio/tablefeed)"
)

// Config holds runtime configuration for one run.
type Config struct {
	// Source page
	URL       string
	UserAgent string
	Timeout   time.Duration

	// Append target
	Range string

	// Output paths
	ValuesOut string
	BodyOut   string

	// Behavior
	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return errors.New("config: url is required")
	}
	if strings.TrimSpace(cfg.Range) == "" {
		return errors.New("config: range is required (or set SHEET_RANGE)")
	}
	if strings.TrimSpace(cfg.ValuesOut) == "" {
		return errors.New("config: values output path is required")
	}
	if strings.TrimSpace(cfg.BodyOut) == "" {
		return errors.New("config: body output path is required")
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	return nil
}

// WithDefaults fills zero-valued fields so a partially built Config is
// runnable in tests and library use.
func (c Config) WithDefaults() Config {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Range == "" {
		c.Range = DefaultRange
	}
	if c.ValuesOut == "" {
		c.ValuesOut = DefaultValuesOut
	}
	if c.BodyOut == "" {
		c.BodyOut = DefaultBodyOut
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = fetch.DefaultTimeout
	}
	return c
}
