package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/tablefeed/internal/fetch"
)

// FileConfig is the optional YAML defaults file. It supplies values only for
// fields the flags left at their defaults, so explicit flags always win.
type FileConfig struct {
	URL   string `yaml:"url"`
	Range string `yaml:"range"`

	Out struct {
		Values string `yaml:"values"`
		Body   string `yaml:"body"`
	} `yaml:"out"`

	UserAgent string `yaml:"userAgent"`
	// Timeout is a duration string like "30s"; yaml.v3 has no native
	// time.Duration decoding.
	Timeout string `yaml:"timeout"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse yaml: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still at their
// flag defaults. Flags must already have been parsed.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.URL == "" || cfg.URL == DefaultURL) && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if (cfg.Range == "" || cfg.Range == DefaultRange) && fc.Range != "" {
		cfg.Range = fc.Range
	}
	if (cfg.ValuesOut == "" || cfg.ValuesOut == DefaultValuesOut) && fc.Out.Values != "" {
		cfg.ValuesOut = fc.Out.Values
	}
	if (cfg.BodyOut == "" || cfg.BodyOut == DefaultBodyOut) && fc.Out.Body != "" {
		cfg.BodyOut = fc.Out.Body
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if (cfg.Timeout == 0 || cfg.Timeout == fetch.DefaultTimeout) && fc.Timeout != "" {
		if d, err := time.ParseDuration(fc.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
