package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/tablefeed/internal/app"
	"github.com/hyperifyio/tablefeed/internal/fetch"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env file; missing is fine.
	_ = godotenv.Load()

	var (
		pageURL    string
		sheetRange string
		valuesOut  string
		bodyOut    string
		configPath string
		userAgent  string
		timeout    time.Duration
		verbose    bool
	)

	flag.StringVar(&pageURL, "url", app.DefaultURL, "Wikipedia article URL to scrape")
	flag.StringVar(&sheetRange, "range", envOr("SHEET_RANGE", app.DefaultRange), "Target range, e.g. 'Sheet1!A:D'")
	flag.StringVar(&valuesOut, "values-out", app.DefaultValuesOut, "Path to write the raw values grid")
	flag.StringVar(&bodyOut, "body-out", app.DefaultBodyOut, "Path to write the append request body")
	flag.StringVar(&configPath, "config", os.Getenv("TABLEFEED_CONFIG"), "Optional YAML config file supplying defaults")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent for the outbound request")
	flag.DurationVar(&timeout, "timeout", fetch.DefaultTimeout, "HTTP request timeout")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		URL:       pageURL,
		Range:     sheetRange,
		ValuesOut: valuesOut,
		BodyOut:   bodyOut,
		UserAgent: userAgent,
		Timeout:   timeout,
		Verbose:   verbose,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
