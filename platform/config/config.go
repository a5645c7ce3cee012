// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"phonetrace/platform/apperr"

	"github.com/joho/godotenv"
)

// GeocoderConfig provides settings needed by the geocoding client.
type GeocoderConfig interface {
	GetAPIKey() string
	GetGeocoderBaseURL() string
	GetGeocoderTimeout() time.Duration
}

// Config holds all configuration for one invocation, merged from CLI
// flags and environment variables exactly once at startup.
type Config struct {
	Env    string
	Number string

	APIKey          string
	GeocoderBaseURL string
	GeocoderTimeout time.Duration

	OpenBrowser bool
	Quiet       bool
	NoColor     bool
	OutputDir   string
}

// GeocoderConfig implementation
func (c *Config) GetAPIKey() string                 { return c.APIKey }
func (c *Config) GetGeocoderBaseURL() string        { return c.GeocoderBaseURL }
func (c *Config) GetGeocoderTimeout() time.Duration { return c.GeocoderTimeout }

const usageText = `Usage: phonetrace <number> [flags]

Look up carrier, region and approximate map location for a phone number
in international format (e.g. +254712345678). The location is the
carrier registration area, not a live position.

Flags:
  -k, --api-key KEY   OpenCage geocoding API key (or set OPENCAGE_API_KEY)
  -o, --open          open the generated map in the default browser
  -q, --quiet         suppress the banner (result output is kept)
      --no-color      disable colored output (NO_COLOR is also honored)
  -h, --help          show this help
`

// Usage writes the CLI usage text.
func Usage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// Load parses CLI arguments and merges them with environment variables.
// The API key resolution order is flag over OPENCAGE_API_KEY; absence of
// both is a configuration error reported before any network call.
func Load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("phonetrace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		apiKey      string
		openBrowser bool
		quiet       bool
		noColor     bool
	)
	fs.StringVar(&apiKey, "k", "", "OpenCage API key")
	fs.StringVar(&apiKey, "api-key", "", "OpenCage API key")
	fs.BoolVar(&openBrowser, "o", false, "open map in browser")
	fs.BoolVar(&openBrowser, "open", false, "open map in browser")
	fs.BoolVar(&quiet, "q", false, "suppress banner")
	fs.BoolVar(&quiet, "quiet", false, "suppress banner")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")

	// Two-pass parse so flags may appear before or after the positional
	// number argument.
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindUsage, err.Error(), err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, apperr.Usage("no phone number provided").
			WithRemedy("pass a number in international format, e.g. phonetrace +254712345678")
	}
	number := rest[0]
	if err := fs.Parse(rest[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindUsage, err.Error(), err)
	}
	if fs.NArg() > 0 {
		return nil, apperr.Usage(fmt.Sprintf("unexpected extra arguments: %s", strings.Join(fs.Args(), " ")))
	}

	if apiKey == "" {
		if v, ok := lookupEnv("OPENCAGE_API_KEY"); ok {
			apiKey = strings.TrimSpace(v)
		}
	}
	if apiKey == "" {
		return nil, apperr.Usage("OpenCage API key is required").
			WithRemedy("pass it with --api-key or set the OPENCAGE_API_KEY environment variable")
	}

	if !noColor {
		if _, ok := lookupEnv("NO_COLOR"); ok {
			noColor = true
		}
	}

	cfg := &Config{
		Env:             getEnv(lookupEnv, "APP_ENV", "production"),
		Number:          strings.TrimSpace(number),
		APIKey:          apiKey,
		GeocoderBaseURL: getEnv(lookupEnv, "OPENCAGE_BASE_URL", "https://api.opencagedata.com/geocode/v1/json"),
		GeocoderTimeout: mustDuration(getEnv(lookupEnv, "GEOCODER_TIMEOUT", "10s")),
		OpenBrowser:     openBrowser,
		Quiet:           quiet,
		NoColor:         noColor,
		OutputDir:       getEnv(lookupEnv, "PHONETRACE_OUTPUT_DIR", "."),
	}

	if cfg.GeocoderTimeout <= 0 {
		cfg.GeocoderTimeout = 10 * time.Second
	}

	return cfg, nil
}

func getEnv(lookupEnv func(string) (string, bool), key, fallback string) string {
	if val, ok := lookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
