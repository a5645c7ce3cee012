package config

import (
	"flag"
	"strings"
	"testing"

	"phonetrace/platform/apperr"
)

func envWith(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoad_MissingNumber(t *testing.T) {
	_, err := Load([]string{}, envWith(nil))
	if !apperr.Is(err, apperr.KindUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	_, err := Load([]string{"+254712345678"}, envWith(nil))
	if !apperr.Is(err, apperr.KindUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Fatalf("error should mention the API key, got %q", err.Error())
	}
}

func TestLoad_KeyFromEnv(t *testing.T) {
	cfg, err := Load([]string{"+254712345678"}, envWith(map[string]string{
		"OPENCAGE_API_KEY": "env-key",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("expected key from env, got %q", cfg.APIKey)
	}
	if cfg.Number != "+254712345678" {
		t.Fatalf("unexpected number: %q", cfg.Number)
	}
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	cfg, err := Load([]string{"-k", "flag-key", "+254712345678"}, envWith(map[string]string{
		"OPENCAGE_API_KEY": "env-key",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "flag-key" {
		t.Fatalf("expected flag to win over env, got %q", cfg.APIKey)
	}
}

func TestLoad_FlagsAfterPositional(t *testing.T) {
	cfg, err := Load([]string{"+254712345678", "--api-key", "k", "-o", "-q"}, envWith(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "k" {
		t.Fatalf("expected trailing --api-key to parse, got %q", cfg.APIKey)
	}
	if !cfg.OpenBrowser || !cfg.Quiet {
		t.Fatalf("expected trailing boolean flags to parse: open=%v quiet=%v", cfg.OpenBrowser, cfg.Quiet)
	}
}

func TestLoad_ExtraArguments(t *testing.T) {
	_, err := Load([]string{"+254712345678", "+441632960000", "-k", "k"}, envWith(nil))
	if !apperr.Is(err, apperr.KindUsage) {
		t.Fatalf("expected usage error for extra positional, got %v", err)
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := Load([]string{"-h"}, envWith(nil))
	if err != flag.ErrHelp {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestLoad_NoColorEnv(t *testing.T) {
	cfg, err := Load([]string{"+254712345678", "-k", "k"}, envWith(map[string]string{
		"NO_COLOR": "1",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.NoColor {
		t.Fatalf("expected NO_COLOR env to disable colors")
	}
}

func TestLoad_GeocoderDefaults(t *testing.T) {
	cfg, err := Load([]string{"+254712345678", "-k", "k"}, envWith(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GeocoderBaseURL == "" {
		t.Fatalf("expected a default geocoder base URL")
	}
	if cfg.GeocoderTimeout <= 0 {
		t.Fatalf("expected a positive geocoder timeout, got %v", cfg.GeocoderTimeout)
	}
}
