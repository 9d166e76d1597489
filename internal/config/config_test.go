package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NBHD_API_KEY", "env-key")
	t.Setenv("NBHD_SHARED_SECRET", "s3cret")
	t.Setenv("NBHD_RAW", "true")
	t.Setenv("NBHD_TIMEOUT_SECONDS", "5")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("unexpected api key %q", cfg.APIKey)
	}
	if cfg.SharedSecret != "s3cret" {
		t.Fatalf("unexpected shared secret %q", cfg.SharedSecret)
	}
	if !cfg.Raw {
		t.Fatalf("expected raw to be true")
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
	if cfg.Output != "json" {
		t.Fatalf("expected default output json, got %q", cfg.Output)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("NBHD_API_KEY", "env-key")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("api-key", "", "")
	fs.String("output", "json", "")
	if err := fs.Parse([]string{"--api-key", "flag-key", "--output", "YAML"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "flag-key" {
		t.Fatalf("expected flag to win, got %q", cfg.APIKey)
	}
	if cfg.Output != "yaml" {
		t.Fatalf("expected yaml output, got %q", cfg.Output)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("NBHD_API_KEY", "")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("NBHD_API_KEY", "k")
	t.Setenv("NBHD_TIMEOUT_SECONDS", "0")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestLoadRejectsUnknownOutput(t *testing.T) {
	t.Setenv("NBHD_API_KEY", "k")
	t.Setenv("NBHD_OUTPUT", "xml")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for xml output")
	}
}
