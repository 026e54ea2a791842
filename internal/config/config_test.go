package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
rules:
  base_url: https://rules.example.test
  club_id: pine_valley
  fast_mode: true
brand: columbia
voice:
  backend: portaudio
  quiet_period_seconds: 2.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Rules.BaseURL != "https://rules.example.test" {
		t.Fatalf("unexpected base URL %q", cfg.Rules.BaseURL)
	}
	if cfg.Rules.ClubID != "pine_valley" {
		t.Fatalf("unexpected club id %q", cfg.Rules.ClubID)
	}
	if !cfg.Rules.FastMode {
		t.Fatalf("expected fast mode to be enabled")
	}
	if cfg.Brand != "columbia" {
		t.Fatalf("unexpected brand %q", cfg.Brand)
	}
	if cfg.Voice.Backend != BackendPortaudio {
		t.Fatalf("unexpected backend %q", cfg.Voice.Backend)
	}
	if got := cfg.QuietPeriod(); got != 2500*time.Millisecond {
		t.Fatalf("unexpected quiet period %v", got)
	}
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := writeConfig(t, `brand: columbia`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Voice.Backend != BackendMiniaudio {
		t.Fatalf("unexpected default backend %q", cfg.Voice.Backend)
	}
	if got := cfg.QuietPeriod(); got != 5*time.Second {
		t.Fatalf("unexpected default quiet period %v", got)
	}
}

func TestEnvironmentOverridesBaseURL(t *testing.T) {
	t.Setenv("LINKSLOGIC_API_URL", "https://staging.example.test")

	path := writeConfig(t, `
rules:
  base_url: https://rules.example.test
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Rules.BaseURL != "https://staging.example.test" {
		t.Fatalf("expected the environment to win, got %q", cfg.Rules.BaseURL)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, `rules: [not, a, mapping`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected malformed YAML to be rejected")
	}
}

func TestQuietPeriodUnsetReturnsZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Voice.QuietPeriodSeconds = 0
	if got := cfg.QuietPeriod(); got != 0 {
		t.Fatalf("expected zero quiet period when unset, got %v", got)
	}
}
