// Package config loads the application configuration from a YAML file
// with environment overrides for the rules service endpoint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Rules service settings
	Rules struct {
		// BaseURL of the rules-answering service. The LINKSLOGIC_API_URL
		// environment variable overrides it.
		BaseURL string `yaml:"base_url"`
		// ClubID overrides the brand's club identifier when set.
		ClubID   string `yaml:"club_id"`
		FastMode bool   `yaml:"fast_mode"`
	} `yaml:"rules"`

	// Brand selects the branded variant to present
	Brand string `yaml:"brand"`

	// Voice capture settings
	Voice struct {
		// Backend selects the audio capture library: "miniaudio" or
		// "portaudio".
		Backend string `yaml:"backend"`
		// QuietPeriodSeconds of recognition silence that completes an
		// utterance.
		QuietPeriodSeconds float64 `yaml:"quiet_period_seconds"`
	} `yaml:"voice"`
}

const (
	BackendMiniaudio = "miniaudio"
	BackendPortaudio = "portaudio"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Rules.BaseURL = ""
	cfg.Rules.ClubID = ""
	cfg.Rules.FastMode = false

	cfg.Brand = ""

	cfg.Voice.Backend = BackendMiniaudio
	cfg.Voice.QuietPeriodSeconds = 5.0

	return cfg
}

// QuietPeriod returns the configured quiet period as a duration, or 0
// when unset so the session default applies.
func (c *Config) QuietPeriod() time.Duration {
	if c.Voice.QuietPeriodSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Voice.QuietPeriodSeconds * float64(time.Second))
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadWithFallback attempts to load configuration from multiple locations
// Priority: explicit path > ~/.linkslogic.yaml > defaults
func LoadWithFallback(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(homeDir, ".linkslogic.yaml")
		if _, err := os.Stat(userConfigPath); err == nil {
			cfg, err := Load(userConfigPath)
			if err == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if baseURL := os.Getenv("LINKSLOGIC_API_URL"); baseURL != "" {
		cfg.Rules.BaseURL = baseURL
	}
}
