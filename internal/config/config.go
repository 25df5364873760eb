// Package config loads run defaults from an optional TOML file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Provider      string `toml:"provider"`
	Model         string `toml:"model"`
	Region        string `toml:"region"`
	MaxTokens     int    `toml:"max_tokens"`
	ContextRadius int    `toml:"context_radius"`
	GuideLimit    int    `toml:"guide_limit"`
	SourceLang    string `toml:"source_lang"`
	TargetLang    string `toml:"target_lang"`
}

func Default() Config {
	return Config{
		Provider:      "bedrock",
		Region:        "us-east-1",
		MaxTokens:     1000,
		ContextRadius: 20,
		GuideLimit:    100,
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.ContextRadius < 0 {
		return fmt.Errorf("context_radius must not be negative, got %d", c.ContextRadius)
	}
	if c.GuideLimit <= 0 {
		return fmt.Errorf("guide_limit must be positive, got %d", c.GuideLimit)
	}
	return nil
}
