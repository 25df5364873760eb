package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "bedrock" {
		t.Errorf("expected provider bedrock, got %q", cfg.Provider)
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("expected region us-east-1, got %q", cfg.Region)
	}
	if cfg.MaxTokens != 1000 {
		t.Errorf("expected max_tokens 1000, got %d", cfg.MaxTokens)
	}
	if cfg.ContextRadius != 20 {
		t.Errorf("expected context_radius 20, got %d", cfg.ContextRadius)
	}
	if cfg.GuideLimit != 100 {
		t.Errorf("expected guide_limit 100, got %d", cfg.GuideLimit)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "srtran.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
provider = "anthropic"
model = "claude-3-haiku"
max_tokens = 500
context_radius = 5
target_lang = "pt"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("expected provider anthropic, got %q", cfg.Provider)
	}
	if cfg.Model != "claude-3-haiku" {
		t.Errorf("expected model claude-3-haiku, got %q", cfg.Model)
	}
	if cfg.MaxTokens != 500 {
		t.Errorf("expected max_tokens 500, got %d", cfg.MaxTokens)
	}
	if cfg.ContextRadius != 5 {
		t.Errorf("expected context_radius 5, got %d", cfg.ContextRadius)
	}
	if cfg.TargetLang != "pt" {
		t.Errorf("expected target_lang pt, got %q", cfg.TargetLang)
	}
	// untouched keys keep their defaults
	if cfg.Region != "us-east-1" {
		t.Errorf("expected default region, got %q", cfg.Region)
	}
	if cfg.GuideLimit != 100 {
		t.Errorf("expected default guide_limit, got %d", cfg.GuideLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero max_tokens", "max_tokens = 0"},
		{"negative context_radius", "context_radius = -1"},
		{"zero guide_limit", "guide_limit = 0"},
		{"bad toml", "max_tokens = "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
