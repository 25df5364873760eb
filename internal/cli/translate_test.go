package cli

import (
	"testing"

	"github.com/srtran/srtran/internal/llm"
)

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider llm.Provider
		want     string
	}{
		{llm.ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{llm.ProviderOpenAI, "OPENAI_API_KEY"},
		{llm.ProviderGemini, "GEMINI_API_KEY"},
		{llm.ProviderBedrock, "API_KEY"},
		{llm.Provider("unknown"), "API_KEY"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			if got := apiKeyEnvVar(tt.provider); got != tt.want {
				t.Errorf("apiKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}
