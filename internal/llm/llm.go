package llm

import (
	"context"
	"fmt"
)

// interface for invoking a large language model with a single prompt
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// LLM service provider
type Provider string

const (
	ProviderBedrock   Provider = "bedrock"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

// cap on response size, in tokens
const DefaultMaxTokens = 1000

type Options struct {
	Model     string // provider-specific model identifier (or Bedrock alias)
	Region    string // AWS region, Bedrock only
	APIKey    string // ignored by Bedrock, which uses the AWS credential chain
	MaxTokens int    // maximum tokens for the response (default 1000)
}

func (o Options) maxTokens() int {
	if o.MaxTokens > 0 {
		return o.MaxTokens
	}
	return DefaultMaxTokens
}

// creates an Invoker based on provider
func Factory(ctx context.Context, provider Provider, opts Options) (Invoker, error) {
	switch provider {
	case ProviderBedrock:
		return NewBedrockInvoker(ctx, opts)
	case ProviderAnthropic:
		return NewAnthropicInvoker(ctx, opts)
	case ProviderOpenAI:
		return NewOpenAIInvoker(ctx, opts)
	case ProviderGemini:
		return NewGeminiInvoker(ctx, opts)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}
