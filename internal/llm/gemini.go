package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// implements Invoker using Google Gemini
type GeminiInvoker struct {
	client    *genai.Client
	model     string
	maxTokens int
}

func NewGeminiInvoker(ctx context.Context, opts Options) (*GeminiInvoker, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: opts.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiInvoker{
		client:    client,
		model:     model,
		maxTokens: opts.maxTokens(),
	}, nil
}

func (g *GeminiInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.maxTokens),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("invocation failed: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			break
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text in Gemini response")
	}

	return text, nil
}
