package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Invoker using OpenAI Chat Completions
type OpenAIInvoker struct {
	client    openai.Client
	model     string
	maxTokens int
}

func NewOpenAIInvoker(ctx context.Context, opts Options) (*OpenAIInvoker, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(opts.APIKey))

	model := opts.Model
	if model == "" {
		model = "gpt-5-mini"
	}

	return &OpenAIInvoker{
		client:    client,
		model:     model,
		maxTokens: opts.maxTokens(),
	}, nil
}

func (o *OpenAIInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	completion, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model:               o.model,
			MaxCompletionTokens: openai.Int(int64(o.maxTokens)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("invocation failed: %w", err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	text := completion.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("no text in OpenAI response")
	}

	return text, nil
}
