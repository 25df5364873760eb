package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	DefaultBedrockRegion = "us-east-1"
	DefaultBedrockModel  = "anthropic.claude-3-sonnet-20240229-v1:0"

	anthropicVersion = "bedrock-2023-05-31"
)

// short aliases for supported Bedrock model IDs
var bedrockModelAliases = map[string]string{
	"claude-3-sonnet":   "anthropic.claude-3-sonnet-20240229-v1:0",
	"claude-3-haiku":    "anthropic.claude-3-haiku-20240307-v1:0",
	"claude-3-opus":     "anthropic.claude-3-opus-20240229-v1:0",
	"claude-3-5-sonnet": "anthropic.claude-3-5-sonnet-20241022-v2:0",
}

// ResolveBedrockModel expands a model alias to its full Bedrock model ID.
// Unrecognized names are returned unchanged so full IDs keep working.
func ResolveBedrockModel(name string) string {
	if id, ok := bedrockModelAliases[name]; ok {
		return id
	}
	return name
}

// implements Invoker using Amazon Bedrock runtime
type BedrockInvoker struct {
	client    *bedrockruntime.Client
	model     string
	maxTokens int
}

func NewBedrockInvoker(ctx context.Context, opts Options) (*BedrockInvoker, error) {
	region := opts.Region
	if region == "" {
		region = DefaultBedrockRegion
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	model := ResolveBedrockModel(opts.Model)
	if model == "" {
		model = DefaultBedrockModel
	}

	return &BedrockInvoker{
		client:    bedrockruntime.NewFromConfig(cfg),
		model:     model,
		maxTokens: opts.maxTokens(),
	}, nil
}

type bedrockMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	Messages         []bedrockMessage `json:"messages"`
}

type bedrockResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (b *BedrockInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(bedrockRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        b.maxTokens,
		Messages: []bedrockMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	output, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("invocation failed: %w", err)
	}

	var response bedrockResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var text string
	for _, block := range response.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text in Bedrock response")
	}

	return text, nil
}
