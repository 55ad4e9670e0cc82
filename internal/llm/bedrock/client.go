package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"audit-backend/internal/llm"
)

const (
	defaultMaxTokens = 500
	anthropicVersion = "bedrock-2023-05-31"
	contentTypeJSON  = "application/json"
)

// Client implements llm.Client using Amazon Bedrock InvokeModel.
type Client struct {
	api       *bedrockruntime.Client
	modelID   string
	maxTokens int
}

// New constructs a Bedrock-backed client from a shared AWS config.
func New(cfg aws.Config, modelID string, maxTokens int) (*Client, error) {
	if strings.TrimSpace(modelID) == "" {
		return nil, fmt.Errorf("BEDROCK_MODEL_ID is required")
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		api:       bedrockruntime.NewFromConfig(cfg),
		modelID:   modelID,
		maxTokens: maxTokens,
	}, nil
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature"`
}

type invokeResponse struct {
	Content []contentBlock `json:"content"`
}

// Complete invokes the configured model with a single user message at
// temperature zero and returns the text of the first content block.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        c.maxTokens,
		Messages: []message{{
			Role:    "user",
			Content: []contentBlock{{Type: "text", Text: prompt}},
		}},
		Temperature: 0,
	})
	if err != nil {
		return "", llm.InferenceError{Model: c.modelID, Err: fmt.Errorf("encode request: %w", err)}
	}

	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
		Body:        payload,
	})
	if err != nil {
		return "", llm.InferenceError{Model: c.modelID, Err: err}
	}

	var parsed invokeResponse
	if err := json.Unmarshal(out.Body, &parsed); err != nil {
		return "", llm.InferenceError{Model: c.modelID, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(parsed.Content) == 0 {
		return "", llm.InferenceError{Model: c.modelID, Err: errors.New("response missing content")}
	}
	return parsed.Content[0].Text, nil
}

var _ llm.Client = (*Client)(nil)
