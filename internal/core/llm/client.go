package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Model tiers. Fast handles bulk and evaluative calls, quality handles
// editorial and paid-deliverable content.
const (
	ModelFast    = "claude-haiku-4-5-20251001"
	ModelQuality = "claude-sonnet-4-6"
)

// requestTimeout caps every outbound completion call so a stalled provider
// never hangs a request.
const requestTimeout = 90 * time.Second

// Request describes one completion call.
type Request struct {
	Model       string
	MaxTokens   int
	System      string
	User        string
	CacheSystem bool // mark the system block cacheable for repeated calls
}

// Usage carries the provider's token counters for one call.
type Usage struct {
	InputTokens         int64 `json:"inputTokens"`
	OutputTokens        int64 `json:"outputTokens"`
	CacheReadTokens     int64 `json:"cacheReadTokens"`
	CacheCreationTokens int64 `json:"cacheCreationTokens"`
}

// Result is the raw completion plus usage counters.
type Result struct {
	Text  string
	Usage Usage
}

// Client is the LLM collaborator boundary. Services depend on this interface
// so tests can substitute a mock.
type Client interface {
	Complete(ctx context.Context, req Request) (*Result, error)
}

// AnthropicClient implements Client against the Anthropic Messages API.
type AnthropicClient struct {
	anthropic anthropic.Client
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &AnthropicClient{anthropic: anthropic.NewClient(opts...)}
}

func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	}
	if req.System != "" {
		block := anthropic.TextBlockParam{Text: req.System}
		if req.CacheSystem {
			block.CacheControl = anthropic.NewCacheControlEphemeralParam()
		}
		params.System = []anthropic.TextBlockParam{block}
	}

	message, err := c.anthropic.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed (model %s): %w", req.Model, err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nil, fmt.Errorf("empty completion from %s", req.Model)
	}

	return &Result{
		Text: text,
		Usage: Usage{
			InputTokens:         message.Usage.InputTokens,
			OutputTokens:        message.Usage.OutputTokens,
			CacheReadTokens:     message.Usage.CacheReadInputTokens,
			CacheCreationTokens: message.Usage.CacheCreationInputTokens,
		},
	}, nil
}
