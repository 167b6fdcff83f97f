// Package assistant wraps the Anthropic Messages API as a one-shot prompt
// call suitable for use as a stream.Future.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/ShayCichocki/relm/internal/logging"
	"github.com/ShayCichocki/relm/pkg/stream"
)

// DefaultMaxTokens bounds the length of an answer.
const DefaultMaxTokens = 1024

// ErrEmptyPrompt is returned by Ask for a blank prompt.
var ErrEmptyPrompt = errors.New("prompt is empty")

// Asker answers a prompt.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Client is an Asker backed by the Anthropic API or AWS Bedrock.
type Client struct {
	inner     anthropic.Client
	model     anthropic.Model
	maxTokens int64
	usage     Usage
}

// ClientConfig contains configuration for creating a new Client.
type ClientConfig struct {
	// Model is the Claude model to use. Defaults to Sonnet 4.
	Model anthropic.Model
	// APIKey is required unless UseAWSBedrock is set.
	APIKey string
	// UseAWSBedrock routes requests through AWS Bedrock with the default
	// AWS credential chain.
	UseAWSBedrock bool
	AWSRegion     string
	AWSProfile    string
	// BaseURL overrides the API endpoint.
	BaseURL   string
	MaxTokens int64
	// MaxRetries overrides the SDK retry count when non-negative.
	MaxRetries int
}

// NewClient creates a new assistant client.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	var opts []option.RequestOption

	if cfg.UseAWSBedrock {
		var loadOpts []func(*config.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, config.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.AWSProfile))
		}
		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx, loadOpts...))
	} else {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic client: no API key")
		}
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	model := cfg.Model
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}
	if cfg.UseAWSBedrock {
		model = bedrockModel(model)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Client{
		inner:     anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// bedrockModel converts Anthropic model names to Bedrock cross-region
// inference profiles. Unknown names are returned unchanged.
func bedrockModel(model anthropic.Model) anthropic.Model {
	profiles := map[anthropic.Model]string{
		anthropic.ModelClaudeSonnet4_20250514:   "us.anthropic.claude-sonnet-4-20250514-v1:0",
		anthropic.ModelClaudeSonnet4_5_20250929: "us.anthropic.claude-sonnet-4-5-20250929-v1:0",
		anthropic.ModelClaudeHaiku4_5_20251001:  "us.anthropic.claude-haiku-4-5-20251001-v1:0",
		anthropic.ModelClaudeOpus4_1_20250805:   "us.anthropic.claude-opus-4-1-20250805-v1:0",
	}
	if profile, ok := profiles[model]; ok {
		return anthropic.Model(profile)
	}
	return model
}

// Model returns the configured model name.
func (c *Client) Model() anthropic.Model {
	return c.model
}

// Usage returns the token usage accumulated by this client.
func (c *Client) Usage() *Usage {
	return &c.usage
}

// Ask sends prompt as a single user message and returns the text of the reply.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	logging.Debugf("[assistant] asking %s (%d chars)", c.model, len(prompt))

	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}

	c.usage.add(resp.Usage.InputTokens, resp.Usage.OutputTokens)

	var result strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			result.WriteString(variant.Text)
		}
	}
	return result.String(), nil
}

// Future returns a one-shot stream yielding the answer to prompt.
// The request is sent when the future is first polled.
func Future(a Asker, prompt string) stream.Future[string] {
	return func(ctx context.Context) (string, error) {
		return a.Ask(ctx, prompt)
	}
}

// Usage tracks token usage across calls.
type Usage struct {
	mu     sync.Mutex
	input  int64
	output int64
	calls  int
}

func (u *Usage) add(input, output int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.input += input
	u.output += output
	u.calls++
}

// Total returns the total input and output tokens.
func (u *Usage) Total() (input, output int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.input, u.output
}

// Calls returns the number of successful API calls.
func (u *Usage) Calls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}
