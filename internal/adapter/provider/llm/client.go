// Package llm answers syllabus questions through the Anthropic Messages API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Client wraps the Anthropic SDK client.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// New creates a Client for the configured model.
func New(cfg config.LLMConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "llm"),
	}
}

// NewWithURL creates a Client against a custom base URL without retries (for testing).
func NewWithURL(cfg config.LLMConfig, baseURL string, logger *slog.Logger) *Client {
	return New(cfg, logger, option.WithBaseURL(baseURL), option.WithMaxRetries(0))
}

// Complete sends the system prompt and the conversation turns and returns
// the joined text of the reply.
func (c *Client) Complete(ctx context.Context, system string, turns []domain.ChatMessage) (string, error) {
	if len(turns) == 0 {
		return "", errors.New("llm: no messages")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  toMessageParams(turns),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "llm request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("llm: messages: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyResponse
	}

	c.log.DebugContext(ctx, "llm response",
		slog.String("model", string(msg.Model)),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)
	return strings.Join(parts, "\n"), nil
}

// toMessageParams maps stored turns to API messages. The API requires the
// first message to come from the user, so leading assistant turns are skipped.
func toMessageParams(turns []domain.ChatMessage) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		block := anthropic.NewTextBlock(t.Content)
		switch t.Role {
		case domain.MessageRoleAssistant:
			if len(out) == 0 {
				continue
			}
			out = append(out, anthropic.NewAssistantMessage(block))
		default:
			out = append(out, anthropic.NewUserMessage(block))
		}
	}
	return out
}
