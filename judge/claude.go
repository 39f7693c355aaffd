/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"

	"github.com/aitestagent/aitestagent/metrics"
	"github.com/aitestagent/aitestagent/retry"
)

// claudeJudge implements Interface using the Anthropic Messages API.
type claudeJudge struct {
	client       anthropic.Client
	model        string
	settings     settings
	genaiMetrics *metrics.GenAI
}

// newClaude creates a new Claude judge instance. The SDK reads
// ANTHROPIC_API_KEY from the environment.
func newClaude(model string, s settings) (Interface, error) {
	return &claudeJudge{
		client:       anthropic.NewClient(),
		model:        model,
		settings:     s,
		genaiMetrics: metrics.NewGenAI(meterName),
	}, nil
}

// Judge implements Interface.
func (c *claudeJudge) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	promptText, err := buildPrompt(request)
	if err != nil {
		return nil, err
	}

	clog.FromContext(ctx).With("model", c.model).
		With("mode", request.Mode).
		With("prompt_length", len(promptText)).
		Info("Requesting Claude judgment")

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.settings.maxTokens,
		Temperature: anthropic.Float(c.settings.temperature),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(promptText),
			},
		}},
	}

	message, err := retry.Do(ctx, c.settings.retryConfig, "claude_message", isRetryableClaudeError, func() (anthropic.Message, error) {
		stream := c.client.Messages.NewStreaming(ctx, params)
		var msg anthropic.Message
		for stream.Next() {
			if err := msg.Accumulate(stream.Current()); err != nil {
				return msg, fmt.Errorf("accumulating stream event: %w", err)
			}
		}
		if err := stream.Err(); err != nil {
			return msg, err
		}
		return msg, nil
	})
	if err != nil {
		return nil, fmt.Errorf("Claude API call failed: %w", err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		c.genaiMetrics.RecordTokens(ctx, c.model, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	var textContent string
	for _, content := range message.Content {
		if content.Type == "text" {
			textContent = content.Text
		}
	}
	if textContent == "" {
		return nil, errors.New("Claude returned an empty response")
	}

	judgement, err := parseJudgement(textContent, request.Mode)
	if err != nil {
		return nil, err
	}
	c.genaiMetrics.RecordJudgement(ctx, c.model, string(request.Mode))
	return judgement, nil
}

// isRetryableClaudeError checks if an error is a retryable Claude API error.
// Returns true for rate limit, overloaded, and transient server errors.
func isRetryableClaudeError(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 503, 504, 529:
			return true
		}
	}
	return false
}
