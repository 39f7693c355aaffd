/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/sashabaranov/go-openai"

	"github.com/aitestagent/aitestagent/metrics"
	"github.com/aitestagent/aitestagent/result"
	"github.com/aitestagent/aitestagent/retry"
)

// openaiJudge implements Interface using the OpenAI chat completions API.
type openaiJudge struct {
	client       *openai.Client
	model        string
	settings     settings
	genaiMetrics *metrics.GenAI
}

// newOpenAI creates a new OpenAI judge instance. The API key comes from
// OPENAI_API_KEY; this package never reads it beyond handing it to the SDK.
func newOpenAI(model string, s settings) (Interface, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}

	return &openaiJudge{
		client:       openai.NewClient(apiKey),
		model:        model,
		settings:     s,
		genaiMetrics: metrics.NewGenAI(meterName),
	}, nil
}

// Judge implements Interface.
func (o *openaiJudge) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	promptText, err := buildPrompt(request)
	if err != nil {
		return nil, err
	}

	clog.FromContext(ctx).With("model", o.model).
		With("mode", request.Mode).
		With("prompt_length", len(promptText)).
		Info("Requesting OpenAI judgment")

	resp, err := retry.Do(ctx, o.settings.retryConfig, "openai_chat_completion", isRetryableOpenAIError, func() (openai.ChatCompletionResponse, error) {
		return o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:               o.model,
			Temperature:         float32(o.settings.temperature),
			MaxCompletionTokens: int(o.settings.maxTokens),
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: promptText},
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if resp.Usage.PromptTokens > 0 || resp.Usage.CompletionTokens > 0 {
		o.genaiMetrics.RecordTokens(ctx, o.model, int64(resp.Usage.PromptTokens), int64(resp.Usage.CompletionTokens))
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("OpenAI returned no choices")
	}

	judgement, err := parseJudgement(resp.Choices[0].Message.Content, request.Mode)
	if err != nil {
		return nil, err
	}
	o.genaiMetrics.RecordJudgement(ctx, o.model, string(request.Mode))
	return judgement, nil
}

// isRetryableOpenAIError checks if an error is a retryable OpenAI API error.
// Returns true for rate limit and transient server errors.
func isRetryableOpenAIError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429, 500, 502, 503:
			return true
		}
	}
	return false
}

// parseJudgement extracts a Judgement from the raw model response and
// enforces the score range. The mode is taken from the request rather than
// trusting the model's echo.
func parseJudgement(raw string, mode Mode) (*Judgement, error) {
	judgement, err := result.Extract[*Judgement](raw)
	if err != nil {
		return nil, fmt.Errorf("parsing judgement: %w", err)
	}
	if judgement == nil {
		return nil, errors.New("model returned an empty judgement")
	}
	if err := validateScore(judgement.Score); err != nil {
		return nil, err
	}
	judgement.Mode = mode
	return judgement, nil
}
