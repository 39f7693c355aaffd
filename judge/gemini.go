/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"

	"github.com/aitestagent/aitestagent/metrics"
	"github.com/aitestagent/aitestagent/retry"
)

// geminiJudge implements Interface using Google Gemini.
type geminiJudge struct {
	client       *genai.Client
	model        string
	settings     settings
	genaiMetrics *metrics.GenAI
}

// judgementSchema constrains Gemini to structured JSON judgements.
var judgementSchema = &genai.Schema{
	Type: "object",
	Properties: map[string]*genai.Schema{
		"mode": {
			Type:        "string",
			Description: "The judgment mode: accuracy or criteria",
		},
		"score": {
			Type:        "number",
			Description: "The evaluation score from 0.0 to 10.0",
		},
		"reasoning": {
			Type:        "string",
			Description: "Explanation of the score",
		},
		"suggestions": {
			Type: "array",
			Items: &genai.Schema{
				Type:        "string",
				Description: "Improvement suggestions",
			},
		},
	},
	Required: []string{"mode", "score", "reasoning", "suggestions"},
}

// newGemini creates a new Gemini judge instance. The SDK reads
// GEMINI_API_KEY from the environment.
func newGemini(ctx context.Context, model string, s settings) (Interface, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiJudge{
		client:       client,
		model:        model,
		settings:     s,
		genaiMetrics: metrics.NewGenAI(meterName),
	}, nil
}

// Judge implements Interface.
func (g *geminiJudge) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	promptText, err := buildPrompt(request)
	if err != nil {
		return nil, err
	}

	clog.FromContext(ctx).With("model", g.model).
		With("mode", request.Mode).
		With("prompt_length", len(promptText)).
		Info("Requesting Gemini judgment")

	config := &genai.GenerateContentConfig{
		Temperature:      ptr(float32(g.settings.temperature)),
		MaxOutputTokens:  int32(g.settings.maxTokens),
		ResponseMIMEType: "application/json",
		ResponseSchema:   judgementSchema,
	}

	response, err := retry.Do(ctx, g.settings.retryConfig, "gemini_generate_content", isRetryableGeminiError, func() (*genai.GenerateContentResponse, error) {
		return g.client.Models.GenerateContent(ctx, g.model, genai.Text(promptText), config)
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini API call failed: %w", err)
	}

	if response.UsageMetadata != nil {
		g.genaiMetrics.RecordTokens(ctx, g.model,
			int64(response.UsageMetadata.PromptTokenCount),
			int64(response.UsageMetadata.CandidatesTokenCount))
	}

	text := response.Text()
	if text == "" {
		return nil, errors.New("Gemini returned an empty response")
	}

	judgement, err := parseJudgement(text, request.Mode)
	if err != nil {
		return nil, err
	}
	g.genaiMetrics.RecordJudgement(ctx, g.model, string(request.Mode))
	return judgement, nil
}

// isRetryableGeminiError checks if an error is a retryable Gemini API error.
// The genai SDK does not expose typed errors for every failure, so this
// matches the messages seen for rate limit, quota, and server errors.
func isRetryableGeminiError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Resource exhausted") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "Overloaded") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "Internal error") ||
		strings.Contains(errStr, "server error")
}

func ptr[T any](v T) *T {
	return &v
}
