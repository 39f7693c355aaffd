/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"strings"

	"github.com/aitestagent/aitestagent/retry"
)

// DefaultModel is used when the caller does not name a model.
const DefaultModel = "gpt-4o-mini"

// meterName is the unified meter for all judge backends; the model name is
// a dimension on the recorded metrics.
const meterName = "aitestagent.judge"

// settings holds backend-independent tuning shared by all judge
// implementations.
type settings struct {
	temperature float64
	maxTokens   int64
	retryConfig retry.Config
}

func defaultSettings() settings {
	return settings{
		temperature: 0.1,
		maxTokens:   2048,
		retryConfig: retry.DefaultConfig(),
	}
}

// Option adjusts judge backend settings.
type Option func(*settings)

// WithTemperature sets the sampling temperature. The default of 0.1 keeps
// judgments consistent across runs.
func WithTemperature(t float64) Option {
	return func(s *settings) { s.temperature = t }
}

// WithMaxTokens sets the response token budget.
func WithMaxTokens(n int64) Option {
	return func(s *settings) { s.maxTokens = n }
}

// WithRetryConfig overrides the retry behavior for model API calls.
func WithRetryConfig(cfg retry.Config) Option {
	return func(s *settings) { s.retryConfig = cfg }
}

// New creates an Interface instance by delegating to the appropriate
// implementation based on the model name. Judges registered in
// DefaultRegistry are checked first; otherwise Claude models use the
// Anthropic SDK, Gemini models use Google's genai SDK, and everything else
// is treated as an OpenAI chat model.
func New(ctx context.Context, modelName string, opts ...Option) (Interface, error) {
	if modelName == "" {
		modelName = DefaultModel
	}

	if factory, ok := DefaultRegistry.Lookup(modelName); ok {
		return factory(modelName)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	switch {
	case strings.HasPrefix(strings.ToLower(modelName), "claude-"):
		return newClaude(modelName, s)
	case strings.HasPrefix(strings.ToLower(modelName), "gemini-"):
		return newGemini(ctx, modelName, s)
	default:
		return newOpenAI(modelName, s)
	}
}
