/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics records OpenTelemetry metrics for judge model calls.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI provides token-usage and judgement counters for judge backends.
// All backends share one meter, with the model name as a dimension.
type GenAI struct {
	meter            metric.Meter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	judgements       metric.Int64Counter
}

// NewGenAI creates a GenAI metrics instance on the named meter. Counter
// creation failures degrade to no-op counters rather than failing the
// backend.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	judgements, err := meter.Int64Counter("genai.judgements",
		metric.WithDescription("The number of judgements rendered"),
		metric.WithUnit("{judgements}"))
	if err != nil {
		slog.Warn("Failed to create judgement counter, metrics will be disabled", "error", err, "meter", meterName)
		judgements = noop.Int64Counter{}
	}

	return &GenAI{
		meter:            meter,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		judgements:       judgements,
	}
}

// RecordTokens records prompt and completion token usage for a model call.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64) {
	attrs := metric.WithAttributes(attribute.String("model", model))
	m.promptTokens.Add(ctx, promptTokens, attrs)
	m.completionTokens.Add(ctx, completionTokens, attrs)
}

// RecordJudgement records a completed judgement for a model and mode.
func (m *GenAI) RecordJudgement(ctx context.Context, model, mode string) {
	m.judgements.Add(ctx, 1, metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("mode", mode),
	))
}
