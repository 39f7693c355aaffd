/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGenAI(t *testing.T) {
	m := NewGenAI("aitestagent.test")
	require.NotNil(t, m, "expected a usable metrics instance")
	require.NotNil(t, m.promptTokens, "prompt token counter missing")
	require.NotNil(t, m.completionTokens, "completion token counter missing")
	require.NotNil(t, m.judgements, "judgement counter missing")
}

func TestRecordDoesNotPanic(t *testing.T) {
	ctx := context.Background()
	m := NewGenAI("aitestagent.test")

	// The global meter provider defaults to no-op; recording must still
	// be safe.
	m.RecordTokens(ctx, "gpt-4o-mini", 120, 45)
	m.RecordTokens(ctx, "claude-sonnet-4-5", 0, 0)
	m.RecordJudgement(ctx, "gpt-4o-mini", "accuracy")
	m.RecordJudgement(ctx, "gemini-2.5-flash", "criteria")
}
