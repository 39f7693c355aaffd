/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge_test

import (
	"testing"

	"github.com/aitestagent/aitestagent/judge"
)

func TestJudgementString(t *testing.T) {
	tests := []struct {
		name      string
		judgement *judge.Judgement
		expected  string
	}{{
		name: "score and reasoning",
		judgement: &judge.Judgement{
			Score:     8.5,
			Reasoning: "Good output with minor issues",
		},
		expected: "Score: 8.5/10 - Good output with minor issues",
	}, {
		name: "perfect score no reasoning",
		judgement: &judge.Judgement{
			Score: 10.0,
		},
		expected: "Score: 10.0/10",
	}, {
		name: "score with suggestions",
		judgement: &judge.Judgement{
			Score: 7.5,
			Suggestions: []string{
				"Add more detail",
				"Be more specific",
			},
		},
		expected: "Score: 7.5/10\n  Suggestion: Add more detail\n  Suggestion: Be more specific",
	}, {
		name: "complete judgement",
		judgement: &judge.Judgement{
			Score:     6.0,
			Reasoning: "Output lacks detail",
			Suggestions: []string{
				"Include specific examples",
			},
		},
		expected: "Score: 6.0/10 - Output lacks detail\n  Suggestion: Include specific examples",
	}, {
		name: "zero score",
		judgement: &judge.Judgement{
			Score:     0.0,
			Reasoning: "Completely incorrect output",
		},
		expected: "Score: 0.0/10 - Completely incorrect output",
	}, {
		name: "empty suggestions slice",
		judgement: &judge.Judgement{
			Score:       9.0,
			Reasoning:   "Nearly perfect",
			Suggestions: []string{},
		},
		expected: "Score: 9.0/10 - Nearly perfect",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.judgement.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request *judge.Request
		wantErr bool
	}{{
		name: "valid accuracy request",
		request: &judge.Request{
			Mode:      judge.AccuracyMode,
			Output:    "4",
			Expected:  "4",
			Criterion: "matches the expected output",
		},
	}, {
		name: "valid criteria request",
		request: &judge.Request{
			Mode:      judge.CriteriaMode,
			Output:    "Hello world",
			Criterion: "is a friendly greeting",
		},
	}, {
		name: "accuracy without expected",
		request: &judge.Request{
			Mode:      judge.AccuracyMode,
			Output:    "4",
			Criterion: "matches the expected output",
		},
		wantErr: true,
	}, {
		name: "accuracy without output",
		request: &judge.Request{
			Mode:      judge.AccuracyMode,
			Expected:  "4",
			Criterion: "matches the expected output",
		},
		wantErr: true,
	}, {
		name: "accuracy without criterion",
		request: &judge.Request{
			Mode:     judge.AccuracyMode,
			Output:   "4",
			Expected: "4",
		},
		wantErr: true,
	}, {
		name: "criteria with expected",
		request: &judge.Request{
			Mode:      judge.CriteriaMode,
			Output:    "Hello",
			Expected:  "Hi",
			Criterion: "is a greeting",
		},
		wantErr: true,
	}, {
		name: "criteria without criterion",
		request: &judge.Request{
			Mode:   judge.CriteriaMode,
			Output: "Hello",
		},
		wantErr: true,
	}, {
		name: "unknown mode",
		request: &judge.Request{
			Mode:      "benchmark",
			Output:    "a",
			Criterion: "b",
		},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.request.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
