/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{{
		name: "bare json",
		text: `{"score": 9}`,
		want: `{"score": 9}`,
	}, {
		name: "json fence",
		text: "Here is the result:\n```json\n{\"score\": 9}\n```\nDone.",
		want: `{"score": 9}`,
	}, {
		name: "anonymous fence",
		text: "```\n{\"score\": 9}\n```",
		want: `{"score": 9}`,
	}, {
		name: "surrounding prose",
		text: `The judgement is {"score": 9, "reasoning": "ok"} as requested.`,
		want: `{"score": 9, "reasoning": "ok"}`,
	}, {
		name: "leading and trailing whitespace",
		text: "  \n{\"score\": 9}\n  ",
		want: `{"score": 9}`,
	}, {
		name: "no json at all",
		text: "nothing here",
		want: "nothing here",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.text); got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	type verdict struct {
		Score     float64  `json:"score"`
		Reasoning string   `json:"reasoning"`
		Tips      []string `json:"tips"`
	}

	got, err := Extract[verdict]("```json\n{\"score\": 8.5, \"reasoning\": \"close\", \"tips\": [\"a\", \"b\"]}\n```")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := verdict{Score: 8.5, Reasoning: "close", Tips: []string{"a", "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Extract[verdict]("not json"); err == nil {
		t.Error("Extract() with non-JSON input expected error, got nil")
	}
}
