/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package aitest

import (
	"fmt"
	"strings"
	"time"
)

// TestResult is the outcome of a single evaluation. Passed is derived:
// it holds exactly when Score is at least Threshold.
type TestResult struct {
	Passed      bool     `json:"passed"`
	Score       float64  `json:"score"`
	Reasoning   string   `json:"reasoning"`
	Suggestions []string `json:"suggestions,omitempty"`

	Output    string  `json:"output"`
	Expected  string  `json:"expected,omitempty"`
	Criteria  string  `json:"criteria"`
	Model     string  `json:"model"`
	Threshold float64 `json:"threshold"`

	CacheHit bool          `json:"cache_hit"`
	Start    time.Time     `json:"start"`
	Stop     time.Time     `json:"stop"`
	Duration time.Duration `json:"duration"`
}

// String renders a human-readable one-or-more-line summary.
func (r *TestResult) String() string {
	var sb strings.Builder
	verdict := "FAIL"
	if r.Passed {
		verdict = "PASS"
	}
	fmt.Fprintf(&sb, "%s (%.1f/10, threshold %.1f)", verdict, r.Score, r.Threshold)
	if r.Reasoning != "" {
		fmt.Fprintf(&sb, ": %s", r.Reasoning)
	}
	for _, s := range r.Suggestions {
		fmt.Fprintf(&sb, "\n  Suggestion: %s", s)
	}
	return sb.String()
}
