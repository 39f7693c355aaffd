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
)

// Mode specifies the type of judgment to perform.
type Mode string

const (
	// AccuracyMode evaluates an output against an expected reference answer.
	AccuracyMode Mode = "accuracy"
	// CriteriaMode evaluates a single output against a criterion without a reference.
	CriteriaMode Mode = "criteria"
)

// Request contains the context for a judgment.
type Request struct {
	// Mode specifies the judgment mode.
	Mode Mode `json:"mode"`

	// Output is the text to evaluate.
	Output string `json:"output"`

	// Expected is the reference answer to compare against. Accuracy mode only.
	Expected string `json:"expected,omitempty"`

	// Criterion specifies the evaluation criterion.
	Criterion string `json:"criterion"`
}

// Validate checks that the request is complete for its mode.
func (r *Request) Validate() error {
	switch r.Mode {
	case AccuracyMode:
		if r.Output == "" {
			return errors.New("output is required")
		}
		if r.Expected == "" {
			return errors.New("expected is required for accuracy mode")
		}
		if r.Criterion == "" {
			return errors.New("criterion is required")
		}
	case CriteriaMode:
		if r.Output == "" {
			return errors.New("output is required")
		}
		if r.Expected != "" {
			return errors.New("expected must not be provided for criteria mode")
		}
		if r.Criterion == "" {
			return errors.New("criterion is required for criteria mode")
		}
	default:
		return fmt.Errorf("unsupported mode: %q", r.Mode)
	}
	return nil
}

// Judgement contains the judgment result.
type Judgement struct {
	// Mode is the judgment mode used.
	Mode Mode `json:"mode"`

	// Score is the primary judgment metric from 0.0 (awful) to 10.0 (ideal).
	Score float64 `json:"score"`

	// Reasoning explains the judgment and score.
	Reasoning string `json:"reasoning"`

	// Suggestions provides improvement recommendations. May be empty for perfect scores.
	Suggestions []string `json:"suggestions"`
}

// String returns a formatted representation of the judgment.
func (j *Judgement) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %.1f/10", j.Score))
	if j.Reasoning != "" {
		sb.WriteString(fmt.Sprintf(" - %s", j.Reasoning))
	}
	sb.WriteString("\n")

	for _, suggestion := range j.Suggestions {
		sb.WriteString(fmt.Sprintf("  Suggestion: %s\n", suggestion))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// validateScore checks that a parsed score is within the judging scale.
func validateScore(score float64) error {
	if score < 0 || score > 10 {
		return fmt.Errorf("score %.2f is out of range [0, 10]", score)
	}
	return nil
}

// Interface defines the contract for judge implementations.
type Interface interface {
	// Judge evaluates a request and returns a scored judgement.
	Judge(ctx context.Context, request *Request) (*Judgement, error)
}
