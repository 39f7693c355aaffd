/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package judge provides LLM-based evaluation of model outputs against an
// expected answer or a free-text criterion.
//
// # Overview
//
// The judge package provides:
//   - A common Interface for different LLM judge implementations
//   - Backends for OpenAI chat models, Claude, and Google Gemini
//   - Model-prefix dispatch via New (claude-* and gemini-* route to their
//     SDKs, everything else is treated as an OpenAI chat model)
//   - A Registry for installing custom judges by name
//   - Built-in criteria for code, API-response, and safety judging
//
// # Usage
//
//	j, err := judge.New(ctx, "gpt-4o-mini")
//	if err != nil {
//		return err
//	}
//	judgement, err := j.Judge(ctx, &judge.Request{
//		Mode:      judge.CriteriaMode,
//		Output:    "Hello, how can I help you?",
//		Criterion: "is a friendly greeting",
//	})
//
// # Scoring
//
// Judges score outputs on a scale of 0.0 to 10.0, with 10.0 being perfect.
// Whether a judgement passes is decided by the caller comparing the score
// against a threshold; the judge itself only scores.
//
// # Thread safety
//
// All judge implementations are stateless after construction and safe for
// concurrent use.
package judge
