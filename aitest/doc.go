/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package aitest evaluates free-form program output with an LLM judge and
// turns the judgement into a pass or fail verdict.
//
// # Usage
//
// The package-level functions share one agent configured from the
// environment:
//
//	result, err := aitest.Accuracy(ctx, got, "Paris")
//	if err != nil {
//		return err
//	}
//	if !result.Passed {
//		log.Fatalf("output rejected: %s", result.Reasoning)
//	}
//
// Construct an Agent directly to control the judge, cache, and
// configuration, for example to inject a fake judge in tests:
//
//	agent, err := aitest.NewAgent(ctx, aitest.WithJudge(fake))
//
// # Verdicts
//
// Judges score on a 0 to 10 scale. An evaluation passes exactly when its
// score reaches the threshold, 7.0 unless overridden by AITEST_THRESHOLD
// or WithThreshold.
package aitest
