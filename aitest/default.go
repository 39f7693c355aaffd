/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package aitest

import (
	"context"
	"sync"
)

var (
	defaultOnce  sync.Once
	defaultAgent *Agent
	defaultErr   error
)

func getDefaultAgent(ctx context.Context) (*Agent, error) {
	defaultOnce.Do(func() {
		defaultAgent, defaultErr = NewAgent(ctx)
	})
	return defaultAgent, defaultErr
}

// Test evaluates output with the shared environment-configured agent.
func Test(ctx context.Context, output string, opts ...Option) (*TestResult, error) {
	a, err := getDefaultAgent(ctx)
	if err != nil {
		return nil, err
	}
	return a.Test(ctx, output, opts...)
}

// Accuracy evaluates output against an expected answer with the shared
// agent.
func Accuracy(ctx context.Context, output, expected string, opts ...Option) (*TestResult, error) {
	a, err := getDefaultAgent(ctx)
	if err != nil {
		return nil, err
	}
	return a.Accuracy(ctx, output, expected, opts...)
}

// Criteria evaluates output against a criterion with the shared agent.
func Criteria(ctx context.Context, output, criteria string, opts ...Option) (*TestResult, error) {
	a, err := getDefaultAgent(ctx)
	if err != nil {
		return nil, err
	}
	return a.Criteria(ctx, output, criteria, opts...)
}
