/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package aitest

// Option adjusts a single evaluation.
type Option func(*callOptions)

type callOptions struct {
	expected     string
	criteria     string
	model        string
	threshold    float64
	thresholdSet bool
}

// WithExpected supplies a reference answer, switching the evaluation to
// accuracy mode.
func WithExpected(expected string) Option {
	return func(o *callOptions) { o.expected = expected }
}

// WithCriteria supplies the evaluation criterion.
func WithCriteria(criteria string) Option {
	return func(o *callOptions) { o.criteria = criteria }
}

// WithThreshold overrides the passing threshold for this evaluation.
func WithThreshold(threshold float64) Option {
	return func(o *callOptions) {
		o.threshold = threshold
		o.thresholdSet = true
	}
}

// WithModel overrides the judge model for this evaluation.
func WithModel(model string) Option {
	return func(o *callOptions) { o.model = model }
}

func buildCallOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
