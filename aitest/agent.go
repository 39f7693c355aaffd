/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package aitest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/aitestagent/aitestagent/cache"
	"github.com/aitestagent/aitestagent/judge"
)

// Agent evaluates outputs with an LLM judge. It is safe for concurrent use.
type Agent struct {
	cfg       Config
	configSet bool
	cache     *cache.Cache

	newJudge func(ctx context.Context, model string) (judge.Interface, error)

	mu     sync.Mutex
	judges map[string]judge.Interface
}

// AgentOption configures an Agent.
type AgentOption func(*Agent)

// WithConfig supplies the configuration; the environment is not consulted.
func WithConfig(cfg Config) AgentOption {
	return func(a *Agent) {
		a.cfg = cfg
		a.configSet = true
	}
}

// WithJudge injects a judge used for every evaluation regardless of model.
// Intended for tests and custom backends.
func WithJudge(j judge.Interface) AgentOption {
	return func(a *Agent) {
		a.newJudge = func(context.Context, string) (judge.Interface, error) {
			return j, nil
		}
	}
}

// WithJudgeFactory injects the judge constructor. The default dispatches on
// the model name.
func WithJudgeFactory(f func(ctx context.Context, model string) (judge.Interface, error)) AgentOption {
	return func(a *Agent) { a.newJudge = f }
}

// WithCache injects the judgement cache.
func WithCache(c *cache.Cache) AgentOption {
	return func(a *Agent) { a.cache = c }
}

// NewAgent builds an Agent. Without options the configuration comes from
// the environment and the cache from Config.CacheDir.
func NewAgent(ctx context.Context, opts ...AgentOption) (*Agent, error) {
	a := &Agent{
		newJudge: func(ctx context.Context, model string) (judge.Interface, error) {
			return judge.New(ctx, model)
		},
		judges: map[string]judge.Interface{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if !a.configSet {
		cfg, err := LoadConfig(ctx)
		if err != nil {
			return nil, err
		}
		a.cfg = cfg
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	if a.cache == nil && a.cfg.CacheEnabled {
		c, err := cache.New(a.cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("opening cache: %w", err)
		}
		a.cache = c
	}
	return a, nil
}

// Config returns the agent's resolved configuration.
func (a *Agent) Config() Config {
	return a.cfg
}

// Test evaluates output. With an expected answer it judges accuracy against
// it; otherwise it judges the output against the criterion alone, falling
// back to a general correctness criterion when none is given.
func (a *Agent) Test(ctx context.Context, output string, opts ...Option) (*TestResult, error) {
	return a.evaluate(ctx, output, buildCallOptions(opts))
}

// Accuracy evaluates output against an expected reference answer.
func (a *Agent) Accuracy(ctx context.Context, output, expected string, opts ...Option) (*TestResult, error) {
	o := buildCallOptions(opts)
	o.expected = expected
	return a.evaluate(ctx, output, o)
}

// Criteria evaluates output against a criterion with no reference answer.
func (a *Agent) Criteria(ctx context.Context, output, criteria string, opts ...Option) (*TestResult, error) {
	o := buildCallOptions(opts)
	o.criteria = criteria
	o.expected = ""
	return a.evaluate(ctx, output, o)
}

func (a *Agent) evaluate(ctx context.Context, output string, o callOptions) (*TestResult, error) {
	if output == "" {
		return nil, fmt.Errorf("output must not be empty")
	}

	threshold := a.cfg.Threshold
	if o.thresholdSet {
		threshold = o.threshold
	}
	if threshold < 0 || threshold > 10 {
		return nil, fmt.Errorf("threshold %.1f out of range [0, 10]", threshold)
	}

	model := o.model
	if model == "" {
		model = a.cfg.EffectiveModel()
	}
	if model == "" {
		model = judge.DefaultModel
	}

	criterion := o.criteria
	if criterion == "" {
		criterion = judge.DefaultCriterion
	}

	req := &judge.Request{
		Mode:      judge.CriteriaMode,
		Output:    output,
		Criterion: criterion,
	}
	if o.expected != "" {
		req.Mode = judge.AccuracyMode
		req.Expected = o.expected
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := clog.FromContext(ctx).With(
		"mode", req.Mode,
		"model", model,
	)

	key := cache.Key{
		Output:   output,
		Criteria: criterion,
		Expected: o.expected,
		Model:    model,
	}

	start := time.Now()
	judgement, hit := a.lookup(ctx, key)
	if hit {
		log.Debug("judgement served from cache")
	} else {
		j, err := a.judgeFor(ctx, model)
		if err != nil {
			return nil, err
		}
		judgement, err = j.Judge(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("judging output: %w", err)
		}
		a.store(ctx, key, judgement)
	}

	stop := time.Now()
	result := &TestResult{
		Passed:      judgement.Score >= threshold,
		Score:       judgement.Score,
		Reasoning:   judgement.Reasoning,
		Suggestions: judgement.Suggestions,
		Output:      output,
		Expected:    o.expected,
		Criteria:    criterion,
		Model:       model,
		Threshold:   threshold,
		CacheHit:    hit,
		Start:       start,
		Stop:        stop,
		Duration:    stop.Sub(start),
	}
	log.With(
		"score", result.Score,
		"passed", result.Passed,
		"cache_hit", result.CacheHit,
	).Info("evaluation complete")
	return result, nil
}

func (a *Agent) lookup(ctx context.Context, key cache.Key) (*judge.Judgement, bool) {
	if a.cache == nil {
		return nil, false
	}
	return a.cache.Get(ctx, key)
}

func (a *Agent) store(ctx context.Context, key cache.Key, judgement *judge.Judgement) {
	if a.cache == nil {
		return
	}
	a.cache.Set(ctx, key, judgement)
}

// judgeFor returns the judge for a model, constructing it once per model.
func (a *Agent) judgeFor(ctx context.Context, model string) (judge.Interface, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if j, ok := a.judges[model]; ok {
		return j, nil
	}
	j, err := a.newJudge(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("building judge for %q: %w", model, err)
	}
	a.judges[model] = j
	return j, nil
}
