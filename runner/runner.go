/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package runner executes suites against a judge with bounded parallelism.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aitestagent/aitestagent/aitest"
	"github.com/aitestagent/aitestagent/suite"
)

// Outcome classifies how a case ended.
type Outcome string

const (
	// Passed means the judgement score reached the threshold.
	Passed Outcome = "passed"
	// Failed means the judgement score fell below the threshold.
	Failed Outcome = "failed"
	// Skipped means the case was not judged.
	Skipped Outcome = "skipped"
	// Errored means judging failed.
	Errored Outcome = "errored"
)

// errAborted cancels the errgroup once the failure budget is spent.
var errAborted = errors.New("run aborted")

// CaseResult is the outcome of one case.
type CaseResult struct {
	Suite   string
	Case    string
	Outcome Outcome

	// Result is set for passed and failed cases.
	Result *aitest.TestResult

	// Err is set for errored cases.
	Err error

	// SkipReason is set for skipped cases.
	SkipReason string

	Start    time.Time
	Duration time.Duration
}

// Summary aggregates a whole run.
type Summary struct {
	RunID    string
	Results  []CaseResult
	Duration time.Duration
}

// Counts tallies results per outcome.
func (s *Summary) Counts() map[Outcome]int {
	counts := map[Outcome]int{}
	for _, r := range s.Results {
		counts[r.Outcome]++
	}
	return counts
}

// OK reports whether nothing failed or errored.
func (s *Summary) OK() bool {
	for _, r := range s.Results {
		if r.Outcome == Failed || r.Outcome == Errored {
			return false
		}
	}
	return true
}

// Runner executes suites.
type Runner struct {
	agent    *aitest.Agent
	workers  int
	failFast bool
	maxFail  int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers bounds parallelism. Zero means one worker per CPU.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) { r.workers = n }
}

// WithFailFast stops the run after the first failure.
func WithFailFast() RunnerOption {
	return func(r *Runner) {
		r.failFast = true
		r.maxFail = 1
	}
}

// WithMaxFail stops the run once n cases have failed or errored. Zero
// means no limit.
func WithMaxFail(n int) RunnerOption {
	return func(r *Runner) { r.maxFail = n }
}

// New builds a Runner around an agent.
func New(agent *aitest.Agent, opts ...RunnerOption) *Runner {
	r := &Runner{agent: agent}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers == 0 {
		r.workers = r.agent.Config().Workers
	}
	if r.workers == 0 {
		r.workers = runtime.NumCPU()
	}
	return r
}

type workItem struct {
	suite *suite.Suite
	c     suite.Case
	index int
}

// Run judges every case of every suite and returns results in input order.
// Case failures do not produce an error; only infrastructure problems do.
func (r *Runner) Run(ctx context.Context, suites []*suite.Suite) (*Summary, error) {
	runID := uuid.NewString()
	log := clog.FromContext(ctx).With("run_id", runID)
	ctx = clog.WithLogger(ctx, log)

	var items []workItem
	for _, s := range suites {
		for _, c := range s.Cases {
			items = append(items, workItem{suite: s, c: c, index: len(items)})
		}
	}

	log.With("suites", len(suites), "cases", len(items), "workers", r.workers).
		Info("starting run")
	runsTotal.Inc()

	results := make([]CaseResult, len(items))
	var failures atomic.Int64
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for _, item := range items {
		eg.Go(func() error {
			if egCtx.Err() != nil {
				results[item.index] = CaseResult{
					Suite:      item.suite.Name,
					Case:       item.c.Name,
					Outcome:    Skipped,
					SkipReason: "run aborted",
					Start:      time.Now(),
				}
				casesTotal.WithLabelValues(string(Skipped)).Inc()
				return nil
			}
			res := r.runCase(egCtx, item.suite, item.c)
			results[item.index] = res
			casesTotal.WithLabelValues(string(res.Outcome)).Inc()
			if res.Outcome == Failed || res.Outcome == Errored {
				if n := failures.Add(1); r.maxFail > 0 && n >= int64(r.maxFail) {
					return errAborted
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil && !errors.Is(err, errAborted) {
		return nil, fmt.Errorf("running suites: %w", err)
	}

	summary := &Summary{
		RunID:    runID,
		Results:  results,
		Duration: time.Since(start),
	}
	counts := summary.Counts()
	log.With(
		"passed", counts[Passed],
		"failed", counts[Failed],
		"skipped", counts[Skipped],
		"errored", counts[Errored],
		"duration", summary.Duration,
	).Info("run complete")
	return summary, nil
}

func (r *Runner) runCase(ctx context.Context, s *suite.Suite, c suite.Case) (res CaseResult) {
	res = CaseResult{
		Suite: s.Name,
		Case:  c.Name,
		Start: time.Now(),
	}
	// Named return so the defer stamps the duration on every exit path.
	defer func() {
		res.Duration = time.Since(res.Start)
	}()

	if c.Skip {
		res.Outcome = Skipped
		res.SkipReason = c.SkipReason
		return res
	}

	opts := []aitest.Option{
		aitest.WithThreshold(s.CaseThreshold(c, r.agent.Config().Threshold)),
	}
	if c.Expected != "" {
		opts = append(opts, aitest.WithExpected(c.Expected))
	}
	if c.Criteria != "" {
		opts = append(opts, aitest.WithCriteria(c.Criteria))
	}
	if s.Model != "" {
		opts = append(opts, aitest.WithModel(s.Model))
	}

	result, err := r.agent.Test(ctx, c.Output, opts...)
	if err != nil {
		res.Outcome = Errored
		res.Err = err
		clog.FromContext(ctx).With("suite", s.Name, "case", c.Name).
			Errorf("case errored: %v", err)
		return res
	}

	res.Result = result
	if result.CacheHit {
		cacheHitsTotal.Inc()
	}
	if result.Passed {
		res.Outcome = Passed
	} else {
		res.Outcome = Failed
	}
	return res
}
