/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitestagent_runs_total",
		Help: "Number of suite runs started.",
	})

	casesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aitestagent_cases_total",
		Help: "Number of cases executed, by outcome.",
	}, []string{"outcome"})

	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitestagent_cache_hits_total",
		Help: "Number of judgements served from the cache.",
	})
)
