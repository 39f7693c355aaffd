/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package aitest

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DefaultThreshold is the minimum score an output must reach to pass.
const DefaultThreshold = 7.0

// Config carries the environment-driven defaults for an Agent. Per-call
// options override these.
type Config struct {
	// Model is the judge model. When empty, FallbackModel and then the
	// judge package default apply.
	Model string `env:"AITEST_MODEL"`

	// FallbackModel mirrors the OPENAI_MODEL_NAME convention so existing
	// environments work without aitestagent-specific configuration.
	FallbackModel string `env:"OPENAI_MODEL_NAME"`

	// Threshold is the default passing score, on the 0 to 10 scale.
	Threshold float64 `env:"AITEST_THRESHOLD, default=7.0"`

	// CacheDir is where judgements are cached.
	CacheDir string `env:"AITEST_CACHE_DIR, default=.aitestagent_cache"`

	// CacheEnabled turns the judgement cache on or off.
	CacheEnabled bool `env:"AITEST_CACHE, default=true"`

	// Workers bounds suite-level parallelism. Zero means one worker per
	// CPU.
	Workers int `env:"AITEST_WORKERS, default=0"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 10 {
		return fmt.Errorf("threshold %.1f out of range [0, 10]", c.Threshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// EffectiveModel resolves the configured model, falling back through
// OPENAI_MODEL_NAME to the judge package default.
func (c Config) EffectiveModel() string {
	if c.Model != "" {
		return c.Model
	}
	return c.FallbackModel
}
