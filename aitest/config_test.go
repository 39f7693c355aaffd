/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package aitest_test

import (
	"context"
	"os"
	"testing"

	"github.com/aitestagent/aitestagent/aitest"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"AITEST_MODEL", "OPENAI_MODEL_NAME", "AITEST_THRESHOLD",
		"AITEST_CACHE_DIR", "AITEST_CACHE", "AITEST_WORKERS",
	} {
		// t.Setenv registers the restore; the unset makes the variable
		// truly absent rather than empty.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := aitest.LoadConfig(context.Background())
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Threshold != 7.0 {
		t.Errorf("Threshold = %v, want 7.0", cfg.Threshold)
	}
	if cfg.CacheDir != ".aitestagent_cache" {
		t.Errorf("CacheDir = %q, want .aitestagent_cache", cfg.CacheDir)
	}
	if !cfg.CacheEnabled {
		t.Error("CacheEnabled = false, want true")
	}
	if cfg.EffectiveModel() != "" {
		t.Errorf("EffectiveModel() = %q, want empty", cfg.EffectiveModel())
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("AITEST_MODEL", "claude-sonnet-4-5")
	t.Setenv("OPENAI_MODEL_NAME", "gpt-4o")
	t.Setenv("AITEST_THRESHOLD", "8.5")
	t.Setenv("AITEST_WORKERS", "4")

	cfg, err := aitest.LoadConfig(context.Background())
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.EffectiveModel() != "claude-sonnet-4-5" {
		t.Errorf("EffectiveModel() = %q, want claude-sonnet-4-5", cfg.EffectiveModel())
	}
	if cfg.Threshold != 8.5 {
		t.Errorf("Threshold = %v, want 8.5", cfg.Threshold)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestFallbackModel(t *testing.T) {
	t.Setenv("AITEST_MODEL", "")
	t.Setenv("OPENAI_MODEL_NAME", "gpt-4o")

	cfg, err := aitest.LoadConfig(context.Background())
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.EffectiveModel() != "gpt-4o" {
		t.Errorf("EffectiveModel() = %q, want gpt-4o", cfg.EffectiveModel())
	}
}

func TestExplicitConfigIgnoresEnvironment(t *testing.T) {
	t.Setenv("AITEST_THRESHOLD", "not-a-number")

	if _, err := aitest.LoadConfig(context.Background()); err == nil {
		t.Fatal("LoadConfig() = nil error with malformed AITEST_THRESHOLD")
	}
	if _, err := aitest.NewAgent(context.Background()); err == nil {
		t.Error("NewAgent() without WithConfig = nil error, want environment error")
	}

	agent, err := aitest.NewAgent(context.Background(), aitest.WithConfig(aitest.Config{
		Threshold:    aitest.DefaultThreshold,
		CacheDir:     t.TempDir(),
		CacheEnabled: false,
	}))
	if err != nil {
		t.Fatalf("NewAgent(WithConfig) = %v, want the environment left unread", err)
	}
	if got := agent.Config().Threshold; got != aitest.DefaultThreshold {
		t.Errorf("Threshold = %v, want %v", got, aitest.DefaultThreshold)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     aitest.Config
		wantErr bool
	}{{
		name: "valid",
		cfg:  aitest.Config{Threshold: 7, Workers: 2},
	}, {
		name:    "threshold too high",
		cfg:     aitest.Config{Threshold: 10.5},
		wantErr: true,
	}, {
		name:    "negative threshold",
		cfg:     aitest.Config{Threshold: -1},
		wantErr: true,
	}, {
		name:    "negative workers",
		cfg:     aitest.Config{Threshold: 7, Workers: -1},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
