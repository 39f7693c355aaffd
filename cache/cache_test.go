/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aitestagent/aitestagent/judge"
)

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := New(t.TempDir() + "/cache")
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	key := Key{
		Output:   "Paris",
		Criteria: "matches the expected answer",
		Expected: "Paris",
		Model:    "gpt-4o-mini",
	}
	judgement := &judge.Judgement{
		Mode:      judge.AccuracyMode,
		Score:     10,
		Reasoning: "exact match",
	}

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("Get() on empty cache = hit, want miss")
	}

	c.Set(ctx, key, judgement)

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("Get() after Set() = miss, want hit")
	}
	if diff := cmp.Diff(judgement, got); diff != "" {
		t.Errorf("Get() (-want, +got):\n%s", diff)
	}

	// A different component is a different entry.
	other := key
	other.Expected = "London"
	if _, ok := c.Get(ctx, other); ok {
		t.Error("Get() with different expected = hit, want miss")
	}
}

func TestCacheSeedsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	if _, err := New(dir); err != nil {
		t.Fatalf("New() = %v", err)
	}

	for _, name := range []string{"README.md", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing seeded file %s: %v", name, err)
		}
	}
	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if string(gitignore) != "*\n" {
		t.Errorf(".gitignore = %q, want %q", gitignore, "*\n")
	}
}

func TestCacheCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c, err := New(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	key := Key{Output: "x", Criteria: "y", Model: "gpt-4o-mini"}
	if err := os.WriteFile(c.path(key), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get(ctx, key); ok {
		t.Error("Get() on corrupt entry = hit, want miss")
	}
	// The corrupt file is removed on read.
	if _, err := os.Stat(c.path(key)); !os.IsNotExist(err) {
		t.Errorf("corrupt entry still present: %v", err)
	}
}

func TestCacheClearAndStats(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := New(dir)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	judgement := &judge.Judgement{Mode: judge.CriteriaMode, Score: 8}
	c.Set(ctx, Key{Output: "a", Criteria: "c", Model: "m"}, judgement)
	c.Set(ctx, Key{Output: "b", Criteria: "c", Model: "m"}, judgement)

	stats, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats() = %v", err)
	}
	if stats.Entries != 2 {
		t.Errorf("Stats().Entries = %d, want 2", stats.Entries)
	}
	if stats.SizeBytes == 0 {
		t.Error("Stats().SizeBytes = 0, want > 0")
	}

	removed, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear() = %v", err)
	}
	if removed != 2 {
		t.Errorf("Clear() = %d, want 2", removed)
	}

	stats, err = c.Stats()
	if err != nil {
		t.Fatalf("Stats() = %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("Stats().Entries after Clear() = %d, want 0", stats.Entries)
	}

	// Clearing never touches the seeded files.
	if _, err := os.Stat(filepath.Join(dir, "README.md")); err != nil {
		t.Errorf("README.md removed by Clear(): %v", err)
	}
}

func TestSanitizeModel(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{{
		model: "gpt-4o-mini",
		want:  "gpt-4o-mini",
	}, {
		model: "claude-sonnet-4-5",
		want:  "claude-sonnet-4-5",
	}, {
		model: "org/model:latest",
		want:  "org-model-latest",
	}, {
		model: "gemini 2.5 flash",
		want:  "gemini-2.5-flash",
	}}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := sanitizeModel(tt.model); got != tt.want {
				t.Errorf("sanitizeModel(%q) = %q, want %q", tt.model, got, tt.want)
			}
		})
	}
}
