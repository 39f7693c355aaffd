/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cache persists judgements on disk so repeated evaluations of the
// same output do not pay for another model call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/aitestagent/aitestagent/judge"
)

// entriesSubdir separates cached entries from the seeded README and
// .gitignore so Clear can remove entries without touching them.
const entriesSubdir = "v"

// Key identifies a cached judgement. Two evaluations share an entry only
// when all four components match.
type Key struct {
	Output   string
	Criteria string
	Expected string
	Model    string
}

// Entry is the on-disk representation of a cached judgement.
type Entry struct {
	Model     string           `json:"model"`
	Criteria  string           `json:"criteria"`
	Expected  string           `json:"expected,omitempty"`
	Output    string           `json:"output"`
	Judgement *judge.Judgement `json:"judgement"`
	CachedAt  time.Time        `json:"cached_at"`
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries   int   `json:"entries"`
	SizeBytes int64 `json:"size_bytes"`
}

// Cache is a directory-backed judgement store.
type Cache struct {
	dir string
}

// New opens a cache rooted at dir, creating it if needed. The root is
// seeded with a README and a .gitignore so an in-repo cache directory
// never gets committed by accident.
func New(dir string) (*Cache, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory must not be empty")
	}
	if err := os.MkdirAll(filepath.Join(dir, entriesSubdir), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	c := &Cache{dir: dir}
	c.seed()
	return c, nil
}

// Dir returns the cache root directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Get looks up a cached judgement. A missing, unreadable, or corrupt entry
// is a miss, never an error; the cache is advisory.
func (c *Cache) Get(ctx context.Context, key Key) (*judge.Judgement, bool) {
	path := c.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		clog.FromContext(ctx).With("path", path).Warnf("discarding corrupt cache entry: %v", err)
		_ = os.Remove(path)
		return nil, false
	}
	if entry.Judgement == nil {
		return nil, false
	}
	return entry.Judgement, true
}

// Set stores a judgement. Write failures are logged, not returned; a
// broken cache must not fail the evaluation it was meant to speed up.
func (c *Cache) Set(ctx context.Context, key Key, judgement *judge.Judgement) {
	entry := Entry{
		Model:     key.Model,
		Criteria:  key.Criteria,
		Expected:  key.Expected,
		Output:    key.Output,
		Judgement: judgement,
		CachedAt:  time.Now().UTC(),
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		clog.FromContext(ctx).Warnf("marshaling cache entry: %v", err)
		return
	}
	path := c.path(key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		clog.FromContext(ctx).With("path", path).Warnf("writing cache entry: %v", err)
	}
}

// Clear removes every cached entry and reports how many were deleted.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	paths, err := c.entryPaths()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			clog.FromContext(ctx).With("path", path).Warnf("removing cache entry: %v", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Stats reports the number of entries and their total size.
func (c *Cache) Stats() (Stats, error) {
	paths, err := c.entryPaths()
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Entries: len(paths)}
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil {
			stats.SizeBytes += info.Size()
		}
	}
	return stats, nil
}

func (c *Cache) entryPaths() ([]string, error) {
	pattern := filepath.Join(c.dir, entriesSubdir, "*.json")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("listing cache entries: %w", err)
	}
	return paths, nil
}

// path derives the entry filename from the key. Each component is hashed
// separately so a cache directory listing still shows which model produced
// each entry.
func (c *Cache) path(key Key) string {
	name := fmt.Sprintf("%s_%s_%s_%s.json",
		sanitizeModel(key.Model),
		componentHash(key.Output),
		componentHash(key.Criteria),
		componentHash(key.Expected),
	)
	return filepath.Join(c.dir, entriesSubdir, name)
}

// componentHash returns the first 16 hex characters of the component's
// SHA-256 digest.
func componentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return fmt.Sprintf("%x", sum)[:16]
}

// sanitizeModel maps a model name onto filename-safe characters.
func sanitizeModel(model string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, model)
}

const readmeText = `# aitestagent cache

This directory holds cached judgements from aitestagent. Entries live under
v/ and are keyed by model, output, criteria, and expected answer. It is safe
to delete this directory at any time; entries will be recreated on demand.
`

// seed writes the README and .gitignore if they are missing. Failures are
// ignored; the cache works without them.
func (c *Cache) seed() {
	readme := filepath.Join(c.dir, "README.md")
	if _, err := os.Stat(readme); os.IsNotExist(err) {
		_ = os.WriteFile(readme, []byte(readmeText), 0o644)
	}
	gitignore := filepath.Join(c.dir, ".gitignore")
	if _, err := os.Stat(gitignore); os.IsNotExist(err) {
		_ = os.WriteFile(gitignore, []byte("*\n"), 0o644)
	}
}
