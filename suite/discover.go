/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks root and loads every suite file it finds, sorted by path.
// Suite files are named <something>_aitest.yaml or aitest_<something>.yaml,
// with .yml accepted too. A root naming a suite file directly loads just
// that file.
func Discover(root string) ([]*Suite, error) {
	paths, err := DiscoverPaths(root)
	if err != nil {
		return nil, err
	}
	suites := make([]*Suite, 0, len(paths))
	for _, path := range paths {
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// DiscoverPaths returns the suite file paths under root, sorted and
// de-duplicated.
func DiscoverPaths(root string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories hold caches and tool state, never
			// suites.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !IsSuiteFile(path) && path != root {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering suites under %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// IsSuiteFile reports whether the path follows the suite naming convention.
func IsSuiteFile(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".yaml" && ext != ".yml" {
		return false
	}
	stem := strings.TrimSuffix(base, ext)
	return strings.HasSuffix(stem, "_aitest") || strings.HasPrefix(stem, "aitest_")
}
