/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package suite loads declarative evaluation suites from YAML files.
package suite

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aitestagent/aitestagent/prompt"
)

// Case is one evaluation in a suite.
type Case struct {
	// Name identifies the case within its suite.
	Name string `yaml:"name"`

	// Output is the text to evaluate. It may reference suite vars and
	// params as {{name}} placeholders.
	Output string `yaml:"output"`

	// Expected switches the case to accuracy mode when set.
	Expected string `yaml:"expected,omitempty"`

	// Criteria is the evaluation criterion.
	Criteria string `yaml:"criteria,omitempty"`

	// Threshold overrides the suite threshold for this case.
	Threshold *float64 `yaml:"threshold,omitempty"`

	// Skip marks the case as skipped without judging it.
	Skip       bool   `yaml:"skip,omitempty"`
	SkipReason string `yaml:"skip_reason,omitempty"`

	// Params expands the case once per entry, substituting each map into
	// the templated fields.
	Params []map[string]string `yaml:"params,omitempty"`
}

// Suite is a named collection of cases sharing vars and defaults.
type Suite struct {
	// Name identifies the suite. Defaults to the file basename.
	Name string `yaml:"name"`

	// Vars are substituted into every case's templated fields.
	Vars map[string]string `yaml:"vars,omitempty"`

	// Threshold is the suite-wide passing score. Zero means the global
	// default.
	Threshold *float64 `yaml:"threshold,omitempty"`

	// Model overrides the judge model for the whole suite.
	Model string `yaml:"model,omitempty"`

	Cases []Case `yaml:"cases"`

	// Path is the file the suite was loaded from. Not part of the YAML.
	Path string `yaml:"-"`
}

// Load reads and validates a suite file, expanding params into concrete
// cases.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes suite YAML. The path is recorded and used as a fallback
// name.
func Parse(data []byte, path string) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding suite %s: %w", path, err)
	}
	s.Path = path
	if s.Name == "" {
		s.Name = baseName(path)
	}
	expanded, err := s.expand()
	if err != nil {
		return nil, fmt.Errorf("suite %s: %w", s.Name, err)
	}
	s.Cases = expanded
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("suite %s: %w", s.Name, err)
	}
	return &s, nil
}

// expand resolves vars and params into literal cases. Each params entry
// becomes its own case named name[i].
func (s *Suite) expand() ([]Case, error) {
	var out []Case
	for _, c := range s.Cases {
		if len(c.Params) == 0 {
			resolved, err := c.substitute(s.Vars)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved)
			continue
		}
		for i, params := range c.Params {
			vars := make(map[string]string, len(s.Vars)+len(params))
			for k, v := range s.Vars {
				vars[k] = v
			}
			for k, v := range params {
				vars[k] = v
			}
			expanded := c
			expanded.Name = fmt.Sprintf("%s[%d]", c.Name, i)
			expanded.Params = nil
			resolved, err := expanded.substitute(vars)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved)
		}
	}
	return out, nil
}

func (c Case) substitute(vars map[string]string) (Case, error) {
	var err error
	if c.Output, err = prompt.Substitute(c.Output, vars); err != nil {
		return c, fmt.Errorf("case %s output: %w", c.Name, err)
	}
	if c.Expected, err = prompt.Substitute(c.Expected, vars); err != nil {
		return c, fmt.Errorf("case %s expected: %w", c.Name, err)
	}
	if c.Criteria, err = prompt.Substitute(c.Criteria, vars); err != nil {
		return c, fmt.Errorf("case %s criteria: %w", c.Name, err)
	}
	return c, nil
}

func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("no cases defined")
	}
	seen := make(map[string]bool, len(s.Cases))
	for _, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("case with no name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
		if c.Output == "" && !c.Skip {
			return fmt.Errorf("case %s has no output", c.Name)
		}
		if c.Threshold != nil && (*c.Threshold < 0 || *c.Threshold > 10) {
			return fmt.Errorf("case %s threshold %.1f out of range [0, 10]", c.Name, *c.Threshold)
		}
	}
	if s.Threshold != nil && (*s.Threshold < 0 || *s.Threshold > 10) {
		return fmt.Errorf("threshold %.1f out of range [0, 10]", *s.Threshold)
	}
	return nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CaseThreshold resolves the effective threshold for a case, preferring the
// case setting, then the suite, then the supplied default.
func (s *Suite) CaseThreshold(c Case, def float64) float64 {
	if c.Threshold != nil {
		return *c.Threshold
	}
	if s.Threshold != nil {
		return *s.Threshold
	}
	return def
}
