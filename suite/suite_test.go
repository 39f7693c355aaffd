/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	data := []byte(`
name: arithmetic
vars:
  subject: math
threshold: 8.0
cases:
  - name: addition
    output: "2 + 2 = 4"
    expected: "4"
    criteria: "states the right {{subject}} result"
  - name: subtraction
    output: "5 - 3 = 2"
    threshold: 6.0
  - name: flaky
    output: "unused"
    skip: true
    skip_reason: "upstream model regression"
`)

	s, err := Parse(data, "arithmetic_aitest.yaml")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}

	if s.Name != "arithmetic" {
		t.Errorf("Name = %q, want arithmetic", s.Name)
	}
	if len(s.Cases) != 3 {
		t.Fatalf("len(Cases) = %d, want 3", len(s.Cases))
	}
	if got := s.Cases[0].Criteria; got != "states the right math result" {
		t.Errorf("Criteria = %q, vars not substituted", got)
	}
	if got := s.CaseThreshold(s.Cases[0], 7.0); got != 8.0 {
		t.Errorf("CaseThreshold(addition) = %v, want suite threshold 8.0", got)
	}
	if got := s.CaseThreshold(s.Cases[1], 7.0); got != 6.0 {
		t.Errorf("CaseThreshold(subtraction) = %v, want case threshold 6.0", got)
	}
	if !s.Cases[2].Skip || s.Cases[2].SkipReason != "upstream model regression" {
		t.Errorf("skip case = %+v", s.Cases[2])
	}
}

func TestParseNameDefaultsToFile(t *testing.T) {
	data := []byte(`
cases:
  - name: only
    output: "hello"
`)
	s, err := Parse(data, filepath.Join("testsuites", "greetings_aitest.yaml"))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if s.Name != "greetings_aitest" {
		t.Errorf("Name = %q, want greetings_aitest", s.Name)
	}
	if got := s.CaseThreshold(s.Cases[0], 7.0); got != 7.0 {
		t.Errorf("CaseThreshold() = %v, want default 7.0", got)
	}
}

func TestParamsExpansion(t *testing.T) {
	data := []byte(`
name: capitals
vars:
  criteria_stub: names the capital
cases:
  - name: capital
    output: "The capital of {{country}} is {{city}}"
    expected: "{{city}}"
    criteria: "{{criteria_stub}} of {{country}}"
    params:
      - country: France
        city: Paris
      - country: Japan
        city: Tokyo
`)

	s, err := Parse(data, "capitals_aitest.yaml")
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}

	want := []Case{{
		Name:     "capital[0]",
		Output:   "The capital of France is Paris",
		Expected: "Paris",
		Criteria: "names the capital of France",
	}, {
		Name:     "capital[1]",
		Output:   "The capital of Japan is Tokyo",
		Expected: "Tokyo",
		Criteria: "names the capital of Japan",
	}}
	if diff := cmp.Diff(want, s.Cases); diff != "" {
		t.Errorf("Cases (-want, +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{{
		name: "no cases",
		data: "name: empty\n",
	}, {
		name: "unnamed case",
		data: "cases:\n  - output: x\n",
	}, {
		name: "duplicate case names",
		data: "cases:\n  - name: a\n    output: x\n  - name: a\n    output: y\n",
	}, {
		name: "case without output",
		data: "cases:\n  - name: a\n",
	}, {
		name: "threshold out of range",
		data: "threshold: 12\ncases:\n  - name: a\n    output: x\n",
	}, {
		name: "unknown field",
		data: "cases:\n  - name: a\n    output: x\n    expectation: y\n",
	}, {
		name: "unbound placeholder",
		data: "cases:\n  - name: a\n    output: \"{{missing}}\"\n",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), "bad_aitest.yaml"); err == nil {
				t.Error("Parse() = nil error, want error")
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	const minimal = "cases:\n  - name: only\n    output: hi\n"
	write("math_aitest.yaml", minimal)
	write("nested/aitest_api.yml", minimal)
	write("nested/notes.yaml", "not: a suite\n")
	write(".cache/hidden_aitest.yaml", minimal)
	write("readme.md", "docs")

	suites, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover() = %v", err)
	}

	var names []string
	for _, s := range suites {
		names = append(names, filepath.Base(s.Path))
	}
	want := []string{"math_aitest.yaml", "aitest_api.yml"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Discover() (-want, +got):\n%s", diff)
	}
}

func TestIsSuiteFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{{
		path: "foo_aitest.yaml",
		want: true,
	}, {
		path: "aitest_foo.yml",
		want: true,
	}, {
		path: "dir/bar_aitest.yml",
		want: true,
	}, {
		path: "aitest.yaml",
		want: false,
	}, {
		path: "foo_aitest.json",
		want: false,
	}, {
		path: "aitest_foo.yaml.bak",
		want: false,
	}}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsSuiteFile(tt.path); got != tt.want {
				t.Errorf("IsSuiteFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
