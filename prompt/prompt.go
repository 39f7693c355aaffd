/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// Template is a prompt template with {{name}} placeholders that must all be
// bound before the final string can be built. Bind operations return a new
// Template, leaving the receiver untouched, so a parsed template can be
// shared and bound concurrently.
type Template struct {
	text  string
	bound map[string]func() (string, error)
}

// New parses a template and records its placeholders. Placeholder names must
// start with a letter and contain only letters, digits, and underscores.
func New(text string) (*Template, error) {
	bound := make(map[string]func() (string, error))
	if err := walk(text, func(name string) error {
		if _, ok := bound[name]; !ok {
			bound[name] = nil
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &Template{text: text, bound: bound}, nil
}

// MustNew parses a template and panics on error. Intended for package-level
// template variables.
func MustNew(text string) *Template {
	t, err := New(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Placeholders returns the set of placeholder names found in the template.
func (t *Template) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(t.bound))
	for name := range t.bound {
		names[name] = struct{}{}
	}
	return names
}

// BindString binds a plain string value to a placeholder.
func (t *Template) BindString(name, value string) (*Template, error) {
	return t.bind(name, func() (string, error) { return value, nil })
}

// BindSection binds caller-supplied content to a placeholder wrapped in an
// XML-escaped <tag>...</tag> section. This is how untrusted text (model
// output, expected answers, criteria) is delimited inside prompts.
func (t *Template) BindSection(name, tag, content string) (*Template, error) {
	return t.bind(name, func() (string, error) {
		var sb strings.Builder
		sb.WriteString("<" + tag + ">")
		if err := xml.EscapeText(&sb, []byte(content)); err != nil {
			return "", fmt.Errorf("escaping %s section: %w", tag, err)
		}
		sb.WriteString("</" + tag + ">")
		return sb.String(), nil
	})
}

// BindJSON binds structured data to a placeholder as indented JSON.
func (t *Template) BindJSON(name string, data any) (*Template, error) {
	return t.bind(name, func() (string, error) {
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling %s binding: %w", name, err)
		}
		return string(b), nil
	})
}

func (t *Template) bind(name string, value func() (string, error)) (*Template, error) {
	existing, ok := t.bound[name]
	if !ok {
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	}
	if existing != nil {
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Template{text: t.text, bound: maps.Clone(t.bound)}
	next.bound[name] = value
	return next, nil
}

// Build assembles the final prompt. Every placeholder must have been bound.
func (t *Template) Build() (string, error) {
	values := make(map[string]string, len(t.bound))
	for name, fn := range t.bound {
		if fn == nil {
			return "", fmt.Errorf("unbound placeholder: %s", name)
		}
		val, err := fn()
		if err != nil {
			return "", err
		}
		values[name] = val
	}

	var sb strings.Builder
	rest := t.text
	for len(rest) > 0 {
		start := strings.Index(rest, "{{")
		if start == -1 {
			sb.WriteString(rest)
			break
		}
		sb.WriteString(rest[:start])
		end := strings.Index(rest[start:], "}}")
		if end == -1 {
			return "", fmt.Errorf("unclosed placeholder near %q", truncate(rest[start:], 20))
		}
		name := strings.TrimSpace(rest[start+2 : start+end])
		sb.WriteString(values[name])
		rest = rest[start+end+2:]
	}
	return sb.String(), nil
}

// walk scans text for placeholders and invokes visit for each one.
func walk(text string, visit func(name string) error) error {
	rest := text
	for len(rest) > 0 {
		start := strings.Index(rest, "{{")
		if start == -1 {
			return nil
		}
		end := strings.Index(rest[start:], "}}")
		if end == -1 {
			return fmt.Errorf("unclosed placeholder near %q", truncate(rest[start:], 20))
		}
		name := strings.TrimSpace(rest[start+2 : start+end])
		if !validName(name) {
			return fmt.Errorf("invalid placeholder name %q", name)
		}
		if err := visit(name); err != nil {
			return err
		}
		rest = rest[start+end+2:]
	}
	return nil
}

// validName reports whether s is a legal placeholder name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Bindable is implemented by request types that know how to bind their own
// fields into a template. Judge backends accept Bindable requests so the
// same templates serve every model provider.
type Bindable interface {
	Bind(*Template) (*Template, error)
}
