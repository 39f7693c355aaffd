/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import "fmt"

// Substitute replaces every {{name}} placeholder in text with its value from
// vars. Unlike Template, substitution is single-shot and strict: a
// placeholder with no matching variable is an error. Suite files use this to
// expand shared vars and parametrize entries into case fields.
func Substitute(text string, vars map[string]string) (string, error) {
	tmpl, err := New(text)
	if err != nil {
		return "", err
	}
	for name := range tmpl.Placeholders() {
		val, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("no value for placeholder %q", name)
		}
		if tmpl, err = tmpl.BindString(name, val); err != nil {
			return "", err
		}
	}
	return tmpl.Build()
}
