/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package result extracts structured judgements from raw model output.
// Models asked for JSON frequently wrap it in markdown fences or surround it
// with prose, so extraction is lenient about everything except the JSON
// itself.
package result

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON returns the JSON payload of a model response. It prefers the
// body of the first ```json fence, falls back to stripping bare ``` fences,
// and finally to the substring between the first '{' and the last '}'.
func ExtractJSON(text string) string {
	if body, ok := fencedBlock(text, "```json"); ok {
		return body
	}
	if body, ok := fencedBlock(text, "```"); ok {
		return body
	}

	trimmed := strings.TrimSpace(text)
	if start := strings.IndexByte(trimmed, '{'); start >= 0 {
		if end := strings.LastIndexByte(trimmed, '}'); end > start {
			return trimmed[start : end+1]
		}
	}
	return trimmed
}

// fencedBlock returns the content between an opening fence line and the next
// closing ``` line.
func fencedBlock(text, open string) (string, bool) {
	var body []string
	inside := false
	for _, line := range strings.Split(text, "\n") {
		switch {
		case !inside && strings.TrimSpace(line) == open:
			inside = true
		case inside && strings.TrimSpace(line) == "```":
			return strings.TrimSpace(strings.Join(body, "\n")), true
		case inside:
			body = append(body, line)
		}
	}
	return "", false
}

// Extract parses the JSON payload of a model response into T.
func Extract[T any](text string) (T, error) {
	var out T
	payload := ExtractJSON(text)
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return out, fmt.Errorf("parsing model response as JSON: %w", err)
	}
	return out, nil
}
