/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"

	"github.com/aitestagent/aitestagent/prompt"
)

// accuracyPrompt is the prompt for accuracy mode judgment.
var accuracyPrompt = prompt.MustNew(`<task>
You are evaluating an output against an expected reference answer.
Score the output based on the specific criterion provided.
</task>

{{expected_answer}}

{{actual_output}}

{{criterion}}

<instructions>
1. Compare the actual output to the expected answer
2. Evaluate specifically for the given criterion
3. Provide a score from 0.0 to 10.0 using this scoring rubric:

SCORING RUBRIC:
- Score 10.0 (Perfect): Output achieves the same quality and effectiveness as the expected answer, or exceeds it while remaining appropriate. Minor word order, synonym usage, or stylistic variations that do not affect meaning should score 10.0, not be penalized. Suggestions MUST be an empty array.
- Score 7.5-9.9 (High Quality): Output meets the criterion well with minor variations that prevent perfection. Provide the specific minor improvements that justify the deduction.
- Score 5.0-7.4 (Adequate): Output partially meets the criterion with notable gaps or issues. Balance strengths and weaknesses and provide improvements addressing the gaps.
- Score 2.5-4.9 (Poor): Output has significant problems but contains some correct elements. Provide multiple specific improvements addressing the major problems.
- Score 0.0-2.4 (Failing): Output fails to meet basic requirements or contradicts the expected answer. Provide comprehensive improvements addressing the fundamental failures.

4. Explain your reasoning and provide suggestions following the guidelines above
</instructions>

<output_format>
Return your judgment as a JSON object with this structure:
{
  "mode": "accuracy",
  "score": 0.0-10.0,
  "reasoning": "explanation of the score for this criterion",
  "suggestions": ["improvement1", "improvement2", ...]
}

IMPORTANT: Always include "mode": "accuracy" in your response.

Note on suggestions:
- Focus on specific, missing elements rather than general advice
- Each suggestion should address a distinct aspect of improvement
</output_format>

Respond with only the JSON object, no additional text.`)

// criteriaPrompt is the prompt for criteria mode judgment.
var criteriaPrompt = prompt.MustNew(`<task>
You are evaluating a single output against an evaluation criterion.
There is no reference answer; judge the output on its own merits.
</task>

{{actual_output}}

{{criterion}}

<instructions>
1. Evaluate the output SOLELY based on the given criterion - ignore all other qualities
2. Assess how well the output meets the specific criterion requirements
3. Provide a score from 0.0 to 10.0 using this scoring rubric:

SCORING RUBRIC:
- Score 10.0 (Perfect): Output fully satisfies all criterion requirements with no meaningful gaps. Suggestions MUST be an empty array.
- Score 7.5-9.9 (High Quality): Output addresses the criterion effectively with small gaps or minor presentation issues. Provide the specific minor improvements that justify the deduction.
- Score 5.0-7.4 (Adequate): Output addresses basic criterion requirements but misses important elements. Provide improvements addressing the gaps.
- Score 2.5-4.9 (Poor): Output shows some understanding of the criterion but fails in major ways. Provide multiple specific improvements.
- Score 0.0-2.4 (Failing): Output completely ignores the criterion or actively contradicts it. Provide comprehensive improvements.

4. Explain your reasoning and provide suggestions following the guidelines above
</instructions>

<output_format>
Return your judgment as a JSON object with this structure:
{
  "mode": "criteria",
  "score": 0.0-10.0,
  "reasoning": "explanation of how well the output meets the criterion",
  "suggestions": ["improvement1", "improvement2", ...]
}

IMPORTANT: Always include "mode": "criteria" in your response.

Focus suggestions on how to better meet the criterion requirements.
</output_format>

Respond with only the JSON object, no additional text.`)

// promptFor returns the template for the request's mode.
func promptFor(mode Mode) (*prompt.Template, error) {
	switch mode {
	case AccuracyMode:
		return accuracyPrompt, nil
	case CriteriaMode:
		return criteriaPrompt, nil
	default:
		return nil, fmt.Errorf("unsupported mode: %q", mode)
	}
}

// Bind implements prompt.Bindable for Request.
func (r *Request) Bind(tmpl *prompt.Template) (*prompt.Template, error) {
	var err error

	switch r.Mode {
	case AccuracyMode:
		if tmpl, err = tmpl.BindSection("expected_answer", "expected_answer", r.Expected); err != nil {
			return nil, err
		}
		if tmpl, err = tmpl.BindSection("actual_output", "actual_output", r.Output); err != nil {
			return nil, err
		}

	case CriteriaMode:
		if tmpl, err = tmpl.BindSection("actual_output", "actual_output", r.Output); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown judgment mode: %s", r.Mode)
	}

	return tmpl.BindSection("criterion", "criterion", r.Criterion)
}

// buildPrompt binds the request into the template for its mode and builds
// the final prompt string.
func buildPrompt(r *Request) (string, error) {
	tmpl, err := promptFor(r.Mode)
	if err != nil {
		return "", err
	}
	bound, err := r.Bind(tmpl)
	if err != nil {
		return "", fmt.Errorf("binding request to prompt: %w", err)
	}
	return bound.Build()
}
