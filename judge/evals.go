/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"errors"
	"fmt"
)

// Validator checks a property of a judgement. Validators back the judge
// integration tests and let callers sanity-check custom Interface
// implementations.
type Validator func(*Judgement) error

// ValidScore validates that the judgement score is within the judging scale.
func ValidScore() Validator {
	return func(j *Judgement) error {
		if j == nil {
			return errors.New("judgement is nil")
		}
		return validateScore(j.Score)
	}
}

// HasReasoning validates that the judgement includes reasoning.
func HasReasoning() Validator {
	return func(j *Judgement) error {
		if j == nil {
			return errors.New("judgement is nil")
		}
		if j.Reasoning == "" {
			return errors.New("judgement has no reasoning")
		}
		return nil
	}
}

// CheckMode validates that the judgement mode matches the expected value.
func CheckMode(expected Mode) Validator {
	return func(j *Judgement) error {
		if j == nil {
			return errors.New("judgement is nil")
		}
		if j.Mode != expected {
			return fmt.Errorf("mode %s does not match expected %s", j.Mode, expected)
		}
		return nil
	}
}

// ScoreRange validates that the score falls within [minScore, maxScore].
// Useful for pinning down how a judge treats known-good and known-bad
// outputs.
func ScoreRange(minScore, maxScore float64) Validator {
	return func(j *Judgement) error {
		if j == nil {
			return errors.New("judgement is nil")
		}
		if j.Score < minScore || j.Score > maxScore {
			return fmt.Errorf("score %.2f is outside expected range [%.2f, %.2f]", j.Score, minScore, maxScore)
		}
		return nil
	}
}

// All combines validators, returning the first failure.
func All(validators ...Validator) Validator {
	return func(j *Judgement) error {
		for _, v := range validators {
			if err := v(j); err != nil {
				return err
			}
		}
		return nil
	}
}
