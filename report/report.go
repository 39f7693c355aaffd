/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders run summaries for terminal output.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aitestagent/aitestagent/runner"
)

// Options controls what a report includes.
type Options struct {
	// Durations lists the N slowest cases. Zero disables the listing.
	Durations int

	// DurationsMin hides cases faster than this from the durations
	// listing.
	DurationsMin time.Duration

	// Verbose includes reasoning and suggestions for failed cases.
	Verbose bool
}

// Write renders the summary to w.
func Write(w io.Writer, summary *runner.Summary, opts Options) error {
	if err := writeTable(w, summary); err != nil {
		return err
	}
	if opts.Verbose {
		writeFailureDetails(w, summary)
	}
	if opts.Durations > 0 {
		writeDurations(w, summary, opts)
	}
	fmt.Fprintf(w, "\n%s\n", Summary(summary))
	return nil
}

func writeTable(w io.Writer, summary *runner.Summary) error {
	table := newTable([]string{"Suite", "Case", "Outcome", "Score", "Duration"}, w)
	for _, res := range summary.Results {
		score := "-"
		if res.Result != nil {
			score = fmt.Sprintf("%.1f", res.Result.Score)
		}
		if err := table.Append([]string{
			res.Suite,
			res.Case,
			outcomeCell(res),
			score,
			FormatDuration(res.Duration),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func outcomeCell(res runner.CaseResult) string {
	switch res.Outcome {
	case runner.Passed:
		return "✅ passed"
	case runner.Failed:
		return "❌ failed"
	case runner.Errored:
		return "💥 errored"
	case runner.Skipped:
		if res.SkipReason != "" {
			return fmt.Sprintf("⏭️ skipped (%s)", res.SkipReason)
		}
		return "⏭️ skipped"
	default:
		return string(res.Outcome)
	}
}

func writeFailureDetails(w io.Writer, summary *runner.Summary) {
	for _, res := range summary.Results {
		switch res.Outcome {
		case runner.Failed:
			fmt.Fprintf(w, "\n%s/%s: score %.1f below threshold %.1f\n",
				res.Suite, res.Case, res.Result.Score, res.Result.Threshold)
			if res.Result.Reasoning != "" {
				fmt.Fprintf(w, "  %s\n", res.Result.Reasoning)
			}
			for _, s := range res.Result.Suggestions {
				fmt.Fprintf(w, "  Suggestion: %s\n", s)
			}
		case runner.Errored:
			fmt.Fprintf(w, "\n%s/%s: %v\n", res.Suite, res.Case, res.Err)
		}
	}
}

func writeDurations(w io.Writer, summary *runner.Summary, opts Options) {
	results := make([]runner.CaseResult, len(summary.Results))
	copy(results, summary.Results)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Duration > results[j].Duration
	})

	listed := 0
	for _, res := range results {
		if listed >= opts.Durations {
			break
		}
		if res.Duration < opts.DurationsMin {
			break
		}
		if listed == 0 {
			fmt.Fprintf(w, "\nSlowest cases:\n")
		}
		fmt.Fprintf(w, "  %s  %s/%s\n", FormatDuration(res.Duration), res.Suite, res.Case)
		listed++
	}
	if listed == 0 && opts.DurationsMin > 0 {
		fmt.Fprintf(w, "\nNo cases slower than %s.\n", FormatDuration(opts.DurationsMin))
	}
}

// Summary renders the one-line run summary.
func Summary(summary *runner.Summary) string {
	counts := summary.Counts()
	parts := []string{
		fmt.Sprintf("%d passed", counts[runner.Passed]),
		fmt.Sprintf("%d failed", counts[runner.Failed]),
		fmt.Sprintf("%d skipped", counts[runner.Skipped]),
	}
	if n := counts[runner.Errored]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d errored", n))
	}
	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), FormatDuration(summary.Duration))
}

// FormatDuration renders a duration with sub-second precision that stays
// readable at any magnitude.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}
