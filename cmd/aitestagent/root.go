/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/aitestagent/aitestagent/aitest"
)

// rootFlags are shared by the root command and its accuracy/criteria
// shorthands.
type rootFlags struct {
	expected  string
	criteria  string
	threshold float64
	model     string
	verbose   bool
	jsonOut   bool
	noCache   bool
}

func (f *rootFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.expected, "expected", "e", "", "expected reference answer (accuracy mode)")
	cmd.Flags().StringVarP(&f.criteria, "criteria", "c", "", "evaluation criterion")
	cmd.Flags().Float64VarP(&f.threshold, "threshold", "t", 0, "passing score, 0 to 10 (default from AITEST_THRESHOLD or 7.0)")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "judge model (default from AITEST_MODEL)")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "skip the judgement cache")
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "aitestagent <output>",
		Short: "Judge program output with an LLM",
		Long: `aitestagent scores free-form output with an LLM judge and exits 0 when
the score reaches the passing threshold.

With --expected the output is compared against a reference answer. With
--criteria alone the output is judged on its own merits. With neither, a
general correctness criterion applies.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd.Context(), cmd, args[0], flags)
		},
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	flags.register(cmd)

	cmd.AddCommand(
		newAccuracyCommand(flags),
		newCriteriaCommand(flags),
		newRunCommand(flags),
		newCollectCommand(),
		newCacheCommand(),
		newVersionCommand(),
	)
	return cmd
}

// setupContext installs the logger at the requested verbosity.
func setupContext(ctx context.Context, verbose bool) context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := clog.NewLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return clog.WithLogger(ctx, log)
}

// newAgent builds the agent shared by the evaluation commands.
func newAgent(ctx context.Context, flags *rootFlags) (*aitest.Agent, error) {
	var opts []aitest.AgentOption
	if flags.noCache {
		cfg, err := aitest.LoadConfig(ctx)
		if err != nil {
			return nil, err
		}
		cfg.CacheEnabled = false
		opts = append(opts, aitest.WithConfig(cfg))
	}
	return aitest.NewAgent(ctx, opts...)
}

// evaluate judges a single output and renders the verdict. A failing
// verdict exits 1 without an error message beyond the result itself.
func evaluate(ctx context.Context, cmd *cobra.Command, output string, flags *rootFlags) error {
	ctx = setupContext(ctx, flags.verbose)

	agent, err := newAgent(ctx, flags)
	if err != nil {
		return err
	}

	var opts []aitest.Option
	if flags.expected != "" {
		opts = append(opts, aitest.WithExpected(flags.expected))
	}
	if flags.criteria != "" {
		opts = append(opts, aitest.WithCriteria(flags.criteria))
	}
	if cmd.Flags().Changed("threshold") {
		opts = append(opts, aitest.WithThreshold(flags.threshold))
	}
	if flags.model != "" {
		opts = append(opts, aitest.WithModel(flags.model))
	}

	result, err := agent.Test(ctx, output, opts...)
	if err != nil {
		return err
	}

	if flags.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}

	if !result.Passed {
		return &exitError{code: 1}
	}
	return nil
}
