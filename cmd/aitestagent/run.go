/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/aitestagent/aitestagent/report"
	"github.com/aitestagent/aitestagent/runner"
	"github.com/aitestagent/aitestagent/suite"
)

func newRunCommand(root *rootFlags) *cobra.Command {
	var (
		workers      int
		failFast     bool
		maxFail      int
		durations    int
		durationsMin time.Duration
		verbose      bool
		noCache      bool
	)

	cmd := &cobra.Command{
		Use:   "run [root...]",
		Short: "Discover and run evaluation suites",
		Long: `run walks each root (default the current directory) for suite files
named <name>_aitest.yaml or aitest_<name>.yaml and judges every case.

Exits 0 when nothing failed or errored, 1 otherwise, and 5 when no suites
were found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupContext(cmd.Context(), root.verbose || verbose)

			if len(args) == 0 {
				args = []string{"."}
			}
			var suites []*suite.Suite
			for _, dir := range args {
				found, err := suite.Discover(dir)
				if err != nil {
					return err
				}
				suites = append(suites, found...)
			}
			if len(suites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suites found.")
				return &exitError{code: exitCodeNoTests}
			}

			agent, err := newAgent(ctx, &rootFlags{noCache: noCache})
			if err != nil {
				return err
			}

			var opts []runner.RunnerOption
			if workers > 0 {
				opts = append(opts, runner.WithWorkers(workers))
			}
			if failFast {
				opts = append(opts, runner.WithFailFast())
			}
			if maxFail > 0 {
				opts = append(opts, runner.WithMaxFail(maxFail))
			}

			summary, err := runner.New(agent, opts...).Run(ctx, suites)
			if err != nil {
				return err
			}

			if err := report.Write(cmd.OutOrStdout(), summary, report.Options{
				Durations:    durations,
				DurationsMin: durationsMin,
				Verbose:      verbose,
			}); err != nil {
				return err
			}

			if !summary.OK() {
				return &exitError{code: 1}
			}
			clog.FromContext(ctx).With("run_id", summary.RunID).Debug("run passed")
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers (default AITEST_WORKERS or one per CPU)")
	cmd.Flags().BoolVarP(&failFast, "fail-fast", "x", false, "stop after the first failure")
	cmd.Flags().IntVar(&maxFail, "max-fail", 0, "stop after this many failures (0 = no limit)")
	cmd.Flags().IntVar(&durations, "durations", 0, "list the N slowest cases")
	cmd.Flags().DurationVar(&durationsMin, "durations-min", 0, "hide cases faster than this from the durations listing")
	cmd.Flags().BoolVar(&verbose, "verbose-report", false, "include reasoning for failed cases")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the judgement cache")
	return cmd
}

func newCollectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "collect [root...]",
		Short:         "List discovered suites and cases without judging",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			var suites []*suite.Suite
			for _, dir := range args {
				found, err := suite.Discover(dir)
				if err != nil {
					return err
				}
				suites = append(suites, found...)
			}
			if len(suites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suites found.")
				return &exitError{code: exitCodeNoTests}
			}

			cases := 0
			for _, s := range suites {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", s.Name, s.Path)
				for _, c := range s.Cases {
					marker := ""
					if c.Skip {
						marker = " [skip]"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s%s\n", c.Name, marker)
					cases++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d cases in %d suites\n", cases, len(suites))
			return nil
		},
	}
	return cmd
}
