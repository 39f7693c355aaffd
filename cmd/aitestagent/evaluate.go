/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/spf13/cobra"
)

// newAccuracyCommand is shorthand for the root command with --expected.
func newAccuracyCommand(root *rootFlags) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "accuracy <output> <expected>",
		Short:         "Judge output against an expected reference answer",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.expected = args[1]
			flags.verbose = root.verbose
			return evaluate(cmd.Context(), cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.criteria, "criteria", "c", "", "evaluation criterion")
	cmd.Flags().Float64VarP(&flags.threshold, "threshold", "t", 0, "passing score, 0 to 10")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "judge model")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "skip the judgement cache")
	return cmd
}

// newCriteriaCommand is shorthand for the root command with --criteria.
func newCriteriaCommand(root *rootFlags) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "criteria <output> <criterion>",
		Short:         "Judge output against a criterion with no reference answer",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.criteria = args[1]
			flags.verbose = root.verbose
			return evaluate(cmd.Context(), cmd, args[0], flags)
		},
	}
	cmd.Flags().Float64VarP(&flags.threshold, "threshold", "t", 0, "passing score, 0 to 10")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "judge model")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "skip the judgement cache")
	return cmd
}
