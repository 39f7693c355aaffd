/*
Copyright 2026 AITestAgent Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aitestagent/aitestagent/aitest"
	"github.com/aitestagent/aitestagent/cache"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the judgement cache",
	}
	cmd.AddCommand(newCacheStatsCommand(), newCacheClearCommand())
	return cmd
}

func openCache(cmd *cobra.Command) (*cache.Cache, error) {
	cfg, err := aitest.LoadConfig(cmd.Context())
	if err != nil {
		return nil, err
	}
	return cache.New(cfg.CacheDir)
}

func newCacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "stats",
		Short:         "Show cache entry count and size",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCache(cmd)
			if err != nil {
				return err
			}
			stats, err := c.Stats()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d bytes\n",
				c.Dir(), stats.Entries, stats.SizeBytes)
			return nil
		},
	}
}

func newCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Delete all cached judgements",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCache(cmd)
			if err != nil {
				return err
			}
			removed, err := c.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries from %s\n", removed, c.Dir())
			return nil
		},
	}
}
