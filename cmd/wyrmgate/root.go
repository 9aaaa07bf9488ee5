// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Wyrmgate CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wyrmgate",
		Short: "Wyrmgate - a partitioned world simulation server",
		Long: `Wyrmgate runs a simulated spatial world split into map partitions,
driven by a fixed-cadence heartbeat and exposed to session and script
subsystems through a concurrency-safe world registry.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewValidateWorldsCmd())

	return cmd
}
