// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/wyrmgate/wyrmgate/internal/world"
)

// NewValidateWorldsCmd creates the validate-worlds subcommand.
func NewValidateWorldsCmd() *cobra.Command {
	var worldFile string

	cmd := &cobra.Command{
		Use:   "validate-worlds",
		Short: "Validate a world definition file without starting the server",
		Long: `Validates the partition definitions in a world file: duplicate ids or
names, missing names, and unknown partition classes are reported.
Exits with code 0 on success, non-zero on failure.

Useful in CI pipelines to catch world file errors early:
  wyrmgate validate-worlds --world-file maps/world.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidateWorlds(cmd, worldFile)
		},
	}

	cmd.Flags().StringVar(&worldFile, "world-file", "", "path to the YAML world definition file")
	_ = cmd.MarkFlagRequired("world-file")

	return cmd
}

func runValidateWorlds(cmd *cobra.Command, worldFile string) error {
	defs, err := world.LoadDefinitions(worldFile)
	if err != nil {
		return err
	}
	if err := world.ValidateDefinitions(defs, world.BuiltinClasses()); err != nil {
		return err
	}

	cmd.Printf("world file valid: %d partitions\n", len(defs))
	return nil
}
