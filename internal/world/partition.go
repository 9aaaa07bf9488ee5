// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

// Package world owns the shared world state of a running game: the partition
// registry, the heartbeat that drives per-partition simulation, and the
// composition root that exposes both to the session layer and the script
// subsystem.
package world

import "context"

// Character is an actor living inside a partition. The world core treats
// characters as opaque beyond their handle and team membership; everything
// else belongs to the character subsystem.
type Character interface {
	Handle() int64
	Name() string
	TeamName() string
}

// Predicate selects characters in bulk queries.
type Predicate func(Character) bool

// Partition is a spatial subdivision of the world. A partition owns its
// actors and scripted entities and advances its own simulation step; the
// registry only dispatches lifecycle calls through this surface. Both id and
// name are immutable once the partition is constructed.
type Partition interface {
	ID() int32
	Name() string

	// AdvanceTick advances the partition's simulation by one heartbeat.
	AdvanceTick(ctx context.Context)

	// RemoveScriptedEntities removes every script-spawned entity in bulk,
	// independent of the normal entity lifecycle.
	RemoveScriptedEntities()

	// CharacterByTeamName returns the first character in the given team,
	// or nil if the partition holds none.
	CharacterByTeamName(team string) Character

	// Characters returns a fresh slice of all characters in the partition.
	Characters() []Character

	// CharactersMatching returns a fresh slice of the characters selected
	// by pred, preserving the partition's own ordering.
	CharactersMatching(pred Predicate) []Character
}

// Definition declares a partition to be constructed at world initialization.
// Definitions come from the world file; ids and names must be unique across
// the whole set.
type Definition struct {
	ID    int32  `yaml:"id" koanf:"id"`
	Name  string `yaml:"name" koanf:"name"`
	Class string `yaml:"class" koanf:"class"`
}

// PartitionFactory constructs a partition from its definition.
type PartitionFactory func(def Definition) (Partition, error)
