// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

// Error codes attached to oops errors raised by this package. Only world
// initialization can fail; lookups report absence as a nil result, never an
// error.
const (
	// CodeDuplicatePartition marks a configuration integrity error: two
	// definitions share an id or a name. Fatal to world startup.
	CodeDuplicatePartition = "WORLD_DUPLICATE_PARTITION"

	// CodeUnknownClass marks a definition naming a partition class that no
	// factory is registered for.
	CodeUnknownClass = "WORLD_UNKNOWN_CLASS"

	// CodeDefinitionsInvalid marks a world file that cannot be read,
	// parsed, or that declares no partitions.
	CodeDefinitionsInvalid = "WORLD_DEFINITIONS_INVALID"

	// CodeAlreadyInitialized marks a second initialization attempt;
	// partition membership is fixed after startup.
	CodeAlreadyInitialized = "WORLD_ALREADY_INITIALIZED"

	// CodePartitionConstruct wraps a factory failure during initialization.
	CodePartitionConstruct = "WORLD_PARTITION_CONSTRUCT"
)
