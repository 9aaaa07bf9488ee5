// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// worldFile is the on-disk shape of a world definition file.
type worldFile struct {
	Partitions []Definition `yaml:"partitions"`
}

// LoadDefinitions reads partition definitions from a YAML world file.
func LoadDefinitions(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Code(CodeDefinitionsInvalid).
			With("path", path).
			Wrap(err)
	}

	var f worldFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, oops.Code(CodeDefinitionsInvalid).
			With("path", path).
			Wrap(err)
	}
	if len(f.Partitions) == 0 {
		return nil, oops.Code(CodeDefinitionsInvalid).
			With("path", path).
			Errorf("world file declares no partitions")
	}

	return f.Partitions, nil
}

// BuiltinClasses returns the partition classes compiled into the server.
func BuiltinClasses() map[string]PartitionFactory {
	return map[string]PartitionFactory{
		"zone": NewZonePartition,
	}
}

// ClassFactory builds a PartitionFactory that dispatches on the definition's
// class name.
func ClassFactory(classes map[string]PartitionFactory) PartitionFactory {
	return func(def Definition) (Partition, error) {
		factory, ok := classes[def.Class]
		if !ok {
			return nil, oops.Code(CodeUnknownClass).
				With("partition_id", def.ID).
				With("class", def.Class).
				Errorf("unknown partition class %q", def.Class)
		}
		return factory(def)
	}
}

// ValidateDefinitions checks a definition set without constructing any
// partitions: empty names, duplicate ids or names, and unknown classes are
// configuration integrity errors. classes may be nil to skip class checks.
func ValidateDefinitions(defs []Definition, classes map[string]PartitionFactory) error {
	seenID := make(map[int32]struct{}, len(defs))
	seenName := make(map[string]struct{}, len(defs))

	for _, def := range defs {
		if def.Name == "" {
			return oops.Code(CodeDefinitionsInvalid).
				With("partition_id", def.ID).
				Errorf("partition %d has no name", def.ID)
		}
		if _, dup := seenID[def.ID]; dup {
			return oops.Code(CodeDuplicatePartition).
				With("partition_id", def.ID).
				Errorf("duplicate partition id %d", def.ID)
		}
		if _, dup := seenName[def.Name]; dup {
			return oops.Code(CodeDuplicatePartition).
				With("partition_name", def.Name).
				Errorf("duplicate partition name %q", def.Name)
		}
		if classes != nil {
			if _, ok := classes[def.Class]; !ok {
				return oops.Code(CodeUnknownClass).
					With("partition_id", def.ID).
					With("class", def.Class).
					Errorf("unknown partition class %q", def.Class)
			}
		}
		seenID[def.ID] = struct{}{}
		seenName[def.Name] = struct{}{}
	}

	return nil
}
