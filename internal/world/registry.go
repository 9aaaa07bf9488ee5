// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import (
	"sync"

	"github.com/samber/oops"
)

// Registry is the dual-indexed partition collection: every registered
// partition appears exactly once in the id index and once in the name index.
// Both indexes and the registration-order slice are only touched under one
// RWMutex, so any two registry operations are totally ordered and a sweep
// observes a single consistent snapshot of membership.
//
// Membership is effectively static: Initialize is the only writer path and
// runs once at startup. Reads and sweeps are frequent but individually cheap,
// so one coarse guard is preferred over per-entry locking.
type Registry struct {
	mu     sync.RWMutex
	byID   map[int32]Partition
	byName map[string]Partition
	order  []Partition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[int32]Partition),
		byName: make(map[string]Partition),
	}
}

// Initialize constructs one partition per definition and registers them all.
// Duplicate ids or names fail with CodeDuplicatePartition and leave the
// registry empty: partitions are staged into fresh indexes and committed in a
// single critical section, so a concurrent reader sees either none of the
// partitions or all of them, never a half-inserted state.
func (r *Registry) Initialize(defs []Definition, factory PartitionFactory) error {
	byID := make(map[int32]Partition, len(defs))
	byName := make(map[string]Partition, len(defs))
	order := make([]Partition, 0, len(defs))

	for _, def := range defs {
		if _, dup := byID[def.ID]; dup {
			return oops.Code(CodeDuplicatePartition).
				With("partition_id", def.ID).
				Errorf("duplicate partition id %d", def.ID)
		}
		if _, dup := byName[def.Name]; dup {
			return oops.Code(CodeDuplicatePartition).
				With("partition_name", def.Name).
				Errorf("duplicate partition name %q", def.Name)
		}

		p, err := factory(def)
		if err != nil {
			return oops.Code(CodePartitionConstruct).
				With("partition_id", def.ID).
				With("partition_name", def.Name).
				Wrap(err)
		}

		byID[def.ID] = p
		byName[def.Name] = p
		order = append(order, p)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.order) > 0 {
		return oops.Code(CodeAlreadyInitialized).
			With("partitions", len(r.order)).
			Errorf("registry already initialized")
	}

	r.byID = byID
	r.byName = byName
	r.order = order
	return nil
}

// Get returns the partition with the given id, or nil if none is registered.
func (r *Registry) Get(id int32) Partition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

// GetByName returns the partition with the given name, or nil.
func (r *Registry) GetByName(name string) Partition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// Count returns the number of registered partitions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// ForEach visits every partition in registration order. The guard is held
// once for the entire sweep, so membership cannot change mid-sweep; the
// visitor must not call back into the registry.
func (r *Registry) ForEach(visit func(Partition)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.order {
		visit(p)
	}
}

// CharacterByTeamName scans partitions in registration order and returns the
// first character in the given team, or nil when no partition holds one.
func (r *Registry) CharacterByTeamName(team string) Character {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.order {
		if c := p.CharacterByTeamName(team); c != nil {
			return c
		}
	}
	return nil
}

// Characters returns a fresh slice of every character in the world,
// concatenated in partition registration order.
func (r *Registry) Characters() []Character {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []Character
	for _, p := range r.order {
		all = append(all, p.Characters()...)
	}
	return all
}

// CharactersMatching returns a fresh slice of the characters selected by
// pred, concatenated in partition registration order.
func (r *Registry) CharactersMatching(pred Predicate) []Character {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []Character
	for _, p := range r.order {
		all = append(all, p.CharactersMatching(pred)...)
	}
	return all
}

// RemoveScriptedEntities asks every partition to remove its script-spawned
// entities, under a single guard acquisition.
func (r *Registry) RemoveScriptedEntities() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.order {
		p.RemoveScriptedEntities()
	}
}
