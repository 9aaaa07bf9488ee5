// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import (
	"context"
	"sync"
)

// Zone is the built-in in-memory partition class. It tracks which actors are
// present and which of them were spawned by scripts; actual content
// simulation (pathing, combat, scripting) is owned by surrounding subsystems,
// so AdvanceTick only advances local bookkeeping.
type Zone struct {
	id   int32
	name string

	mu       sync.RWMutex
	actors   map[int64]Character
	order    []int64 // entry order, drives query ordering
	scripted map[int64]struct{}
	ticks    int64
}

// NewZonePartition is the PartitionFactory for the built-in zone class.
func NewZonePartition(def Definition) (Partition, error) {
	return &Zone{
		id:       def.ID,
		name:     def.Name,
		actors:   make(map[int64]Character),
		scripted: make(map[int64]struct{}),
	}, nil
}

// ID returns the zone's numeric id.
func (z *Zone) ID() int32 { return z.id }

// Name returns the zone's name.
func (z *Zone) Name() string { return z.name }

// Enter adds an actor to the zone. scripted marks entities spawned by script
// logic, which RemoveScriptedEntities removes in bulk. Re-entering with the
// same handle replaces the previous entry in place.
func (z *Zone) Enter(c Character, scripted bool) {
	z.mu.Lock()
	defer z.mu.Unlock()

	if _, present := z.actors[c.Handle()]; !present {
		z.order = append(z.order, c.Handle())
	}
	z.actors[c.Handle()] = c
	if scripted {
		z.scripted[c.Handle()] = struct{}{}
	} else {
		delete(z.scripted, c.Handle())
	}
}

// Leave removes the actor with the given handle. Unknown handles are ignored.
func (z *Zone) Leave(handle int64) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.remove(handle)
}

// remove deletes an actor from all bookkeeping. Caller holds the write lock.
func (z *Zone) remove(handle int64) {
	if _, present := z.actors[handle]; !present {
		return
	}
	delete(z.actors, handle)
	delete(z.scripted, handle)
	for i, h := range z.order {
		if h == handle {
			z.order = append(z.order[:i], z.order[i+1:]...)
			break
		}
	}
}

// AdvanceTick advances the zone's simulation by one heartbeat.
func (z *Zone) AdvanceTick(_ context.Context) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.ticks++
}

// Ticks returns how many heartbeats the zone has seen.
func (z *Zone) Ticks() int64 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.ticks
}

// RemoveScriptedEntities removes every script-spawned actor in bulk.
func (z *Zone) RemoveScriptedEntities() {
	z.mu.Lock()
	defer z.mu.Unlock()

	handles := make([]int64, 0, len(z.scripted))
	for h := range z.scripted {
		handles = append(handles, h)
	}
	for _, h := range handles {
		z.remove(h)
	}
}

// CharacterByTeamName returns the first character in the given team, in entry
// order, or nil.
func (z *Zone) CharacterByTeamName(team string) Character {
	z.mu.RLock()
	defer z.mu.RUnlock()
	for _, h := range z.order {
		if c := z.actors[h]; c.TeamName() == team {
			return c
		}
	}
	return nil
}

// Characters returns a fresh slice of all characters in entry order.
func (z *Zone) Characters() []Character {
	z.mu.RLock()
	defer z.mu.RUnlock()

	out := make([]Character, 0, len(z.order))
	for _, h := range z.order {
		out = append(out, z.actors[h])
	}
	return out
}

// CharactersMatching returns a fresh slice of the characters selected by
// pred, in entry order.
func (z *Zone) CharactersMatching(pred Predicate) []Character {
	z.mu.RLock()
	defer z.mu.RUnlock()

	var out []Character
	for _, h := range z.order {
		if c := z.actors[h]; pred(c) {
			out = append(out, c)
		}
	}
	return out
}
