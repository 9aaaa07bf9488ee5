// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import (
	"context"
	"sync/atomic"
)

// fakeCharacter is a minimal Character for tests.
type fakeCharacter struct {
	handle int64
	name   string
	team   string
}

func (c fakeCharacter) Handle() int64    { return c.handle }
func (c fakeCharacter) Name() string     { return c.name }
func (c fakeCharacter) TeamName() string { return c.team }

// fakePartition records lifecycle calls and serves canned characters.
type fakePartition struct {
	id    int32
	name  string
	chars []Character

	ticks       atomic.Int64
	sweeps      atomic.Int64
	panicOnTick bool
}

func newFakePartition(def Definition) *fakePartition {
	return &fakePartition{id: def.ID, name: def.Name}
}

// fakeFactory builds fakePartitions and exposes the constructed set.
func fakeFactory(out *[]*fakePartition) PartitionFactory {
	return func(def Definition) (Partition, error) {
		p := newFakePartition(def)
		if out != nil {
			*out = append(*out, p)
		}
		return p, nil
	}
}

func (p *fakePartition) ID() int32    { return p.id }
func (p *fakePartition) Name() string { return p.name }

func (p *fakePartition) AdvanceTick(_ context.Context) {
	p.ticks.Add(1)
	if p.panicOnTick {
		panic("partition tick failure")
	}
}

func (p *fakePartition) RemoveScriptedEntities() {
	p.sweeps.Add(1)
}

func (p *fakePartition) CharacterByTeamName(team string) Character {
	for _, c := range p.chars {
		if c.TeamName() == team {
			return c
		}
	}
	return nil
}

func (p *fakePartition) Characters() []Character {
	out := make([]Character, len(p.chars))
	copy(out, p.chars)
	return out
}

func (p *fakePartition) CharactersMatching(pred Predicate) []Character {
	var out []Character
	for _, c := range p.chars {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}
