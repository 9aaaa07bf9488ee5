// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

// Package identity allocates process-unique 64-bit identifiers for world
// objects. Three independent counters are maintained: actor handles,
// session-object ids, and skill-object ids. Each counter is monotonic and
// safe for unbounded concurrent use.
package identity

import "sync/atomic"

// Starting bases for the three counters. Handles identify in-memory actors
// and start at zero. Session- and skill-object ids are drawn from distinct
// high ranges so they cannot collide with identity spaces imposed by the
// surrounding game protocol.
const (
	DefaultHandleBase        int64 = 0
	DefaultSessionObjectBase int64 = 1 << 40
	DefaultSkillObjectBase   int64 = 1 << 41
)

// Config sets the starting value of each counter. The first id handed out by
// a counter is its base plus one.
type Config struct {
	HandleBase        int64 `koanf:"handle-base"`
	SessionObjectBase int64 `koanf:"session-object-base"`
	SkillObjectBase   int64 `koanf:"skill-object-base"`
}

// DefaultConfig returns the default counter bases.
func DefaultConfig() Config {
	return Config{
		HandleBase:        DefaultHandleBase,
		SessionObjectBase: DefaultSessionObjectBase,
		SkillObjectBase:   DefaultSkillObjectBase,
	}
}

// Allocator hands out monotonically increasing identifiers via atomic
// increment. Allocation never fails and ids are never reused; 64-bit
// overflow is not mitigated.
type Allocator struct {
	handle        atomic.Int64
	sessionObject atomic.Int64
	skillObject   atomic.Int64
}

// NewAllocator creates an allocator with its counters set to the configured
// bases.
func NewAllocator(cfg Config) *Allocator {
	a := &Allocator{}
	a.handle.Store(cfg.HandleBase)
	a.sessionObject.Store(cfg.SessionObjectBase)
	a.skillObject.Store(cfg.SkillObjectBase)
	return a
}

// NextHandle returns the next actor handle.
func (a *Allocator) NextHandle() int64 {
	return a.handle.Add(1)
}

// NextSessionObjectID returns the next session-object id.
func (a *Allocator) NextSessionObjectID() int64 {
	return a.sessionObject.Add(1)
}

// NextSkillObjectID returns the next skill-object id.
func (a *Allocator) NextSkillObjectID() int64 {
	return a.skillObject.Add(1)
}
