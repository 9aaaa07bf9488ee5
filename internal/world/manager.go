// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/wyrmgate/wyrmgate/internal/identity"
)

// ManagerConfig holds dependencies and tuning for the world Manager.
type ManagerConfig struct {
	// TickPeriod is the heartbeat cadence; zero means DefaultTickPeriod.
	TickPeriod time.Duration
	// Identity sets the id counter bases; the zero value means defaults.
	Identity identity.Config
	// Metrics is optional.
	Metrics *Metrics
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Manager is the composition root of the world core. It owns the partition
// registry, the identity allocator, and the heartbeat, and exposes their
// combined contract to the session layer, the script subsystem, and game-loop
// consumers, all of which call in concurrently.
type Manager struct {
	registry  *Registry
	ids       *identity.Allocator
	heartbeat *Heartbeat
	metrics   *Metrics
	logger    *slog.Logger
	stopped   atomic.Bool
}

// NewManager creates a Manager. The heartbeat is created but not scheduled;
// Initialize starts it.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Identity == (identity.Config{}) {
		cfg.Identity = identity.DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	m := &Manager{
		registry: NewRegistry(),
		ids:      identity.NewAllocator(cfg.Identity),
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
	m.heartbeat = NewHeartbeat(cfg.TickPeriod, m.advance, cfg.Metrics)
	return m
}

// Initialize populates the registry from the definitions and then starts the
// heartbeat, in that order, so the first tick can never observe a partially
// populated world. A duplicate id or name aborts startup and leaves no
// partitions registered.
func (m *Manager) Initialize(ctx context.Context, defs []Definition, factory PartitionFactory) error {
	if err := m.registry.Initialize(defs, factory); err != nil {
		return err
	}
	if m.metrics != nil {
		m.metrics.Partitions.Set(float64(m.registry.Count()))
	}
	if err := m.heartbeat.Start(ctx); err != nil {
		return err
	}

	m.logger.Info("world initialized",
		"partitions", m.registry.Count(),
		"tick_period", m.heartbeat.Period(),
	)
	return nil
}

// Shutdown stops the heartbeat and waits for an in-flight tick to finish.
// Safe to call more than once; the stop is logged only on the first call.
// Registry contents stay readable until process teardown.
func (m *Manager) Shutdown() {
	m.heartbeat.Stop()
	if m.stopped.CompareAndSwap(false, true) {
		m.logger.Info("world heartbeat stopped")
	}
}

// advance is the heartbeat callback: one guarded sweep asking every partition
// to advance its own simulation step. A panic in one partition is contained
// and logged so the rest of the sweep and all future ticks proceed.
func (m *Manager) advance(ctx context.Context) {
	m.registry.ForEach(func(p Partition) {
		defer func() {
			if rec := recover(); rec != nil {
				m.logger.Error("partition tick fault",
					"partition_id", p.ID(),
					"partition", p.Name(),
					"panic", rec,
				)
				if m.metrics != nil {
					m.metrics.PartitionFaults.WithLabelValues(p.Name()).Inc()
				}
			}
		}()
		p.AdvanceTick(ctx)
	})
}

// NewHandle allocates the next in-memory actor handle.
func (m *Manager) NewHandle() int64 {
	m.countAllocation(AllocKindHandle)
	return m.ids.NextHandle()
}

// NewSessionObjectID allocates the next session-object id.
func (m *Manager) NewSessionObjectID() int64 {
	m.countAllocation(AllocKindSessionObject)
	return m.ids.NextSessionObjectID()
}

// NewSkillObjectID allocates the next skill-object id.
func (m *Manager) NewSkillObjectID() int64 {
	m.countAllocation(AllocKindSkillObject)
	return m.ids.NextSkillObjectID()
}

func (m *Manager) countAllocation(kind string) {
	if m.metrics != nil {
		m.metrics.Allocations.WithLabelValues(kind).Inc()
	}
}

// Partition returns the partition with the given id, or nil.
func (m *Manager) Partition(id int32) Partition {
	return m.registry.Get(id)
}

// PartitionByName returns the partition with the given name, or nil.
func (m *Manager) PartitionByName(name string) Partition {
	return m.registry.GetByName(name)
}

// Count returns the number of registered partitions.
func (m *Manager) Count() int {
	return m.registry.Count()
}

// RemoveScriptedEntities removes script-spawned entities from every
// partition.
func (m *Manager) RemoveScriptedEntities() {
	m.registry.RemoveScriptedEntities()
}

// CharacterByTeamName returns the first character in the given team across
// all partitions, or nil.
func (m *Manager) CharacterByTeamName(team string) Character {
	return m.registry.CharacterByTeamName(team)
}

// Characters returns every character in the world.
func (m *Manager) Characters() []Character {
	return m.registry.Characters()
}

// CharactersMatching returns the characters selected by pred across all
// partitions.
func (m *Manager) CharactersMatching(pred Predicate) []Character {
	return m.registry.CharactersMatching(pred)
}
