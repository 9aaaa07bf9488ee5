// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import "github.com/prometheus/client_golang/prometheus"

// Allocation kind labels for the identity allocation counter.
const (
	AllocKindHandle        = "handle"
	AllocKindSessionObject = "session_object"
	AllocKindSkillObject   = "skill_object"
)

// Metrics holds the world core's Prometheus instruments.
type Metrics struct {
	Ticks           prometheus.Counter
	TickDuration    prometheus.Histogram
	TickFaults      prometheus.Counter
	PartitionFaults *prometheus.CounterVec
	Partitions      prometheus.Gauge
	Allocations     *prometheus.CounterVec
}

// NewMetrics creates and registers the world metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wyrmgate_heartbeat_ticks_total",
			Help: "Total number of heartbeat firings",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wyrmgate_heartbeat_tick_duration_seconds",
			Help:    "Duration of registry-wide heartbeat updates",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		TickFaults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wyrmgate_heartbeat_tick_faults_total",
			Help: "Total number of heartbeat callbacks that panicked",
		}),
		PartitionFaults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wyrmgate_partition_tick_faults_total",
				Help: "Total number of contained per-partition tick faults",
			},
			[]string{"partition"},
		),
		Partitions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wyrmgate_partitions",
			Help: "Number of registered world partitions",
		}),
		Allocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wyrmgate_identity_allocations_total",
				Help: "Total number of identity allocations by counter kind",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(
		m.Ticks,
		m.TickDuration,
		m.TickFaults,
		m.PartitionFaults,
		m.Partitions,
		m.Allocations,
	)

	return m
}
