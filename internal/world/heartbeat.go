// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTickPeriod is the heartbeat cadence used when none is configured.
const DefaultTickPeriod = 500 * time.Millisecond

// TickFunc is the callback invoked once per heartbeat firing.
type TickFunc func(ctx context.Context)

// Heartbeat fires a callback at a fixed cadence. The first firing is aligned
// to the next wall-clock instant divisible by the period, which keeps
// heartbeats in phase across processes sharing a clock convention. A panic in
// the callback is logged and absorbed so one bad firing cannot stop the
// schedule.
type Heartbeat struct {
	period  time.Duration
	tick    TickFunc
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	clock   func() time.Time

	mu      sync.Mutex // guards started and cancel
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewHeartbeat creates a heartbeat firing tick every period. A non-positive
// period falls back to DefaultTickPeriod. metrics may be nil.
func NewHeartbeat(period time.Duration, tick TickFunc, metrics *Metrics) *Heartbeat {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Heartbeat{
		period:  period,
		tick:    tick,
		logger:  slog.Default(),
		metrics: metrics,
		tracer:  otel.Tracer("wyrmgate/world"),
		clock:   time.Now,
	}
}

// Period returns the configured tick period.
func (h *Heartbeat) Period() time.Duration {
	return h.period
}

// Start schedules the heartbeat. It may be called once; the schedule runs
// until Stop is called or ctx is cancelled.
func (h *Heartbeat) Start(ctx context.Context) error {
	if h.tick == nil {
		return oops.Errorf("heartbeat has no tick callback")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return oops.Errorf("heartbeat already started")
	}
	h.started = true

	ctx, h.cancel = context.WithCancel(ctx)
	h.wg.Add(1)
	go h.run(ctx)
	return nil
}

// Stop cancels the schedule and waits for the loop to exit. An in-flight
// firing runs to completion. Safe to call more than once, including
// concurrently with Start.
func (h *Heartbeat) Stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	h.wg.Wait()
}

func (h *Heartbeat) run(ctx context.Context) {
	defer h.wg.Done()

	// Wait out the phase-alignment delay before the first firing.
	timer := time.NewTimer(alignDelay(h.clock(), h.period))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	h.fire(ctx)

	ticker := time.NewTicker(h.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.fire(ctx)
		}
	}
}

// fire runs a single firing with a failure boundary around the callback.
func (h *Heartbeat) fire(ctx context.Context) {
	ctx, span := h.tracer.Start(ctx, "world.heartbeat")
	start := h.clock()

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("heartbeat tick panicked", "panic", rec)
			if h.metrics != nil {
				h.metrics.TickFaults.Inc()
			}
		}
		if h.metrics != nil {
			h.metrics.Ticks.Inc()
			h.metrics.TickDuration.Observe(h.clock().Sub(start).Seconds())
		}
		span.End()
	}()

	h.tick(ctx)
}

// alignDelay returns how long to wait so that now plus the delay lands on the
// next wall-clock instant divisible by period.
func alignDelay(now time.Time, period time.Duration) time.Duration {
	rem := time.Duration(now.UnixNano()) % period
	if rem == 0 {
		return 0
	}
	return period - rem
}
