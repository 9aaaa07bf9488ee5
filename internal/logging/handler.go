// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

// Package logging provides structured logging with boot identity and
// OpenTelemetry trace context.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/trace"
)

// worldHandler wraps a slog.Handler to stamp records with trace context when
// the logging context carries a span.
type worldHandler struct {
	handler slog.Handler
}

// Handle adds trace context to the log record.
func (h *worldHandler) Handle(ctx context.Context, r slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		r.AddAttrs(slog.String("trace_id", spanCtx.TraceID().String()))
	}
	if spanCtx.HasSpanID() {
		r.AddAttrs(slog.String("span_id", spanCtx.SpanID().String()))
	}

	//nolint:wrapcheck // Handler interface requires unwrapped error passthrough
	return h.handler.Handle(ctx, r)
}

// Enabled returns true if the level is enabled.
func (h *worldHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs returns a new handler with the given attributes.
func (h *worldHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &worldHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new handler with the given group.
func (h *worldHandler) WithGroup(name string) slog.Handler {
	return &worldHandler{handler: h.handler.WithGroup(name)}
}

// Setup creates a configured slog.Logger. Every record carries the service
// identity and a boot id; a fresh boot id is minted per call so log lines from
// different runs of the same process can be told apart.
// format: "json" or "text" (defaults to "json" if empty).
// If w is nil, writes to os.Stderr.
func Setup(service, version, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var baseHandler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	if format == "text" {
		baseHandler = slog.NewTextHandler(w, opts)
	} else {
		baseHandler = slog.NewJSONHandler(w, opts)
	}

	// Identity attrs are applied to the base handler before any groups so
	// they always render at the top level.
	baseHandler = baseHandler.WithAttrs([]slog.Attr{
		slog.String("service", service),
		slog.String("version", version),
		slog.String("boot_id", ulid.Make().String()),
	})

	return slog.New(&worldHandler{handler: baseHandler})
}

// SetDefault sets up and configures the default logger.
func SetDefault(service, version, format string) {
	logger := Setup(service, version, format, nil)
	slog.SetDefault(logger)
}
