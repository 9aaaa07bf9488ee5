// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package errutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrs_PlainError(t *testing.T) {
	attrs := Attrs(errors.New("boom"))
	assert.Equal(t, []any{"error", "boom"}, attrs)
}

func TestAttrs_OopsError(t *testing.T) {
	err := oops.Code("WORLD_DUPLICATE_PARTITION").
		With("partition_id", 7).
		Errorf("duplicate partition id 7")

	attrs := Attrs(err)
	require.GreaterOrEqual(t, len(attrs), 4)
	assert.Contains(t, attrs, "code")
	assert.Contains(t, attrs, "WORLD_DUPLICATE_PARTITION")
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	LogError(logger, "startup failed", oops.Code("CONFIG_INVALID").Errorf("bad config"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "startup failed", entry["msg"])
	assert.Equal(t, "CONFIG_INVALID", entry["code"])
	assert.Equal(t, "bad config", entry["error"])
}
