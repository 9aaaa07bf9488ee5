// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempWorld(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateWorlds_Valid(t *testing.T) {
	path := writeTempWorld(t, `
partitions:
  - id: 1
    name: Talking Island
    class: zone
  - id: 2
    name: Gludio
    class: zone
`)

	cmd := NewValidateWorldsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--world-file", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "2 partitions")
}

func TestValidateWorlds_DuplicateID(t *testing.T) {
	path := writeTempWorld(t, `
partitions:
  - id: 1
    name: Alpha
    class: zone
  - id: 1
    name: Beta
    class: zone
`)

	cmd := NewValidateWorldsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--world-file", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate partition id")
}

func TestValidateWorlds_UnknownClass(t *testing.T) {
	path := writeTempWorld(t, `
partitions:
  - id: 1
    name: Alpha
    class: castle
`)

	cmd := NewValidateWorldsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--world-file", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown partition class")
}

func TestValidateWorlds_MissingFlag(t *testing.T) {
	cmd := NewValidateWorldsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}
