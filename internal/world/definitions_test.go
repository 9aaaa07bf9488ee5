// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrmgate/wyrmgate/pkg/errutil"
)

func writeWorldFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefinitions(t *testing.T) {
	path := writeWorldFile(t, `
partitions:
  - id: 1
    name: Talking Island
    class: zone
  - id: 2
    name: Gludio
    class: zone
`)

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, Definition{ID: 1, Name: "Talking Island", Class: "zone"}, defs[0])
	assert.Equal(t, Definition{ID: 2, Name: "Gludio", Class: "zone"}, defs[1])
}

func TestLoadDefinitions_MissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeDefinitionsInvalid)
}

func TestLoadDefinitions_MalformedYAML(t *testing.T) {
	path := writeWorldFile(t, "partitions: [=")
	_, err := LoadDefinitions(path)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeDefinitionsInvalid)
}

func TestLoadDefinitions_Empty(t *testing.T) {
	path := writeWorldFile(t, "partitions: []")
	_, err := LoadDefinitions(path)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeDefinitionsInvalid)
}

func TestClassFactory(t *testing.T) {
	factory := ClassFactory(BuiltinClasses())

	p, err := factory(Definition{ID: 1, Name: "Harbor", Class: "zone"})
	require.NoError(t, err)
	assert.Equal(t, "Harbor", p.Name())

	_, err = factory(Definition{ID: 2, Name: "Keep", Class: "dungeon"})
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeUnknownClass)
	errutil.AssertErrorContext(t, err, "class", "dungeon")
}

func TestValidateDefinitions(t *testing.T) {
	classes := BuiltinClasses()

	tests := []struct {
		name     string
		defs     []Definition
		wantCode string
	}{
		{
			name: "valid",
			defs: []Definition{
				{ID: 1, Name: "Alpha", Class: "zone"},
				{ID: 2, Name: "Beta", Class: "zone"},
			},
		},
		{
			name: "duplicate id",
			defs: []Definition{
				{ID: 1, Name: "Alpha", Class: "zone"},
				{ID: 1, Name: "Beta", Class: "zone"},
			},
			wantCode: CodeDuplicatePartition,
		},
		{
			name: "duplicate name",
			defs: []Definition{
				{ID: 1, Name: "Alpha", Class: "zone"},
				{ID: 2, Name: "Alpha", Class: "zone"},
			},
			wantCode: CodeDuplicatePartition,
		},
		{
			name:     "empty name",
			defs:     []Definition{{ID: 1, Class: "zone"}},
			wantCode: CodeDefinitionsInvalid,
		},
		{
			name:     "unknown class",
			defs:     []Definition{{ID: 1, Name: "Alpha", Class: "castle"}},
			wantCode: CodeUnknownClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDefinitions(tt.defs, classes)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			errutil.AssertErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestValidateDefinitions_NilClassesSkipsClassCheck(t *testing.T) {
	err := ValidateDefinitions([]Definition{{ID: 1, Name: "Alpha", Class: "castle"}}, nil)
	assert.NoError(t, err)
}
