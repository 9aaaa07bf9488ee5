// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package identity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocator_Bases(t *testing.T) {
	a := NewAllocator(DefaultConfig())

	assert.Equal(t, int64(1), a.NextHandle())
	assert.Equal(t, DefaultSessionObjectBase+1, a.NextSessionObjectID())
	assert.Equal(t, DefaultSkillObjectBase+1, a.NextSkillObjectID())
}

func TestAllocator_Monotonic(t *testing.T) {
	a := NewAllocator(Config{HandleBase: 100})

	prev := int64(100)
	for i := 0; i < 1000; i++ {
		next := a.NextHandle()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestAllocator_CountersIndependent(t *testing.T) {
	a := NewAllocator(DefaultConfig())

	for i := 0; i < 10; i++ {
		a.NextHandle()
	}
	// Draining one counter must not move the others.
	assert.Equal(t, DefaultSessionObjectBase+1, a.NextSessionObjectID())
	assert.Equal(t, DefaultSkillObjectBase+1, a.NextSkillObjectID())
}

func TestAllocator_ConcurrentUniqueness(t *testing.T) {
	const (
		workers       = 8
		allocsPerWork = 250
	)

	a := NewAllocator(DefaultConfig())

	results := make([][]int64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids := make([]int64, 0, allocsPerWork)
			for i := 0; i < allocsPerWork; i++ {
				ids = append(ids, a.NextSessionObjectID())
			}
			results[w] = ids
		}(w)
	}
	wg.Wait()

	seen := make(map[int64]struct{}, workers*allocsPerWork)
	for _, ids := range results {
		for _, id := range ids {
			_, dup := seen[id]
			require.False(t, dup, "id %d allocated twice", id)
			require.Greater(t, id, DefaultSessionObjectBase)
			seen[id] = struct{}{}
		}
	}
	assert.Len(t, seen, workers*allocsPerWork)
}
