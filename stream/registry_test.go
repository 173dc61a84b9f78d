package stream

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddRemove(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Len())

	a := r.Add(4)
	b := r.Add(4)
	require.NotEqual(t, a.ID(), b.ID(), "subscriber IDs must be unique")
	assert.Equal(t, 2, r.Len())

	r.Remove(a)
	assert.Equal(t, 1, r.Len())

	// Removing twice, removing nil: no-ops.
	r.Remove(a)
	r.Remove(nil)
	assert.Equal(t, 1, r.Len())

	r.Remove(b)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_SnapshotIsStable(t *testing.T) {
	r := NewRegistry()
	a := r.Add(4)
	snap := r.Snapshot()
	require.Len(t, snap, 1)

	// Later churn must not mutate an already-taken snapshot.
	b := r.Add(4)
	r.Remove(a)
	assert.Len(t, snap, 1)
	assert.Same(t, a, snap[0])

	snap2 := r.Snapshot()
	require.Len(t, snap2, 1)
	assert.Same(t, b, snap2[0])
}

func TestRegistry_ConcurrentChurn(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				sub := r.Add(1)
				for _, s := range r.Snapshot() {
					_ = s.ID()
				}
				r.Remove(sub)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, r.Len())
}
