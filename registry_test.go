package sigil

import (
	"sync"
	"testing"

	"github.com/sigil-ecs/sigil/store"
	"github.com/stretchr/testify/require"
)

type Position struct {
	Component[Position]
	X, Y float64
}

type Velocity struct {
	Component[Velocity]
	X, Y float64
}

var _ = ValidateComponent[Position]()
var _ = ValidateComponent[Velocity]()

// countingStore counts identifier allocations to verify that resolving
// a component type hits the store exactly once.
type countingStore struct {
	*store.Memory
	allocations int
}

func (c *countingStore) NewComponentId() store.ComponentId {
	c.allocations += 1
	return c.Memory.NewComponentId()
}

func TestResolveIdempotent(t *testing.T) {
	s := &countingStore{Memory: store.NewMemory()}
	r := NewRegistry(s)

	first := ComponentOf[Position](r)
	second := ComponentOf[Position](r)

	require.Equal(t, first.Raw(), second.Raw())
	require.Equal(t, 1, s.allocations)

	// operations resolve through the same entry, no further allocation
	entity := Spawn(r, Position{X: 1, Y: 2})
	value, ok := Get[Position](r, entity)
	require.True(t, ok)
	require.Equal(t, Position{X: 1, Y: 2}, value)
	require.Equal(t, 1, s.allocations)
}

func TestResolveDistinctTypes(t *testing.T) {
	s := &countingStore{Memory: store.NewMemory()}
	r := NewRegistry(s)

	position := ComponentOf[Position](r)
	velocity := ComponentOf[Velocity](r)

	require.NotEqual(t, position.Raw(), velocity.Raw())
	require.Equal(t, 2, s.allocations)
}

func TestRegistriesAreIsolated(t *testing.T) {
	first := NewRegistry(store.NewMemory())
	second := NewRegistry(store.NewMemory())

	entity := Spawn(first, Position{X: 1})

	// the same type resolves independently per registry, and state
	// written through one registry is invisible to the other
	require.True(t, Has[Position](first, entity))
	require.False(t, Has[Position](second, entity))
}

func TestSignalsLiveBeforeFirstUse(t *testing.T) {
	r := NewRegistry(store.NewMemory())

	id := ComponentOf[Position](r)

	// no entity has used the component yet, the signals exist anyway
	require.NotNil(t, id.Added())
	require.NotNil(t, id.Removed())
	require.NotNil(t, id.Changed())

	var added []EntityId
	id.Added().Subscribe(func(entity EntityId) { added = append(added, entity) })

	entity := Spawn(r, Position{X: 3})
	require.Equal(t, []EntityId{entity}, added)
}

func TestConcurrentResolveMintsOnce(t *testing.T) {
	s := &countingStore{Memory: store.NewMemory()}
	r := NewRegistry(s)

	const n = 16
	ids := make([]store.ComponentId, n)

	var wg sync.WaitGroup
	for idx := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[idx] = ComponentOf[Position](r).Raw()
		}()
	}

	wg.Wait()

	require.Equal(t, 1, s.allocations)
	for _, id := range ids {
		require.Equal(t, ids[0], id)
	}
}

func TestZeroComponentIdPanics(t *testing.T) {
	var id ComponentId[Position]

	require.Panics(t, func() { id.Added() })
	require.Panics(t, func() { id.Set(1, Position{}) })
	require.Contains(t, id.String(), "unresolved")
}
