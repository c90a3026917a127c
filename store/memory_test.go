package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetFiresAddThenSet(t *testing.T) {
	m := NewMemory()
	component := m.NewComponentId()

	var events []string
	m.OnAdd(component, func(EntityId) { events = append(events, "add") })
	m.OnSet(component, func(entity EntityId, value any) {
		events = append(events, "set")
		require.Equal(t, 10, value)
	})

	entity := m.NewEntity()
	m.Set(entity, component, 10)

	// the first set attaches the component: add fires before set
	require.Equal(t, []string{"add", "set"}, events)

	m.Set(entity, component, 10)
	require.Equal(t, []string{"add", "set", "set"}, events)
}

func TestHooksFireAfterMutation(t *testing.T) {
	m := NewMemory()
	component := m.NewComponentId()
	entity := m.NewEntity()

	m.OnAdd(component, func(entity EntityId) {
		require.True(t, m.Has(entity, component))
	})
	m.OnRemove(component, func(entity EntityId) {
		require.False(t, m.Has(entity, component))
	})

	m.Set(entity, component, "value")
	m.Remove(entity, component)
}

func TestAddTagIdempotent(t *testing.T) {
	m := NewMemory()
	component := m.NewComponentId()
	entity := m.NewEntity()

	var adds int
	m.OnAdd(component, func(EntityId) { adds += 1 })

	m.AddTag(entity, component)
	m.AddTag(entity, component)

	require.Equal(t, 1, adds)
	require.True(t, m.Has(entity, component))

	// tags have no payload
	_, ok := m.Get(entity, component)
	require.False(t, ok)
}

func TestRemoveAbsentFiresNothing(t *testing.T) {
	m := NewMemory()
	component := m.NewComponentId()
	entity := m.NewEntity()

	var removes int
	m.OnRemove(component, func(EntityId) { removes += 1 })

	m.Remove(entity, component)
	require.Zero(t, removes)

	m.Set(entity, component, 1)
	m.Remove(entity, component)
	m.Remove(entity, component)
	require.Equal(t, 1, removes)
}

func TestDeleteEntityFiresRemovePerComponent(t *testing.T) {
	m := NewMemory()

	a := m.NewComponentId()
	b := m.NewComponentId()
	c := m.NewComponentId()

	removed := map[ComponentId]int{}
	for _, component := range []ComponentId{a, b, c} {
		m.OnRemove(component, func(EntityId) { removed[component] += 1 })
	}

	entity := m.NewEntity()
	m.Set(entity, a, 1)
	m.Set(entity, b, 2)
	m.AddTag(entity, c)

	m.DeleteEntity(entity)
	require.Equal(t, map[ComponentId]int{a: 1, b: 1, c: 1}, removed)
	require.False(t, m.Has(entity, a))

	// deleting a stale handle is a no-op
	m.DeleteEntity(entity)
	require.Equal(t, map[ComponentId]int{a: 1, b: 1, c: 1}, removed)
}

func TestStaleEntityReadsAreAbsent(t *testing.T) {
	m := NewMemory()
	component := m.NewComponentId()

	entity := m.NewEntity()
	m.Set(entity, component, 1)
	m.DeleteEntity(entity)

	require.False(t, m.Has(entity, component))
	_, ok := m.Get(entity, component)
	require.False(t, ok)
}

func TestSetUnknownEntityPanics(t *testing.T) {
	m := NewMemory()
	component := m.NewComponentId()

	require.Panics(t, func() { m.Set(EntityId(42), component, 1) })
	require.Panics(t, func() { m.AddTag(EntityId(42), component) })
}

func TestIdsAreNeverReused(t *testing.T) {
	m := NewMemory()

	first := m.NewEntity()
	m.DeleteEntity(first)
	second := m.NewEntity()
	require.NotEqual(t, first, second)

	require.NotEqual(t, m.NewComponentId(), m.NewComponentId())
}
