package sigil

import (
	"fmt"
	"reflect"

	"github.com/sigil-ecs/sigil/store"
)

// ComponentId is the typed identifier minted for a component type. The
// type parameter exists only at the type level, a ComponentId carries
// no value of C.
//
// ComponentIds are obtained from ComponentOf, RelationOf or
// EntityRelationOf and stay valid for the lifetime of the Registry
// that minted them. The zero ComponentId was not minted by any
// Registry, using it panics.
type ComponentId[C IsComponent[C]] struct {
	e *entry
}

// Change is the payload of the changed signal: the affected entity and
// the value that was set.
type Change[C IsComponent[C]] struct {
	Entity EntityId
	Value  C
}

// Raw returns the identifier the store minted for this component.
func (c ComponentId[C]) Raw() store.ComponentId {
	return c.live().id
}

// Kind reports which flavor of the identifier space this id belongs to.
func (c ComponentId[C]) Kind() Kind {
	return c.live().kind
}

func (c ComponentId[C]) String() string {
	if c.e == nil {
		return fmt.Sprintf("%s (unresolved)", reflect.TypeFor[C]())
	}

	return fmt.Sprintf("%s#%s", c.e.key, c.e.id)
}

// Added returns the signal that fires with the entity whenever this
// component is first attached to it.
func (c ComponentId[C]) Added() *Signal[EntityId] {
	return c.live().added
}

// Removed returns the signal that fires with the entity whenever this
// component is detached from it, including detachment through Despawn.
func (c ComponentId[C]) Removed() *Signal[EntityId] {
	return c.live().removed
}

// Changed returns the signal that fires with the entity and the new
// value whenever this component is set, including the initial set.
func (c ComponentId[C]) Changed() *Signal[Change[C]] {
	return c.live().changed.(*Signal[Change[C]])
}

// Set stores value for this component on the entity. For tags the
// value has no payload and the attach happens through the store's tag
// primitive instead.
func (c ComponentId[C]) Set(entity EntityId, value C) {
	c.live().set(entity, value)
}

// Get returns the entity's value for this component. The second return
// is false if the entity does not hold the component or the component
// is a tag without payload.
func (c ComponentId[C]) Get(entity EntityId) (C, bool) {
	e := c.live()

	value, ok := e.store.Get(entity, e.id)
	if !ok {
		var zero C
		return zero, false
	}

	return value.(C), true
}

// Has reports whether the entity holds this component.
func (c ComponentId[C]) Has(entity EntityId) bool {
	e := c.live()
	return e.store.Has(entity, e.id)
}

// Add attaches this component to the entity as a tag, without payload.
// Adding an already present component is a no-op.
func (c ComponentId[C]) Add(entity EntityId) {
	e := c.live()
	e.store.AddTag(entity, e.id)
}

// Remove detaches this component from the entity. The removed signal
// fires only if the entity actually held the component.
func (c ComponentId[C]) Remove(entity EntityId) {
	e := c.live()
	e.store.Remove(entity, e.id)
}

func (c ComponentId[C]) live() *entry {
	if c.e == nil {
		panic(fmt.Sprintf(
			"component id for %s was not resolved through a registry",
			reflect.TypeFor[C](),
		))
	}

	return c.e
}
