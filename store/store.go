// Package store defines the boundary to the entity/component storage
// engine that sigil sits on top of. The Store interface is the minimum
// contract sigil requires: entity allocation, component identifier
// allocation, raw get/set/add/remove/has keyed by opaque identifiers,
// and synchronous lifecycle hooks. Memory is a small map-backed
// reference implementation of that contract.
package store

import (
	"log/slog"
	"strconv"
)

// EntityId uniquely identifies an entity within a Store.
type EntityId uint32

func (e EntityId) String() string {
	return strconv.Itoa(int(e))
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// ComponentId is the raw handle minted for a component type. Ids are
// unique for the lifetime of the Store and are never reused.
type ComponentId uint32

func (c ComponentId) String() string {
	return strconv.Itoa(int(c))
}

func (c ComponentId) LogValue() slog.Value {
	return slog.StringValue(c.String())
}

// Store is the storage engine sigil forwards all mutations to.
//
// Every hook registered with OnAdd, OnRemove or OnSet must be invoked
// synchronously, exactly once per matching mutation, after the
// mutation has been applied to storage. OnSet hooks fire on every set,
// including the one that first attaches the component, in which case
// the OnAdd hook fires first.
type Store interface {
	// NewEntity allocates a fresh entity.
	NewEntity() EntityId

	// DeleteEntity removes the entity and all of its components,
	// invoking the OnRemove hook for every component the entity held.
	// Deleting an unknown entity does nothing.
	DeleteEntity(entity EntityId)

	// NewComponentId mints a fresh component identifier.
	NewComponentId() ComponentId

	// Set stores value for the component on the entity.
	Set(entity EntityId, component ComponentId, value any)

	// Get returns the stored value. It reports absent for entities
	// that do not hold the component and for tags, which have no
	// payload.
	Get(entity EntityId, component ComponentId) (any, bool)

	// AddTag attaches the component without a payload. Adding an
	// already present component is a no-op.
	AddTag(entity EntityId, component ComponentId)

	// Remove detaches the component if present.
	Remove(entity EntityId, component ComponentId)

	// Has reports whether the entity holds the component.
	Has(entity EntityId, component ComponentId) bool

	OnAdd(component ComponentId, fn func(EntityId))
	OnRemove(component ComponentId, fn func(EntityId))
	OnSet(component ComponentId, fn func(EntityId, any))
}
