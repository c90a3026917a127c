// Package sigil is a typed component identity and event dispatch layer
// on top of a pluggable entity/component store.
//
// A component type is mapped to a single runtime identifier the first
// time it is resolved and memoized thereafter. Every identifier carries
// three signals, added, changed and removed, which are wired to the
// store's lifecycle hooks at mint time and fire exactly once per
// matching mutation. The typed operations (Set, Get, Has, Add, Remove,
// Insert, Spawn, Despawn) thread the component's static type to the
// right identifier and the right store call, callers never handle raw
// identifiers.
package sigil

import "github.com/sigil-ecs/sigil/store"

// EntityId uniquely identifies an entity in the underlying store.
type EntityId = store.EntityId

const NoEntityId = EntityId(0)
