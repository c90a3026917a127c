package sigil

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/sigil-ecs/sigil/store"
)

// typeKey identifies a component type within a Registry. For plain
// components target is nil. Relation identifiers are keyed by the
// (relation, target) type pair.
type typeKey struct {
	component reflect.Type
	target    reflect.Type
}

func (k typeKey) String() string {
	if k.target != nil {
		return k.component.String() + "/" + k.target.String()
	}

	return k.component.String()
}

// entry is the per identifier state owned by the Registry: the raw id
// minted from the store and the signal triple wired to the store's
// lifecycle hooks. Entries are created exactly once per key and live
// for the lifetime of the Registry.
type entry struct {
	id    store.ComponentId
	key   typeKey
	kind  Kind
	tag   bool
	store store.Store

	added   *Signal[EntityId]
	removed *Signal[EntityId]

	// changed is a *Signal[Change[C]]. It is stored erased here and
	// recovered through ComponentId.Changed.
	changed any
}

func (e *entry) set(entity EntityId, value any) {
	if e.tag {
		// tags have no payload to set
		e.store.AddTag(entity, e.id)
		return
	}

	e.store.Set(entity, e.id, value)
}

// Registry owns the mapping from component types to identifiers and
// the signals attached to them. It holds no per entity state, entity
// and component storage stay with the Store.
//
// A Registry is an explicit object: construct one per store and pass
// it to all call sites. Identifiers minted by one Registry are only
// meaningful together with that Registry's store, and separate
// registries (one per test, say) are fully isolated from each other.
type Registry struct {
	store store.Store

	mu      sync.RWMutex
	entries map[typeKey]*entry
}

func NewRegistry(s store.Store) *Registry {
	return &Registry{
		store:   s,
		entries: map[typeKey]*entry{},
	}
}

// Despawn deletes the entity from the store. The removed signal of
// every component the entity held fires through the hooks registered
// when the component was first resolved, this layer does no additional
// bookkeeping.
func (r *Registry) Despawn(entity EntityId) {
	r.store.DeleteEntity(entity)
}

func (r *Registry) lookup(key typeKey) *entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entries[key]
}

func resolveComponent[C IsComponent[C]](r *Registry) *entry {
	key := typeKey{component: reflect.TypeFor[C]()}

	if e := r.lookup(key); e != nil {
		return e
	}

	return createEntry[C](r, key, KindComponent)
}

// createEntry mints the identifier for key and wires its signal triple
// to the store's lifecycle hooks. Unlike the read path this takes the
// write lock and re-checks: minting an identifier is an observable
// store side effect, two concurrent first resolutions of the same key
// must not allocate twice.
func createEntry[C IsComponent[C]](r *Registry, key typeKey, kind Kind) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e := r.entries[key]; e != nil {
		return e
	}

	changed := &Signal[Change[C]]{}

	e := &entry{
		id:      r.store.NewComponentId(),
		key:     key,
		kind:    kind,
		tag:     key.component.Size() == 0,
		store:   r.store,
		added:   &Signal[EntityId]{},
		removed: &Signal[EntityId]{},
		changed: changed,
	}

	r.store.OnAdd(e.id, e.added.Fire)
	r.store.OnRemove(e.id, e.removed.Fire)
	r.store.OnSet(e.id, func(entity EntityId, value any) {
		changed.Fire(Change[C]{Entity: entity, Value: value.(C)})
	})

	r.entries[key] = e

	slog.Debug(
		"New component registered",
		slog.String("name", key.String()),
		slog.Any("id", e.id),
	)

	return e
}
