package sigil

import (
	"fmt"
	"reflect"
)

// Kind distinguishes the flavors sharing the identifier space.
type Kind uint8

const (
	// KindComponent is a plain component or tag identifier.
	KindComponent Kind = iota

	// KindRelationData is a relation identifier whose payload is a
	// plain value.
	KindRelationData

	// KindRelationEntity is a relation identifier whose payload refers
	// to another entity.
	KindRelationEntity
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindRelationData:
		return "relation"
	case KindRelationEntity:
		return "entity-relation"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// RelationOf resolves the identifier for the relation R towards the
// target component type T. Relations live in the same identifier space
// as plain components but are keyed by the (R, T) type pair: the same
// relation type towards two different targets yields two distinct
// identifiers, and both are distinct from ComponentOf[R].
//
// Resolution is idempotent in the same way ComponentOf is.
func RelationOf[R IsComponent[R], T IsComponent[T]](r *Registry) ComponentId[R] {
	return ComponentId[R]{e: resolveRelation[R, T](r, KindRelationData)}
}

// EntityRelationOf is RelationOf for relations whose payload refers to
// another entity rather than carrying plain data. A (R, T) pair is
// either a data relation or an entity relation, resolving it with both
// flavors panics.
func EntityRelationOf[R IsComponent[R], T IsComponent[T]](r *Registry) ComponentId[R] {
	return ComponentId[R]{e: resolveRelation[R, T](r, KindRelationEntity)}
}

func resolveRelation[R IsComponent[R], T IsComponent[T]](r *Registry, kind Kind) *entry {
	key := typeKey{
		component: reflect.TypeFor[R](),
		target:    reflect.TypeFor[T](),
	}

	e := r.lookup(key)
	if e == nil {
		e = createEntry[R](r, key, kind)
	}

	if e.kind != kind {
		panic(fmt.Sprintf(
			"relation %s is already registered with kind %s, not %s",
			e.key, e.kind, kind,
		))
	}

	return e
}
