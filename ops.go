package sigil

import "reflect"

// ComponentOf resolves the identifier for the component type C,
// minting it on first use. Resolution is idempotent: every call
// returns the same identifier and the store allocation happens exactly
// once per Registry. The identifier's added, changed and removed
// signals are live as soon as ComponentOf returns, before any entity
// has used the component.
func ComponentOf[C IsComponent[C]](r *Registry) ComponentId[C] {
	return ComponentId[C]{e: resolveComponent[C](r)}
}

// Set stores value for the component type C on the entity. The first
// set on an entity fires the added signal, every set fires the changed
// signal, both through the store's lifecycle hooks.
func Set[C IsComponent[C]](r *Registry, entity EntityId, value C) {
	ComponentOf[C](r).Set(entity, value)
}

// Get returns the entity's value for the component type C. Absence is
// not an error: the second return is false if the entity does not hold
// the component or C is a tag without payload.
func Get[C IsComponent[C]](r *Registry, entity EntityId) (C, bool) {
	return ComponentOf[C](r).Get(entity)
}

// Has reports whether the entity holds the component type C.
func Has[C IsComponent[C]](r *Registry, entity EntityId) bool {
	return ComponentOf[C](r).Has(entity)
}

// Add attaches the component type C to the entity as a tag, without
// payload. Adding an already present component is a no-op and fires
// nothing.
func Add[C IsComponent[C]](r *Registry, entity EntityId) {
	ComponentOf[C](r).Add(entity)
}

// Remove detaches the component type C from the entity. The removed
// signal fires only if the entity actually held the component.
func Remove[C IsComponent[C]](r *Registry, entity EntityId) {
	ComponentOf[C](r).Remove(entity)
}

// Insert attaches all given components to the entity in argument
// order. Every value carries its own component type, so values and
// identifiers cannot get out of step. Bundles are flattened first,
// also in argument order.
func Insert(r *Registry, entity EntityId, components ...ErasedComponent) {
	for _, component := range flattenComponents(nil, components...) {
		component.resolveInto(r).set(entity, derefComponent(component))
	}
}

// derefComponent unwraps components passed by pointer so that stored
// values always carry the component type itself.
func derefComponent(component ErasedComponent) any {
	rv := reflect.ValueOf(component)
	if rv.Kind() == reflect.Pointer {
		return rv.Elem().Interface()
	}

	return component
}

// Spawn allocates a new entity and attaches the given components in
// argument order. Spawn with no arguments yields a bare entity.
func Spawn(r *Registry, components ...ErasedComponent) EntityId {
	entity := r.store.NewEntity()
	Insert(r, entity, components...)

	return entity
}
