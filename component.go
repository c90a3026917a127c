package sigil

// IsComponent can be used in a type parameter to ensure that type C is
// a component type.
//
// To implement the IsComponent interface for a type, you must embed the
// Component type.
type IsComponent[C any] interface {
	ErasedComponent
	isComponent(C)
}

// ErasedComponent indicates a type erased component value. A value of
// this type still knows how to resolve its own identifier within a
// Registry, which is what keeps values and identifiers aligned in
// Insert and Spawn.
type ErasedComponent interface {
	resolveInto(r *Registry) *entry
}

// Component is a zero sized type that may be embedded into a struct to
// turn that struct into a component (see IsComponent). A component
// with no fields besides the embedded Component is a tag: it has no
// payload and is attached via the store's tag primitive.
type Component[C IsComponent[C]] struct{}

func (Component[C]) isComponent(C) {}

func (Component[C]) resolveInto(r *Registry) *entry {
	return resolveComponent[C](r)
}

// ValidateComponent should be called to verify that the IsComponent
// interface is correctly implemented.
//
//	type Position struct {
//	   Component[Position]
//	   X, Y float64
//	}
//
//	var _ = ValidateComponent[Position]()
//
// This identifies mistakes in the type parameter passed to Component,
// such as embedding the Component of a different type, during compile
// time.
func ValidateComponent[C IsComponent[C]]() struct{} {
	return struct{}{}
}
