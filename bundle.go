package sigil

// Bundle groups multiple components into a single value that can be
// passed to Spawn and Insert. Bundles may nest, they are flattened in
// argument order before any component is attached.
func Bundle(components ...ErasedComponent) ErasedComponent {
	return &bundleComponent{components: components}
}

type bundleComponent struct {
	Component[bundleComponent]
	components []ErasedComponent
}

func flattenComponents(target []ErasedComponent, components ...ErasedComponent) []ErasedComponent {
	for _, component := range components {
		if bundle, ok := component.(*bundleComponent); ok {
			// recurse into the bundle and flatten its components
			target = flattenComponents(target, bundle.components...)
		} else {
			target = append(target, component)
		}
	}

	return target
}
