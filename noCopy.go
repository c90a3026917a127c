package sigil

// noCopy is embedded into types that must not be copied after first
// use, so that "go vet" can flag accidental copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
