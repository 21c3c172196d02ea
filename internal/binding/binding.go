package binding

import (
	"tpom/internal/archive"
	"tpom/internal/publication"
)

// Binding says that pub's descriptor is embedded in target.
type Binding struct {
	publication *publication.Publication
	target      archive.Target
}

// New creates a binding. Both references are required; nil panics.
func New(pub *publication.Publication, target archive.Target) Binding {
	if pub == nil {
		panic("binding: nil publication")
	}

	if target == nil {
		panic("binding: nil archive target")
	}

	return Binding{publication: pub, target: target}
}

// Publication returns the bound publication.
func (b Binding) Publication() *publication.Publication { return b.publication }

// Target returns the archive the descriptor is embedded in.
func (b Binding) Target() archive.Target { return b.target }
