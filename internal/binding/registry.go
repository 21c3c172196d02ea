package binding

import (
	"fmt"
	"slices"

	"tpom/internal/archive"
	"tpom/internal/component"
	"tpom/internal/publication"
)

// Registry is the ordered list of bindings of one build session.
type Registry struct {
	publications *publication.Container
	components   *component.Set
	bindings     []Binding
}

// NewRegistry creates an empty registry over the session's publications and components.
func NewRegistry(publications *publication.Container, components *component.Set) *Registry {
	return &Registry{
		publications: publications,
		components:   components,
	}
}

// Register appends a binding of pub to target.
func (r *Registry) Register(pub *publication.Publication, target archive.Target) {
	r.bindings = append(r.bindings, New(pub, target))
}

// Bindings returns the bindings in registration order. The slice is a copy.
func (r *Registry) Bindings() []Binding {
	return slices.Clone(r.bindings)
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int { return len(r.bindings) }

// FindExistingPublication returns a publication declared elsewhere.
func (r *Registry) FindExistingPublication(name string) (*publication.Publication, error) {
	return r.publications.ByName(name)
}

// CreatePublication declares a new publication populated from the primary component.
func (r *Registry) CreatePublication(name string) (*publication.Publication, error) {
	if r.publications.Has(name) {
		return nil, &publication.DuplicateNameError{Name: name}
	}

	primary, err := r.components.Primary()
	if err != nil {
		return nil, fmt.Errorf("creating publication %q: %w", name, err)
	}

	return r.publications.Create(name, func(p *publication.Publication) {
		p.From(primary.Name)
	})
}
