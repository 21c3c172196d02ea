package descriptor

import (
	"fmt"
	"sort"
)

// ProviderNotFoundError is returned when no producer is registered for a publication.
type ProviderNotFoundError struct {
	Publication string
}

func (e *ProviderNotFoundError) Error() string {
	return fmt.Sprintf("no descriptor provider registered for publication %q (expected task %s)",
		e.Publication, TaskID(e.Publication))
}

// Providers maps publication names to descriptor producers.
type Providers struct {
	byName map[string]Producer
}

// NewProviders creates an empty mapping.
func NewProviders() *Providers {
	return &Providers{byName: make(map[string]Producer)}
}

// Register binds a producer to a publication name.
func (p *Providers) Register(publication string, producer Producer) error {
	if _, ok := p.byName[publication]; ok {
		return fmt.Errorf("descriptor provider for publication %q already registered", publication)
	}

	p.byName[publication] = producer

	return nil
}

// Has reports whether a producer is registered for publication.
func (p *Providers) Has(publication string) bool {
	_, ok := p.byName[publication]
	return ok
}

// Lookup returns the producer of publication's descriptor.
func (p *Providers) Lookup(publication string) (Producer, error) {
	producer, ok := p.byName[publication]
	if !ok {
		return nil, &ProviderNotFoundError{Publication: publication}
	}

	return producer, nil
}

// Names returns the registered publication names, sorted.
func (p *Providers) Names() []string {
	names := make([]string, 0, len(p.byName))
	for n := range p.byName {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}
