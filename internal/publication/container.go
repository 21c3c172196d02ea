package publication

import (
	"errors"
	"slices"

	"tpom/internal/common"
)

// Container is an ordered set of publications, unique by name.
type Container struct {
	project *Identity
	pubs    []*Publication
	byName  map[string]*Publication
}

// NewContainer creates an empty container whose publications default to project.
func NewContainer(project *Identity) *Container {
	if project == nil {
		project = &Identity{}
	}

	return &Container{
		project: project,
		byName:  make(map[string]*Publication),
	}
}

// Project returns the identity publications fall back to.
func (c *Container) Project() *Identity { return c.project }

// Create declares a new publication and applies configure to it.
func (c *Container) Create(name string, configure func(*Publication)) (*Publication, error) {
	if common.IsBlank(name) {
		return nil, errors.New("publication name must not be blank")
	}

	if c.Has(name) {
		return nil, &DuplicateNameError{Name: name}
	}

	p := &Publication{name: name, project: c.project}
	if configure != nil {
		configure(p)
	}

	c.pubs = append(c.pubs, p)
	c.byName[name] = p

	return p, nil
}

// ByName returns the publication declared under name.
func (c *Container) ByName(name string) (*Publication, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	return p, nil
}

// Has reports whether a publication named name exists.
func (c *Container) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// All returns the publications in declaration order.
func (c *Container) All() []*Publication {
	return slices.Clone(c.pubs)
}
