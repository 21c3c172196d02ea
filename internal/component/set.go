package component

import "fmt"

// NotFoundError is returned when no component has the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component with name %q not found", e.Name)
}

// Set holds the components of one project.
type Set struct {
	byName map[string]*Component
	order  []string
}

// NewSet creates an empty component set.
func NewSet() *Set {
	return &Set{byName: make(map[string]*Component)}
}

// Add registers c; names must be unique.
func (s *Set) Add(c *Component) error {
	if _, ok := s.byName[c.Name]; ok {
		return fmt.Errorf("component %q already exists", c.Name)
	}

	s.byName[c.Name] = c
	s.order = append(s.order, c.Name)

	return nil
}

// ByName returns the component called name.
func (s *Set) ByName(name string) (*Component, error) {
	c, ok := s.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	return c, nil
}

// Primary returns the conventional primary component.
func (s *Set) Primary() (*Component, error) {
	return s.ByName(Primary)
}

// Names returns component names in registration order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}
