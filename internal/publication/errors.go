package publication

import "fmt"

// NotFoundError is returned when no publication has the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("publication with name %q not found", e.Name)
}

// DuplicateNameError is returned when a publication name is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("cannot add publication %q: a publication with that name already exists", e.Name)
}
