package resolve

import (
	"errors"
	"fmt"
)

// Identity field names reported by MissingIdentityError.
const (
	FieldGroupID    = "groupId"
	FieldArtifactID = "artifactId"
	FieldVersion    = "version"
)

// ErrAlreadyResolved is returned when Resolve runs a second time.
var ErrAlreadyResolved = errors.New("bindings already resolved for this session")

// MissingIdentityError reports a publication whose identity field is blank
// or unspecified at resolution time.
type MissingIdentityError struct {
	Publication string
	Field       string
}

func (e *MissingIdentityError) Error() string {
	return fmt.Sprintf("publication '%s' has no %s: %s",
		e.Publication, e.Field, Remedy(e.Publication, e.Field))
}

// Remedy returns the fix suggested for a missing field.
func Remedy(pub, field string) string {
	switch field {
	case FieldGroupID:
		return fmt.Sprintf("either give publication '%s' a groupId or set a group for the project", pub)
	case FieldArtifactID:
		return fmt.Sprintf("either give publication '%s' an artifactId or set a name for the project", pub)
	case FieldVersion:
		return fmt.Sprintf("either give publication '%s' a version or set a version for the project", pub)
	default:
		return fmt.Sprintf("set %s on publication '%s'", field, pub)
	}
}
