package descriptor

import (
	"encoding/xml"
	"fmt"

	"tpom/internal/component"
	"tpom/internal/publication"
)

// ModelVersion is the POM model version written to every descriptor.
const ModelVersion = "4.0.0"

// Model is the subset of the Maven POM this tool writes and reads.
type Model struct {
	XMLName      xml.Name     `xml:"project"`
	ModelVersion string       `xml:"modelVersion"`
	GroupID      string       `xml:"groupId"`
	ArtifactID   string       `xml:"artifactId"`
	Version      string       `xml:"version"`
	Name         string       `xml:"name,omitempty"`
	Description  string       `xml:"description,omitempty"`
	Dependencies []Dependency `xml:"dependencies>dependency,omitempty"`
}

// Dependency is one <dependency> element.
type Dependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope,omitempty"`
}

// Coordinates returns groupId:artifactId:version.
func (m *Model) Coordinates() string {
	return m.GroupID + ":" + m.ArtifactID + ":" + m.Version
}

// ModelFor builds the descriptor model of pub; comp may be nil.
func ModelFor(pub *publication.Publication, comp *component.Component) *Model {
	m := &Model{
		ModelVersion: ModelVersion,
		GroupID:      pub.GroupID(),
		ArtifactID:   pub.ArtifactID(),
		Version:      pub.Version(),
		Name:         pub.DisplayName(),
		Description:  pub.Description(),
	}

	if comp != nil {
		for _, d := range comp.Dependencies {
			m.Dependencies = append(m.Dependencies, Dependency{
				GroupID:    d.Group,
				ArtifactID: d.Artifact,
				Version:    d.Version,
				Scope:      d.Scope,
			})
		}
	}

	return m
}

// Parse decodes a descriptor.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	return &m, nil
}
