package publication

import "cmp"

// Unspecified is the version a publication reports when neither it nor the
// project sets one.
const Unspecified = "unspecified"

// Identity is the project-wide identity context publications default to.
type Identity struct {
	Group       string
	Name        string
	Version     string
	Description string
}

// Publication is a named declaration of package identity.
type Publication struct {
	name      string
	project   *Identity
	component string

	groupID     string
	artifactID  string
	version     string
	displayName string
	description string
}

// Name returns the publication's unique name.
func (p *Publication) Name() string { return p.name }

// Component returns the name of the component the publication was populated from.
func (p *Publication) Component() string { return p.component }

// GroupID returns the explicit groupId or the project group. Only an empty
// value falls back; a whitespace value is kept and fails resolution.
func (p *Publication) GroupID() string {
	return cmp.Or(p.groupID, p.project.Group)
}

// ArtifactID returns the explicit artifactId or the project name.
func (p *Publication) ArtifactID() string {
	return cmp.Or(p.artifactID, p.project.Name)
}

// Version returns the explicit version, the project version, or Unspecified.
func (p *Publication) Version() string {
	return cmp.Or(p.version, p.project.Version, Unspecified)
}

// DisplayName returns the human readable name written to the descriptor.
func (p *Publication) DisplayName() string {
	return cmp.Or(p.displayName, p.project.Name)
}

// Description returns the explicit description or the project description.
func (p *Publication) Description() string {
	return cmp.Or(p.description, p.project.Description)
}

// From records the component the publication packages.
func (p *Publication) From(component string) { p.component = component }

// SetGroupID overrides the project group.
func (p *Publication) SetGroupID(v string) { p.groupID = v }

// SetArtifactID overrides the project name.
func (p *Publication) SetArtifactID(v string) { p.artifactID = v }

// SetVersion overrides the project version.
func (p *Publication) SetVersion(v string) { p.version = v }

// SetDisplayName overrides the project name in the descriptor's name element.
func (p *Publication) SetDisplayName(v string) { p.displayName = v }

// SetDescription overrides the project description.
func (p *Publication) SetDescription(v string) { p.description = v }
