package project

// BuildFile is the root of a build description.
type BuildFile struct {
	Project      ProjectDef       `yaml:"project"`
	BuildDir     string           `yaml:"build_dir,omitempty"`
	Components   []ComponentDef   `yaml:"components,omitempty"`
	Publications []PublicationDef `yaml:"publications,omitempty"`
	Jars         []JarDef         `yaml:"jars,omitempty"`
	PomToJar     []PomToJarDef    `yaml:"pom_to_jar,omitempty"`
}

// ProjectDef holds the project-wide identity.
type ProjectDef struct {
	Group       string `yaml:"group,omitempty"`
	Name        string `yaml:"name,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// ComponentDef declares a component.
type ComponentDef struct {
	Name         string          `yaml:"name"`
	Roots        []RootDef       `yaml:"roots,omitempty"`
	Dependencies []DependencyDef `yaml:"dependencies,omitempty"`
}

// RootDef is one content directory of a component.
type RootDef struct {
	Dir     string   `yaml:"dir"`
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// DependencyDef is a runtime dependency written to descriptors.
type DependencyDef struct {
	Group    string `yaml:"group"`
	Artifact string `yaml:"artifact"`
	Version  string `yaml:"version"`
	Scope    string `yaml:"scope,omitempty"`
}

// PublicationDef declares a publication up front.
type PublicationDef struct {
	Name        string `yaml:"name"`
	From        string `yaml:"from,omitempty"`
	GroupID     string `yaml:"group_id,omitempty"`
	ArtifactID  string `yaml:"artifact_id,omitempty"`
	Version     string `yaml:"version,omitempty"`
	DisplayName string `yaml:"display_name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// JarDef declares a jar.
type JarDef struct {
	Name string `yaml:"name"`
	File string `yaml:"file,omitempty"`
	From string `yaml:"from,omitempty"`
}

// PomToJarDef embeds a publication's descriptor into a jar. Exactly one of
// Pub (existing publication) or NewPub (created from the primary component)
// is set.
type PomToJarDef struct {
	Pub    string `yaml:"pub,omitempty"`
	NewPub string `yaml:"new_pub,omitempty"`
	Jar    string `yaml:"jar"`
}

// PublicationName returns whichever of Pub or NewPub is set.
func (d PomToJarDef) PublicationName() string {
	if d.NewPub != "" {
		return d.NewPub
	}

	return d.Pub
}
