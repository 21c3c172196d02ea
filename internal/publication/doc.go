// Package publication models named package identities (group, artifact,
// version) and the container they are declared in.
//
// A Publication reads its identity lazily: fields left unset fall back to
// the project Identity at the moment they are read, so a publication created
// before the project version is assigned still sees the final value.
//
//	groupId     -> project.group
//	artifactId  -> project.name
//	version     -> project.version (or "unspecified")
//	name        -> project.name
//	description -> project.description
package publication
