// Package resolve turns bindings into archive instructions.
//
// Resolution runs once, after configuration is closed. For each binding, in
// registration order:
//  1. Read groupId, artifactId and version from the publication
//  2. Validate them (fail fast; "unspecified" counts as no version)
//  3. Compute META-INF/maven/<groupId>/<artifactId>
//  4. Look up the publication's descriptor producer
//  5. Tell the archive to copy the produced file there as pom.xml
//
// A failure stops resolution. Instructions already issued for earlier
// bindings stay issued; they are declarative and nothing is rolled back.
package resolve
