// Package diagnostic provides structured warnings and errors for build
// description checks.
//
// Key capabilities:
//   - Structural problems in the build description (duplicates, unknown references)
//   - Publications lacking groupId, artifactId or version
//   - Publications without a descriptor provider
//   - Descriptor paths that collide inside one jar
package diagnostic
