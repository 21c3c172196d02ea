// Package component describes software components: the set of files a jar
// packages and the runtime dependencies a descriptor lists.
//
// Content roots are expanded with doublestar patterns, so "**/*.class" picks
// up classes at any depth. Expansion is sorted and stable.
package component
