// Package binding pairs publications with the jars their descriptors are
// embedded in.
//
// The Registry is filled during configuration and read once during
// resolution. It is append-only: bindings are never removed, and their order
// is the order resolution processes them in.
package binding
