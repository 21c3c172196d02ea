// Package build runs one build session over a build description.
//
// A session has three phases:
//  1. Configure: declare components, publications and jars, and register
//     bindings. No validation happens here.
//  2. Close: resolve all bindings exactly once, issuing embed instructions.
//  3. Execute: write every jar; descriptor tasks run on demand.
package build
