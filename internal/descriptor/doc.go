// Package descriptor generates Maven descriptors (pom.xml) for publications.
//
// Each publication gets one GenerateTask. Tasks are looked up through an
// explicit Providers mapping keyed by publication name; the conventional
// task ID ("generatePomFileFor<Name>Publication") is kept for logs only.
//
// Rendering uses text/template with an XML-escaping helper, so output is
// stable byte for byte for the same inputs.
package descriptor
