package project

import (
	"fmt"
	"slices"
	"strings"

	"tpom/internal/common"
	"tpom/internal/component"
	"tpom/internal/diagnostic"
)

// Validate checks a build description for structural problems. Publication
// references in pom_to_jar are not checked here; they depend on declaration
// order and are reported by the registry while configuring.
func Validate(bf *BuildFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if bf == nil {
		res.AddError("build_file_is_nil", "build file is nil", "", "")
		return res
	}

	for _, name := range common.Duplicates(bf.Components, func(c ComponentDef) string { return c.Name }) {
		res.AddError("duplicate_component", fmt.Sprintf("duplicate component %q", name), name, "name")
	}

	for _, name := range common.Duplicates(bf.Publications, func(p PublicationDef) string { return p.Name }) {
		res.AddError("duplicate_publication", fmt.Sprintf("duplicate publication %q", name), name, "name")
	}

	for _, name := range common.Duplicates(bf.Jars, func(j JarDef) string { return j.Name }) {
		res.AddError("duplicate_jar", fmt.Sprintf("duplicate jar %q", name), name, "name")
	}

	components := make(map[string]struct{}, len(bf.Components))

	for i := range bf.Components {
		c := &bf.Components[i]
		components[c.Name] = struct{}{}
		validateComponent(res, c)
	}

	for _, p := range bf.Publications {
		if common.IsBlank(p.Name) {
			res.AddError("missing_name", "publication has no name", "", "name")
		}

		if _, ok := components[p.From]; !ok {
			res.AddError("unknown_component",
				fmt.Sprintf("publication %q is from unknown component %q", p.Name, p.From), p.Name, "from")
		}
	}

	jars := make(map[string]struct{}, len(bf.Jars))

	for _, j := range bf.Jars {
		jars[j.Name] = struct{}{}

		if common.IsBlank(j.Name) {
			res.AddError("missing_name", "jar has no name", "", "name")
		}

		if _, ok := components[j.From]; !ok {
			res.AddError("unknown_component",
				fmt.Sprintf("jar %q is from unknown component %q", j.Name, j.From), j.Name, "from")
		}
	}

	for i, m := range bf.PomToJar {
		subject := fmt.Sprintf("pom_to_jar[%d]", i)

		switch {
		case m.Pub != "" && m.NewPub != "":
			res.AddError("invalid_pom_to_jar", "set either pub or new_pub, not both", subject, "pub")
		case m.Pub == "" && m.NewPub == "":
			res.AddError("invalid_pom_to_jar", "one of pub or new_pub is required", subject, "pub")
		}

		if _, ok := jars[m.Jar]; !ok {
			res.AddError("unknown_jar", fmt.Sprintf("unknown jar %q", m.Jar), subject, "jar",
				"declared jars: "+strings.Join(jarNames(bf.Jars), ", "))
		}
	}

	if len(bf.PomToJar) == 0 {
		res.AddWarning("no_bindings", "pom_to_jar is empty; no descriptor will be embedded", "", "pom_to_jar")
	}

	return res
}

func validateComponent(res *diagnostic.Diagnostics, c *ComponentDef) {
	if common.IsBlank(c.Name) {
		res.AddError("missing_name", "component has no name", "", "name")
	}

	for _, r := range c.Roots {
		if common.IsBlank(r.Dir) {
			res.AddError("missing_dir", "component root has no dir", c.Name, "roots")
		}
	}

	for _, d := range c.Dependencies {
		if common.IsBlank(d.Group) || common.IsBlank(d.Artifact) || common.IsBlank(d.Version) {
			res.AddError("incomplete_dependency",
				fmt.Sprintf("dependency %s:%s:%s needs group, artifact and version", d.Group, d.Artifact, d.Version),
				c.Name, "dependencies")
		}

		if !slices.Contains(component.Scopes, d.Scope) {
			res.AddError("invalid_scope",
				fmt.Sprintf("dependency %s:%s has invalid scope %q", d.Group, d.Artifact, d.Scope),
				c.Name, "dependencies", "valid scopes: "+strings.Join(component.Scopes, ", "))
		}
	}
}

func jarNames(jars []JarDef) []string {
	names := make([]string, 0, len(jars))
	for _, j := range jars {
		names = append(names, j.Name)
	}

	return names
}
