package component

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Primary is the name of the conventional primary build output.
const Primary = "java"

// Maven dependency scopes.
const (
	ScopeCompile  = "compile"
	ScopeRuntime  = "runtime"
	ScopeProvided = "provided"
	ScopeTest     = "test"
)

// Scopes lists every accepted dependency scope.
var Scopes = []string{ScopeCompile, ScopeRuntime, ScopeProvided, ScopeTest}

// Root is a directory whose matching files are packaged.
type Root struct {
	// Dir is the filesystem directory; a missing directory contributes nothing.
	Dir string
	// Include patterns, relative to Dir. Empty means "**".
	Include []string
	// Exclude patterns, relative to Dir.
	Exclude []string
}

// Dependency is an external module the component needs at runtime.
type Dependency struct {
	Group    string
	Artifact string
	Version  string
	Scope    string
}

// Coordinates returns group:artifact:version.
func (d Dependency) Coordinates() string {
	return d.Group + ":" + d.Artifact + ":" + d.Version
}

// Component is a named set of packaged files plus dependencies.
type Component struct {
	Name         string
	Roots        []Root
	Dependencies []Dependency
}

// Entry is a file to place in an archive.
type Entry struct {
	// Path is the slash-separated path inside the archive.
	Path string
	// Source is the file on disk.
	Source string
}

// Files expands all roots into archive entries sorted by path.
func (c *Component) Files() ([]Entry, error) {
	var entries []Entry

	seen := make(map[string]string)

	for _, root := range c.Roots {
		matched, err := root.expand()
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Name, err)
		}

		for _, rel := range matched {
			src := filepath.Join(root.Dir, filepath.FromSlash(rel))
			if prev, ok := seen[rel]; ok {
				return nil, fmt.Errorf("component %s: entry %q provided by both %s and %s",
					c.Name, rel, prev, src)
			}

			seen[rel] = src
			entries = append(entries, Entry{Path: rel, Source: src})
		}
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})

	return entries, nil
}

func (r Root) expand() ([]string, error) {
	info, err := os.Stat(r.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading root %s: %w", r.Dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", r.Dir)
	}

	include := r.Include
	if len(include) == 0 {
		include = []string{"**"}
	}

	fsys := os.DirFS(r.Dir)
	found := make(map[string]struct{})

	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			excluded, err := r.excluded(m)
			if err != nil {
				return nil, err
			}

			if !excluded {
				found[m] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for m := range found {
		out = append(out, m)
	}

	slices.Sort(out)

	return out, nil
}

func (r Root) excluded(rel string) (bool, error) {
	for _, pattern := range r.Exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}
