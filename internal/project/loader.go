package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tpom/internal/component"
	"tpom/internal/publication"
)

// FileName is the conventional build description file name.
const FileName = "tpom.yaml"

// DefaultBuildDir is used when build_dir is unset.
const DefaultBuildDir = "build"

// DefaultJar is the name of the jar declared when none are.
const DefaultJar = "jar"

// LoadFile loads and parses a YAML build description from the given path.
func LoadFile(path string) (*BuildFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a BuildFile.
func Parse(data []byte) (*BuildFile, error) {
	var bf BuildFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&bf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse build YAML: %w", err)
	}

	applyDefaults(&bf)

	return &bf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(bf *BuildFile) {
	if bf.BuildDir == "" {
		bf.BuildDir = DefaultBuildDir
	}

	if len(bf.Components) == 0 {
		bf.Components = []ComponentDef{{
			Name:  component.Primary,
			Roots: []RootDef{{Dir: filepath.ToSlash(filepath.Join(bf.BuildDir, "classes"))}},
		}}
	}

	for i := range bf.Components {
		deps := bf.Components[i].Dependencies
		for j := range deps {
			if deps[j].Scope == "" {
				deps[j].Scope = component.ScopeRuntime
			}
		}
	}

	for i := range bf.Publications {
		if bf.Publications[i].From == "" {
			bf.Publications[i].From = component.Primary
		}
	}

	if len(bf.Jars) == 0 {
		bf.Jars = []JarDef{{Name: DefaultJar}}
	}

	for i := range bf.Jars {
		j := &bf.Jars[i]
		if j.From == "" {
			j.From = component.Primary
		}

		if j.File == "" {
			j.File = filepath.ToSlash(filepath.Join(bf.BuildDir, "libs", jarFileName(bf.Project, j.Name)))
		}
	}
}

// jarFileName follows <name>[-<classifier>][-<version>].jar.
func jarFileName(p ProjectDef, jar string) string {
	base := p.Name
	if base == "" {
		base = "project"
	}

	if jar != DefaultJar {
		base += "-" + jar
	}

	if p.Version != "" && p.Version != publication.Unspecified {
		base += "-" + p.Version
	}

	return base + ".jar"
}

// Identity returns the project identity publications default to.
func (bf *BuildFile) Identity() *publication.Identity {
	return &publication.Identity{
		Group:       bf.Project.Group,
		Name:        bf.Project.Name,
		Version:     bf.Project.Version,
		Description: bf.Project.Description,
	}
}

// Marshal serializes a BuildFile to YAML.
func Marshal(bf *BuildFile) ([]byte, error) {
	return yaml.Marshal(bf)
}

// WriteFile writes a BuildFile to the given path.
func WriteFile(bf *BuildFile, path string) error {
	data, err := Marshal(bf)
	if err != nil {
		return fmt.Errorf("failed to marshal build file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write build file %s: %w", path, err)
	}

	return nil
}
