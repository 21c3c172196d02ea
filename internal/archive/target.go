package archive

import (
	"context"
	"path"
	"slices"

	"tpom/internal/component"
)

// Source produces a file to be copied into an archive.
type Source interface {
	ID() string
	Produce(ctx context.Context) (string, error)
}

// CopySpec says what to copy and under which name.
type CopySpec struct {
	From   Source
	Rename string
}

// Instruction places a renamed copy of a produced file in Dir.
type Instruction struct {
	Dir  string
	Spec CopySpec
}

// Path returns the entry path the instruction writes.
func (i Instruction) Path() string {
	return path.Join(i.Dir, i.Spec.Rename)
}

// Target is an archive that accepts copy instructions.
type Target interface {
	Name() string
	Into(dir string, spec CopySpec)
}

// Jar is a jar file under construction.
type Jar struct {
	name         string
	file         string
	content      *component.Component
	instructions []Instruction
}

// NewJar creates a jar named name, written to file, packaging content (may be nil).
func NewJar(name, file string, content *component.Component) *Jar {
	return &Jar{name: name, file: file, content: content}
}

// Name returns the jar's name.
func (j *Jar) Name() string { return j.name }

// File returns the path the jar is written to.
func (j *Jar) File() string { return j.file }

// Content returns the packaged component, or nil.
func (j *Jar) Content() *component.Component { return j.content }

// Into records an instruction.
func (j *Jar) Into(dir string, spec CopySpec) {
	j.instructions = append(j.instructions, Instruction{Dir: dir, Spec: spec})
}

// Instructions returns the recorded instructions in issue order.
func (j *Jar) Instructions() []Instruction {
	return slices.Clone(j.instructions)
}
