package descriptor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tpom/internal/common"
	"tpom/internal/component"
	"tpom/internal/publication"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// OutputName is the file name a GenerateTask writes.
const OutputName = "pom-default.xml"

// Producer produces a file on demand and reports where it is.
type Producer interface {
	// ID identifies the producer in logs.
	ID() string
	// Produce makes sure the file exists and returns its path.
	Produce(ctx context.Context) (string, error)
}

// TaskID returns the conventional task identifier for a publication.
func TaskID(publicationName string) string {
	return "generatePomFileFor" + common.Capitalize(publicationName) + "Publication"
}

// GenerateTask renders the descriptor of one publication into the build directory.
type GenerateTask struct {
	pub       *publication.Publication
	component *component.Component
	output    string

	once sync.Once
	err  error
}

// NewGenerateTask creates the task for pub, writing under
// <buildDir>/publications/<name>/pom-default.xml.
func NewGenerateTask(pub *publication.Publication, comp *component.Component, buildDir string) *GenerateTask {
	return &GenerateTask{
		pub:       pub,
		component: comp,
		output:    filepath.Join(buildDir, "publications", pub.Name(), OutputName),
	}
}

// ID returns the conventional task identifier.
func (t *GenerateTask) ID() string { return TaskID(t.pub.Name()) }

// Output returns where the descriptor is written.
func (t *GenerateTask) Output() string { return t.output }

// Produce renders the descriptor on first call; later calls return the
// first result.
func (t *GenerateTask) Produce(ctx context.Context) (string, error) {
	t.once.Do(func() {
		t.err = t.run(ctx)
	})

	if t.err != nil {
		return "", t.err
	}

	return t.output, nil
}

func (t *GenerateTask) run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := RenderBytes(ModelFor(t.pub, t.component))
	if err != nil {
		return fmt.Errorf("%s: %w", t.ID(), err)
	}

	if err := os.MkdirAll(filepath.Dir(t.output), dirPerm); err != nil {
		return fmt.Errorf("%s: creating output directory: %w", t.ID(), err)
	}

	if err := os.WriteFile(t.output, data, filePerm); err != nil {
		return fmt.Errorf("%s: writing %s: %w", t.ID(), t.output, err)
	}

	return nil
}
