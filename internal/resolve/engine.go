package resolve

import (
	"fmt"
	"log/slog"
	"path"

	"tpom/internal/archive"
	"tpom/internal/binding"
	"tpom/internal/common"
	"tpom/internal/descriptor"
	"tpom/internal/diagnostic"
	"tpom/internal/publication"
)

const (
	// MetadataRoot is where Maven metadata lives inside a jar.
	MetadataRoot = "META-INF/maven"
	// DescriptorName is the name every embedded descriptor is renamed to.
	DescriptorName = "pom.xml"
)

// ProviderLookup finds the descriptor producer of a publication.
type ProviderLookup interface {
	Lookup(publication string) (descriptor.Producer, error)
}

// MetadataDir returns META-INF/maven/<groupId>/<artifactId>.
func MetadataDir(groupID, artifactID string) string {
	return MetadataRoot + "/" + groupID + "/" + artifactID
}

// DescriptorPath returns the entry path of the embedded descriptor.
func DescriptorPath(groupID, artifactID string) string {
	return path.Join(MetadataDir(groupID, artifactID), DescriptorName)
}

// Engine resolves the bindings of one build session.
type Engine struct {
	providers ProviderLookup
	logger    *slog.Logger
	resolved  bool
}

// NewEngine creates an Engine.
func NewEngine(providers ProviderLookup, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{providers: providers, logger: logger}
}

// Resolved reports whether Resolve has run.
func (e *Engine) Resolved() bool { return e.resolved }

// Resolve validates every binding and issues its embed instruction.
// It may be called once; later calls return ErrAlreadyResolved.
func (e *Engine) Resolve(bindings []binding.Binding) error {
	if e.resolved {
		return ErrAlreadyResolved
	}

	e.resolved = true

	for _, b := range bindings {
		if err := e.resolveBinding(b); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) resolveBinding(b binding.Binding) error {
	pub := b.Publication()

	if err := Validate(pub); err != nil {
		return err
	}

	producer, err := e.providers.Lookup(pub.Name())
	if err != nil {
		return fmt.Errorf("resolving publication '%s': %w", pub.Name(), err)
	}

	dir := MetadataDir(pub.GroupID(), pub.ArtifactID())
	b.Target().Into(dir, archive.CopySpec{From: producer, Rename: DescriptorName})

	e.logger.Debug("Embedding descriptor",
		slog.String("publication", pub.Name()),
		slog.String("task", producer.ID()),
		slog.String("jar", b.Target().Name()),
		slog.String("dir", dir))

	return nil
}

// Validate checks groupId, artifactId and version in that order and returns
// the first violation.
func Validate(pub *publication.Publication) error {
	if missing := missingFields(pub); len(missing) > 0 {
		return &MissingIdentityError{Publication: pub.Name(), Field: missing[0]}
	}

	return nil
}

// Check reports every problem Resolve would hit, without issuing
// instructions or consuming the engine.
func (e *Engine) Check(bindings []binding.Binding) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	paths := make(map[archive.Target]map[string]string)

	for _, b := range bindings {
		pub := b.Publication()
		missing := missingFields(pub)

		for _, field := range missing {
			res.AddError(missingCode(field),
				fmt.Sprintf("publication has no %s", field),
				pub.Name(), field, Remedy(pub.Name(), field))
		}

		if _, err := e.providers.Lookup(pub.Name()); err != nil {
			res.AddError("missing_descriptor_provider", err.Error(), pub.Name(), "")
		}

		if len(missing) > 0 {
			continue
		}

		target := b.Target()
		if paths[target] == nil {
			paths[target] = make(map[string]string)
		}

		p := DescriptorPath(pub.GroupID(), pub.ArtifactID())
		if prev, ok := paths[target][p]; ok {
			res.AddError("duplicate_descriptor_path",
				fmt.Sprintf("%s in jar %s is already embedded for publication '%s'", p, target.Name(), prev),
				pub.Name(), "")

			continue
		}

		paths[target][p] = pub.Name()
		res.AddInfo("embed", fmt.Sprintf("%s -> %s:%s", pub.Name(), target.Name(), p), pub.Name(), "")
	}

	return res
}

func missingFields(pub *publication.Publication) []string {
	var missing []string

	if common.IsBlank(pub.GroupID()) {
		missing = append(missing, FieldGroupID)
	}

	if common.IsBlank(pub.ArtifactID()) {
		missing = append(missing, FieldArtifactID)
	}

	if v := pub.Version(); common.IsBlank(v) || v == publication.Unspecified {
		missing = append(missing, FieldVersion)
	}

	return missing
}

func missingCode(field string) string {
	switch field {
	case FieldGroupID:
		return "missing_group_id"
	case FieldArtifactID:
		return "missing_artifact_id"
	default:
		return "missing_version"
	}
}
