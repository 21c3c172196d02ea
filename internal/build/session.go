package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"tpom/internal/archive"
	"tpom/internal/binding"
	"tpom/internal/component"
	"tpom/internal/descriptor"
	"tpom/internal/diagnostic"
	"tpom/internal/project"
	"tpom/internal/publication"
	"tpom/internal/resolve"
)

var (
	// ErrSessionClosed is returned by configuration calls after Close.
	ErrSessionClosed = errors.New("build session is closed")
	// ErrSessionOpen is returned by Execute before Close.
	ErrSessionOpen = errors.New("build session is still being configured")
)

// Options holds configuration for a session.
type Options struct {
	// Dir is the project directory relative paths resolve against.
	Dir string
	// Writer configures jar output.
	Writer archive.WriterConfig
}

// DefaultOptions returns the default session options.
func DefaultOptions() Options {
	return Options{
		Dir:    ".",
		Writer: archive.DefaultWriterConfig(),
	}
}

// Session is one build invocation.
type Session struct {
	id     string
	opts   Options
	logger *slog.Logger

	buildDir     string
	identity     *publication.Identity
	components   *component.Set
	publications *publication.Container
	providers    *descriptor.Providers
	registry     *binding.Registry
	engine       *resolve.Engine

	jars       []*archive.Jar
	jarsByName map[string]*archive.Jar

	configured bool
	closed     bool
}

// NewSession creates an empty session.
func NewSession(opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()
	identity := &publication.Identity{}
	components := component.NewSet()
	publications := publication.NewContainer(identity)
	providers := descriptor.NewProviders()
	logger = logger.With(slog.String("session", id))

	return &Session{
		id:           id,
		opts:         opts,
		logger:       logger,
		buildDir:     filepath.Join(opts.Dir, project.DefaultBuildDir),
		identity:     identity,
		components:   components,
		publications: publications,
		providers:    providers,
		registry:     binding.NewRegistry(publications, components),
		engine:       resolve.NewEngine(providers, logger),
		jarsByName:   make(map[string]*archive.Jar),
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Registry returns the session's mapping registry.
func (s *Session) Registry() *binding.Registry { return s.registry }

// Identity returns the project identity publications fall back to.
func (s *Session) Identity() *publication.Identity { return s.identity }

// Jars returns the declared jars in declaration order.
func (s *Session) Jars() []*archive.Jar {
	return append([]*archive.Jar(nil), s.jars...)
}

// Jar returns the jar declared as name.
func (s *Session) Jar(name string) (*archive.Jar, bool) {
	j, ok := s.jarsByName[name]
	return j, ok
}

// Configure runs the configuration phase over bf.
func (s *Session) Configure(bf *project.BuildFile) error {
	if s.closed {
		return ErrSessionClosed
	}

	if s.configured {
		return errors.New("build session is already configured")
	}

	s.configured = true
	*s.identity = *bf.Identity()
	s.buildDir = s.path(bf.BuildDir)

	for _, def := range bf.Components {
		if err := s.components.Add(s.component(def)); err != nil {
			return err
		}
	}

	for _, def := range bf.Publications {
		if _, err := s.publications.Create(def.Name, func(p *publication.Publication) {
			p.From(def.From)
			p.SetGroupID(def.GroupID)
			p.SetArtifactID(def.ArtifactID)
			p.SetVersion(def.Version)
			p.SetDisplayName(def.DisplayName)
			p.SetDescription(def.Description)
		}); err != nil {
			return err
		}
	}

	for _, def := range bf.Jars {
		if err := s.addJar(def); err != nil {
			return err
		}
	}

	for i, m := range bf.PomToJar {
		if err := s.pomToJar(m); err != nil {
			return fmt.Errorf("pom_to_jar[%d]: %w", i, err)
		}
	}

	s.logger.Debug("Configured build",
		slog.String("project", s.identity.Name),
		slog.Int("jars", len(s.jars)),
		slog.Int("bindings", s.registry.Len()))

	return nil
}

func (s *Session) component(def project.ComponentDef) *component.Component {
	c := &component.Component{Name: def.Name}

	for _, r := range def.Roots {
		c.Roots = append(c.Roots, component.Root{
			Dir:     s.path(r.Dir),
			Include: r.Include,
			Exclude: r.Exclude,
		})
	}

	for _, d := range def.Dependencies {
		c.Dependencies = append(c.Dependencies, component.Dependency{
			Group:    d.Group,
			Artifact: d.Artifact,
			Version:  d.Version,
			Scope:    d.Scope,
		})
	}

	return c
}

func (s *Session) addJar(def project.JarDef) error {
	if _, ok := s.jarsByName[def.Name]; ok {
		return fmt.Errorf("jar %q already exists", def.Name)
	}

	content, err := s.components.ByName(def.From)
	if err != nil {
		return fmt.Errorf("jar %q: %w", def.Name, err)
	}

	jar := archive.NewJar(def.Name, s.path(def.File), content)
	s.jars = append(s.jars, jar)
	s.jarsByName[def.Name] = jar

	return nil
}

func (s *Session) pomToJar(m project.PomToJarDef) error {
	var (
		pub *publication.Publication
		err error
	)

	if m.NewPub != "" {
		pub, err = s.registry.CreatePublication(m.NewPub)
	} else {
		pub, err = s.registry.FindExistingPublication(m.Pub)
	}

	if err != nil {
		return err
	}

	jar, ok := s.jarsByName[m.Jar]
	if !ok {
		return fmt.Errorf("jar %q not found", m.Jar)
	}

	s.registry.Register(pub, jar)

	return nil
}

// Close ends configuration and resolves every binding once.
func (s *Session) Close() error {
	if s.closed {
		return ErrSessionClosed
	}

	s.closed = true

	if err := s.syncProviders(s.providers); err != nil {
		return err
	}

	bindings := s.registry.Bindings()
	s.logger.Info("Resolving descriptor bindings", slog.Int("bindings", len(bindings)))

	if err := s.engine.Resolve(bindings); err != nil {
		return fmt.Errorf("resolving bindings: %w", err)
	}

	return nil
}

// Execute writes every jar and returns the written files.
func (s *Session) Execute(ctx context.Context) ([]string, error) {
	if !s.closed {
		return nil, ErrSessionOpen
	}

	writer := archive.NewWriter(s.opts.Writer, s.logger)
	files := make([]string, 0, len(s.jars))

	for _, jar := range s.jars {
		if err := writer.Write(ctx, jar); err != nil {
			return files, err
		}

		files = append(files, jar.File())
	}

	return files, nil
}

// Check reports every problem resolution would hit. Descriptor tasks are
// built into a scratch provider map, so the session is left as it was.
func (s *Session) Check() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	scratch := descriptor.NewProviders()
	if err := s.syncProviders(scratch); err != nil {
		res.AddError("descriptor_task", err.Error(), "", "")
		return res
	}

	res.Merge(*resolve.NewEngine(scratch, s.logger).Check(s.registry.Bindings()))

	return res
}

// Descriptor returns the descriptor model of the named publication.
func (s *Session) Descriptor(name string) (*descriptor.Model, error) {
	pub, err := s.publications.ByName(name)
	if err != nil {
		return nil, err
	}

	comp, err := s.publicationComponent(pub)
	if err != nil {
		return nil, err
	}

	return descriptor.ModelFor(pub, comp), nil
}

// syncProviders adds a descriptor task to providers for every publication
// that lacks one.
func (s *Session) syncProviders(providers *descriptor.Providers) error {
	for _, pub := range s.publications.All() {
		if providers.Has(pub.Name()) {
			continue
		}

		comp, err := s.publicationComponent(pub)
		if err != nil {
			return err
		}

		task := descriptor.NewGenerateTask(pub, comp, s.buildDir)
		if err := providers.Register(pub.Name(), task); err != nil {
			return err
		}

		s.logger.Debug("Registered descriptor task",
			slog.String("publication", pub.Name()),
			slog.String("task", task.ID()),
			slog.String("output", task.Output()))
	}

	return nil
}

func (s *Session) publicationComponent(pub *publication.Publication) (*component.Component, error) {
	if pub.Component() == "" {
		return nil, nil
	}

	comp, err := s.components.ByName(pub.Component())
	if err != nil {
		return nil, fmt.Errorf("publication %q: %w", pub.Name(), err)
	}

	return comp, nil
}

func (s *Session) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(s.opts.Dir, filepath.FromSlash(p))
}
