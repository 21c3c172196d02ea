package resolve

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"tpom/internal/archive"
	"tpom/internal/binding"
	"tpom/internal/descriptor"
	"tpom/internal/publication"
)

// recordingTarget is an archive sink that logs every instruction, in call
// order, to a log shared between targets.
type recordingTarget struct {
	name string
	log  *[]string
	got  []archive.Instruction
}

func (r *recordingTarget) Name() string { return r.name }

func (r *recordingTarget) Into(dir string, spec archive.CopySpec) {
	*r.log = append(*r.log, r.name+":"+dir+"/"+spec.Rename)
	r.got = append(r.got, archive.Instruction{Dir: dir, Spec: spec})
}

type stubProducer struct{ id string }

func (s stubProducer) ID() string { return s.id }

func (s stubProducer) Produce(context.Context) (string, error) { return "/dev/null", nil }

type fixture struct {
	pubs      *publication.Container
	providers *descriptor.Providers
	log       []string
}

func newFixture() *fixture {
	return &fixture{
		pubs:      publication.NewContainer(&publication.Identity{}),
		providers: descriptor.NewProviders(),
	}
}

func (f *fixture) publication(t require.TestingT, name, group, artifact, version string) *publication.Publication {
	pub, err := f.pubs.Create(name, func(p *publication.Publication) {
		p.SetGroupID(group)
		p.SetArtifactID(artifact)
		p.SetVersion(version)
	})
	require.NoError(t, err)
	require.NoError(t, f.providers.Register(name, stubProducer{id: descriptor.TaskID(name)}))

	return pub
}

func (f *fixture) target(name string) *recordingTarget {
	return &recordingTarget{name: name, log: &f.log}
}

func TestMetadataDir(t *testing.T) {
	assert.Equal(t, "META-INF/maven/com.example/pom-test-jar", MetadataDir("com.example", "pom-test-jar"))
	assert.Equal(t, "META-INF/maven/com.example/pom-test-jar/pom.xml", DescriptorPath("com.example", "pom-test-jar"))
}

func TestResolve_SingleBinding(t *testing.T) {
	f := newFixture()
	pub := f.publication(t, "Java", "com.example", "pom-test-jar", "0.0.1")
	jar := f.target("jar")

	engine := NewEngine(f.providers, nil)
	require.NoError(t, engine.Resolve([]binding.Binding{binding.New(pub, jar)}))
	assert.True(t, engine.Resolved())

	require.Len(t, jar.got, 1)
	assert.Equal(t, "META-INF/maven/com.example/pom-test-jar", jar.got[0].Dir)
	assert.Equal(t, "pom.xml", jar.got[0].Spec.Rename)
	assert.Equal(t, "generatePomFileForJavaPublication", jar.got[0].Spec.From.ID())
	assert.Equal(t, "META-INF/maven/com.example/pom-test-jar/pom.xml", jar.got[0].Path())
}

func TestResolve_MissingFields(t *testing.T) {
	tests := []struct {
		name                     string
		group, artifact, version string
		field                    string
		remedy                   string
	}{
		{"blank group", "", "a", "1", FieldGroupID, "a groupId or set a group for the project"},
		{"whitespace group", "  ", "a", "1", FieldGroupID, "a groupId"},
		{"blank artifact", "g", "", "1", FieldArtifactID, "an artifactId or set a name for the project"},
		{"blank version", "g", "a", "", FieldVersion, "a version or set a version for the project"},
		{"unspecified version", "g", "a", publication.Unspecified, FieldVersion, "a version"},
		{"group reported first", "", "", "", FieldGroupID, "a groupId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			pub := f.publication(t, "MyPub", tt.group, tt.artifact, tt.version)
			jar := f.target("jar")

			err := NewEngine(f.providers, nil).Resolve([]binding.Binding{binding.New(pub, jar)})

			var mi *MissingIdentityError
			require.True(t, errors.As(err, &mi), "got %v", err)
			assert.Equal(t, "MyPub", mi.Publication)
			assert.Equal(t, tt.field, mi.Field)
			assert.Contains(t, err.Error(), "publication 'MyPub'")
			assert.Contains(t, err.Error(), tt.remedy)
			assert.Empty(t, jar.got)
		})
	}
}

func TestResolve_ExplicitWhitespaceGroupDoesNotFallBack(t *testing.T) {
	f := newFixture()
	f.pubs = publication.NewContainer(&publication.Identity{Group: "proj.group", Name: "n", Version: "1"})

	pub, err := f.pubs.Create("Java", func(p *publication.Publication) { p.SetGroupID("   ") })
	require.NoError(t, err)
	require.NoError(t, f.providers.Register("Java", stubProducer{id: descriptor.TaskID("Java")}))

	err = NewEngine(f.providers, nil).Resolve([]binding.Binding{binding.New(pub, f.target("jar"))})

	var mi *MissingIdentityError
	require.True(t, errors.As(err, &mi), "got %v", err)
	assert.Equal(t, FieldGroupID, mi.Field)
	assert.Empty(t, f.log)
}

func TestResolve_OnlyOnce(t *testing.T) {
	f := newFixture()
	pub := f.publication(t, "Java", "g", "a", "1")
	jar := f.target("jar")
	bindings := []binding.Binding{binding.New(pub, jar)}

	engine := NewEngine(f.providers, nil)
	require.NoError(t, engine.Resolve(bindings))
	require.ErrorIs(t, engine.Resolve(bindings), ErrAlreadyResolved)
	assert.Len(t, jar.got, 1)
}

func TestResolve_FailedResolutionIsStillConsumed(t *testing.T) {
	f := newFixture()
	pub := f.publication(t, "Java", "", "a", "1")

	engine := NewEngine(f.providers, nil)
	require.Error(t, engine.Resolve([]binding.Binding{binding.New(pub, f.target("jar"))}))
	require.ErrorIs(t, engine.Resolve(nil), ErrAlreadyResolved)
}

func TestResolve_MissingProvider(t *testing.T) {
	f := newFixture()
	pub, err := f.pubs.Create("Orphan", func(p *publication.Publication) {
		p.SetGroupID("g")
		p.SetArtifactID("a")
		p.SetVersion("1")
	})
	require.NoError(t, err)

	jar := f.target("jar")
	err = NewEngine(f.providers, nil).Resolve([]binding.Binding{binding.New(pub, jar)})

	var nf *descriptor.ProviderNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Orphan", nf.Publication)
	assert.Empty(t, jar.got)
}

func TestResolve_AbortKeepsEarlierInstructions(t *testing.T) {
	f := newFixture()
	first := f.publication(t, "First", "g", "first", "1")
	broken := f.publication(t, "Broken", "g", "broken", publication.Unspecified)
	last := f.publication(t, "Last", "g", "last", "1")

	jarA := f.target("a")
	jarB := f.target("b")

	err := NewEngine(f.providers, nil).Resolve([]binding.Binding{
		binding.New(first, jarA),
		binding.New(broken, jarB),
		binding.New(last, jarA),
	})

	var mi *MissingIdentityError
	require.True(t, errors.As(err, &mi))
	assert.Equal(t, "Broken", mi.Publication)
	assert.Equal(t, FieldVersion, mi.Field)

	assert.Equal(t, []string{"a:META-INF/maven/g/first/pom.xml"}, f.log)
	assert.Len(t, jarA.got, 1)
	assert.Empty(t, jarB.got)
}

func TestCheck_ReportsEverything(t *testing.T) {
	f := newFixture()
	ok := f.publication(t, "Ok", "g", "a", "1")
	clash := f.publication(t, "Clash", "g", "a", "2")
	bad := f.publication(t, "Bad", "", "", "")
	orphan, err := f.pubs.Create("Orphan", func(p *publication.Publication) {
		p.SetGroupID("g")
		p.SetArtifactID("o")
		p.SetVersion("1")
	})
	require.NoError(t, err)

	jar := f.target("jar")
	other := f.target("other")

	engine := NewEngine(f.providers, nil)
	diags := engine.Check([]binding.Binding{
		binding.New(ok, jar),
		binding.New(clash, jar),
		binding.New(clash, other),
		binding.New(bad, jar),
		binding.New(orphan, jar),
	})

	var codes []string
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}

	assert.Equal(t, []string{
		"duplicate_descriptor_path",
		"missing_group_id",
		"missing_artifact_id",
		"missing_version",
		"missing_descriptor_provider",
	}, codes)
	assert.Len(t, diags.Infos, 3)

	assert.Empty(t, f.log, "check must not issue instructions")
	assert.False(t, engine.Resolved())
	require.NoError(t, engine.Resolve([]binding.Binding{binding.New(ok, jar)}))
}

func TestProperty_ValidIdentityEmbedsOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		group := rapid.StringMatching(`[a-z][a-z0-9]{0,8}(\.[a-z][a-z0-9]{0,8}){0,3}`).Draw(t, "group")
		artifact := rapid.StringMatching(`[a-z][a-z0-9\-]{0,15}`).Draw(t, "artifact")
		version := rapid.StringMatching(`[0-9]{1,3}(\.[0-9]{1,3}){0,2}(-SNAPSHOT)?`).Draw(t, "version")

		f := newFixture()
		pub := f.publication(t, "Pub", group, artifact, version)
		jar := f.target("jar")

		err := NewEngine(f.providers, nil).Resolve([]binding.Binding{binding.New(pub, jar)})
		require.NoError(t, err)
		require.Len(t, jar.got, 1)
		assert.Equal(t, fmt.Sprintf("META-INF/maven/%s/%s/pom.xml", group, artifact), jar.got[0].Path())
	})
}

func TestProperty_MissingFieldIsNamed(t *testing.T) {
	blank := rapid.SampledFrom([]string{"", " ", "\t", "  \n"})

	rapid.Check(t, func(t *rapid.T) {
		field := rapid.SampledFrom([]string{FieldGroupID, FieldArtifactID, FieldVersion}).Draw(t, "field")
		group, artifact, version := "com.example", "lib", "1.0"

		switch field {
		case FieldGroupID:
			group = blank.Draw(t, "group")
		case FieldArtifactID:
			artifact = blank.Draw(t, "artifact")
		case FieldVersion:
			version = rapid.SampledFrom([]string{"", " ", publication.Unspecified}).Draw(t, "version")
		}

		name := rapid.StringMatching(`[A-Z][a-zA-Z]{0,10}`).Draw(t, "name")

		f := newFixture()
		pub := f.publication(t, name, group, artifact, version)
		jar := f.target("jar")

		err := NewEngine(f.providers, nil).Resolve([]binding.Binding{binding.New(pub, jar)})

		var mi *MissingIdentityError
		require.True(t, errors.As(err, &mi))
		assert.Equal(t, field, mi.Field)
		assert.Equal(t, name, mi.Publication)
		assert.Empty(t, jar.got)
	})
}

func TestProperty_RegistrationOrderIsResolutionOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		jars := rapid.IntRange(1, 4).Draw(t, "jars")

		f := newFixture()
		targets := make([]*recordingTarget, jars)
		for i := range targets {
			targets[i] = f.target(fmt.Sprintf("jar%d", i))
		}

		var (
			bindings []binding.Binding
			want     []string
		)

		for i := 0; i < n; i++ {
			artifact := fmt.Sprintf("artifact%d", i)
			pub := f.publication(t, fmt.Sprintf("Pub%d", i), "g", artifact, "1")
			target := targets[rapid.IntRange(0, jars-1).Draw(t, fmt.Sprintf("target%d", i))]

			bindings = append(bindings, binding.New(pub, target))
			want = append(want, target.name+":META-INF/maven/g/"+artifact+"/pom.xml")
		}

		require.NoError(t, NewEngine(f.providers, nil).Resolve(bindings))
		assert.Equal(t, want, f.log)
	})
}
