package publication

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublication_DefaultsToProject(t *testing.T) {
	project := &Identity{Group: "com.example", Name: "lib", Version: "1.2.3", Description: "a lib"}
	c := NewContainer(project)

	p, err := c.Create("Java", nil)
	require.NoError(t, err)

	assert.Equal(t, "Java", p.Name())
	assert.Equal(t, "com.example", p.GroupID())
	assert.Equal(t, "lib", p.ArtifactID())
	assert.Equal(t, "1.2.3", p.Version())
	assert.Equal(t, "lib", p.DisplayName())
	assert.Equal(t, "a lib", p.Description())
}

func TestPublication_ReadsProjectLazily(t *testing.T) {
	project := &Identity{}
	c := NewContainer(project)

	p, err := c.Create("Java", nil)
	require.NoError(t, err)

	assert.Equal(t, Unspecified, p.Version())
	assert.Empty(t, p.GroupID())

	project.Group = "org.late"
	project.Version = "2.0"

	assert.Equal(t, "org.late", p.GroupID())
	assert.Equal(t, "2.0", p.Version())
}

func TestPublication_ExplicitFieldsWin(t *testing.T) {
	c := NewContainer(&Identity{Group: "g", Name: "n", Version: "1", Description: "d"})

	p, err := c.Create("Custom", func(p *Publication) {
		p.From("java")
		p.SetGroupID("other.group")
		p.SetArtifactID("other-artifact")
		p.SetVersion("9.9")
		p.SetDisplayName("Other")
		p.SetDescription("other description")
	})
	require.NoError(t, err)

	assert.Equal(t, "java", p.Component())
	assert.Equal(t, "other.group", p.GroupID())
	assert.Equal(t, "other-artifact", p.ArtifactID())
	assert.Equal(t, "9.9", p.Version())
	assert.Equal(t, "Other", p.DisplayName())
	assert.Equal(t, "other description", p.Description())
}

func TestPublication_EmptyExplicitVersionFallsBack(t *testing.T) {
	c := NewContainer(nil)

	p, err := c.Create("Java", func(p *Publication) { p.SetVersion("") })
	require.NoError(t, err)

	assert.Equal(t, Unspecified, p.Version())
}

func TestPublication_WhitespaceExplicitValuesAreKept(t *testing.T) {
	c := NewContainer(&Identity{Group: "proj.group", Name: "n", Version: "1"})

	p, err := c.Create("Java", func(p *Publication) {
		p.SetGroupID("   ")
		p.SetArtifactID(" ")
		p.SetVersion("\t")
	})
	require.NoError(t, err)

	assert.Equal(t, "   ", p.GroupID())
	assert.Equal(t, " ", p.ArtifactID())
	assert.Equal(t, "\t", p.Version())
}

func TestContainer_Create_Duplicate(t *testing.T) {
	c := NewContainer(nil)

	_, err := c.Create("Java", nil)
	require.NoError(t, err)

	_, err = c.Create("Java", nil)
	require.Error(t, err)

	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Java", dup.Name)
	assert.Contains(t, err.Error(), `"Java"`)
	assert.Len(t, c.All(), 1)
}

func TestContainer_Create_BlankName(t *testing.T) {
	c := NewContainer(nil)

	_, err := c.Create(" ", nil)
	require.Error(t, err)
	assert.Empty(t, c.All())
}

func TestContainer_ByName(t *testing.T) {
	c := NewContainer(nil)

	_, err := c.ByName("Missing")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Missing", nf.Name)

	created, err := c.Create("Present", nil)
	require.NoError(t, err)

	found, err := c.ByName("Present")
	require.NoError(t, err)
	assert.Same(t, created, found)
	assert.True(t, c.Has("Present"))
	assert.False(t, c.Has("Missing"))
}

func TestContainer_AllIsACopy(t *testing.T) {
	c := NewContainer(nil)
	_, _ = c.Create("A", nil)
	_, _ = c.Create("B", nil)

	all := c.All()
	require.Len(t, all, 2)
	all[0] = nil

	again := c.All()
	require.NotNil(t, again[0])
	assert.Equal(t, "A", again[0].Name())
	assert.Equal(t, "B", again[1].Name())
}
