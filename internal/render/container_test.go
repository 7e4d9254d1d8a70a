// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/adoc-render/pkg/types"
)

// fakeRuntime implements container.Runtime for testing.
type fakeRuntime struct {
	images   map[string]bool
	gotImage string
	gotArgs  []string
	gotIn    string
	output   string
	runErr   error
}

func (f *fakeRuntime) Name() string    { return "docker" }
func (f *fakeRuntime) Available() bool { return true }

func (f *fakeRuntime) ImageExists(image string) error {
	if f.images[image] {
		return nil
	}
	return errors.New("image " + image + " not found in docker")
}

func (f *fakeRuntime) Run(image string, args []string, stdin io.Reader, stdout io.Writer) error {
	f.gotImage = image
	f.gotArgs = args
	data, _ := io.ReadAll(stdin)
	f.gotIn = string(data)
	if f.runErr != nil {
		return f.runErr
	}
	_, err := io.WriteString(stdout, f.output)
	return err
}

func TestNewContainerEngine(t *testing.T) {
	t.Run("default image present", func(t *testing.T) {
		rt := &fakeRuntime{images: map[string]bool{defaultAsciidoctorImage: true}}
		e, err := NewContainerEngine(rt, types.ContainerConfig{})
		require.NoError(t, err)
		assert.Equal(t, defaultAsciidoctorImage, e.image)
	})

	t.Run("configured image", func(t *testing.T) {
		rt := &fakeRuntime{images: map[string]bool{"registry.local/adoc:2.0": true}}
		e, err := NewContainerEngine(rt, types.ContainerConfig{Image: "registry.local/adoc:2.0"})
		require.NoError(t, err)
		assert.Equal(t, "registry.local/adoc:2.0", e.image)
	})

	t.Run("image missing", func(t *testing.T) {
		_, err := NewContainerEngine(&fakeRuntime{}, types.ContainerConfig{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "asciidoctor image not available in docker")
	})
}

func TestContainerEngine_Convert(t *testing.T) {
	rt := &fakeRuntime{
		images: map[string]bool{defaultAsciidoctorImage: true},
		output: "<p>Hello <strong>world</strong></p>",
	}
	e, err := NewContainerEngine(rt, types.ContainerConfig{})
	require.NoError(t, err)

	html, err := New(e).Render(types.RenderRequest{Text: "Hello *world*"})
	require.NoError(t, err)

	assert.Equal(t, "<p>Hello <strong>world</strong></p>", html)
	assert.Equal(t, defaultAsciidoctorImage, rt.gotImage)
	assert.Equal(t, "Hello *world*", rt.gotIn)
	require.NotEmpty(t, rt.gotArgs)
	assert.Equal(t, "asciidoctor", rt.gotArgs[0])
	assert.Equal(t, asciidoctorArgs(DefaultOptions()), rt.gotArgs[1:])
}

func TestContainerEngine_ConvertFailure(t *testing.T) {
	runErr := errors.New("container exited with code 1")
	rt := &fakeRuntime{
		images: map[string]bool{defaultAsciidoctorImage: true},
		runErr: runErr,
	}
	e, err := NewContainerEngine(rt, types.ContainerConfig{})
	require.NoError(t, err)

	_, err = e.Convert("= Doc", DefaultOptions())
	assert.ErrorIs(t, err, runErr)
}

func TestContainerEngine_IncludesAreNotPassedThrough(t *testing.T) {
	rt := &fakeRuntime{images: map[string]bool{defaultAsciidoctorImage: true}}
	e, err := NewContainerEngine(rt, types.ContainerConfig{})
	require.NoError(t, err)

	_, err = e.Convert("include::/documents/notes.txt[]", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "link:/documents/notes.txt[role=include]", rt.gotIn)
}
