// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/adoc-render/pkg/types"
)

// fakeRunner implements commandRunner. It records the invocation and
// delegates output to runFunc.
type fakeRunner struct {
	paths   map[string]string
	gotName string
	gotArgs []string
	gotIn   string
	runFunc func(stdout, stderr io.Writer) error
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if p, ok := f.paths[file]; ok {
		return p, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeRunner) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f.gotName = name
	f.gotArgs = args
	data, _ := io.ReadAll(stdin)
	f.gotIn = string(data)
	if f.runFunc != nil {
		return f.runFunc(stdout, stderr)
	}
	return nil
}

func TestAsciidoctorArgs(t *testing.T) {
	got := asciidoctorArgs(DefaultOptions())

	want := []string{
		"--safe-mode", "safe",
		"--backend", "html5",
		"--doctype", "article",
		"--no-header-footer",
		"-a", "showtitle!",
		"-a", "icons=font",
		"-a", "idprefix=",
		"-a", "idseparator=-",
		"-a", "sectids!",
		"-a", "source-highlighter=highlight.js",
		"-a", "listing-caption=Listing",
		"--out-file", "-", "-",
	}
	assert.Equal(t, want, got)
}

func TestNewAsciidoctorEngine(t *testing.T) {
	tests := []struct {
		name     string
		cfg      types.AsciidoctorConfig
		paths    map[string]string
		wantBin  string
		wantErrS string
	}{
		{
			name:    "default binary on PATH",
			paths:   map[string]string{"asciidoctor": "/usr/bin/asciidoctor"},
			wantBin: "/usr/bin/asciidoctor",
		},
		{
			name:    "configured binary",
			cfg:     types.AsciidoctorConfig{Bin: "asciidoctor-3"},
			paths:   map[string]string{"asciidoctor-3": "/opt/bin/asciidoctor-3"},
			wantBin: "/opt/bin/asciidoctor-3",
		},
		{
			name:     "missing binary",
			paths:    map[string]string{},
			wantErrS: "asciidoctor not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := newAsciidoctorEngine(tt.cfg, &fakeRunner{paths: tt.paths})
			if tt.wantErrS != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrS)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBin, e.bin)
		})
	}
}

func TestAsciidoctorEngine_Convert(t *testing.T) {
	runner := &fakeRunner{
		paths: map[string]string{"asciidoctor": "/usr/bin/asciidoctor"},
		runFunc: func(stdout, _ io.Writer) error {
			_, err := io.WriteString(stdout, "<div class=\"paragraph\">\n<p>Hello <strong>world</strong></p>\n</div>\n")
			return err
		},
	}
	e, err := newAsciidoctorEngine(types.AsciidoctorConfig{}, runner)
	require.NoError(t, err)

	html, err := New(e).Render(types.RenderRequest{Text: "Hello *world*"})
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>world</strong>")
	assert.Equal(t, "/usr/bin/asciidoctor", runner.gotName)
	assert.Equal(t, "Hello *world*", runner.gotIn)
	assert.Equal(t, asciidoctorArgs(DefaultOptions()), runner.gotArgs)
}

func TestAsciidoctorEngine_ConvertFailure(t *testing.T) {
	runner := &fakeRunner{
		paths: map[string]string{"asciidoctor": "/usr/bin/asciidoctor"},
		runFunc: func(_, stderr io.Writer) error {
			_, _ = io.WriteString(stderr, "asciidoctor: FAILED: input file - missing\n")
			return errors.New("exit status 1")
		},
	}
	e, err := newAsciidoctorEngine(types.AsciidoctorConfig{}, runner)
	require.NoError(t, err)

	html, err := e.Convert("= Doc", DefaultOptions())
	require.Error(t, err)
	assert.Empty(t, html)
	assert.True(t, strings.HasSuffix(err.Error(), "asciidoctor: FAILED: input file - missing"), err.Error())
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestAsciidoctorEngine_IncludesAreNotPassedThrough(t *testing.T) {
	runner := &fakeRunner{paths: map[string]string{"asciidoctor": "/usr/bin/asciidoctor"}}
	e, err := newAsciidoctorEngine(types.AsciidoctorConfig{}, runner)
	require.NoError(t, err)

	_, err = e.Convert("Intro\ninclude::notes.txt[]\n", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Intro\nlink:notes.txt[role=include]\n", runner.gotIn)
	assert.NotContains(t, runner.gotIn, "include::")
}
