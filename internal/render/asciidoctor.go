// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pdiddy/adoc-render/pkg/types"
)

const defaultAsciidoctorBin = "asciidoctor"

// commandRunner abstracts process execution for testing.
type commandRunner interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// osRunner is the production commandRunner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// AsciidoctorEngine renders by piping text through the asciidoctor CLI.
type AsciidoctorEngine struct {
	bin    string
	runner commandRunner
}

// NewAsciidoctorEngine locates bin (default "asciidoctor") on PATH and
// returns an engine that runs it.
func NewAsciidoctorEngine(cfg types.AsciidoctorConfig) (*AsciidoctorEngine, error) {
	return newAsciidoctorEngine(cfg, osRunner{})
}

func newAsciidoctorEngine(cfg types.AsciidoctorConfig, runner commandRunner) (*AsciidoctorEngine, error) {
	bin := cfg.Bin
	if bin == "" {
		bin = defaultAsciidoctorBin
	}
	path, err := runner.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("asciidoctor not available: %w", err)
	}
	return &AsciidoctorEngine{bin: path, runner: runner}, nil
}

// Convert runs asciidoctor with text on stdin and returns its stdout.
// Asciidoctor's safe mode still resolves includes under the working
// directory, so include directives are replaced by links first.
func (e *AsciidoctorEngine) Convert(text string, opts types.RenderOptions) (string, error) {
	text = sandboxSource(text, opts)

	var stdout, stderr bytes.Buffer
	if err := e.runner.Run(e.bin, asciidoctorArgs(opts), strings.NewReader(text), &stdout, &stderr); err != nil {
		return "", fmt.Errorf("running %s: %w%s", e.bin, err, stderrSuffix(&stderr))
	}
	return stdout.String(), nil
}

// asciidoctorArgs builds the CLI arguments that apply opts, read the
// document from stdin, and write an embeddable fragment to stdout.
func asciidoctorArgs(opts types.RenderOptions) []string {
	args := []string{
		"--safe-mode", opts.Safe.String(),
		"--backend", backendHTML5,
		"--doctype", opts.Doctype,
		"--no-header-footer",
	}
	for _, a := range opts.Attributes() {
		if a.Name == types.AttrDoctype {
			continue
		}
		if !a.Set {
			args = append(args, "-a", a.Name+"!")
			continue
		}
		args = append(args, "-a", a.Name+"="+a.Value)
	}
	return append(args, "--out-file", "-", "-")
}

// stderrSuffix formats captured stderr for an error message.
func stderrSuffix(stderr *bytes.Buffer) string {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return ""
	}
	return ": " + msg
}
