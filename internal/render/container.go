// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdiddy/adoc-render/internal/container"
	"github.com/pdiddy/adoc-render/pkg/types"
)

const defaultAsciidoctorImage = "asciidoctor/docker-asciidoctor:latest"

// ContainerEngine renders by piping text through asciidoctor inside a
// container. It depends on a container.Runtime (docker or podman) injected
// at construction time.
type ContainerEngine struct {
	runtime container.Runtime
	image   string
}

// NewContainerEngine creates an engine that runs asciidoctor from
// cfg.Image (default asciidoctor/docker-asciidoctor). It verifies that the
// image exists locally before returning.
func NewContainerEngine(rt container.Runtime, cfg types.ContainerConfig) (*ContainerEngine, error) {
	image := cfg.Image
	if image == "" {
		image = defaultAsciidoctorImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("asciidoctor image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerEngine{runtime: rt, image: image}, nil
}

// Convert pipes text through the container and returns the HTML fragment.
func (c *ContainerEngine) Convert(text string, opts types.RenderOptions) (string, error) {
	args := append([]string{defaultAsciidoctorBin}, asciidoctorArgs(opts)...)

	var out bytes.Buffer
	if err := c.runtime.Run(c.image, args, strings.NewReader(sandboxSource(text, opts)), &out); err != nil {
		return "", fmt.Errorf("converting with %s: %w", c.image, err)
	}
	return out.String(), nil
}
