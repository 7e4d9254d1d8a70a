// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts AsciiDoc text to HTML by delegating to a pluggable
// conversion engine under a fixed set of rendering options.
package render

import (
	"github.com/pdiddy/adoc-render/pkg/types"
)

// Engine converts AsciiDoc text into an embeddable HTML fragment. Different
// backends (libasciidoc, the asciidoctor CLI, a container, a remote service)
// implement this interface.
type Engine interface {
	// Convert renders text under opts and returns the HTML.
	Convert(text string, opts types.RenderOptions) (string, error)
}

// DefaultOptions returns the rendering options every Renderer uses. Each call
// returns a fresh value.
func DefaultOptions() types.RenderOptions {
	return types.RenderOptions{
		Safe:              types.SafeSafe,
		Doctype:           "article",
		ShowTitle:         false,
		Icons:             "font",
		IDPrefix:          "",
		IDSeparator:       "-",
		SectIDs:           false,
		SourceHighlighter: "highlight.js",
		ListingCaption:    "Listing",
	}
}

// Renderer renders AsciiDoc requests with options fixed at construction.
// It holds no mutable state, so concurrent calls are safe whenever the
// engine is.
type Renderer struct {
	engine Engine
	opts   types.RenderOptions
}

// New returns a Renderer that delegates to engine with DefaultOptions.
func New(engine Engine) *Renderer {
	return &Renderer{engine: engine, opts: DefaultOptions()}
}

// Options returns a copy of the options passed to the engine.
func (r *Renderer) Options() types.RenderOptions {
	return r.opts
}

// Render converts req.Text to HTML. The text is not validated and engine
// errors are returned unchanged.
func (r *Renderer) Render(req types.RenderRequest) (string, error) {
	return r.engine.Convert(req.Text, r.opts)
}
