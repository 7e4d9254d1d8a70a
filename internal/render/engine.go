// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"

	"github.com/pdiddy/adoc-render/internal/container"
	"github.com/pdiddy/adoc-render/pkg/types"
)

// ErrUnknownEngine is returned by NewEngine for an unrecognized engine kind.
var ErrUnknownEngine = errors.New("unknown engine")

// EngineKinds lists the supported engines, default first.
var EngineKinds = []types.EngineKind{
	types.EngineLibasciidoc,
	types.EngineAsciidoctor,
	types.EngineContainer,
	types.EngineRemote,
}

// detectRuntime is swapped in tests.
var detectRuntime = container.DetectRuntime

// NewEngine builds the engine selected by cfg.Engine. An empty kind selects
// libasciidoc.
func NewEngine(cfg types.RenderConfig) (Engine, error) {
	switch cfg.Engine {
	case "", types.EngineLibasciidoc:
		return NewLibasciidocEngine(), nil
	case types.EngineAsciidoctor:
		e, err := NewAsciidoctorEngine(cfg.Asciidoctor)
		if err != nil {
			return nil, err
		}
		return e, nil
	case types.EngineContainer:
		rt, err := detectRuntime()
		if err != nil {
			return nil, err
		}
		e, err := NewContainerEngine(rt, cfg.Container)
		if err != nil {
			return nil, err
		}
		return e, nil
	case types.EngineRemote:
		e, err := NewRemoteEngine(cfg.Remote)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w %q: use one of %v", ErrUnknownEngine, cfg.Engine, EngineKinds)
	}
}
