// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// EngineKind identifies the AsciiDoc conversion engine.
type EngineKind string

const (
	EngineLibasciidoc EngineKind = "libasciidoc"
	EngineAsciidoctor EngineKind = "asciidoctor"
	EngineContainer   EngineKind = "container"
	EngineRemote      EngineKind = "remote"
)

// HTTPConfig holds HTTP settings for engines that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "adoc-render/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// AsciidoctorConfig holds settings for the asciidoctor CLI engine.
type AsciidoctorConfig struct {
	// Bin is the asciidoctor executable name or path (default "asciidoctor").
	Bin string `json:"bin" yaml:"bin" mapstructure:"bin"`
}

// ContainerConfig holds settings for the container engine.
type ContainerConfig struct {
	// Image is the container image that provides asciidoctor
	// (default "asciidoctor/docker-asciidoctor:latest").
	Image string `json:"image" yaml:"image" mapstructure:"image"`
}

// RemoteConfig holds settings for the HTTP conversion engine.
type RemoteConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// URL is the conversion endpoint that accepts POSTed JSON.
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	// Token is an optional bearer token. Loaded from .secrets/render-api-token
	// when not configured.
	Token string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// RenderConfig selects and configures the conversion engine.
type RenderConfig struct {
	Engine      EngineKind        `json:"engine" yaml:"engine" mapstructure:"engine"`
	Asciidoctor AsciidoctorConfig `json:"asciidoctor" yaml:"asciidoctor" mapstructure:"asciidoctor"`
	Container   ContainerConfig   `json:"container" yaml:"container" mapstructure:"container"`
	Remote      RemoteConfig      `json:"remote" yaml:"remote" mapstructure:"remote"`
}
