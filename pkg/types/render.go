// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// RenderRequest carries one AsciiDoc payload to be rendered.
type RenderRequest struct {
	// Text is the AsciiDoc source. It is passed to the engine as-is.
	Text string `json:"text" yaml:"text"`
}

// SafeMode is the Asciidoctor safe-mode level. Higher levels restrict more:
// unsafe < safe < server < secure.
type SafeMode int

const (
	SafeUnsafe SafeMode = 0
	SafeSafe   SafeMode = 1
	SafeServer SafeMode = 10
	SafeSecure SafeMode = 20
)

var safeModeNames = map[SafeMode]string{
	SafeUnsafe: "unsafe",
	SafeSafe:   "safe",
	SafeServer: "server",
	SafeSecure: "secure",
}

// String returns the lowercase Asciidoctor name of the level.
func (m SafeMode) String() string {
	if name, ok := safeModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SafeMode(%d)", int(m))
}

// ParseSafeMode converts an Asciidoctor safe-mode name into a SafeMode.
func ParseSafeMode(s string) (SafeMode, error) {
	for m, name := range safeModeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown safe mode %q: use unsafe, safe, server, or secure", s)
}

// MarshalText implements encoding.TextMarshaler so the level serializes by name.
func (m SafeMode) MarshalText() ([]byte, error) {
	if _, ok := safeModeNames[m]; !ok {
		return nil, fmt.Errorf("invalid safe mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SafeMode) UnmarshalText(b []byte) error {
	parsed, err := ParseSafeMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Asciidoctor attribute names set from RenderOptions.
const (
	AttrDoctype           = "doctype"
	AttrShowTitle         = "showtitle"
	AttrIcons             = "icons"
	AttrIDPrefix          = "idprefix"
	AttrIDSeparator       = "idseparator"
	AttrSectIDs           = "sectids"
	AttrSourceHighlighter = "source-highlighter"
	AttrListingCaption    = "listing-caption"
)

// RenderOptions is the conversion configuration handed to an engine on
// every call. Values are plain data; a Renderer holds its own copy.
type RenderOptions struct {
	Safe              SafeMode `json:"safe" yaml:"safe"`
	Doctype           string   `json:"doctype" yaml:"doctype"`
	ShowTitle         bool     `json:"showtitle" yaml:"showtitle"`
	Icons             string   `json:"icons" yaml:"icons"`
	IDPrefix          string   `json:"idprefix" yaml:"idprefix"`
	IDSeparator       string   `json:"idseparator" yaml:"idseparator"`
	SectIDs           bool     `json:"sectids" yaml:"sectids"`
	SourceHighlighter string   `json:"source_highlighter" yaml:"source_highlighter"`
	ListingCaption    string   `json:"listing_caption" yaml:"listing_caption"`
}

// Attribute is one document attribute as an engine sees it. Unset attributes
// have Set == false and an empty Value.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Set   bool   `json:"set" yaml:"set"`
}

// Attributes returns the document attributes in a stable order. Boolean
// options map to set ("") or unset attributes; string options are always set,
// even when empty (an empty idprefix is meaningful).
func (o RenderOptions) Attributes() []Attribute {
	return []Attribute{
		{Name: AttrDoctype, Value: o.Doctype, Set: true},
		boolAttribute(AttrShowTitle, o.ShowTitle),
		{Name: AttrIcons, Value: o.Icons, Set: true},
		{Name: AttrIDPrefix, Value: o.IDPrefix, Set: true},
		{Name: AttrIDSeparator, Value: o.IDSeparator, Set: true},
		boolAttribute(AttrSectIDs, o.SectIDs),
		{Name: AttrSourceHighlighter, Value: o.SourceHighlighter, Set: true},
		{Name: AttrListingCaption, Value: o.ListingCaption, Set: true},
	}
}

// AttributeMap returns the set attributes keyed by name. Unset attributes
// are omitted.
func (o RenderOptions) AttributeMap() map[string]string {
	m := make(map[string]string)
	for _, a := range o.Attributes() {
		if a.Set {
			m[a.Name] = a.Value
		}
	}
	return m
}

func boolAttribute(name string, on bool) Attribute {
	return Attribute{Name: name, Set: on}
}
