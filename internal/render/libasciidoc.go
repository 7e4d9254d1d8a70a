// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bytesparadise/libasciidoc"
	"github.com/bytesparadise/libasciidoc/pkg/configuration"

	"github.com/pdiddy/adoc-render/pkg/types"
)

const backendHTML5 = "html5"

// includeDirective matches an include directive line. Group 1 is the escaping
// backslash, group 2 the target.
var includeDirective = regexp.MustCompile(`^(\\)?include::([^\s\[](?:[^\[]*[^\s\[])?)\[(.*)\]$`)

// listingTitle matches the opening of a titled listing or source block as
// libasciidoc emits it. Group 1 ends right before the title text.
var listingTitle = regexp.MustCompile(`(<div(?: id="[^"]*")? class="listingblock[^"]*">\s*<div class="title">)`)

// sectionHeadingID matches the id attribute of a section heading. Group 1 is
// the heading tag, group 2 the id.
var sectionHeadingID = regexp.MustCompile(`<(h[1-6]) id="([^"]*)"`)

// explicitID matches block anchors and id attributes in the source:
// [[id]], [#id] and [id=name].
var explicitID = regexp.MustCompile(`\[\[([^\],\s]+)|\[#([^\].%,\s]+)|\bid=["']?([^\],"'\s]+)`)

// LibasciidocEngine renders AsciiDoc in-process with libasciidoc.
//
// libasciidoc logs through the logrus standard logger, at info level on
// every conversion unless the caller lowers it (the CLI does this from
// --log-level).
type LibasciidocEngine struct{}

// NewLibasciidocEngine returns the in-process engine.
func NewLibasciidocEngine() *LibasciidocEngine {
	return &LibasciidocEngine{}
}

// Convert renders text to an HTML fragment without header or footer.
// libasciidoc ignores safe mode, listing-caption and sectids, so the engine
// applies them itself: includes are replaced by links before parsing,
// titled listings get the numbered caption and generated section ids are
// removed from the output.
func (e *LibasciidocEngine) Convert(text string, opts types.RenderOptions) (string, error) {
	text = sandboxSource(text, opts)

	attrs := make(map[string]interface{})
	for name, value := range opts.AttributeMap() {
		attrs[name] = value
	}

	config := configuration.NewConfiguration(
		configuration.WithAttributes(attrs),
		configuration.WithHeaderFooter(false),
		configuration.WithBackEnd(backendHTML5),
	)

	var out strings.Builder
	if _, err := libasciidoc.Convert(strings.NewReader(text), &out, config); err != nil {
		return "", fmt.Errorf("libasciidoc: %w", err)
	}

	html := out.String()
	if opts.ListingCaption != "" {
		html = captionListings(html, opts.ListingCaption)
	}
	if !opts.SectIDs {
		html = stripSectionIDs(html, explicitIDs(text))
	}
	return html, nil
}

// sandboxSource neutralizes include directives when the safe mode forbids
// reading files on behalf of the document.
func sandboxSource(text string, opts types.RenderOptions) string {
	if opts.Safe >= types.SafeSafe {
		return neutralizeIncludes(text)
	}
	return text
}

// captionListings prefixes each listing block title with "<caption> N. ",
// numbering titled listings in document order.
func captionListings(html, caption string) string {
	n := 0
	return listingTitle.ReplaceAllStringFunc(html, func(open string) string {
		n++
		return open + caption + " " + strconv.Itoa(n) + ". "
	})
}

// stripSectionIDs drops generated ids from section headings. Ids the author
// assigned explicitly are kept.
func stripSectionIDs(html string, keep map[string]bool) string {
	return sectionHeadingID.ReplaceAllStringFunc(html, func(m string) string {
		sub := sectionHeadingID.FindStringSubmatch(m)
		if keep[sub[2]] {
			return m
		}
		return "<" + sub[1]
	})
}

// explicitIDs collects the ids the source assigns by anchor or attribute.
func explicitIDs(text string) map[string]bool {
	ids := make(map[string]bool)
	for _, m := range explicitID.FindAllStringSubmatch(text, -1) {
		for _, id := range m[1:] {
			if id != "" {
				ids[id] = true
			}
		}
	}
	return ids
}

// neutralizeIncludes rewrites each include directive into a link macro to
// its target, the way Asciidoctor treats includes it will not resolve.
// Escaped directives are left for the engine to unescape.
func neutralizeIncludes(text string) string {
	if !strings.Contains(text, "include::") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		m := includeDirective.FindStringSubmatch(trimmed)
		if m == nil || m[1] != "" {
			continue
		}
		lines[i] = "link:" + m[2] + "[role=include]"
	}
	return strings.Join(lines, "\n")
}
