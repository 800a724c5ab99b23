package markdown

import (
	"bytes"

	"github.com/mdtypeset/typeset/renderer"
	"github.com/mdtypeset/typeset/settings"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmrenderer "github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options tune the conversion. The zero value matches the editor: soft line
// breaks become <br> and raw HTML is omitted.
type Options struct {
	// SoftBreaks keeps soft line breaks as plain newlines.
	SoftBreaks bool

	// Unsafe passes raw HTML and dangerous link targets through.
	Unsafe bool
}

// TypesetExtension swaps goldmark's node renderers for the inline-styled
// ones, bound to a single settings snapshot.
type TypesetExtension struct {
	Settings settings.Settings
	Options  Options
}

// NewTypesetExtension creates a new instance of the TypesetExtension
func NewTypesetExtension(s settings.Settings, opts Options) *TypesetExtension {
	return &TypesetExtension{
		Settings: s,
		Options:  opts,
	}
}

func (e *TypesetExtension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(gmrenderer.WithNodeRenderers(
		renderer.Rules(e.Settings, !e.Options.SoftBreaks)...,
	))

	if e.Options.Unsafe {
		m.Renderer().AddOptions(html.WithUnsafe())
	}
}

// CompileMarkdown converts markdown into the inner HTML fragment, without
// the wrapping container.
func CompileMarkdown(markdown []byte, s settings.Settings, opts Options) (string, error) {
	log.Tracef(nil, "rendering markdown:\n%s", string(markdown))

	converter := goldmark.New(
		goldmark.WithExtensions(
			NewTypesetExtension(s, opts),
			extension.GFM,
		),
	)

	var buf bytes.Buffer
	err := converter.Convert(markdown, &buf)
	if err != nil {
		return "", karma.Format(err, "unable to convert markdown")
	}

	html := buf.String()

	log.Tracef(nil, "rendered markdown to html:\n%s", html)

	return html, nil
}
