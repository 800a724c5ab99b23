package markdown

import (
	"strings"

	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/style"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

// Wrap puts fragment inside the fixed container element. The container
// does not depend on settings.
func Wrap(fragment string) string {
	return `<section id="` + style.ContainerID + `" style="` + style.Container().Inline() + `">` + "\n" +
		strings.TrimRight(fragment, "\n") +
		"\n</section>"
}

// Render converts markdown text to the complete wrapped fragment. It is a
// pure function of its arguments; a panic inside the parser is returned as
// an error.
func Render(text string, s settings.Settings, opts Options) (html string, err error) {
	defer func() {
		if reason := recover(); reason != nil {
			err = karma.Format(reason, "markdown conversion panicked")
		}
	}()

	text = strings.ReplaceAll(text, "\r\n", "\n")

	fragment, err := CompileMarkdown([]byte(text), s, opts)
	if err != nil {
		return "", err
	}

	return Wrap(fragment), nil
}

// RenderFunc produces the wrapped fragment for one snapshot of text and
// settings.
type RenderFunc func(text string, s settings.Settings) (string, error)

// Pipeline re-renders the whole document on every update and keeps the last
// good output when rendering fails.
type Pipeline struct {
	render RenderFunc
	output string
}

func NewPipeline(opts Options) *Pipeline {
	return NewPipelineWithFunc(func(text string, s settings.Settings) (string, error) {
		return Render(text, s, opts)
	})
}

// NewPipelineWithFunc builds a pipeline around an arbitrary render function.
func NewPipelineWithFunc(render RenderFunc) *Pipeline {
	return &Pipeline{render: render}
}

// Update renders text with s. On failure the error is logged and the
// previous output is returned unchanged.
func (p *Pipeline) Update(text string, s settings.Settings) string {
	html, err := p.render(text, s)
	if err != nil {
		log.Errorf(err, "unable to render markdown, keeping previous output")
		return p.output
	}

	p.output = html

	return p.output
}

// Output returns the last successfully rendered fragment.
func (p *Pipeline) Output() string {
	return p.output
}
