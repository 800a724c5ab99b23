package renderer

import (
	"bytes"

	"github.com/mdtypeset/typeset/style"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type CodeSpanRenderer struct {
	html.Config
}

// NewCodeSpanRenderer creates a new instance of the CodeSpanRenderer
func NewCodeSpanRenderer(opts ...html.Option) renderer.NodeRenderer {
	return &CodeSpanRenderer{
		Config: html.NewConfig(),
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *CodeSpanRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
}

// renderCodeSpan follows goldmark's own codespan rendering: line endings
// inside the span collapse to spaces.
func (r *CodeSpanRenderer) renderCodeSpan(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code>")
		return ast.WalkContinue, nil
	}

	writeStyledTag(w, "code", style.CodeSpan())

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			value := child.Segment.Value(source)
			if bytes.HasSuffix(value, []byte("\n")) {
				r.Writer.RawWrite(w, value[:len(value)-1])
				r.Writer.RawWrite(w, []byte(" "))
			} else {
				r.Writer.RawWrite(w, value)
			}
		case *ast.String:
			r.Writer.RawWrite(w, child.Value)
		}
	}

	return ast.WalkSkipChildren, nil
}
