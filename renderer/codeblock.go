package renderer

import (
	"bytes"

	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/style"
	"github.com/reconquest/pkg/log"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type CodeBlockRenderer struct {
	html.Config
	Settings settings.Settings
}

// NewCodeBlockRenderer creates a new instance of the CodeBlockRenderer
func NewCodeBlockRenderer(s settings.Settings, opts ...html.Option) renderer.NodeRenderer {
	return &CodeBlockRenderer{
		Config:   html.NewConfig(),
		Settings: s,
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *CodeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

// renderCodeBlock renders an indented CodeBlock
func (r *CodeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	r.writeCode(w, source, node)

	return ast.WalkContinue, nil
}

// renderFencedCodeBlock renders a FencedCodeBlock. The info string is
// accepted but has no effect on the output: code is not highlighted.
func (r *CodeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	if lang := node.(*ast.FencedCodeBlock).Language(source); lang != nil {
		log.Tracef(nil, "rendering fenced code block, language: %s", lang)
	}

	r.writeCode(w, source, node)

	return ast.WalkContinue, nil
}

func (r *CodeBlockRenderer) writeCode(w util.BufWriter, source []byte, node ast.Node) {
	var code []byte

	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code = append(code, line.Value(source)...)
	}

	writeStyledTag(w, "pre", style.CodeBlock(r.Settings))
	_, _ = w.WriteString("<code>")
	r.Writer.RawWrite(w, bytes.TrimSuffix(code, []byte("\n")))
	_, _ = w.WriteString("</code></pre>\n")
}
