package renderer

import (
	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/style"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type ThematicBreakRenderer struct {
	html.Config
	Settings settings.Settings
}

// NewThematicBreakRenderer creates a new instance of the ThematicBreakRenderer
func NewThematicBreakRenderer(s settings.Settings, opts ...html.Option) renderer.NodeRenderer {
	return &ThematicBreakRenderer{
		Config:   html.NewConfig(),
		Settings: s,
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *ThematicBreakRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)
}

func (r *ThematicBreakRenderer) renderThematicBreak(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<hr")
	writeStyleAttribute(w, style.ThematicBreak(r.Settings))
	_, _ = w.WriteString(" />\n")

	return ast.WalkContinue, nil
}
