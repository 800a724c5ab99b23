package renderer

import (
	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/style"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type EmphasisRenderer struct {
	html.Config
	Settings settings.Settings
}

// NewEmphasisRenderer creates a new instance of the EmphasisRenderer
func NewEmphasisRenderer(s settings.Settings, opts ...html.Option) renderer.NodeRenderer {
	return &EmphasisRenderer{
		Config:   html.NewConfig(),
		Settings: s,
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *EmphasisRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
}

// renderEmphasis colors strong emphasis with the bold color. Single
// emphasis stays a plain <em>.
func (r *EmphasisRenderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)

	if n.Level != 2 {
		if entering {
			_, _ = w.WriteString("<em>")
		} else {
			_, _ = w.WriteString("</em>")
		}
		return ast.WalkContinue, nil
	}

	if entering {
		writeStyledTag(w, "strong", style.Strong(r.Settings))
	} else {
		_, _ = w.WriteString("</strong>")
	}
	return ast.WalkContinue, nil
}
