package renderer

import (
	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/style"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type BlockQuoteRenderer struct {
	html.Config
	Settings settings.Settings
}

// NewBlockQuoteRenderer creates a new instance of the BlockQuoteRenderer
func NewBlockQuoteRenderer(s settings.Settings, opts ...html.Option) renderer.NodeRenderer {
	return &BlockQuoteRenderer{
		Config:   html.NewConfig(),
		Settings: s,
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *BlockQuoteRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindBlockquote, r.renderBlockQuote)
}

// renderBlockQuote renders a quote with the accent border. Its background and
// text color are fixed.
func (r *BlockQuoteRenderer) renderBlockQuote(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		writeStyledTag(w, "blockquote", style.Blockquote(r.Settings))
		_ = w.WriteByte('\n')
	} else {
		_, _ = w.WriteString("</blockquote>\n")
	}
	return ast.WalkContinue, nil
}
