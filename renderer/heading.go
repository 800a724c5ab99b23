package renderer

import (
	"strconv"

	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/style"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type HeadingRenderer struct {
	html.Config
	Settings settings.Settings
}

// NewHeadingRenderer creates a new instance of the HeadingRenderer
func NewHeadingRenderer(s settings.Settings, opts ...html.Option) renderer.NodeRenderer {
	return &HeadingRenderer{
		Config:   html.NewConfig(),
		Settings: s,
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *HeadingRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

// renderHeading renders h1 as a centered title, h2 as an underlined span
// inside a centered section and every deeper level as a left-bordered block.
func (r *HeadingRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)

	if n.Level == 2 {
		if entering {
			writeStyledTag(w, "section", style.HeadingWrapper())
			writeStyledTag(w, "span", style.Heading(2, r.Settings))
		} else {
			_, _ = w.WriteString("</span></section>\n")
		}
		return ast.WalkContinue, nil
	}

	tag := "h" + strconv.Itoa(n.Level)
	if entering {
		writeStyledTag(w, tag, style.Heading(n.Level, r.Settings))
	} else {
		_, _ = w.WriteString("</" + tag + ">\n")
	}
	return ast.WalkContinue, nil
}
