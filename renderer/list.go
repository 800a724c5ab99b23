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

type ListRenderer struct {
	html.Config
	Settings settings.Settings
}

// NewListRenderer creates a new instance of the ListRenderer
func NewListRenderer(s settings.Settings, opts ...html.Option) renderer.NodeRenderer {
	return &ListRenderer{
		Config:   html.NewConfig(),
		Settings: s,
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *ListRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindListItem, r.renderListItem)
}

func (r *ListRenderer) renderList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)

	tag := "ul"
	if n.IsOrdered() {
		tag = "ol"
	}

	if !entering {
		_, _ = w.WriteString("</" + tag + ">\n")
		return ast.WalkContinue, nil
	}

	_ = w.WriteByte('<')
	_, _ = w.WriteString(tag)
	if n.IsOrdered() && n.Start != 1 {
		_, _ = w.WriteString(` start="` + strconv.Itoa(n.Start) + `"`)
	}
	writeStyleAttribute(w, style.List(r.Settings))
	_, _ = w.WriteString(">\n")

	return ast.WalkContinue, nil
}

// renderListItem mirrors goldmark: loose items (whose first child is not a
// TextBlock) get a newline after the opening tag.
func (r *ListRenderer) renderListItem(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</li>\n")
		return ast.WalkContinue, nil
	}

	writeStyledTag(w, "li", style.ListItem())

	if fc := n.FirstChild(); fc != nil {
		if _, ok := fc.(*ast.TextBlock); !ok {
			_ = w.WriteByte('\n')
		}
	}

	return ast.WalkContinue, nil
}
