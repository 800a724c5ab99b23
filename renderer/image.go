package renderer

import (
	"bytes"

	"github.com/mdtypeset/typeset/style"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type ImageRenderer struct {
	html.Config
}

// NewImageRenderer creates a new instance of the ImageRenderer
func NewImageRenderer(opts ...html.Option) renderer.NodeRenderer {
	return &ImageRenderer{
		Config: html.NewConfig(),
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *ImageRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

// renderImage renders a centered block image. The alt text is the plain
// text of the image label; nested inline markup is flattened.
func (r *ImageRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)

	_, _ = w.WriteString(`<img src="`)
	if r.Unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(util.EscapeHTML(plainText(source, n)))
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.Writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	writeStyleAttribute(w, style.Image())
	_, _ = w.WriteString(" />")

	return ast.WalkSkipChildren, nil
}

// plainText concatenates the text of every descendant of n.
func plainText(source []byte, n ast.Node) []byte {
	var buf bytes.Buffer

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			buf.Write(child.Segment.Value(source))
			if child.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(child.Value)
		default:
			buf.Write(plainText(source, c))
		}
	}

	return buf.Bytes()
}
