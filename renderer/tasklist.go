package renderer

import (
	"github.com/yuin/goldmark/ast"
	ext_ast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

const (
	checkedBox   = "☑ "
	uncheckedBox = "☐ "
)

// TaskCheckBoxRenderer renders GFM task list markers as plain glyphs, since
// rich-text editors drop <input> elements on paste.
type TaskCheckBoxRenderer struct {
	html.Config
}

// NewTaskCheckBoxRenderer creates a new instance of the TaskCheckBoxRenderer
func NewTaskCheckBoxRenderer(opts ...html.Option) renderer.NodeRenderer {
	return &TaskCheckBoxRenderer{
		Config: html.NewConfig(),
	}
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs .
func (r *TaskCheckBoxRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ext_ast.KindTaskCheckBox, r.renderTaskCheckBox)
}

func (r *TaskCheckBoxRenderer) renderTaskCheckBox(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	if node.(*ext_ast.TaskCheckBox).IsChecked {
		_, _ = w.WriteString(checkedBox)
	} else {
		_, _ = w.WriteString(uncheckedBox)
	}

	return ast.WalkSkipChildren, nil
}
