package renderer

import (
	"github.com/mdtypeset/typeset/settings"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Lower values take precedence. goldmark's html renderer registers at 1000
// and the GFM renderers at 500.
const priority = 100

// Rules is the dispatch table from node kind to rendering function, bound to
// one settings snapshot. Each call returns fresh renderers.
func Rules(s settings.Settings, hardWraps bool) []util.PrioritizedValue {
	return []util.PrioritizedValue{
		util.Prioritized(NewTextRenderer(hardWraps), priority),
		util.Prioritized(NewHeadingRenderer(s), priority),
		util.Prioritized(NewParagraphRenderer(s), priority),
		util.Prioritized(NewBlockQuoteRenderer(s), priority),
		util.Prioritized(NewCodeBlockRenderer(s), priority),
		util.Prioritized(NewCodeSpanRenderer(), priority),
		util.Prioritized(NewEmphasisRenderer(s), priority),
		util.Prioritized(NewListRenderer(s), priority),
		util.Prioritized(NewImageRenderer(), priority),
		util.Prioritized(NewLinkRenderer(s), priority),
		util.Prioritized(NewThematicBreakRenderer(s), priority),
		util.Prioritized(NewTaskCheckBoxRenderer(), priority),
	}
}

// Register binds every rule in table to reg. It is what goldmark does with
// the table internally and lets callers inspect the kinds covered.
func Register(table []util.PrioritizedValue, reg renderer.NodeRendererFuncRegisterer) {
	for _, rule := range table {
		rule.Value.(renderer.NodeRenderer).RegisterFuncs(reg)
	}
}
