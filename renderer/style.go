package renderer

import (
	"github.com/mdtypeset/typeset/style"
	"github.com/yuin/goldmark/util"
)

// writeStyledTag writes an opening tag that carries its presentation as an
// inline style attribute, e.g. <p style="color:#333;">.
func writeStyledTag(w util.BufWriter, tag string, declarations style.Declarations) {
	_ = w.WriteByte('<')
	_, _ = w.WriteString(tag)
	writeStyleAttribute(w, declarations)
	_ = w.WriteByte('>')
}

func writeStyleAttribute(w util.BufWriter, declarations style.Declarations) {
	_, _ = w.WriteString(` style="`)
	_, _ = w.Write(util.EscapeHTML([]byte(declarations.Inline())))
	_ = w.WriteByte('"')
}
