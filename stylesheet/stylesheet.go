// Package stylesheet projects settings onto a class-scoped CSS snippet for
// Obsidian, which keeps stylesheets instead of stripping them.
package stylesheet

import (
	"bytes"
	"text/template"

	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/style"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

const (
	// Root is the preview container class every selector is scoped to.
	Root = ".markdown-preview-view"

	// FileName is the name the snippet should be saved under.
	FileName = "obsidian-wechat.css"

	RootFontFamily = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`
)

type Block struct {
	Selector     string
	Declarations style.Declarations
}

var sheet = template.Must(template.New("stylesheet").Parse(
	`/* Save this as {{ .FileName }} in the .obsidian/snippets folder of your vault, then enable it under Settings > Appearance > CSS snippets. */
{{ range .Blocks }}
{{ .Selector }} {
{{- range .Declarations }}
  {{ .Property }}: {{ .Value }} !important;
{{- end }}
}
{{ end }}`,
))

// Blocks lists the selector blocks of the snippet. Every element block uses
// the same declarations the inline renderer writes for that node kind.
func Blocks(s settings.Settings) []Block {
	scoped := func(tag string) string {
		return Root + " " + tag
	}

	return []Block{
		{
			Selector: Root,
			Declarations: style.Declarations{
				{"font-family", RootFontFamily},
				{"font-size", style.Px(s.FontSize)},
				{"line-height", style.Number(s.LineHeight)},
				{"color", s.TextColor},
			},
		},
		{scoped("h1"), style.Heading(1, s)},
		{scoped("h2"), style.HeadingWrapper().Merge(style.Heading(2, s))},
		{scoped("h3"), style.Heading(3, s)},
		{scoped("p"), style.Paragraph(s)},
		{scoped("strong"), style.Strong(s)},
		{scoped("blockquote"), style.Blockquote(s)},
		{scoped("pre"), style.CodeBlock(s)},
	}
}

// Export renders the snippet for s.
func Export(s settings.Settings) (string, error) {
	var buf bytes.Buffer

	err := sheet.Execute(&buf, struct {
		FileName string
		Blocks   []Block
	}{
		FileName: FileName,
		Blocks:   Blocks(s),
	})
	if err != nil {
		return "", karma.Format(err, "unable to execute stylesheet template")
	}

	log.Tracef(nil, "exported stylesheet:\n%s", buf.String())

	return buf.String(), nil
}
