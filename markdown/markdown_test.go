package markdown_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdtypeset/typeset/markdown"
	"github.com/mdtypeset/typeset/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wrapperOpen = `<section id="wechat-typeset" style="font-family:-apple-system,BlinkMacSystemFont,'Helvetica Neue',Arial,sans-serif; font-size:16px;">`

func loadData(t *testing.T, filename string) ([]byte, string, []byte) {
	t.Helper()
	testname := strings.TrimSuffix(filepath.Base(filename), ".md")
	htmlname := filepath.Join(filepath.Dir(filename), testname+".html")

	source, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}
	html, err := os.ReadFile(htmlname)
	if err != nil {
		panic(err)
	}

	return source, htmlname, html
}

func TestRender(t *testing.T) {
	test := assert.New(t)

	testcases, err := filepath.Glob("testdata/*.md")
	if err != nil {
		panic(err)
	}
	test.NotEmpty(testcases)

	for _, filename := range testcases {
		source, htmlname, html := loadData(t, filename)

		actual, err := markdown.Render(string(source), settings.Defaults(), markdown.Options{})
		test.NoError(err)
		test.EqualValues(
			strings.TrimSuffix(string(html), "\n"),
			strings.TrimSuffix(actual, "\n"),
			filename+" vs "+htmlname,
		)
	}
}

func TestRenderEmpty(t *testing.T) {
	html, err := markdown.Render("", settings.Defaults(), markdown.Options{})
	require.NoError(t, err)
	assert.Equal(t, wrapperOpen+"\n\n</section>", html)
}

func TestRenderTitle(t *testing.T) {
	html, err := markdown.Render("# Title", settings.Defaults(), markdown.Options{})
	require.NoError(t, err)

	assert.Contains(t, html, "<h1 ")
	assert.Contains(t, html, "font-size:22.4px;")
	assert.Contains(t, html, "color:#1e88e5;")
	assert.Contains(t, html, "text-align:center;")
	assert.Contains(t, html, ">Title</h1>")
}

func TestRenderBoldColor(t *testing.T) {
	s := settings.Defaults()
	s.BoldColor = "#ff0000"

	html, err := markdown.Render("**bold**", s, markdown.Options{})
	require.NoError(t, err)
	assert.Contains(t, html, `<strong style="color:#ff0000; font-weight:bold;">bold</strong>`)
}

func TestRenderSettingsIsolation(t *testing.T) {
	changed := settings.Defaults()
	changed.BoldColor = "#00ff00"

	before, err := markdown.Render(markdown.Sample, settings.Defaults(), markdown.Options{})
	require.NoError(t, err)
	after, err := markdown.Render(markdown.Sample, changed, markdown.Options{})
	require.NoError(t, err)

	require.Contains(t, after, `<strong style="color:#00ff00;`)

	const placeholder = `<strong style="color:BOLD;`
	assert.Equal(t,
		strings.ReplaceAll(before, `<strong style="color:#1e88e5;`, placeholder),
		strings.ReplaceAll(after, `<strong style="color:#00ff00;`, placeholder),
	)
}

func TestRenderDeterministic(t *testing.T) {
	first, err := markdown.Render(markdown.Sample, settings.Defaults(), markdown.Options{})
	require.NoError(t, err)

	second, err := markdown.Render(markdown.Sample, settings.Defaults(), markdown.Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderWrapperIgnoresSettings(t *testing.T) {
	s := settings.Defaults()
	s.FontSize = 20
	s.TextColor = "#000000"
	s.HeadingColor = "#7b1fa2"

	for _, text := range []string{"", "# a", markdown.Sample} {
		html, err := markdown.Render(text, s, markdown.Options{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(html, wrapperOpen+"\n"), text)
		assert.True(t, strings.HasSuffix(html, "\n</section>"), text)
	}
}

func TestRenderCRLF(t *testing.T) {
	unix, err := markdown.Render("# a\n\ntext\nmore", settings.Defaults(), markdown.Options{})
	require.NoError(t, err)

	windows, err := markdown.Render("# a\r\n\r\ntext\r\nmore", settings.Defaults(), markdown.Options{})
	require.NoError(t, err)

	assert.Equal(t, unix, windows)
}

func TestRenderSoftBreaks(t *testing.T) {
	html, err := markdown.Render("one\ntwo", settings.Defaults(), markdown.Options{})
	require.NoError(t, err)
	assert.Contains(t, html, "one<br>\ntwo")

	html, err = markdown.Render("one\ntwo", settings.Defaults(), markdown.Options{SoftBreaks: true})
	require.NoError(t, err)
	assert.Contains(t, html, "one\ntwo")
	assert.NotContains(t, html, "<br>")
}

func TestRenderRawHTML(t *testing.T) {
	source := "<div>raw</div>\n\ntext <b>bold</b>"

	html, err := markdown.Render(source, settings.Defaults(), markdown.Options{})
	require.NoError(t, err)
	assert.NotContains(t, html, "<div>raw</div>")
	assert.NotContains(t, html, "<b>")

	html, err = markdown.Render(source, settings.Defaults(), markdown.Options{Unsafe: true})
	require.NoError(t, err)
	assert.Contains(t, html, "<div>raw</div>")
	assert.Contains(t, html, "<b>bold</b>")
}

func TestRenderUnterminatedFence(t *testing.T) {
	html, err := markdown.Render("text\n\n```go\nfunc main() {", settings.Defaults(), markdown.Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, wrapperOpen))
	assert.Contains(t, html, "<pre ")
	assert.Contains(t, html, "func main() {")
}

func TestRenderSample(t *testing.T) {
	html, err := markdown.Render(markdown.Sample, settings.Defaults(), markdown.Options{})
	require.NoError(t, err)

	for _, tag := range []string{"<h1 ", "<section style=", "<h3 ", "<p ", "<blockquote ", "<pre ", "<code ", "<strong ", "<ul ", "<ol ", "<li ", "<a ", "<hr "} {
		assert.Contains(t, html, tag)
	}
}

func TestPipelineKeepsPreviousOutput(t *testing.T) {
	fail := false
	pipeline := markdown.NewPipelineWithFunc(func(text string, s settings.Settings) (string, error) {
		if fail {
			return "", errors.New("broken")
		}
		return markdown.Render(text, s, markdown.Options{})
	})

	first := pipeline.Update("# one", settings.Defaults())
	assert.Contains(t, first, ">one</h1>")
	assert.Equal(t, first, pipeline.Output())

	fail = true
	assert.Equal(t, first, pipeline.Update("# two", settings.Defaults()))
	assert.Equal(t, first, pipeline.Output())

	fail = false
	assert.Contains(t, pipeline.Update("# two", settings.Defaults()), ">two</h1>")
}

func TestPipelineFollowsSettings(t *testing.T) {
	pipeline := markdown.NewPipeline(markdown.Options{})

	s := settings.Defaults()
	assert.Contains(t, pipeline.Update("# a", s), "color:#1e88e5;")

	s.HeadingColor = "#d32f2f"
	assert.Contains(t, pipeline.Update("# a", s), "color:#d32f2f;")
}
