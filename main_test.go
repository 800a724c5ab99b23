package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdtypeset/typeset/markdown"
	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/stylesheet"
	"github.com/mdtypeset/typeset/util"
	"github.com/reconquest/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func Test_setLogLevel(t *testing.T) {
	type args struct {
		lvl string
	}
	tests := map[string]struct {
		args        args
		want        log.Level
		expectedErr string
	}{
		"invalid": {args: args{lvl: "INVALID"}, want: log.LevelInfo, expectedErr: "unknown log level: INVALID"},
		"empty":   {args: args{lvl: ""}, want: log.LevelInfo, expectedErr: "unknown log level: "},
		"info":    {args: args{lvl: log.LevelInfo.String()}, want: log.LevelInfo},
		"debug":   {args: args{lvl: log.LevelDebug.String()}, want: log.LevelDebug},
		"trace":   {args: args{lvl: log.LevelTrace.String()}, want: log.LevelTrace},
		"warning": {args: args{lvl: log.LevelWarning.String()}, want: log.LevelWarning},
		"error":   {args: args{lvl: log.LevelError.String()}, want: log.LevelError},
		"fatal":   {args: args{lvl: log.LevelFatal.String()}, want: log.LevelFatal},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "log-level",
						Value: tt.args.lvl,
						Usage: "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
					},
				},
			}
			err := util.SetLogLevel(cmd)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, log.GetLevel())
			}
		})
	}
}

// run executes the command tree with an empty config file.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newCommand()

	var stdout bytes.Buffer
	cmd.Writer = &stdout
	cmd.Reader = strings.NewReader(stdin)

	config := filepath.Join(t.TempDir(), "typeset.toml")
	argv := append([]string{"typeset", "--config", config, "--log-level", "ERROR"}, args...)

	err := cmd.Run(context.Background(), argv)

	return stdout.String(), err
}

func TestRenderStdin(t *testing.T) {
	output, err := run(t, "# Title", "render")
	require.NoError(t, err)

	expected, err := markdown.Render("# Title", settings.Defaults(), markdown.Options{})
	require.NoError(t, err)
	assert.Equal(t, expected+"\n", output)
}

func TestRenderSettingsFlags(t *testing.T) {
	output, err := run(t, "# Title\n\n**bold**", "render", "--preset", "red", "--bold-color", "#000000", "--font-size", "20")
	require.NoError(t, err)

	assert.Contains(t, output, "font-size:28px;")
	assert.Contains(t, output, "color:#d32f2f;")
	assert.Contains(t, output, `<strong style="color:#000000; font-weight:bold;">`)
}

func TestRenderRejectsOutOfRange(t *testing.T) {
	_, err := run(t, "text", "render", "--font-size", "30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value out of range")

	_, err = run(t, "text", "render", "--code-margin-top", "51")
	require.Error(t, err)

	_, err = run(t, "text", "render", "--text-color", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color")

	_, err = run(t, "text", "render", "--preset", "pink")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestRenderFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("<!-- Preset: green -->\n# B"), 0o644))

	output, err := run(t, "", "render", "--files", filepath.Join(dir, "*.md"))
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(output, `<section id="wechat-typeset"`))
	assert.Contains(t, output, ">A</h1>")
	assert.Contains(t, output, ">B</h1>")
	assert.Contains(t, output, "color:#388e3c;")
	assert.NotContains(t, output, "Preset")
}

func TestRenderOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "post.md")
	target := filepath.Join(dir, "post.html")
	require.NoError(t, os.WriteFile(input, []byte("text"), 0o644))

	output, err := run(t, "", "render", "-o", target, input)
	require.NoError(t, err)
	assert.Empty(t, output)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), ">text</p>")
}

func TestRenderOutputNeedsSingleFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("b"), 0o644))

	_, err := run(t, "", "render", "-o", filepath.Join(dir, "out.html"), "--files", filepath.Join(dir, "*.md"))
	assert.Error(t, err)
}

func TestRenderNoFilesMatched(t *testing.T) {
	_, err := run(t, "", "render", "--files", filepath.Join(t.TempDir(), "*.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files matched")
}

func TestRenderContinueOnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte("<!-- Font-Size: huge -->\ntext"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.md"), []byte("# Good"), 0o644))

	_, err := run(t, "", "render", "--files", filepath.Join(dir, "*.md"))
	assert.Error(t, err)

	output, err := run(t, "", "render", "--continue-on-error", "--files", filepath.Join(dir, "*.md"))
	assert.NoError(t, err)
	assert.Contains(t, output, ">Good</h1>")
}

func TestRenderEnvironment(t *testing.T) {
	t.Setenv("TYPESET_HEADING_COLOR", "#7b1fa2")

	output, err := run(t, "# Title", "render")
	require.NoError(t, err)
	assert.Contains(t, output, "color:#7b1fa2;")
}

type recordingClipboard struct {
	content string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.content = text
	return nil
}

func TestRenderCopy(t *testing.T) {
	clipboard := &recordingClipboard{}
	previous := util.Clipboard
	util.Clipboard = clipboard
	defer func() { util.Clipboard = previous }()

	output, err := run(t, "**copy me**", "render", "--copy")
	require.NoError(t, err)
	assert.Equal(t, output, clipboard.content+"\n")
}

func TestStylesheetCommand(t *testing.T) {
	output, err := run(t, "", "stylesheet", "--preset", "orange")
	require.NoError(t, err)

	expected, err := stylesheet.Export(settings.Defaults().WithAccent("#f57c00"))
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(expected, "\n")+"\n", output)
}

func TestPresetsCommand(t *testing.T) {
	output, err := run(t, "", "presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, len(settings.Presets()))
	assert.Equal(t, "* blue    #1e88e5 经典蓝", lines[0])
	assert.Equal(t, "  red     #d32f2f 热烈红", lines[1])

	output, err = run(t, "", "presets", "--preset", "black")
	require.NoError(t, err)
	assert.Contains(t, output, "* black   #333333 极简黑")
	assert.Contains(t, output, "  blue    #1e88e5")
}

func TestSampleCommand(t *testing.T) {
	output, err := run(t, "", "sample")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(markdown.Sample, "\n")+"\n", output)
}
