package util

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovetskiy/lorg"
	"github.com/mdtypeset/typeset/markdown"
	"github.com/mdtypeset/typeset/metadata"
	"github.com/mdtypeset/typeset/session"
	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/stylesheet"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

// stdinName is the display name of a document read from stdin.
const stdinName = "<stdin>"

type document struct {
	name   string
	source []byte
}

func RunRender(ctx context.Context, cmd *cli.Command) error {
	if err := SetupLogging(cmd); err != nil {
		return err
	}

	base, err := SettingsFromCommand(cmd)
	if err != nil {
		return err
	}

	opts := markdown.Options{
		SoftBreaks: cmd.Bool("no-breaks"),
		Unsafe:     cmd.Bool("unsafe"),
	}

	files, err := collectFiles(cmd)
	if err != nil {
		return err
	}

	if len(files) > 1 && (cmd.String("output") != "" || cmd.Bool("copy")) {
		return karma.Describe("files", len(files)).
			Format(nil, "--output and --copy need exactly one input file")
	}

	log.Debug("config:")
	for _, name := range []string{"config", "preset", "no-breaks", "unsafe", "copy", "output"} {
		log.Debugf(nil, "%20s: %v", name, cmd.Value(name))
	}
	log.Debugf(nil, "%20s: %+v", "settings", base)

	fatalErrorHandler := NewErrorHandler(cmd.Bool("continue-on-error"))

	var documents []document
	if len(files) == 0 {
		source, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return karma.Format(err, "unable to read markdown from stdin")
		}

		documents = append(documents, document{name: stdinName, source: source})
	}

	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			if err := fatalErrorHandler.Handle(err, "unable to read file %q", file); err != nil {
				return err
			}
			continue
		}

		documents = append(documents, document{name: file, source: source})
	}

	for _, doc := range documents {
		log.Infof(nil, "processing %s", doc.name)

		editor, err := openDocument(doc.source, base, opts)
		if err != nil {
			if err := fatalErrorHandler.Handle(err, "unable to process %q", doc.name); err != nil {
				return err
			}
			continue
		}

		if err := writeOutput(cmd, editor.HTML()); err != nil {
			return err
		}

		if cmd.Bool("copy") {
			if !editor.Copy(Clipboard) {
				log.Warningf(nil, "%s: %s", doc.name, editor.Status())
			} else {
				log.Infof(nil, "%s: %s", doc.name, editor.Status())
			}
		}
	}

	return nil
}

// openDocument applies the document's own settings on top of base and
// renders it.
func openDocument(source []byte, base settings.Settings, opts markdown.Options) (*session.Session, error) {
	meta, body, err := metadata.ExtractMeta(source)
	if err != nil {
		return nil, karma.Format(err, "unable to extract metadata")
	}

	current, err := meta.Apply(base)
	if err != nil {
		return nil, err
	}

	return session.New(string(body), current, opts), nil
}

func collectFiles(cmd *cli.Command) ([]string, error) {
	files := cmd.Args().Slice()

	if pattern := cmd.String("files"); pattern != "" {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, karma.Describe("pattern", pattern).Format(err, "unable to expand files pattern")
		}

		if len(matches) == 0 {
			return nil, karma.Describe("pattern", pattern).Format(nil, "no files matched")
		}

		files = append(files, matches...)
	}

	return files, nil
}

func RunStylesheet(ctx context.Context, cmd *cli.Command) error {
	if err := SetupLogging(cmd); err != nil {
		return err
	}

	current, err := SettingsFromCommand(cmd)
	if err != nil {
		return err
	}

	css, err := stylesheet.Export(current)
	if err != nil {
		return err
	}

	return writeOutput(cmd, css)
}

func RunPresets(ctx context.Context, cmd *cli.Command) error {
	if err := SetupLogging(cmd); err != nil {
		return err
	}

	current, err := SettingsFromCommand(cmd)
	if err != nil {
		return err
	}

	active, _ := settings.ActivePreset(current)

	var buffer strings.Builder
	for _, preset := range settings.Presets() {
		marker := " "
		if preset.Key == active.Key {
			marker = "*"
		}

		fmt.Fprintf(&buffer, "%s %-7s %s %s\n", marker, preset.Key, preset.Color, preset.Label)
	}

	return writeOutput(cmd, buffer.String())
}

func RunSample(ctx context.Context, cmd *cli.Command) error {
	if err := SetupLogging(cmd); err != nil {
		return err
	}

	return writeOutput(cmd, markdown.Sample)
}

// SettingsFromCommand layers the preset and the explicitly set settings
// flags over the defaults and validates the result.
func SettingsFromCommand(cmd *cli.Command) (settings.Settings, error) {
	current := settings.Defaults()

	if key := cmd.String("preset"); key != "" {
		preset, err := settings.LookupPreset(key)
		if err != nil {
			return current, err
		}

		current = current.WithAccent(preset.Color)
	}

	var patch settings.Patch

	if cmd.IsSet("heading-color") {
		patch.HeadingColor = settings.String(cmd.String("heading-color"))
	}
	if cmd.IsSet("bold-color") {
		patch.BoldColor = settings.String(cmd.String("bold-color"))
	}
	if cmd.IsSet("text-color") {
		patch.TextColor = settings.String(cmd.String("text-color"))
	}
	if cmd.IsSet("code-bg") {
		patch.CodeBackground = settings.String(cmd.String("code-bg"))
	}
	if cmd.IsSet("code-margin-top") {
		patch.CodeMarginTop = settings.Float(cmd.Float("code-margin-top"))
	}
	if cmd.IsSet("code-margin-bottom") {
		patch.CodeMarginBottom = settings.Float(cmd.Float("code-margin-bottom"))
	}
	if cmd.IsSet("font-size") {
		patch.FontSize = settings.Float(cmd.Float("font-size"))
	}
	if cmd.IsSet("line-height") {
		patch.LineHeight = settings.Float(cmd.Float("line-height"))
	}

	current = current.Apply(patch)

	if err := current.Validate(); err != nil {
		return current, karma.Format(err, "invalid settings")
	}

	return current, nil
}

func writeOutput(cmd *cli.Command, content string) error {
	content = strings.TrimRight(content, "\n") + "\n"

	path := cmd.String("output")
	if path == "" {
		_, err := io.WriteString(cmd.Root().Writer, content)
		return err
	}

	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		return karma.Describe("path", path).Format(err, "unable to write output")
	}

	log.Infof(nil, "written %s", path)

	return nil
}

// SetupLogging applies the log level and color flags.
func SetupLogging(cmd *cli.Command) error {
	if err := SetLogLevel(cmd); err != nil {
		return err
	}

	if cmd.String("color") == "never" {
		log.GetLogger().SetFormat(
			lorg.NewFormat(
				`${time:2006-01-02 15:04:05.000} ${level:%s:left:true} ${prefix}%s`,
			),
		)
		log.GetLogger().SetOutput(os.Stderr)
	}

	return nil
}

func ConfigFilePath() string {
	fp, err := os.UserConfigDir()
	if err != nil {
		log.Warningf(err, "unable to locate user config directory")
		return "typeset.toml"
	}
	return filepath.Join(fp, "typeset.toml")
}

func SetLogLevel(cmd *cli.Command) error {
	logLevel := cmd.String("log-level")
	switch strings.ToUpper(logLevel) {
	case lorg.LevelTrace.String():
		log.SetLevel(lorg.LevelTrace)
	case lorg.LevelDebug.String():
		log.SetLevel(lorg.LevelDebug)
	case lorg.LevelInfo.String():
		log.SetLevel(lorg.LevelInfo)
	case lorg.LevelWarning.String():
		log.SetLevel(lorg.LevelWarning)
	case lorg.LevelError.String():
		log.SetLevel(lorg.LevelError)
	case lorg.LevelFatal.String():
		log.SetLevel(lorg.LevelFatal)
	default:
		return fmt.Errorf("unknown log level: %s", logLevel)
	}

	return nil
}
