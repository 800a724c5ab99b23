package util

import (
	"github.com/mdtypeset/typeset/settings"
	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrctoml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var filename string

// sources chains the environment variable and the config file key of a
// flag, in that order.
func sources(env, key string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar("TYPESET_"+env),
		altsrctoml.TOML(key, altsrc.NewStringPtrSourcer(&filename)),
	)
}

// GlobalFlags are accepted by every command. Flags are built on every call
// since urfave flags keep parse state.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "color",
			Value:   "auto",
			Usage:   "display logs in color. Possible values: auto, never.",
			Sources: sources("COLOR", "color"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
			Sources: sources("LOG_LEVEL", "log-level"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Value:       ConfigFilePath(),
			Usage:       "use the specified configuration file.",
			TakesFile:   true,
			Sources:     cli.NewValueSourceChain(cli.EnvVar("TYPESET_CONFIG")),
			Destination: &filename,
		},
	}
}

// SettingsFlags expose every visual setting. Their values only apply when
// set explicitly, see SettingsFromCommand.
func SettingsFlags() []cli.Flag {
	defaults := settings.Defaults()

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "preset",
			Value:   "",
			Usage:   "use the accent color of a preset for headings and bold text. See the presets command.",
			Sources: sources("PRESET", "preset"),
		},
		&cli.StringFlag{
			Name:    "heading-color",
			Value:   defaults.HeadingColor,
			Usage:   "color of headings, their borders, links and quote borders.",
			Sources: sources("HEADING_COLOR", "heading-color"),
		},
		&cli.StringFlag{
			Name:    "bold-color",
			Value:   defaults.BoldColor,
			Usage:   "color of bold text.",
			Sources: sources("BOLD_COLOR", "bold-color"),
		},
		&cli.StringFlag{
			Name:    "text-color",
			Value:   defaults.TextColor,
			Usage:   "color of paragraphs and lists.",
			Sources: sources("TEXT_COLOR", "text-color"),
		},
		&cli.StringFlag{
			Name:    "code-bg",
			Value:   defaults.CodeBackground,
			Usage:   "background color of code blocks.",
			Sources: sources("CODE_BG", "code-bg"),
		},
		&cli.FloatFlag{
			Name:    "code-margin-top",
			Value:   defaults.CodeMarginTop,
			Usage:   "space above code blocks in px, 0 to 50.",
			Sources: sources("CODE_MARGIN_TOP", "code-margin-top"),
		},
		&cli.FloatFlag{
			Name:    "code-margin-bottom",
			Value:   defaults.CodeMarginBottom,
			Usage:   "space below code blocks in px, 0 to 50.",
			Sources: sources("CODE_MARGIN_BOTTOM", "code-margin-bottom"),
		},
		&cli.FloatFlag{
			Name:    "font-size",
			Value:   defaults.FontSize,
			Usage:   "base font size in px, 12 to 20. Headings scale from it.",
			Sources: sources("FONT_SIZE", "font-size"),
		},
		&cli.FloatFlag{
			Name:    "line-height",
			Value:   defaults.LineHeight,
			Usage:   "line height of paragraphs.",
			Sources: sources("LINE_HEIGHT", "line-height"),
		},
	}
}

func OutputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "output",
		Aliases:   []string{"o"},
		Value:     "",
		Usage:     "write the result to the specified file instead of stdout.",
		TakesFile: true,
	}
}

// RenderFlags are the flags of the render command.
func RenderFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:      "files",
			Aliases:   []string{"f"},
			Value:     "",
			Usage:     "use specified markdown file(s) for converting to html. Supports file globbing patterns (needs to be quoted).",
			TakesFile: true,
			Sources:   sources("FILES", "files"),
		},
		&cli.BoolFlag{
			Name:    "continue-on-error",
			Value:   false,
			Usage:   "don't exit if an error occurs while processing a file, continue processing remaining files.",
			Sources: sources("CONTINUE_ON_ERROR", "continue-on-error"),
		},
		&cli.BoolFlag{
			Name:    "copy",
			Value:   false,
			Usage:   "copy the resulting html to the clipboard.",
			Sources: sources("COPY", "copy"),
		},
		&cli.BoolFlag{
			Name:    "no-breaks",
			Value:   false,
			Usage:   "keep single line breaks as spaces instead of turning them into <br>.",
			Sources: sources("NO_BREAKS", "no-breaks"),
		},
		&cli.BoolFlag{
			Name:    "unsafe",
			Value:   false,
			Usage:   "pass raw html from the markdown through to the output.",
			Sources: sources("UNSAFE", "unsafe"),
		},
		OutputFlag(),
	}

	return append(flags, SettingsFlags()...)
}
