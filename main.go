package main

import (
	"context"
	"os"

	"github.com/mdtypeset/typeset/util"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

const (
	version     = "1.0.0"
	usage       = "A tool for typesetting markdown into inline-styled html for WeChat articles."
	description = `typeset converts markdown into an html fragment that keeps its look when pasted into the WeChat article editor: every style is inlined. The same settings can be exported as an Obsidian CSS snippet.`
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:                  "typeset",
		Usage:                 usage,
		Description:           description,
		Version:               version,
		Flags:                 util.GlobalFlags(),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "convert markdown to inline-styled html.",
				ArgsUsage: "[FILE...]",
				Flags:     util.RenderFlags(),
				Action:    util.RunRender,
			},
			{
				Name:   "stylesheet",
				Usage:  "export the settings as an Obsidian CSS snippet.",
				Flags:  append(util.SettingsFlags(), util.OutputFlag()),
				Action: util.RunStylesheet,
			},
			{
				Name:   "presets",
				Usage:  "list accent color presets, the active one is marked with *.",
				Flags:  append(util.SettingsFlags(), util.OutputFlag()),
				Action: util.RunPresets,
			},
			{
				Name:   "sample",
				Usage:  "print the sample article.",
				Flags:  []cli.Flag{util.OutputFlag()},
				Action: util.RunSample,
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.TODO(), os.Args); err != nil {
		log.Fatal(err)
	}
}
