package main

import (
	"log"
	"os"

	"github.com/masmgr/taggraph/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cmd.App()

	// Legacy mode: a single positional config file runs the whole pipeline
	// the way the original one-shot tool did.
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowAppHelp(c)
		}
		return Visualize(c.Args().Get(0))
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
