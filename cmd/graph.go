package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/taggraph/internal/plantuml"
	"github.com/urfave/cli/v2"
)

// GraphCmd creates the graph command, emitting PlantUML source without
// invoking the renderer.
func GraphCmd() *cli.Command {
	return &cli.Command{
		Name:  "graph",
		Usage: "Emit the PlantUML source for the tag history graph",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		),
		Action: graphAction,
	}
}

func graphAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	segments, _, err := buildHistory(cfg)
	if err != nil {
		return err
	}

	text := plantuml.Build(cfg.TagNames, segments)

	if path := c.String("output"); path != "" {
		return os.WriteFile(path, []byte(text+"\n"), 0644)
	}

	fmt.Println(text)
	return nil
}
