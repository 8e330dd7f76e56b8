package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/masmgr/taggraph/config"
	"github.com/masmgr/taggraph/internal/gitobj"
	"github.com/masmgr/taggraph/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "taggraph",
		Usage:   "Render git tag history as PlantUML graphs",
		Version: "1.0.0",
		Commands: []*cli.Command{
			RenderCmd(),
			LogCmd(),
			GraphCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to XML configuration file",
			},
		},
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
		},
		&cli.StringFlag{
			Name:  "min-date",
			Usage: "Include commits authored at or after this time (YYYY-MM-DD or \"YYYY-MM-DD HH:MM:SS\")",
		},
		&cli.StringSliceFlag{
			Name:    "tag",
			Aliases: []string{"t"},
			Usage:   "Tag to include, oldest first (can be specified multiple times)",
		},
		&cli.IntFlag{
			Name:  "max-commits",
			Usage: "Abort a history walk after this many commits (0 = unbounded)",
		},
	}
}

// parseDateFlag parses a date string flag, accepting a bare date or a full
// timestamp. An empty string parses to the zero time (no cutoff).
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(config.DateTimeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or \"%s\")", s, config.DateTimeLayout)
	}
	return t, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults, then applies the
// CLI flag overrides shared by all commands.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if repo := c.String("repo"); repo != "" {
		cfg.RepoPath = repo
	}
	if tags := c.StringSlice("tag"); len(tags) > 0 {
		cfg.TagNames = tags
	}
	if minDate := c.String("min-date"); minDate != "" {
		if _, err := parseDateFlag(minDate); err != nil {
			return nil, err
		}
		cfg.MinDate = minDate
	}
	if c.IsSet("max-commits") {
		cfg.MaxCommits = c.Int("max-commits")
	}

	return cfg, nil
}

// buildHistory validates the config and builds the per-tag segments.
func buildHistory(cfg *config.Config) (map[string]gitobj.TagSegment, time.Time, error) {
	if cfg.RepoPath == "" {
		return nil, time.Time{}, fmt.Errorf("no repository path (set <repository_path> or --repo)")
	}
	if len(cfg.TagNames) == 0 {
		return nil, time.Time{}, fmt.Errorf("no tags to visualize (set <tag_names> or --tag)")
	}

	minDate, err := parseDateFlag(cfg.MinDate)
	if err != nil {
		return nil, time.Time{}, err
	}

	segments, err := gitobj.BuildSegments(cfg.RepoPath, cfg.TagNames, minDate, cfg.MaxCommits)
	if err != nil {
		return nil, time.Time{}, err
	}

	return segments, minDate, nil
}

// legacyAction handles the default command behavior: a single positional
// config file argument renders the graph the way the original one-shot
// tool invocation did.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}

	if err := c.Set("config", c.Args().Get(0)); err != nil {
		return err
	}
	return RenderCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
