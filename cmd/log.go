package cmd

import (
	"time"

	"github.com/masmgr/taggraph/internal/output"
	"github.com/urfave/cli/v2"
)

// LogCmd creates the log command, printing tag history segments without
// rendering anything.
func LogCmd() *cli.Command {
	return &cli.Command{
		Name:  "log",
		Usage: "Print tag history segments",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (console, json)",
				Value:   "console",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		),
		Action: logAction,
	}
}

func logAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	segments, minDate, err := buildHistory(cfg)
	if err != nil {
		return err
	}

	report := &output.SegmentReport{
		RepoPath:    cfg.RepoPath,
		MinDate:     minDate,
		GeneratedAt: time.Now(),
		Tags:        cfg.TagNames,
		Segments:    segments,
	}

	writer := output.NewReportWriter(getOutputFormat(c.String("format")))
	return writer.Write(report, c.String("output"))
}
