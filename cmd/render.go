package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/masmgr/taggraph/internal/plantuml"
	"github.com/masmgr/taggraph/internal/render"
	"github.com/urfave/cli/v2"
)

// RenderCmd creates the render command: the full pipeline from tag history
// to a PNG produced by the PlantUML jar.
func RenderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Build tag history segments and render them to PNG via PlantUML",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "tool",
				Usage: "Path to the PlantUML jar",
			},
			&cli.StringFlag{
				Name:  "java",
				Usage: "Java executable used to run the jar",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Directory for the rendered PNG",
			},
			&cli.BoolFlag{
				Name:  "keep",
				Usage: "Keep intermediate .puml files in the output directory",
			},
		),
		Action: renderAction,
	}
}

func renderAction(c *cli.Context) error {
	start := time.Now()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if tool := c.String("tool"); tool != "" {
		cfg.Tool = tool
	}
	if java := c.String("java"); java != "" {
		cfg.JavaPath = java
	}
	if out := c.String("out"); out != "" {
		cfg.OutputImagePath = out
	}
	if cfg.Tool == "" {
		return fmt.Errorf("no PlantUML jar configured (set <visualization_tool> or --tool)")
	}

	color.Green("Scanning %v repo", cfg.RepoPath)

	segments, _, err := buildHistory(cfg)
	if err != nil {
		return err
	}

	total := 0
	for _, tag := range cfg.TagNames {
		total += len(segments[tag].Commits)
	}
	color.Yellow("Found %v commits across %v tags", total, len(cfg.TagNames))

	outputDir := cfg.OutputImagePath
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	pumlPath := filepath.Join(outputDir, "graph.puml")
	text := plantuml.Build(cfg.TagNames, segments)
	if err := os.WriteFile(pumlPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pumlPath, err)
	}

	runner := render.Runner{Java: cfg.JavaPath, Tool: cfg.Tool}
	if err := runner.Render(context.Background(), pumlPath, outputDir); err != nil {
		return err
	}

	if !c.Bool("keep") {
		if err := render.Cleanup(outputDir, cfg.CleanupPatterns); err != nil {
			return err
		}
	}

	color.Green("PNG file created at %v", outputDir)
	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n", time.Since(start))
	return nil
}
