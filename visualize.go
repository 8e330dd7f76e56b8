package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/masmgr/taggraph/config"
	"github.com/masmgr/taggraph/internal/gitobj"
	"github.com/masmgr/taggraph/internal/plantuml"
	"github.com/masmgr/taggraph/internal/render"
)

// Visualize runs the whole pipeline from an XML config file: resolve the
// configured tags, walk their history, emit PlantUML, and render it to PNG
// with the configured jar.
func Visualize(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.RepoPath == "" {
		return fmt.Errorf("no repository_path in %s", configPath)
	}
	if cfg.Tool == "" {
		return fmt.Errorf("no visualization_tool in %s", configPath)
	}
	if len(cfg.TagNames) == 0 {
		return fmt.Errorf("no tag_names in %s", configPath)
	}

	minDate, err := cfg.MinDateTime()
	if err != nil {
		return err
	}

	color.Green("Scanning %v repo", cfg.RepoPath)

	segments, err := gitobj.BuildSegments(cfg.RepoPath, cfg.TagNames, minDate, cfg.MaxCommits)
	if err != nil {
		return err
	}

	total := 0
	for _, tag := range cfg.TagNames {
		total += len(segments[tag].Commits)
	}
	color.Yellow("Found %v commits across %v tags", total, len(cfg.TagNames))

	if err := os.MkdirAll(cfg.OutputImagePath, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	pumlPath := filepath.Join(cfg.OutputImagePath, "graph.puml")
	text := plantuml.Build(cfg.TagNames, segments)
	if err := os.WriteFile(pumlPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pumlPath, err)
	}

	runner := render.Runner{Java: cfg.JavaPath, Tool: cfg.Tool}
	if err := runner.Render(context.Background(), pumlPath, cfg.OutputImagePath); err != nil {
		return err
	}

	if err := render.Cleanup(cfg.OutputImagePath, cfg.CleanupPatterns); err != nil {
		return err
	}

	color.Green("PNG file created at %v", cfg.OutputImagePath)
	return nil
}
