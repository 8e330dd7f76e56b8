// Package render drives the external PlantUML renderer and cleans up its
// scratch artifacts.
package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Runner invokes the PlantUML jar to rasterize a .puml file.
type Runner struct {
	Java string // java executable; empty means "java" from PATH
	Tool string // path to the PlantUML jar
}

// Render runs the jar against pumlPath, writing PNG output into outputDir.
// The renderer's combined output is folded into the error on failure.
func (r Runner) Render(ctx context.Context, pumlPath, outputDir string) error {
	java := r.Java
	if java == "" {
		java = "java"
	}

	args := []string{"-jar", r.Tool, "-tpng", pumlPath, "-o", outputDir}

	out, err := exec.CommandContext(ctx, java, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("plantuml render failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Cleanup removes regular files in dir whose base name matches any of the
// given glob patterns. Matching is against the base name only, so "*.puml"
// behaves the same regardless of where dir lives. Subdirectories are left
// alone.
func Cleanup(dir string, patterns []string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cleanup %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, pattern := range patterns {
			matched, err := doublestar.Match(pattern, entry.Name())
			if err != nil {
				return fmt.Errorf("bad cleanup pattern %q: %w", pattern, err)
			}
			if !matched {
				continue
			}
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return fmt.Errorf("cleanup %s: %w", entry.Name(), err)
			}
			break
		}
	}

	return nil
}
