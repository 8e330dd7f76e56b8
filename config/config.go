// Package config loads visualizer configuration from XML files.
package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DateTimeLayout is the timestamp layout used in config files.
const DateTimeLayout = "2006-01-02 15:04:05"

// Config is the root configuration structure. Field names follow the XML
// vocabulary the tool has always consumed.
type Config struct {
	XMLName xml.Name `xml:"config"`

	// Tool is the path to the PlantUML jar used for rendering.
	Tool string `xml:"visualization_tool"`

	// RepoPath is the repository whose tag history is visualized.
	RepoPath string `xml:"repository_path"`

	// OutputImagePath is the directory the rendered PNG is written to.
	OutputImagePath string `xml:"output_image_path"`

	// MinDate is the minimum commit date, "YYYY-MM-DD HH:MM:SS". Commits
	// authored before it are filtered from the segments.
	MinDate string `xml:"commit_dates"`

	// TagNames are processed strictly in file order; each tag's segment is
	// bounded by the previous tag's commit.
	TagNames []string `xml:"tag_names>tag"`

	// JavaPath is the java executable used to run the jar.
	JavaPath string `xml:"java_path"`

	// MaxCommits aborts a history walk after this many commits. 0 means
	// unbounded.
	MaxCommits int `xml:"max_commits"`

	// CleanupPatterns are glob patterns for intermediate render artifacts
	// removed from the output directory after a successful render.
	CleanupPatterns []string `xml:"cleanup_patterns>pattern"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		OutputImagePath: ".",
		JavaPath:        "java",
		MaxCommits:      0,
		CleanupPatterns: []string{"*.puml", "*.cmapx"},
	}
}

// MinDateTime parses the configured minimum date. An empty value means no
// cutoff and parses to the zero time.
func (c *Config) MinDateTime() (time.Time, error) {
	if c.MinDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateTimeLayout, c.MinDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid commit_dates %q (expected %s)", c.MinDate, DateTimeLayout)
	}
	return t, nil
}

// LoadConfig loads configuration from a file, merging with defaults.
//
// An explicit path that does not exist is an error. With an empty path the
// default locations (./taggraph.xml, then ~/.taggraph.xml) are tried, and
// defaults are returned when none exists.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		candidates := []string{"taggraph.xml"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".taggraph.xml"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal into a fresh struct and overlay: xml.Unmarshal appends to
	// pre-populated slices, which would duplicate default patterns.
	var fileCfg Config
	if err := xml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(&fileCfg)

	return cfg, nil
}

// merge overlays the non-empty fields of other on top of c.
func (c *Config) merge(other *Config) {
	if other.Tool != "" {
		c.Tool = other.Tool
	}
	if other.RepoPath != "" {
		c.RepoPath = other.RepoPath
	}
	if other.OutputImagePath != "" {
		c.OutputImagePath = other.OutputImagePath
	}
	if other.MinDate != "" {
		c.MinDate = other.MinDate
	}
	if len(other.TagNames) > 0 {
		c.TagNames = other.TagNames
	}
	if other.JavaPath != "" {
		c.JavaPath = other.JavaPath
	}
	if other.MaxCommits != 0 {
		c.MaxCommits = other.MaxCommits
	}
	if len(other.CleanupPatterns) > 0 {
		c.CleanupPatterns = other.CleanupPatterns
	}
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := xml.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
