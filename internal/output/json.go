package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONWriter writes tag segment reports as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a segment report.
type JSONReport struct {
	RepoPath     string        `json:"repo"`
	MinDate      *string       `json:"minDate,omitempty"`
	GeneratedAt  string        `json:"generatedAt"`
	TotalTags    int           `json:"totalTags"`
	TotalCommits int           `json:"totalCommits"`
	Tags         []JSONSegment `json:"tags"`
}

// JSONSegment is one tag's ordered run of commits, oldest first.
type JSONSegment struct {
	Tag     string       `json:"tag"`
	Commits []JSONCommit `json:"commits"`
}

// JSONCommit is a single commit record.
type JSONCommit struct {
	ID      string `json:"id"`
	When    string `json:"when"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

// Write outputs the report as JSON, preserving the input tag order.
func (w *JSONWriter) Write(report *SegmentReport, outputPath string) error {
	jsonTags := make([]JSONSegment, 0, len(report.Tags))
	for _, tag := range report.Tags {
		segment := report.Segments[tag]

		commits := make([]JSONCommit, len(segment.Commits))
		for i, commit := range segment.Commits {
			commits[i] = JSONCommit{
				ID:      commit.ID,
				When:    commit.When.Format(time.RFC3339),
				Author:  commit.Author,
				Message: commit.Message,
			}
		}

		jsonTags = append(jsonTags, JSONSegment{Tag: tag, Commits: commits})
	}

	var minDate *string
	if !report.MinDate.IsZero() {
		s := report.MinDate.Format(reportDateTimeLayout)
		minDate = &s
	}

	jsonReport := JSONReport{
		RepoPath:     report.RepoPath,
		MinDate:      minDate,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalTags:    len(report.Tags),
		TotalCommits: report.TotalCommits(),
		Tags:         jsonTags,
	}

	return writeJSON(jsonReport, outputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
