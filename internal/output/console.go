package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ConsoleWriter writes tag segment reports to the console.
type ConsoleWriter struct{}

// Write outputs the report to the console. Color output always goes to
// stdout; outputPath is ignored for this format.
func (w *ConsoleWriter) Write(report *SegmentReport, outputPath string) error {
	color.Green("Tag history for %s", report.RepoPath)
	if !report.MinDate.IsZero() {
		fmt.Printf("Since: %s\n", report.MinDate.Format(reportDateTimeLayout))
	}
	fmt.Printf("Total: %d commits across %d tags\n\n", report.TotalCommits(), len(report.Tags))

	colorTag := color.New(color.FgGreen).Add(color.Underline)
	colorID := color.New(color.FgYellow)

	for _, tag := range report.Tags {
		segment := report.Segments[tag]

		colorTag.Printf("%s (%d commits)\n", tag, len(segment.Commits))
		for _, commit := range segment.Commits {
			subject := commit.Message
			if idx := strings.IndexByte(subject, '\n'); idx != -1 {
				subject = subject[:idx]
			}

			fmt.Print("\t")
			colorID.Printf("%.8s", commit.ID)
			fmt.Printf("  %s  %s  %s\n", commit.When.Format(reportDateTimeLayout), commit.Author, subject)
		}
		fmt.Println("")
	}

	return nil
}
