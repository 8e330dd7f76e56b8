package output

import (
	"time"

	"github.com/masmgr/taggraph/internal/gitobj"
)

const reportDateTimeLayout = "2006-01-02 15:04:05"

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
)

// SegmentReport holds the per-tag history segments handed to a writer.
type SegmentReport struct {
	RepoPath    string
	MinDate     time.Time
	GeneratedAt time.Time
	Tags        []string // input order; determines display order
	Segments    map[string]gitobj.TagSegment
}

// TotalCommits returns the number of commits across all segments.
func (r *SegmentReport) TotalCommits() int {
	total := 0
	for _, tag := range r.Tags {
		total += len(r.Segments[tag].Commits)
	}
	return total
}

// ReportWriter writes tag segment reports.
type ReportWriter interface {
	Write(report *SegmentReport, outputPath string) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	default:
		return &ConsoleWriter{}
	}
}
