package output

import (
	"time"

	"github.com/masmgr/lawdiff/internal/aggregation"
	"github.com/masmgr/lawdiff/internal/history"
)

// Compile-time interface conformance checks.
var (
	_ ChangeReportWriter = (*ConsoleChangeWriter)(nil)
	_ ChangeReportWriter = (*JSONChangeWriter)(nil)
	_ ChangeReportWriter = (*CSVChangeWriter)(nil)
	_ ChangeReportWriter = (*MarkdownChangeWriter)(nil)
	_ ChangeReportWriter = (*NDJSONChangeWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatNDJSON   OutputFormat = "ndjson"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string // empty writes to stdout
	Counts     bool   // write per-date totals instead of one row per change
}

// ChangeReport holds the results of a history walk.
type ChangeReport struct {
	RepoPath    string
	Start       string
	GeneratedAt time.Time
	Changes     *aggregation.ChangeLog
	Stats       history.Stats
}

// ChangeReportWriter writes change reports.
type ChangeReportWriter interface {
	Write(report *ChangeReport, options OutputOptions) error
}

// NewChangeReportWriter creates a report writer for the specified format.
func NewChangeReportWriter(format OutputFormat) ChangeReportWriter {
	switch format {
	case FormatJSON:
		return &JSONChangeWriter{}
	case FormatCSV:
		return &CSVChangeWriter{}
	case FormatMarkdown:
		return &MarkdownChangeWriter{}
	case FormatNDJSON:
		return &NDJSONChangeWriter{}
	default:
		return &ConsoleChangeWriter{}
	}
}
