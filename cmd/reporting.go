package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/lawdiff/internal/history"
	"github.com/masmgr/lawdiff/internal/output"
)

// writeChangeReport writes the report and returns the file it wrote, or ""
// when the report went to stdout.
func writeChangeReport(ctx *CommandContext, result *history.Result, counts bool) (string, error) {
	opts, err := ctx.OutputOptions(counts)
	if err != nil {
		return "", err
	}
	report := &output.ChangeReport{
		RepoPath:    ctx.Config.Repository.Path,
		Start:       ctx.Config.Repository.Start,
		GeneratedAt: time.Now(),
		Changes:     result.Changes,
		Stats:       result.Stats,
	}
	writer := output.NewChangeReportWriter(opts.Format)
	if err := writer.Write(report, opts); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return opts.OutputPath, nil
}

// printSummary reports totals on stderr once the report is written.
func printSummary(c *cli.Context, result *history.Result, written string, elapsed time.Duration) {
	out := c.App.ErrWriter
	s := result.Stats

	color.New(color.FgGreen).Fprintf(out, "%s changes on %s dates from %s commit pairs in %s\n",
		humanize.Comma(int64(result.Changes.Len())),
		humanize.Comma(int64(len(result.Changes.Dates()))),
		humanize.Comma(int64(s.Pairs)),
		elapsed.Round(time.Millisecond))

	if skipped := s.Unmatched + s.Anomalies + s.Undiffable + s.Failures; skipped > 0 {
		color.New(color.FgYellow).Fprintf(out, "%s entries skipped (%d without BWB id, %d renames/copies, %d undiffable, %d failed)\n",
			humanize.Comma(int64(skipped)), s.Unmatched, s.Anomalies, s.Undiffable, s.Failures)
	}

	if written != "" {
		fmt.Fprintf(out, "Report written to %s\n", written)
	}
}
