package output

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/masmgr/lawdiff/internal/aggregation"
	"github.com/masmgr/lawdiff/internal/history"
)

// ConsoleChangeWriter writes change reports to the console.
type ConsoleChangeWriter struct{}

// Write outputs the change report to the console.
func (w *ConsoleChangeWriter) Write(report *ChangeReport, options OutputOptions) error {
	changes := changesOf(report)

	color.Green("Normative Change Analysis Results")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	if report.Start != "" {
		fmt.Printf("Start: %s\n", report.Start)
	}
	fmt.Printf("Dates with changes: %s, total changes: %s\n\n",
		humanize.Comma(int64(len(changes.Dates()))), humanize.Comma(int64(changes.Len())))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if options.Counts {
		fmt.Fprintln(tw, "Date\tAdded\tModified\tDeleted")
		for _, dc := range changes.Counts() {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", dc.Date, dc.Added, dc.Modified, dc.Deleted)
		}
	} else {
		fmt.Fprintln(tw, "Date\tBWB ID\tType\tBefore\tAfter")
		for _, c := range changes.All() {
			before, _ := c.Before()
			after, _ := c.After()
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				c.Date(),
				c.DocumentID(),
				getChangeTypeColor(c.Type())(string(c.Type())),
				truncateMessage(singleLine(before), 40),
				truncateMessage(singleLine(after), 40),
			)
		}
	}

	tw.Flush()

	fmt.Println()
	printStats(report.Stats)
	return nil
}

func printStats(s history.Stats) {
	fmt.Printf("Commit pairs compared: %s (undated commits skipped: %s)\n",
		humanize.Comma(int64(s.Pairs)), humanize.Comma(int64(s.Undated)))
	fmt.Printf("Path entries: %s, records: %s\n",
		humanize.Comma(int64(s.Entries)), humanize.Comma(int64(s.Records)))
	if s.Unmatched+s.Anomalies+s.Undiffable+s.Failures > 0 {
		color.Yellow("Skipped: %d without BWB id, %d renames/copies, %d undiffable, %d failed",
			s.Unmatched, s.Anomalies, s.Undiffable, s.Failures)
	}
}

// Helper functions

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateMessage shortens msg to at most maxLen runes.
func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

func getChangeTypeColor(t aggregation.ChangeType) func(string, ...interface{}) string {
	switch t {
	case aggregation.ChangeAdd:
		return color.GreenString
	case aggregation.ChangeDelete:
		return color.RedString
	default:
		return color.YellowString
	}
}
