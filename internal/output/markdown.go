package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/masmgr/lawdiff/internal/aggregation"
)

// MarkdownChangeWriter writes change reports as Markdown.
type MarkdownChangeWriter struct{}

// Write outputs the change report as Markdown, one section per date.
func (w *MarkdownChangeWriter) Write(report *ChangeReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	changes := changesOf(report)

	// Header
	fmt.Fprintln(out, "# Normative Change Report")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	if report.Start != "" {
		fmt.Fprintf(out, "**Start:** `%s`\n\n", report.Start)
	}
	fmt.Fprintf(out, "**Dates:** %d, **Changes:** %d\n\n", len(changes.Dates()), changes.Len())

	if options.Counts {
		writeMarkdownCounts(out, changes.Counts())
		return nil
	}

	for _, date := range changes.Dates() {
		fmt.Fprintf(out, "## %s\n\n", date)
		fmt.Fprintln(out, "| BWB ID | Type | Before | After |")
		fmt.Fprintln(out, "|--------|------|--------|-------|")
		for _, c := range changes.For(date) {
			before, _ := c.Before()
			after, _ := c.After()
			fmt.Fprintf(out, "| `%s` | %s %s | %s | %s |\n",
				c.DocumentID(), getChangeTypeEmoji(c.Type()), c.Type(),
				escapeMarkdown(before), escapeMarkdown(after))
		}
		fmt.Fprintln(out)
	}

	return nil
}

func writeMarkdownCounts(out io.Writer, counts []aggregation.DateCount) {
	fmt.Fprintln(out, "| Date | Added | Modified | Deleted |")
	fmt.Fprintln(out, "|------|-------|----------|---------|")
	for _, dc := range counts {
		fmt.Fprintf(out, "| %s | %d | %d | %d |\n", dc.Date, dc.Added, dc.Modified, dc.Deleted)
	}
}

func getChangeTypeEmoji(t aggregation.ChangeType) string {
	switch t {
	case aggregation.ChangeAdd:
		return "🟢"
	case aggregation.ChangeDelete:
		return "🔴"
	default:
		return "🟡"
	}
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
		"\n", "<br>",
	)
	return replacer.Replace(s)
}
