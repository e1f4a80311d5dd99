package output

import (
	"io"
	"os"
	"strconv"

	"github.com/masmgr/lawdiff/internal/aggregation"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

var (
	changeHeader = []string{"Date", "BWB ID", "Modification type", "Before", "After", "Adds", "Modifies", "Deletes"}
	countHeader  = []string{"Date", "Documents added", "Documents modified", "Documents deleted"}
)

func changeRow(c aggregation.Change) []string {
	before, _ := c.Before()
	after, _ := c.After()
	return []string{
		c.Date(),
		c.DocumentID(),
		string(c.Type()),
		before,
		after,
		strconv.Itoa(c.IsAdd()),
		strconv.Itoa(c.IsModify()),
		strconv.Itoa(c.IsDelete()),
	}
}

func countRow(dc aggregation.DateCount) []string {
	return []string{
		dc.Date,
		strconv.Itoa(dc.Added),
		strconv.Itoa(dc.Modified),
		strconv.Itoa(dc.Deleted),
	}
}

// optionalText returns nil for an absent captured text.
func optionalText(text string, ok bool) *string {
	if !ok {
		return nil
	}
	return &text
}

func changesOf(report *ChangeReport) *aggregation.ChangeLog {
	if report.Changes == nil {
		return aggregation.NewChangeLog()
	}
	return report.Changes
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
