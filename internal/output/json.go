package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/masmgr/lawdiff/internal/aggregation"
	"github.com/masmgr/lawdiff/internal/history"
)

// JSONChangeWriter writes change reports as JSON.
type JSONChangeWriter struct{}

// JSONChangeReport is the JSON output structure for a change report.
type JSONChangeReport struct {
	RepoPath     string          `json:"repo"`
	Start        string          `json:"start,omitempty"`
	GeneratedAt  string          `json:"generatedAt"`
	TotalChanges int             `json:"totalChanges"`
	Stats        JSONStats       `json:"stats"`
	Changes      []JSONChange    `json:"changes,omitempty"`
	Counts       []JSONDateCount `json:"counts,omitempty"`
}

// JSONChange is the JSON output structure for a single change record.
type JSONChange struct {
	Date     string  `json:"date"`
	BWBID    string  `json:"bwbId"`
	Type     string  `json:"modificationType"`
	Before   *string `json:"before"`
	After    *string `json:"after"`
	Adds     int     `json:"adds"`
	Modifies int     `json:"modifies"`
	Deletes  int     `json:"deletes"`
}

// JSONDateCount is the JSON output structure for per-date totals.
type JSONDateCount struct {
	Date     string `json:"date"`
	Added    int    `json:"added"`
	Modified int    `json:"modified"`
	Deleted  int    `json:"deleted"`
}

// JSONStats holds the run statistics in JSON format.
type JSONStats struct {
	Pairs      int `json:"pairs"`
	Undated    int `json:"undated"`
	Entries    int `json:"entries"`
	Records    int `json:"records"`
	Unmatched  int `json:"unmatched"`
	Anomalies  int `json:"anomalies"`
	Undiffable int `json:"undiffable"`
	Failures   int `json:"failures"`
}

// Write outputs the change report as JSON.
func (w *JSONChangeWriter) Write(report *ChangeReport, options OutputOptions) error {
	changes := changesOf(report)

	jsonReport := JSONChangeReport{
		RepoPath:     report.RepoPath,
		Start:        report.Start,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalChanges: changes.Len(),
		Stats:        toJSONStats(report.Stats),
	}
	if options.Counts {
		jsonReport.Counts = toJSONCounts(changes.Counts())
	} else {
		jsonReport.Changes = toJSONChanges(changes.All())
	}

	return writeJSON(jsonReport, options.OutputPath)
}

func toJSONChange(c aggregation.Change) JSONChange {
	return JSONChange{
		Date:     c.Date(),
		BWBID:    c.DocumentID(),
		Type:     string(c.Type()),
		Before:   optionalText(c.Before()),
		After:    optionalText(c.After()),
		Adds:     c.IsAdd(),
		Modifies: c.IsModify(),
		Deletes:  c.IsDelete(),
	}
}

func toJSONChanges(all []aggregation.Change) []JSONChange {
	items := make([]JSONChange, len(all))
	for i, c := range all {
		items[i] = toJSONChange(c)
	}
	return items
}

func toJSONCount(dc aggregation.DateCount) JSONDateCount {
	return JSONDateCount{Date: dc.Date, Added: dc.Added, Modified: dc.Modified, Deleted: dc.Deleted}
}

func toJSONCounts(counts []aggregation.DateCount) []JSONDateCount {
	items := make([]JSONDateCount, len(counts))
	for i, dc := range counts {
		items[i] = toJSONCount(dc)
	}
	return items
}

func toJSONStats(s history.Stats) JSONStats {
	return JSONStats{
		Pairs:      s.Pairs,
		Undated:    s.Undated,
		Entries:    s.Entries,
		Records:    s.Records,
		Unmatched:  s.Unmatched,
		Anomalies:  s.Anomalies,
		Undiffable: s.Undiffable,
		Failures:   s.Failures,
	}
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
