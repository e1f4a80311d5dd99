package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// NDJSONChangeWriter writes change reports as NDJSON (one JSON object per
// line) for downstream pipelines.
type NDJSONChangeWriter struct{}

// NDJSONSummary is the first line of NDJSON output.
type NDJSONSummary struct {
	Type         string `json:"type"`
	TotalChanges int    `json:"totalChanges"`
	Dates        int    `json:"dates"`
	Adds         int    `json:"adds"`
	Modifies     int    `json:"modifies"`
	Deletes      int    `json:"deletes"`
}

type ndjsonChange struct {
	Type string `json:"type"`
	JSONChange
}

type ndjsonCount struct {
	Type string `json:"type"`
	JSONDateCount
}

// Write outputs a summary line followed by one line per change, or one line
// per date when options.Counts is set.
func (w *NDJSONChangeWriter) Write(report *ChangeReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	changes := changesOf(report)
	counts := changes.Counts()

	summary := NDJSONSummary{
		Type:         "summary",
		TotalChanges: changes.Len(),
		Dates:        len(counts),
	}
	for _, dc := range counts {
		summary.Adds += dc.Added
		summary.Modifies += dc.Modified
		summary.Deletes += dc.Deleted
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	if options.Counts {
		for _, dc := range counts {
			if err := writeNDJSONLine(out, ndjsonCount{Type: "count", JSONDateCount: toJSONCount(dc)}); err != nil {
				return err
			}
		}
		return nil
	}

	for _, c := range changes.All() {
		if err := writeNDJSONLine(out, ndjsonChange{Type: "change", JSONChange: toJSONChange(c)}); err != nil {
			return err
		}
	}
	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
