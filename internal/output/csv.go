package output

import (
	"encoding/csv"
	"os"
)

// CSVChangeWriter writes change reports as CSV.
type CSVChangeWriter struct{}

// Write outputs one row per change record, or one row per date when
// options.Counts is set. An existing file at the output path is replaced.
func (w *CSVChangeWriter) Write(report *ChangeReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	changes := changesOf(report)
	if options.Counts {
		if err := writer.Write(countHeader); err != nil {
			return err
		}
		for _, dc := range changes.Counts() {
			if err := writer.Write(countRow(dc)); err != nil {
				return err
			}
		}
	} else {
		if err := writer.Write(changeHeader); err != nil {
			return err
		}
		for _, c := range changes.All() {
			if err := writer.Write(changeRow(c)); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	if file != nil {
		return file.Close()
	}
	return nil
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, err
		}
		return csv.NewWriter(file), file, nil
	}
	return csv.NewWriter(os.Stdout), nil, nil
}
