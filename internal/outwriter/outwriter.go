// Package outwriter has the export writers for merged metric samples.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/renderlab/pagetrend/schema"
)

// selectOutputFile returns the file handle for export output, or stdout
// when no path is configured.
func selectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// writeWithFile handles the common pattern of opening a file, writing to
// it, and cleaning up. It accepts a writer function that takes an
// io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := selectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// WriteSamplesCSV writes the merged samples as CSV with a header row that
// mirrors the metric record schema plus the metric name.
func WriteSamplesCSV(samples []schema.MetricSample, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		if err := csvWriter.Write([]string{"timestamp", "case", "metric", "value"}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, s := range samples {
			rec := []string{
				strconv.FormatInt(s.Time.Unix(), 10),
				s.Case,
				s.Metric,
				strconv.FormatFloat(s.Value, 'f', -1, 64),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	}, "CSV")
}

// sampleJSON is the JSON projection of one metric sample.
type sampleJSON struct {
	Timestamp int64   `json:"timestamp"`
	Case      string  `json:"case"`
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
}

// WriteSamplesJSON writes the merged samples as indented JSON.
func WriteSamplesJSON(samples []schema.MetricSample, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		out := make([]sampleJSON, len(samples))
		for i, s := range samples {
			out[i] = sampleJSON{
				Timestamp: s.Time.Unix(),
				Case:      s.Case,
				Metric:    s.Metric,
				Value:     s.Value,
			}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}, "JSON")
}
