// Package parquet exports merged metric samples to Parquet files using
// github.com/parquet-go/parquet-go, for offline analysis of the suite's
// similarity history.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/renderlab/pagetrend/schema"
)

// SampleRecord is the columnar projection of one metric sample.
type SampleRecord struct {
	// Timestamp is when the test run recorded the measurement
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// Case is the test case name
	Case string `parquet:"case,snappy"`

	// Metric is the similarity family, e.g. "ssim" or "jaccard"
	Metric string `parquet:"metric,snappy"`

	// Value is the similarity in [0, 1]
	Value float64 `parquet:"value,snappy"`
}

// WriteSamplesParquet writes merged metric samples to a Parquet file.
func WriteSamplesParquet(samples []schema.MetricSample, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SampleRecord struct tags
	writer := parquet.NewGenericWriter[SampleRecord](file)
	defer func() { _ = writer.Close() }()

	records := make([]SampleRecord, len(samples))
	for i, s := range samples {
		records[i] = SampleRecord{
			Timestamp: s.Time,
			Case:      s.Case,
			Metric:    s.Metric,
			Value:     s.Value,
		}
	}
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
