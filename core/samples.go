package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/renderlab/pagetrend/schema"
)

// LoadSeries reads one metric record file and groups its rows by case,
// preserving file order within each case. Repeated timestamps are kept;
// the chart plots every sample. A missing record file returns fs.ErrNotExist
// so callers can treat absence as "no panel" rather than a failure.
func LoadSeries(root string, src schema.MetricSource) (schema.MetricSeries, error) {
	f, err := os.Open(filepath.Join(root, src.Path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", src.Path, err)
	}

	tsCol, caseCol, valCol := -1, -1, -1
	for i, name := range header {
		switch name {
		case "timestamp":
			tsCol = i
		case "case":
			caseCol = i
		case src.Column:
			valCol = i
		}
	}
	if tsCol < 0 || caseCol < 0 || valCol < 0 {
		return nil, fmt.Errorf("%s: header must contain timestamp, case and %s", src.Path, src.Column)
	}

	series := make(schema.MetricSeries)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src.Path, err)
		}
		ts, err := strconv.ParseInt(rec[tsCol], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad timestamp %q: %w", src.Path, rec[tsCol], err)
		}
		val, err := strconv.ParseFloat(rec[valCol], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad %s value %q: %w", src.Path, src.Column, rec[valCol], err)
		}
		name := rec[caseCol]
		series[name] = append(series[name], schema.Point{Time: time.Unix(ts, 0).UTC(), Value: val})
	}
	return series, nil
}

// LoadPanels loads every declared source that has a record file. An absent
// file omits that metric's panel; only when every declared file is absent
// does loading fail, with schema.ErrNoMetricSources.
func LoadPanels(root string, sources []schema.MetricSource) ([]schema.Panel, error) {
	var panels []schema.Panel
	for _, src := range sources {
		series, err := LoadSeries(root, src)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		panels = append(panels, schema.Panel{Source: src, Series: series})
	}
	if len(panels) == 0 {
		return nil, schema.ErrNoMetricSources
	}
	return panels, nil
}

// MergeSamples flattens the panels into one sample list for export,
// ordered by panel declaration, then case name, then file order.
func MergeSamples(panels []schema.Panel) []schema.MetricSample {
	var samples []schema.MetricSample
	for _, panel := range panels {
		samples = append(samples, panel.Series.Samples(panel.Source.Name)...)
	}
	return samples
}
