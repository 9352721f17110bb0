// Package schema has configs, models and shared constants for all parts of pagetrend.
package schema

import "time"

// Commit represents a single version-control history entry.
type Commit struct {
	Time    time.Time // Author timestamp of the commit
	Message string    // First line of the commit message
}

// MetricSample is one timestamped similarity measurement for one test case.
// Values are normalized similarities in [0, 1]. Repeated runs produce
// repeated samples per case; no uniqueness is assumed here.
type MetricSample struct {
	Time   time.Time // When the test run recorded the measurement
	Case   string    // Test case name, e.g. "case11"
	Metric string    // Metric family, e.g. "ssim" or "jaccard"
	Value  float64   // Similarity in [0, 1]
}

// Point is one (timestamp, value) pair inside a per-case series.
type Point struct {
	Time  time.Time
	Value float64
}

// MetricSeries maps a case name to its samples for one metric family,
// in file order. Duplicate timestamps are kept; consumers plot every sample.
type MetricSeries map[string][]Point

// TimeWindow is the horizontal extent of one chart panel. It is derived
// fresh on every render cycle and never persisted.
type TimeWindow struct {
	Left  time.Time
	Right time.Time
}

// CaseScore is the reduced best score for one case after selection.
type CaseScore struct {
	Case  string
	Score float64
}

// ShowcaseRow describes one published case: its best score plus the
// filenames of the resized reference and generated images. Rows are
// created once per curation run, ordered by case name, and never mutated.
type ShowcaseRow struct {
	Case     string
	Score    float64
	RefImage string // e.g. "case11_ref.png"
	GenImage string // e.g. "case11_gen.png"
}

// MetricSource declares one metric record file: where it lives, which
// column carries the value, and the pass bar for that metric family.
type MetricSource struct {
	Name      string  `mapstructure:"name"`
	Path      string  `mapstructure:"path"`   // relative to the repo root
	Column    string  `mapstructure:"column"` // value column in the header row
	Threshold float64 `mapstructure:"threshold"`
}

// Panel pairs a metric source with its loaded series. A source whose
// record file is absent produces no panel.
type Panel struct {
	Source MetricSource
	Series MetricSeries
}

// Cases returns the panel's case names in ascending order. Panels always
// present cases sorted by name regardless of file order.
func (p Panel) Cases() []string {
	return p.Series.Cases()
}

// MaxTime returns the latest sample timestamp in the panel, or the zero
// time when the panel holds no samples.
func (p Panel) MaxTime() time.Time {
	var maxT time.Time
	for _, pts := range p.Series {
		for _, pt := range pts {
			if pt.Time.After(maxT) {
				maxT = pt.Time
			}
		}
	}
	return maxT
}
