package schema

import "time"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the export output.
	OutputMode string
)

// All output modes supported by the export command.
const (
	ParquetOut OutputMode = "parquet" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
)

// Time-axis policy. Commits and metric samples come from independent,
// unsynchronized processes, so the axis pads asymmetrically: a fixed
// lookahead past the newest commit and proportional padding past the data.
const (
	// PaddingFraction is the share of the commit span added on both ends.
	PaddingFraction = 0.03

	// MinPadding floors the padding when the commit span is zero or
	// negative (single-commit repositories).
	MinPadding = 5 * time.Minute

	// CommitLookahead keeps the newest commit clear of the right edge.
	CommitLookahead = 2 * time.Hour
)

// LabelBands holds the y-fractions for rotated commit labels. Labels cycle
// through the bands by commit index so dense commits don't overlap, at the
// cost of reusing a slot every fourth commit.
var LabelBands = [4]float64{0.97, 0.87, 0.77, 0.67}

// Curation and publishing defaults.
const (
	// DefaultTargetWidth is the published image width in pixels.
	DefaultTargetWidth = 420

	// DefaultInterval is the live chart refresh cadence.
	DefaultInterval = 3 * time.Second

	// ShowcaseStartMarker and ShowcaseEndMarker delimit the auto-generated
	// region inside the hand-maintained README. The region strictly
	// between them is owned by the publisher and replaced wholesale.
	ShowcaseStartMarker = "<!-- showcase-start -->"
	ShowcaseEndMarker   = "<!-- showcase-end -->"

	// RefSuffix and GenSuffix complete the deterministic, case-derived
	// published filenames.
	RefSuffix = "_ref.png"
	GenSuffix = "_gen.png"

	// CaseOutputDir is where the test runner leaves per-case page images,
	// relative to the repo root: <dir>/<case>/reference/page_001.png and
	// <dir>/<case>/generated/page_001.png.
	CaseOutputDir = "tests/output"
	RefPageRel    = "reference/page_001.png"
	GenPageRel    = "generated/page_001.png"
)

// DefaultSources declares the metric record files the document renderer's
// test suite produces today. The thresholds are domain-calibrated pass
// bars for each similarity family, not derived quantities.
func DefaultSources() []MetricSource {
	return []MetricSource{
		{Name: "jaccard", Path: "tests/output/results.csv", Column: "avg_jaccard", Threshold: 0.25},
		{Name: "ssim", Path: "tests/output/ssim_results.csv", Column: "avg_ssim", Threshold: 0.40},
	}
}
