package core

import (
	"time"

	"github.com/renderlab/pagetrend/schema"
)

// Timeline is the shared time-axis state for one render cycle: the anchor
// of the axis, the newest commit, and the proportional padding. Panel
// windows are derived from it so every panel starts at the same left edge.
type Timeline struct {
	First      time.Time     // earliest sample, or earliest commit if no samples exist yet
	LastCommit time.Time     // newest commit timestamp
	Padding    time.Duration // 3% of the span, or 5 minutes when the span is empty
}

// Correlate computes the shared time axis from the commit sequence and all
// loaded panels. commits must be non-empty and sorted ascending.
func Correlate(commits []schema.Commit, panels []schema.Panel) Timeline {
	first := earliestSample(panels)
	if first.IsZero() {
		first = commits[0].Time
	}
	last := commits[len(commits)-1].Time

	span := last.Sub(first)
	padding := time.Duration(float64(span) * schema.PaddingFraction)
	if span <= 0 {
		// Single-commit repositories, or samples postdating the newest
		// commit. Any positive span keeps its proportional padding.
		padding = schema.MinPadding
	}

	return Timeline{First: first, LastCommit: last, Padding: padding}
}

// Window returns the panel's horizontal extent. The right edge always
// reaches past both the newest commit (fixed lookahead) and the panel's
// newest data point (proportional padding), whichever is further right;
// commits and samples come from unsynchronized processes and neither may
// be clipped.
func (tl Timeline) Window(panel schema.Panel) schema.TimeWindow {
	right := tl.LastCommit.Add(schema.CommitLookahead)
	if maxT := panel.MaxTime(); !maxT.IsZero() {
		if padded := maxT.Add(tl.Padding); padded.After(right) {
			right = padded
		}
	}
	return schema.TimeWindow{
		Left:  tl.First.Add(-tl.Padding),
		Right: right,
	}
}

// earliestSample returns the oldest sample timestamp across all panels,
// or the zero time when no samples exist yet.
func earliestSample(panels []schema.Panel) time.Time {
	var first time.Time
	for _, panel := range panels {
		for _, pts := range panel.Series {
			for _, pt := range pts {
				if first.IsZero() || pt.Time.Before(first) {
					first = pt.Time
				}
			}
		}
	}
	return first
}
