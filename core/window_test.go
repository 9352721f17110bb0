package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renderlab/pagetrend/schema"
)

func commitAt(epoch int64) schema.Commit {
	return schema.Commit{Time: time.Unix(epoch, 0).UTC()}
}

func panelWithPoints(epochs ...int64) schema.Panel {
	pts := make([]schema.Point, 0, len(epochs))
	for _, e := range epochs {
		pts = append(pts, schema.Point{Time: time.Unix(e, 0).UTC(), Value: 0.5})
	}
	return schema.Panel{
		Source: schema.MetricSource{Name: "ssim"},
		Series: schema.MetricSeries{"alpha": pts},
	}
}

func TestCorrelatePadding(t *testing.T) {
	tests := []struct {
		name    string
		commits []schema.Commit
		panels  []schema.Panel
		first   time.Time
		last    time.Time
		padding time.Duration
	}{
		{
			name:    "padding is three percent of the span",
			commits: []schema.Commit{commitAt(0), commitAt(100_000)},
			panels:  []schema.Panel{panelWithPoints(0)},
			first:   time.Unix(0, 0).UTC(),
			last:    time.Unix(100_000, 0).UTC(),
			padding: 3000 * time.Second,
		},
		{
			name:    "short positive span keeps proportional padding",
			commits: []schema.Commit{commitAt(0), commitAt(6000)},
			panels:  []schema.Panel{panelWithPoints(0)},
			first:   time.Unix(0, 0).UTC(),
			last:    time.Unix(6000, 0).UTC(),
			padding: 180 * time.Second,
		},
		{
			name:    "single commit floors padding at five minutes",
			commits: []schema.Commit{commitAt(1000)},
			panels:  []schema.Panel{panelWithPoints(1000)},
			first:   time.Unix(1000, 0).UTC(),
			last:    time.Unix(1000, 0).UTC(),
			padding: 5 * time.Minute,
		},
		{
			name:    "samples newer than last commit give negative span, still floored",
			commits: []schema.Commit{commitAt(1000)},
			panels:  []schema.Panel{panelWithPoints(2000)},
			first:   time.Unix(2000, 0).UTC(),
			last:    time.Unix(1000, 0).UTC(),
			padding: 5 * time.Minute,
		},
		{
			name:    "no samples anchors the axis at the first commit",
			commits: []schema.Commit{commitAt(500), commitAt(600)},
			panels:  nil,
			first:   time.Unix(500, 0).UTC(),
			last:    time.Unix(600, 0).UTC(),
			padding: 3 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := Correlate(tt.commits, tt.panels)
			assert.Equal(t, tt.first, tl.First)
			assert.Equal(t, tt.last, tl.LastCommit)
			assert.Equal(t, tt.padding, tl.Padding)
		})
	}
}

func TestWindowRightEdge(t *testing.T) {
	tl := Timeline{
		First:      time.Unix(0, 0).UTC(),
		LastCommit: time.Unix(10_000, 0).UTC(),
		Padding:    10 * time.Minute,
	}

	t.Run("commit lookahead wins over stale data", func(t *testing.T) {
		win := tl.Window(panelWithPoints(5000))
		assert.Equal(t, tl.LastCommit.Add(schema.CommitLookahead), win.Right)
	})

	t.Run("padded newest sample wins over lookahead", func(t *testing.T) {
		newest := tl.LastCommit.Add(3 * time.Hour)
		win := tl.Window(panelWithPoints(newest.Unix()))
		assert.Equal(t, newest.Add(tl.Padding), win.Right)
	})

	t.Run("empty panel falls back to lookahead", func(t *testing.T) {
		win := tl.Window(schema.Panel{Series: schema.MetricSeries{}})
		assert.Equal(t, tl.LastCommit.Add(schema.CommitLookahead), win.Right)
	})
}

func TestWindowLeftEdge(t *testing.T) {
	tl := Timeline{
		First:      time.Unix(10_000, 0).UTC(),
		LastCommit: time.Unix(20_000, 0).UTC(),
		Padding:    5 * time.Minute,
	}
	win := tl.Window(panelWithPoints(10_000))
	assert.Equal(t, tl.First.Add(-5*time.Minute), win.Left)
}
