package core

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/renderlab/pagetrend/schema"
)

const (
	chartWidth  = 1200
	chartHeight = 600

	// yAxisMax leaves headroom above 100% so top-of-range markers and the
	// upper commit label band stay inside the plot.
	yAxisMax = 105.0

	// Canvas padding handed to the chart library. The plot box below is
	// derived from these same values, so resizing the canvas or changing
	// the padding moves the commit annotations with it.
	padTop    = 14
	padLeft   = 16
	padRight  = 12
	padBottom = 28

	// Gutters the library consumes inside the canvas: the title band on
	// top, axis tick labels plus the axis name on the left and bottom, and
	// a small tick overhang on the right. Measured for the default fonts;
	// the annotations only need to land visually on the axis.
	titleGutter = 26
	yAxisGutter = 44
	xAxisGutter = 22
	rightInset  = 8

	plotLeft   = padLeft + yAxisGutter
	plotRight  = chartWidth - padRight - rightInset
	plotTop    = padTop + titleGutter
	plotBottom = chartHeight - padBottom - xAxisGutter
)

// annotationGray is the low-contrast color shared by commit lines and labels.
var annotationGray = drawing.Color{R: 128, G: 128, B: 128, A: 110}

// lineStyle returns a line+marker style for the i-th case.
func lineStyle(i int) chart.Style {
	c := chart.GetDefaultColor(i)
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: c,
		DotWidth:    4,
		DotColor:    c,
	}
}

// RenderPanel draws one metric panel: a line+marker series per case, a
// dashed threshold reference at the metric's pass bar, and commit
// annotations. Values are plotted as percentages.
func RenderPanel(panel schema.Panel, commits []schema.Commit, win schema.TimeWindow) (image.Image, error) {
	var series []chart.Series
	for i, name := range panel.Cases() {
		pts := panel.Series[name]
		times := make([]time.Time, 0, len(pts))
		values := make([]float64, 0, len(pts))
		for _, pt := range pts {
			times = append(times, pt.Time)
			values = append(values, pt.Value*100)
		}
		if len(times) == 1 {
			// The chart library rejects a zero-width x-range; widen a
			// single sample by a second.
			times = append(times, times[0].Add(time.Second))
			values = append(values, values[0])
		}
		series = append(series, chart.TimeSeries{
			Name:    name,
			XValues: times,
			YValues: values,
			Style:   lineStyle(i),
		})
	}

	threshold := panel.Source.Threshold * 100
	series = append(series, chart.TimeSeries{
		Name:    fmt.Sprintf("threshold (%.0f%%)", threshold),
		XValues: []time.Time{win.Left, win.Right},
		YValues: []float64{threshold, threshold},
		Style: chart.Style{
			StrokeWidth:     1,
			StrokeColor:     annotationGray,
			StrokeDashArray: []float64{5, 5},
		},
	})

	ch := chart.Chart{
		Title:  fmt.Sprintf("%s similarity over time", strings.ToUpper(panel.Source.Name)),
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: padTop, Left: padLeft, Right: padRight, Bottom: padBottom},
		},
		XAxis: chart.XAxis{
			Name:           "Time",
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02 15:04"),
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(win.Left),
				Max: chart.TimeToFloat64(win.Right),
			},
		},
		YAxis: chart.YAxis{
			Name:  fmt.Sprintf("%s (%%)", strings.ToUpper(panel.Source.Name)),
			Range: &chart.ContinuousRange{Min: 0, Max: yAxisMax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s panel: %w", panel.Source.Name, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s panel: %w", panel.Source.Name, err)
	}

	return annotateCommits(img, commits, win), nil
}

// annotateCommits draws a vertical dashed line at each commit timestamp
// plus its message as 90-degree rotated text. Label anchors cycle through
// four vertical bands by commit index so adjacent labels don't overlap
// when commits are dense; every fourth commit reuses a slot.
func annotateCommits(img image.Image, commits []schema.Commit, win schema.TimeWindow) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}

	span := win.Right.Sub(win.Left)
	if span <= 0 {
		return out
	}
	lineColor := annotationGray
	for i, commit := range commits {
		if commit.Time.Before(win.Left) || commit.Time.After(win.Right) {
			continue
		}
		frac := float64(commit.Time.Sub(win.Left)) / float64(span)
		x := plotLeft + int(frac*float64(plotRight-plotLeft))

		// 4-on/4-off dashed vertical.
		for y := plotTop; y < plotBottom; y++ {
			if (y/4)%2 == 0 {
				out.Set(x, y, lineColor)
			}
		}

		band := schema.LabelBands[i%len(schema.LabelBands)]
		yAnchor := plotTop + int((1-band)*float64(plotBottom-plotTop))
		drawRotatedLabel(out, commit.Message, x, yAnchor)
	}
	return out
}

// drawRotatedLabel composites msg as a vertical (90-degree rotated) label
// whose top-right corner sits at (x, y), i.e. just left of the commit line
// extending downward.
func drawRotatedLabel(dst *image.RGBA, msg string, x, y int) {
	if msg == "" {
		return
	}
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, msg).Ceil()
	if textWidth <= 0 {
		return
	}

	horiz := image.NewRGBA(image.Rect(0, 0, textWidth, face.Height))
	drawer := font.Drawer{
		Dst:  horiz,
		Src:  image.NewUniform(annotationGray),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(msg)

	rotated := rotateCCW(horiz)
	rb := rotated.Bounds()
	for ry := 0; ry < rb.Dy(); ry++ {
		for rx := 0; rx < rb.Dx(); rx++ {
			_, _, _, a := rotated.At(rx, ry).RGBA()
			if a == 0 {
				continue
			}
			px := x - rb.Dx() + rx
			py := y + ry
			if (image.Point{X: px, Y: py}).In(dst.Bounds()) {
				dst.Set(px, py, rotated.At(rx, ry))
			}
		}
	}
}

// rotateCCW rotates src a quarter turn counter-clockwise, so left-to-right
// text reads bottom-to-top.
func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(y, w-1-x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// WriteCharts renders every panel and writes one PNG per metric into dir,
// named <metric>_trend.png. Each call clears and fully redraws; data
// volumes are small enough that incremental drawing isn't worth having.
func WriteCharts(panels []schema.Panel, commits []schema.Commit, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tl := Correlate(commits, panels)
	for _, panel := range panels {
		img, err := RenderPanel(panel, commits, tl.Window(panel))
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode %s panel: %w", panel.Source.Name, err)
		}
		path := filepath.Join(dir, panel.Source.Name+"_trend.png")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
