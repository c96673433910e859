// Package chart computes line-chart geometry from aggregated points and
// renders it. Geometry is pure arithmetic, testable with plain numeric
// assertions; the SVG and terminal adapters only turn it into output.
package chart

import (
	"math"

	"fittrack/internal/timeseries"
)

// Canvas dimensions, matching the classic 800x400 progress chart.
const (
	CanvasWidth  = 800
	CanvasHeight = 400

	MarginTop    = 20
	MarginRight  = 30
	MarginBottom = 40
	MarginLeft   = 60

	// NumTicks is the requested y-axis tick count. The axis carries
	// NumTicks+1 labeled gridlines, 0 through max inclusive.
	NumTicks = 5

	// MarkerRadius is the radius of each data-point marker.
	MarkerRadius = 4

	// maxXLabels caps how many x-axis labels are drawn before thinning.
	maxXLabels = 10
)

// XY is a point in drawing coordinates; y grows downward.
type XY struct {
	X float64
	Y float64
}

// Tick is one labeled y-axis gridline.
type Tick struct {
	Value float64
	Y     float64
}

// XLabel is one x-axis label at its point's x position.
type XLabel struct {
	Text string
	X    float64
}

// Chart is the full renderable drawing description.
type Chart struct {
	Width    float64 // inner drawing width
	Height   float64 // inner drawing height
	YLabel   string
	MaxValue float64
	Points   []XY
	Ticks    []Tick
	XLabels  []XLabel
	Labels   []string // one per point, in index order
	Values   []float64
}

// Build computes chart geometry for the given points. It returns nil for
// an empty series; the caller shows an empty-state message instead.
func Build(points []timeseries.Point, yLabel string) *Chart {
	if len(points) == 0 {
		return nil
	}

	width := float64(CanvasWidth - MarginLeft - MarginRight)
	height := float64(CanvasHeight - MarginTop - MarginBottom)

	var maxValue float64
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	maxValue *= 1.1 // 10% headroom
	if maxValue == 0 {
		// All-zero series: keep the scale finite.
		maxValue = 1
	}

	// Index-proportional x spacing, not date-proportional.
	xStep := width / math.Max(float64(len(points)-1), 1)

	c := &Chart{
		Width:    width,
		Height:   height,
		YLabel:   yLabel,
		MaxValue: maxValue,
	}

	for i, p := range points {
		c.Points = append(c.Points, XY{
			X: float64(i) * xStep,
			Y: height - p.Value/maxValue*height,
		})
		c.Labels = append(c.Labels, p.Label)
		c.Values = append(c.Values, p.Value)
	}

	for i := 0; i <= NumTicks; i++ {
		value := maxValue * float64(i) / NumTicks
		c.Ticks = append(c.Ticks, Tick{
			Value: math.Round(value*10) / 10,
			Y:     height - value/maxValue*height,
		})
	}

	step := labelStep(len(points))
	for i, p := range points {
		if i%step == 0 {
			c.XLabels = append(c.XLabels, XLabel{Text: p.Label, X: c.Points[i].X})
		}
	}

	return c
}

// labelStep returns the index stride between x-axis labels so that at
// most about maxXLabels are drawn.
func labelStep(n int) int {
	if n <= maxXLabels {
		return 1
	}
	return int(math.Ceil(float64(n) / maxXLabels))
}

// Summary holds the statistics shown beside the chart.
type Summary struct {
	First   float64
	Last    float64
	Change  float64
	Average float64
}

// Summarize computes first/last/change/average for a series.
func Summarize(points []timeseries.Point) (Summary, bool) {
	if len(points) == 0 {
		return Summary{}, false
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	first := points[0].Value
	last := points[len(points)-1].Value
	return Summary{
		First:   first,
		Last:    last,
		Change:  last - first,
		Average: sum / float64(len(points)),
	}, true
}
