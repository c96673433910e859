package chart

import (
	"fmt"
	"io"
	"strings"
)

// Line color per metric family, mirroring the web UI palette.
var Colors = map[string]string{
	"Weight (lbs)":     "blue",
	"Workout Count":    "green",
	"Duration (hours)": "purple",
	"Calories Burned":  "red",
}

// color picks the line color for the chart's y-axis label.
func (c *Chart) color() string {
	if col, ok := Colors[c.YLabel]; ok {
		return col
	}
	return "steelblue"
}

// PathD returns the SVG path data for the connected line through all
// points in index order.
func (c *Chart) PathD() string {
	var b strings.Builder
	for i, p := range c.Points {
		if i == 0 {
			fmt.Fprintf(&b, "M %.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&b, " L %.1f,%.1f", p.X, p.Y)
		}
	}
	return b.String()
}

// WriteSVG writes the chart as a standalone SVG document.
func WriteSVG(w io.Writer, c *Chart) error {
	if c == nil {
		return nil
	}

	bw := &errWriter{w: w}
	color := c.color()

	bw.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight)
	bw.printf(`<g transform="translate(%d,%d)">`+"\n", MarginLeft, MarginTop)

	// Axes
	bw.printf(`<line x1="0" y1="0" x2="0" y2="%.0f" stroke="#ccc"/>`+"\n", c.Height)
	bw.printf(`<line x1="0" y1="%.0f" x2="%.0f" y2="%.0f" stroke="#ccc"/>`+"\n", c.Height, c.Width, c.Height)

	// Y-axis label
	bw.printf(`<text transform="translate(-40,%.0f) rotate(-90)" text-anchor="middle" font-size="12">%s</text>`+"\n",
		c.Height/2, escape(c.YLabel))

	// Y ticks and gridlines
	for _, t := range c.Ticks {
		bw.printf(`<line x1="-5" y1="%.1f" x2="0" y2="%.1f" stroke="#ccc"/>`+"\n", t.Y, t.Y)
		bw.printf(`<text x="-10" y="%.1f" text-anchor="end" font-size="10">%s</text>`+"\n",
			t.Y+4, trimZero(t.Value))
		bw.printf(`<line x1="0" y1="%.1f" x2="%.0f" y2="%.1f" stroke="#eee" stroke-dasharray="2,2"/>`+"\n",
			t.Y, c.Width, t.Y)
	}

	// X tick marks for every point, labels only where the chart says so
	for _, p := range c.Points {
		bw.printf(`<line x1="%.1f" y1="%.0f" x2="%.1f" y2="%.0f" stroke="#ccc"/>`+"\n",
			p.X, c.Height, p.X, c.Height+5)
	}
	for _, l := range c.XLabels {
		bw.printf(`<text x="%.1f" y="%.0f" text-anchor="middle" font-size="10" transform="rotate(45 %.1f %.0f)">%s</text>`+"\n",
			l.X, c.Height+20, l.X, c.Height+20, escape(l.Text))
	}

	// Data line and markers
	bw.printf(`<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`+"\n", c.PathD(), color)
	for _, p := range c.Points {
		bw.printf(`<circle cx="%.1f" cy="%.1f" r="%d" fill="white" stroke="%s" stroke-width="2"/>`+"\n",
			p.X, p.Y, MarkerRadius, color)
	}

	bw.printf("</g>\n</svg>\n")
	return bw.err
}

// trimZero formats a tick value with at most one decimal place, dropping
// a trailing ".0".
func trimZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// errWriter sticks on the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
