package chart

import (
	"fmt"
	"strings"
)

// Terminal rendering scales the same geometry down to a character grid.
// It is deliberately plain: axis ticks on the left, one column per grid
// cell, markers where data points land.

const (
	termHeight    = 12
	minTermWidth  = 20
	yAxisGutter   = 9 // width of the tick-label column incl. the axis
	termMarker    = '●'
	termLine      = '·'
	termAxisVert  = '│'
	termAxisHoriz = '─'
)

// RenderTerminal draws the chart into a string suitable for a terminal
// of the given total width.
func RenderTerminal(c *Chart, width int) string {
	if c == nil {
		return ""
	}
	plotWidth := width - yAxisGutter
	if plotWidth < minTermWidth {
		plotWidth = minTermWidth
	}

	grid := make([][]rune, termHeight+1)
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Map drawing coordinates onto the grid.
	cell := func(p XY) (row, col int) {
		col = int(p.X / c.Width * float64(plotWidth-1))
		row = int(p.Y / c.Height * float64(termHeight))
		return
	}

	// Connect consecutive points with interpolated line cells, then lay
	// markers on top.
	for i := 1; i < len(c.Points); i++ {
		r0, c0 := cell(c.Points[i-1])
		r1, c1 := cell(c.Points[i])
		steps := max(abs(c1-c0), abs(r1-r0))
		for s := 1; s < steps; s++ {
			row := r0 + (r1-r0)*s/steps
			col := c0 + (c1-c0)*s/steps
			grid[row][col] = termLine
		}
	}
	for _, p := range c.Points {
		row, col := cell(p)
		grid[row][col] = termMarker
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.YLabel)
	for row := 0; row <= termHeight; row++ {
		label := ""
		// Top row is max, bottom row is zero; intermediate ticks land on
		// their scaled rows.
		for _, t := range c.Ticks {
			if int(t.Y/c.Height*float64(termHeight)) == row {
				label = trimZero(t.Value)
			}
		}
		fmt.Fprintf(&b, "%7s %c%s\n", label, termAxisVert, string(grid[row]))
	}
	fmt.Fprintf(&b, "%7s %c%s\n", "", '└', strings.Repeat(string(termAxisHoriz), plotWidth))

	// First and last date labels under the axis.
	first := c.Labels[0]
	last := c.Labels[len(c.Labels)-1]
	pad := plotWidth - len(first) - len(last)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(&b, "%7s  %s%s%s\n", "", first, strings.Repeat(" ", pad), last)
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
