// Package raster plots lines and circles on an integer grid, and draws them
// onto images.
//
// The plotting functions know nothing about images: they call plot for every
// cell they cover, in order, and leave clipping to the caller.
package raster

import (
	"math"

	"github.com/osuushi/geom2d/geom"
)

// PlotFunc receives one grid cell.
type PlotFunc func(x, y int)

// CoverageFunc receives one grid cell and how much of it the line covers, in
// [0, 1].
type CoverageFunc func(x, y int, coverage float64)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BresenhamLine plots the cells of the line from (x0, y0) to (x1, y1),
// both ends included. Steep lines are walked along Y, and lines are always
// walked in increasing order of the major axis, so the cells come out in that
// order regardless of the direction of the line.
func BresenhamLine(x0, y0, x1, y1 int, plot PlotFunc) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		geom.Swap(&x0, &y0)
		geom.Swap(&x1, &y1)
	}
	if x0 > x1 {
		geom.Swap(&x0, &x1)
		geom.Swap(&y0, &y1)
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			plot(y, x)
		} else {
			plot(x, y)
		}
		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
	}
}

// BresenhamLineSwapless walks from (x0, y0) to (x1, y1) in the direction of
// the line, using the symmetric error term instead of swapping axes. The end
// cell may be plotted twice.
func BresenhamLineSwapless(x0, y0, x1, y1 int, plot PlotFunc) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if x0 == x1 && y0 == y1 {
			plot(x0, y0)
			return
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func LineSegment(segment geom.IntSegment2, plot PlotFunc) {
	BresenhamLine(segment.A.X, segment.A.Y, segment.B.X, segment.B.Y, plot)
}

func LineVertices(v0, v1 geom.IntVector2, plot PlotFunc) {
	BresenhamLine(v0.X, v0.Y, v1.X, v1.Y, plot)
}

// WuLine is Xiaolin Wu's antialiased line. Both end cells get full coverage,
// and each interior column (or row, for steep lines) is split between the two
// cells straddling the ideal line.
func WuLine(x0, y0, x1, y1 int, plot CoverageFunc) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		geom.Swap(&x0, &y0)
		geom.Swap(&x1, &y1)
	}
	if x0 > x1 {
		geom.Swap(&x0, &x1)
		geom.Swap(&y0, &y1)
	}

	draw := func(x, y int, coverage float64) {
		if steep {
			plot(y, x, coverage)
		} else {
			plot(x, y, coverage)
		}
	}

	draw(x0, y0, 1)
	draw(x1, y1, 1)

	gradient := float64(y1-y0) / float64(x1-x0)
	y := float64(y0) + gradient
	for x := x0 + 1; x <= x1-1; x++ {
		whole, fraction := math.Modf(y)
		draw(x, int(whole), 1-fraction)
		draw(x, int(whole)+1, fraction)
		y += gradient
	}
}

// BresenhamCircle plots the midpoint circle of the given radius around
// (x0, y0), eight octants at a time. Cells where octants meet are plotted
// more than once.
func BresenhamCircle(x0, y0, radius int, plot PlotFunc) {
	x := radius
	y := 0
	radiusError := 1 - x
	for x >= y {
		plot(x+x0, y+y0)
		plot(y+x0, x+y0)
		plot(-x+x0, y+y0)
		plot(-y+x0, x+y0)
		plot(-x+x0, -y+y0)
		plot(-y+x0, -x+y0)
		plot(x+x0, -y+y0)
		plot(y+x0, -x+y0)
		y++
		if radiusError < 0 {
			radiusError += 2*y + 1
		} else {
			x--
			radiusError += 2 * (y - x + 1)
		}
	}
}
