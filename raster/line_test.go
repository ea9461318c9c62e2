package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuushi/geom2d/geom"
)

type cell struct{ x, y int }

func collect(plotter func(PlotFunc)) []cell {
	var cells []cell
	plotter(func(x, y int) {
		cells = append(cells, cell{x, y})
	})
	return cells
}

func TestBresenhamLine(t *testing.T) {
	expected := []cell{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}

	t.Run("shallow", func(t *testing.T) {
		assert.Equal(t, expected, collect(func(plot PlotFunc) { BresenhamLine(0, 0, 4, 2, plot) }))
	})

	t.Run("reversed comes out in the same order", func(t *testing.T) {
		assert.Equal(t, expected, collect(func(plot PlotFunc) { BresenhamLine(4, 2, 0, 0, plot) }))
	})

	t.Run("steep", func(t *testing.T) {
		cells := collect(func(plot PlotFunc) { BresenhamLine(0, 0, 1, 3, plot) })
		assert.Equal(t, []cell{{0, 0}, {0, 1}, {1, 2}, {1, 3}}, cells)
	})

	t.Run("single cell", func(t *testing.T) {
		assert.Equal(t, []cell{{2, 2}}, collect(func(plot PlotFunc) { BresenhamLine(2, 2, 2, 2, plot) }))
	})

	t.Run("segment and vertex forms", func(t *testing.T) {
		assert.Equal(t, expected, collect(func(plot PlotFunc) { LineSegment(geom.IntSegXY(0, 0, 4, 2), plot) }))
		assert.Equal(t, expected, collect(func(plot PlotFunc) { LineVertices(geom.IV2(4, 2), geom.IV2(0, 0), plot) }))
	})
}

func TestBresenhamLineSwapless(t *testing.T) {
	cells := collect(func(plot PlotFunc) { BresenhamLineSwapless(0, 0, 4, 2, plot) })
	assert.Equal(t, []cell{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}, cells)

	t.Run("walks in the direction of the line", func(t *testing.T) {
		cells := collect(func(plot PlotFunc) { BresenhamLineSwapless(4, 2, 0, 0, plot) })
		assert.Equal(t, cell{4, 2}, cells[0])
		assert.Equal(t, cell{0, 0}, cells[len(cells)-1])
	})

	t.Run("horizontal", func(t *testing.T) {
		cells := collect(func(plot PlotFunc) { BresenhamLineSwapless(0, 0, 3, 0, plot) })
		assert.Equal(t, []cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, cells)
	})
}

func TestWuLine(t *testing.T) {
	coverage := make(map[cell]float64)
	WuLine(0, 0, 4, 2, func(x, y int, c float64) {
		coverage[cell{x, y}] += c
	})

	assert.Equal(t, 1.0, coverage[cell{0, 0}], "start")
	assert.Equal(t, 1.0, coverage[cell{4, 2}], "end")
	assert.Equal(t, 0.5, coverage[cell{1, 0}])
	assert.Equal(t, 0.5, coverage[cell{1, 1}])
	assert.Equal(t, 1.0, coverage[cell{2, 1}])

	t.Run("each column sums to one", func(t *testing.T) {
		columns := make(map[int]float64)
		for c, amount := range coverage {
			columns[c.x] += amount
		}
		for x := 1; x <= 3; x++ {
			assert.InDelta(t, 1, columns[x], 1e-12, "column %d", x)
		}
	})

	t.Run("steep lines split rows", func(t *testing.T) {
		rows := make(map[int]float64)
		WuLine(0, 0, 2, 4, func(x, y int, c float64) {
			rows[y] += c
		})
		for y := 0; y <= 4; y++ {
			assert.InDelta(t, 1, rows[y], 1e-12, "row %d", y)
		}
	})
}

func TestBresenhamCircle(t *testing.T) {
	center := cell{10, 10}
	radius := 3
	cells := make(map[cell]bool)
	BresenhamCircle(center.x, center.y, radius, func(x, y int) {
		cells[cell{x, y}] = true
	})

	for _, c := range []cell{{13, 10}, {7, 10}, {10, 13}, {10, 7}} {
		assert.True(t, cells[c], "axis point %v", c)
	}

	for c := range cells {
		dx, dy := c.x-center.x, c.y-center.y
		assert.True(t, cells[cell{center.x - dx, center.y + dy}], "mirror in x of %v", c)
		assert.True(t, cells[cell{center.x + dx, center.y - dy}], "mirror in y of %v", c)
		assert.True(t, cells[cell{center.x + dy, center.y + dx}], "mirror in the diagonal of %v", c)

		distance := math.Hypot(float64(dx), float64(dy))
		assert.InDelta(t, radius, distance, 1, "cell %v", c)
	}
}
