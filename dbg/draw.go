package dbg

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/geom2d/geom"
)

// Padding around the shapes, in pixels.
const drawPadding = 20

// DrawPolygons renders polygons with y pointing up, filled even-odd so that
// overlaps show as holes, and writes the result to path as a PNG.
func DrawPolygons(polygons []*geom.Polygon, scale float64, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polygons {
		for _, p := range poly.Items() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return errors.New("nothing to draw")
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range polygons {
		if poly.Len() == 0 {
			continue
		}
		c.MoveTo(poly.At(0).X, poly.At(0).Y)
		for i := 1; i < poly.Len(); i++ {
			c.LineTo(poly.At(i).X, poly.At(i).Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Preview writes the image at path to w as an inline terminal image. Only
// terminals that speak the iTerm image protocol will show it.
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
