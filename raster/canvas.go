package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/osuushi/geom2d/geom"
)

// Canvas draws onto an RGBA image in pixel coordinates, with the origin at
// the top left. Anything plotted outside the image is dropped.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{image.NewRGBA(image.Rect(0, 0, width, height))}
	c.Clear(colornames.White)
	return c
}

// FromImage draws onto an existing image rather than a copy of it.
func FromImage(img *image.RGBA) *Canvas {
	return &Canvas{img}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

func (c *Canvas) set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// DrawLine draws a one pixel line. With antialias, the line is blended into
// what is already there.
func (c *Canvas) DrawLine(segment geom.IntSegment2, col color.Color, antialias bool) {
	a, b := segment.A, segment.B
	if antialias {
		WuLine(a.X, a.Y, b.X, b.Y, func(x, y int, coverage float64) {
			c.set(x, y, LerpColor(c.At(x, y), col, coverage))
		})
		return
	}
	BresenhamLine(a.X, a.Y, b.X, b.Y, func(x, y int) {
		c.set(x, y, col)
	})
}

// DrawGradientLine shades each pixel by its distance from the start of the
// segment.
func (c *Canvas) DrawGradientLine(segment geom.IntSegment2, from, to color.Color) {
	LineSegment(segment, c.gradientPlot(segment, from, to))
}

func (c *Canvas) gradientPlot(segment geom.IntSegment2, from, to color.Color) PlotFunc {
	start := segment.A.Float()
	length := start.Distance(segment.B.Float())
	if length == 0 {
		return func(x, y int) { c.set(x, y, from) }
	}
	return func(x, y int) {
		t := start.Distance(geom.V2(float64(x), float64(y))) / length
		c.set(x, y, LerpColor(from, to, t))
	}
}

// DrawPolygon outlines the polygon, closing edge included. Polygons with
// fewer than two vertices draw nothing.
func (c *Canvas) DrawPolygon(polygon *geom.IntPolygon, col color.Color) {
	if polygon.Len() < 2 {
		return
	}
	for _, segment := range polygon.Segments() {
		c.DrawLine(segment, col, false)
	}
}

// DrawGradientPolygon shades every edge from `from` at its first vertex to
// `to` at its last.
func (c *Canvas) DrawGradientPolygon(polygon *geom.IntPolygon, from, to color.Color) {
	if polygon.Len() < 2 {
		return
	}
	for _, segment := range polygon.Segments() {
		c.DrawGradientLine(segment, from, to)
	}
}

func (c *Canvas) DrawCircle(center geom.IntVector2, radius int, col color.Color) {
	BresenhamCircle(center.X, center.Y, radius, func(x, y int) {
		c.set(x, y, col)
	})
}

// DrawRect fills a block of pixels with its top left corner at (x, y).
func (c *Canvas) DrawRect(x, y, width, height int, col color.Color) {
	rect := image.Rect(x, y, x+width, y+height)
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) SavePNG(path string) error {
	return gg.SavePNG(path, c.img)
}

// LerpColor mixes a and b in straight RGBA space. t is clamped to [0, 1].
func LerpColor(a, b color.Color, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(ca.R, cb.R), mix(ca.G, cb.G), mix(ca.B, cb.B), mix(ca.A, cb.A)}
}
