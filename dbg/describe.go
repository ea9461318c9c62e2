package dbg

import (
	"fmt"
	"sync/atomic"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/geom2d/geom"
)

// The colored and plain Aurora implementations are different types, so they
// are boxed to keep the stored type consistent.
type auroraBox struct{ aurora.Aurora }

var palette atomic.Value

func init() {
	palette.Store(auroraBox{aurora.NewAurora(true)})
}

// SetColors turns ANSI colors in Describe output on or off.
func SetColors(enabled bool) {
	palette.Store(auroraBox{aurora.NewAurora(enabled)})
}

func colors() aurora.Aurora {
	return palette.Load().(auroraBox).Aurora
}

// Describe summarizes a polygon on one line under its readable name. The name
// is green for clockwise polygons, cyan for counterclockwise ones, and red
// when there is no orientation.
func Describe(p *geom.Polygon) string {
	name := Name(p)
	switch p.Orientation() {
	case geom.Clockwise:
		name = colors().Green(name).String()
	case geom.CounterClockwise:
		name = colors().Cyan(name).String()
	default:
		name = colors().Red(name).String()
	}

	convexity := "concave"
	if p.Convex() {
		convexity = "convex"
	}
	return fmt.Sprintf("%s: %d vertices, area %g, %s, %s, centroid %v",
		name, p.Len(), p.Area(), p.Orientation(), colors().Bold(convexity), p.Centroid())
}

// Highlight is for short emphasized fragments in command output.
func Highlight(s string) string {
	return colors().Yellow(s).String()
}

func Failure(s string) string {
	return colors().Red(s).String()
}
