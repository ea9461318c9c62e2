// A 2D geometry toolkit for Go.
//
// The geom package holds the vector, segment and polygon types along with
// intersection, distance, containment and ear-clipping triangulation. This
// package re-exports the everyday types and wraps triangulation so that bad
// input comes back as an error instead of a panic.
package geom2d

import (
	"log/slog"

	"github.com/osuushi/geom2d/geom"
)

type Vector2 = geom.Vector2
type IntVector2 = geom.IntVector2
type Segment2 = geom.Segment2
type IntSegment2 = geom.IntSegment2
type Polygon = geom.Polygon
type IntPolygon = geom.IntPolygon

// Triangle is three corners in the winding order of the source polygon.
type Triangle [3]Vector2

// Triangulate takes the vertices of one simple polygon and returns its
// triangles as triples of vertex indexes.
//
// Either winding is accepted. Holes are not supported.
func Triangulate(vertices ...Vector2) (triangles []int, err error) {
	defer func() {
		if recoveredErr := geom.HandlePanicRecover(recover()); recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()
	return geom.Triangulate(vertices), nil
}

// Triangles is Triangulate with the indexes resolved to points.
func Triangles(vertices ...Vector2) ([]Triangle, error) {
	indexes, err := Triangulate(vertices...)
	if err != nil {
		return nil, err
	}
	result := make([]Triangle, len(indexes)/3)
	for i := range result {
		result[i] = Triangle{vertices[indexes[3*i]], vertices[indexes[3*i+1]], vertices[indexes[3*i+2]]}
	}
	return result, nil
}

// SetLogger routes debug records from every geometry package to l. Nil turns
// logging back off.
func SetLogger(l *slog.Logger) {
	geom.SetLogger(l)
}
