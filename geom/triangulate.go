package geom

import "github.com/osuushi/geom2d/internal/circular"

// Triangulate ear-clips a simple polygon without holes and returns the
// triangles as triples of indexes into vertices. Triangles keep the winding
// of the input. Clockwise input is the usual case, but either winding works.
//
// Each pass rescans the remaining vertices for an ear: a vertex that turns
// the same way as the polygon and whose triangle with its two neighbors
// contains no other remaining vertex. That is O(n³) in the worst case, which
// is fine for the polygon sizes this package is meant for.
//
// Invalid input (fewer than three vertices, zero area, or a self-intersecting
// ring with no ear) panics with a TriangulationError. Polygon.Triangulate and
// the geom2d facade recover that into an error.
func Triangulate(vertices []Vector2) []int {
	if len(vertices) < 3 {
		fatalf("cannot triangulate degenerate polygon with vertex count: %d", len(vertices))
	}

	ring := circular.WithCapacity[Indexed[Vector2]](len(vertices))
	for i, v := range vertices {
		ring.Add(Indexed[Vector2]{v, i})
	}

	winding := NewPolygon(vertices...).SignedArea()
	if winding == 0 {
		fatalf("cannot triangulate polygon with zero area")
	}

	triangles := make([]int, 0, 3*(len(vertices)-2))
	for ring.Len() > 3 {
		ear := -1
		for i := 0; i < ring.Len(); i++ {
			if isEar(&ring, i, winding) {
				ear = i
				break
			}
		}
		if ear < 0 {
			fatalf("no ear among %d remaining vertices, polygon is not simple", ring.Len())
		}
		triangles = append(triangles, ring.At(ear-1).Index, ring.At(ear).Index, ring.At(ear+1).Index)
		ring.RemoveAt(ear)
	}
	triangles = append(triangles, ring.At(0).Index, ring.At(1).Index, ring.At(2).Index)

	Logger().Debug("triangulated polygon", "vertices", len(vertices), "triangles", len(triangles)/3)
	return triangles
}

func isEar(ring *circular.List[Indexed[Vector2]], i int, winding float64) bool {
	previous, middle, next := ring.At(i-1), ring.At(i), ring.At(i+1)

	turn := PerpDot(middle.Value.Sub(previous.Value), next.Value.Sub(middle.Value))
	if turn*winding <= 0 {
		// Reflex or straight
		return false
	}

	for j := 0; j < ring.Len(); j++ {
		other := ring.At(j)
		if other.Index == previous.Index || other.Index == middle.Index || other.Index == next.Index {
			continue
		}
		if IsInTriangle(previous.Value, middle.Value, next.Value, other.Value) {
			return false
		}
	}
	return true
}
