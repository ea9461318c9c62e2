package geom

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every index refers to a vertex of the polygon, and every vertex is used.
// 2. Every edge of the polygon is an edge of some triangle.
// 3. Every triangle has the polygon's winding, and no triangle has zero area.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
func assertValidTriangulation(t *testing.T, polygon *Polygon, triangles []int) {
	t.Helper()
	require.Len(t, triangles, 3*(polygon.Len()-2), "an n-gon has n-2 triangles")

	used := make(map[int]struct{})
	edges := make(map[[2]int]struct{})
	addEdge := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		edges[[2]int{a, b}] = struct{}{}
	}

	var triangleArea float64
	winding := polygon.SignedArea()
	for i := 0; i < len(triangles); i += 3 {
		a, b, c := triangles[i], triangles[i+1], triangles[i+2]
		for _, index := range []int{a, b, c} {
			require.GreaterOrEqual(t, index, 0)
			require.Less(t, index, polygon.Len())
			used[index] = struct{}{}
		}
		tri := NewPolygon(polygon.At(a), polygon.At(b), polygon.At(c))
		require.Positive(t, tri.SignedArea()*winding, "triangle %d %d %d has the wrong winding or no area", a, b, c)
		triangleArea += tri.Area()
		addEdge(a, b)
		addEdge(b, c)
		addEdge(c, a)
	}

	require.Len(t, used, polygon.Len(), "every vertex must be used")
	for i := 0; i < polygon.Len(); i++ {
		a, b := i, (i+1)%polygon.Len()
		if a > b {
			a, b = b, a
		}
		_, ok := edges[[2]int{a, b}]
		require.True(t, ok, "polygon edge %d-%d is not in any triangle", a, b)
	}

	require.InDelta(t, polygon.Area(), triangleArea, 1e-9, "sum of the areas of all triangles is equal to the area of the polygon")
}

func TestTriangulate(t *testing.T) {
	shapes := map[string]*Polygon{
		"triangle":  Triangle(),
		"unit rect": UnitRect(),
		"hexagon":   Hexagon(),
		"circle":    Circle(2),
		"l shape":   LShape(),
		"chevron":   Chevron(),
		"comb": NewPolygon(
			V2(0, 0), V2(0, 3), V2(1, 3), V2(1, 1), V2(2, 1), V2(2, 3),
			V2(3, 3), V2(3, 1), V2(4, 1), V2(4, 3), V2(5, 3), V2(5, 0),
		),
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			triangles, err := shape.Triangulate()
			require.NoError(t, err)
			assertValidTriangulation(t, shape, triangles)
		})

		t.Run(name+" reversed", func(t *testing.T) {
			reversed := shape.Clone()
			reversed.Reverse()
			triangles, err := reversed.Triangulate()
			require.NoError(t, err)
			assertValidTriangulation(t, reversed, triangles)
		})
	}
}

func TestTriangulate_Quad(t *testing.T) {
	triangles := Triangulate(UnitRect().Items())
	assert.Len(t, triangles, 6)
	assertValidTriangulation(t, UnitRect(), triangles)
}

func TestTriangulate_Rotation(t *testing.T) {
	// A concave dart with no three vertices collinear, so rounding in the
	// rotation cannot put a vertex on an ear's boundary.
	base := NewPolygon(V2(0, 0), V2(4, 1), V2(5, 4), V2(2, 2.5), V2(1, 5))
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		rotated := NewPolygonWithCapacity(base.Len())
		for _, v := range base.Items() {
			sin, cos := math.Sincos(angle)
			rotated.Add(V2(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos))
		}
		triangles, err := rotated.Triangulate()
		require.NoError(t, err, "angle %v", angle)
		assertValidTriangulation(t, rotated, triangles)
	}
}

func TestTriangulate_Invalid(t *testing.T) {
	cases := map[string]*Polygon{
		"too few vertices": NewPolygon(V2(0, 0), V2(1, 1)),
		"collinear":        NewPolygon(V2(0, 0), V2(1, 1), V2(2, 2)),
		"bow tie":          NewPolygon(V2(0, 0), V2(2, 2), V2(2, 0), V2(0, 2)),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			triangles, err := p.Triangulate()
			assert.Error(t, err)
			assert.Nil(t, triangles)
		})
	}

	t.Run("panics without recovery", func(t *testing.T) {
		assert.Panics(t, func() {
			Triangulate([]Vector2{V2(0, 0)})
		})
	})
}

func TestTriangulate_Logging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Hexagon().Triangulate()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "triangulated polygon")
	assert.Contains(t, buf.String(), "triangles=4")

	SetLogger(nil)
	buf.Reset()
	_, err = Hexagon().Triangulate()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
