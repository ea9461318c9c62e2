package geom

import (
	"math"

	"github.com/osuushi/geom2d/internal/circular"
)

// Polygon is an ordered ring of vertices. Indexes wrap, so At(-1) is the last
// vertex and At(Len()) the first. The insertion order is the winding order,
// and edge i runs from vertex i to vertex i+1.
//
// A polygon owns its vertices; Clone before sharing one between owners.
type Polygon struct {
	circular.List[Vector2]
}

func NewPolygon(vertices ...Vector2) *Polygon {
	return &Polygon{circular.NewList(vertices...)}
}

func NewPolygonWithCapacity(capacity int) *Polygon {
	return &Polygon{circular.WithCapacity[Vector2](capacity)}
}

func (p *Polygon) Clone() *Polygon {
	return NewPolygon(p.Items()...)
}

// Int converts to integer coordinates, truncating every vertex toward zero.
func (p *Polygon) Int() *IntPolygon {
	result := NewIntPolygonWithCapacity(p.Len())
	for _, v := range p.Items() {
		result.Add(v.Int())
	}
	return result
}

// SignedArea is the shoelace sum over consecutive vertices. Positive means
// Clockwise. Fewer than three vertices have no area.
func (p *Polygon) SignedArea() float64 {
	if p.Len() < 3 {
		return 0
	}
	var a float64
	for i := 0; i < p.Len(); i++ {
		a += PerpDot(p.At(i-1), p.At(i))
	}
	return a / 2
}

func (p *Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

func (p *Polygon) Perimeter() float64 {
	var perimeter float64
	for i := 0; i < p.Len(); i++ {
		perimeter += p.At(i - 1).Distance(p.At(i))
	}
	return perimeter
}

// Centroid is the mean of the vertices. An empty polygon has its centroid at
// the origin.
func (p *Polygon) Centroid() Vector2 {
	if p.Len() == 0 {
		return Vector2{}
	}
	var sum Vector2
	for _, v := range p.Items() {
		sum = sum.Add(v)
	}
	return sum.Div(float64(p.Len()))
}

// SetCentroid translates every vertex so the centroid lands on c.
func (p *Polygon) SetCentroid(c Vector2) {
	p.Move(c.Sub(p.Centroid()))
}

func (p *Polygon) Orientation() Orientation {
	return orientationOf(p.SignedArea(), p.Len())
}

func (p *Polygon) Clockwise() bool {
	return p.Orientation() == Clockwise
}

// SetClockwise reverses the vertex order if needed. Polygons without an
// orientation are left alone.
func (p *Polygon) SetClockwise(clockwise bool) {
	o := p.Orientation()
	if o == NonOrientable {
		return
	}
	if clockwise != (o == Clockwise) {
		p.Reverse()
	}
}

// Convex reports whether every turn along the boundary goes the same way.
// Triangles are always convex; fewer than three vertices never are. Straight
// (zero) turns do not count against convexity.
func (p *Polygon) Convex() bool {
	if p.Len() < 3 {
		return false
	}
	if p.Len() == 3 {
		return true
	}
	var left, right bool
	for i := 0; i < p.Len(); i++ {
		turn := PerpDot(p.Edge(i), p.Edge(i+1))
		if turn > 0 {
			left = true
		} else if turn < 0 {
			right = true
		}
		if left && right {
			return false
		}
	}
	return true
}

// Edge is the direction vector of edge i.
func (p *Polygon) Edge(i int) Vector2 {
	return p.At(i + 1).Sub(p.At(i))
}

func (p *Polygon) Segment(i int) Segment2 {
	return Segment2{p.At(i), p.At(i + 1)}
}

func (p *Polygon) Segments() []Segment2 {
	segments := make([]Segment2, p.Len())
	for i := range segments {
		segments[i] = p.Segment(i)
	}
	return segments
}

// IndexedSegments tags each edge with the index of its starting vertex, so
// that edges can be shuffled or sorted and still be written back.
func (p *Polygon) IndexedSegments() []Indexed[Segment2] {
	segments := make([]Indexed[Segment2], p.Len())
	for i := range segments {
		segments[i] = Indexed[Segment2]{p.Segment(i), i}
	}
	return segments
}

// AABB is recomputed from the vertices on every call. An empty polygon gives
// the zero box.
func (p *Polygon) AABB() AABB[Vector2] {
	if p.Len() == 0 {
		return AABB[Vector2]{}
	}
	lo, hi := p.At(0), p.At(0)
	for _, v := range p.Items() {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return AABB[Vector2]{lo, hi}
}

// Extrude inserts a copy of vertex i, moved by offset, in front of it.
func (p *Polygon) Extrude(i int, offset Vector2) {
	p.Insert(i, p.At(i).Add(offset))
}

// ExtrudeRange pushes out the walls between start and end: the vertices
// strictly between them move by offset, and two new vertices (copies of the
// start and end moved by offset) close the gap. Afterwards the original
// start vertex is still at start, and the original end vertex is at end+2.
func (p *Polygon) ExtrudeRange(start, end int, offset Vector2) {
	if start > end {
		Swap(&start, &end)
	}
	startV := p.At(start).Add(offset)
	endV := p.At(end).Add(offset)
	for i := start + 1; i < end; i++ {
		p.Set(i, p.At(i).Add(offset))
	}
	p.Insert(start+1, startV)
	// The first insertion shifted the end vertex one place up.
	p.Insert(end+1, endV)
}

// Move translates every vertex in place.
func (p *Polygon) Move(offset Vector2) {
	for i := 0; i < p.Len(); i++ {
		p.Set(i, p.At(i).Add(offset))
	}
}

func (p *Polygon) Translated(offset Vector2) *Polygon {
	result := p.Clone()
	result.Move(offset)
	return result
}

// Scaled scales about the centroid, not the origin.
func (p *Polygon) Scaled(factor float64) *Polygon {
	result := p.Clone()
	c := result.Centroid()
	for i := 0; i < result.Len(); i++ {
		result.Set(i, result.At(i).Mul(factor))
	}
	result.SetCentroid(c)
	return result
}

// ScaledBy scales each axis separately, about the centroid.
func (p *Polygon) ScaledBy(factor Vector2) *Polygon {
	result := p.Clone()
	c := result.Centroid()
	for i := 0; i < result.Len(); i++ {
		result.Set(i, result.At(i).Scale(factor))
	}
	result.SetCentroid(c)
	return result
}

// Contains is the winding number test. An upward edge with the point strictly
// on its left adds one, a downward edge with the point strictly on its right
// subtracts one, and the point is inside when the sum is nonzero.
//
// Edges are half-open in y (the lower end belongs to an upward edge), so
// points on the boundary are decided by whichever crossing rule fires. For the
// square (-1,-1) (-1,1) (1,1) (1,-1), a point on the left side is inside and
// a point on the right side is outside.
func (p *Polygon) Contains(point Vector2) (inside bool, windingNumber int) {
	for i := 0; i < p.Len(); i++ {
		a, b := p.At(i), p.At(i+1)
		if a.Y <= point.Y {
			if b.Y > point.Y && LocatePointOnLine(a, b, point) > 0 {
				windingNumber++
			}
		} else if b.Y <= point.Y && LocatePointOnLine(a, b, point) < 0 {
			windingNumber--
		}
	}
	return windingNumber != 0, windingNumber
}

// ContainsEvenOdd uses crossing parity instead of winding. For simple
// polygons the two agree away from the boundary.
func (p *Polygon) ContainsEvenOdd(point Vector2) bool {
	return p.CrossingCount(point)%2 == 1
}

// CrossingCount counts the edges crossed by a ray from point toward +X.
func (p *Polygon) CrossingCount(point Vector2) int {
	crossings := 0
	for i := 0; i < p.Len(); i++ {
		a, b := p.At(i), p.At(i+1)
		if (a.Y > point.Y) == (b.Y > point.Y) {
			continue
		}
		x := a.X + (point.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if point.X < x {
			crossings++
		}
	}
	return crossings
}

// RemoveDuplicateVertices keeps the first occurrence of each vertex and
// preserves the order of what remains, so the winding is unchanged.
func (p *Polygon) RemoveDuplicateVertices() {
	seen := make(map[Vector2]struct{}, p.Len())
	kept := make([]Vector2, 0, p.Len())
	for _, v := range p.Items() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		kept = append(kept, v)
	}
	p.Clear()
	p.Add(kept...)
}

// RemoveCollinearVertices is the in-place form of WithoutCollinearVertices.
func (p *Polygon) RemoveCollinearVertices() {
	kept := p.WithoutCollinearVertices()
	p.Clear()
	p.Add(kept.Items()...)
}

// WithoutCollinearVertices returns a copy without the vertices that lie
// exactly on the line through their two neighbors. Dropping a vertex changes
// its neighbors' neighbors, so passes repeat until nothing changes, which
// makes the operation idempotent. Polygons of three or fewer vertices are
// copied unchanged.
func (p *Polygon) WithoutCollinearVertices() *Polygon {
	current := p.Clone()
	for current.Len() > 3 {
		next := NewPolygonWithCapacity(current.Len())
		for i := 0; i < current.Len(); i++ {
			if LocatePointOnLine(current.At(i-1), current.At(i+1), current.At(i)) != 0 {
				next.Add(current.At(i))
			}
		}
		if next.Len() == current.Len() {
			break
		}
		current = next
	}
	return current
}

func (p *Polygon) Intersects(other *Polygon) bool {
	return PolygonToPolygon(p, other)
}

func (p *Polygon) IntersectsAll(other *Polygon) []Segment2 {
	return PolygonToPolygonAll(p, other)
}

func (p *Polygon) IntersectsSegment(segment Segment2) bool {
	return PolygonToSegment(p, segment)
}

// Triangulate ear-clips the polygon and returns vertex index triples.
func (p *Polygon) Triangulate() (triangles []int, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()
	return Triangulate(p.Items()), nil
}
