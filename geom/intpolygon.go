package geom

import (
	"math"

	"github.com/osuushi/geom2d/internal/circular"
)

// IntPolygon is the integer counterpart of Polygon. Areas and orientation are
// computed exactly; only Centroid and scaling truncate.
type IntPolygon struct {
	circular.List[IntVector2]
}

func NewIntPolygon(vertices ...IntVector2) *IntPolygon {
	return &IntPolygon{circular.NewList(vertices...)}
}

func NewIntPolygonWithCapacity(capacity int) *IntPolygon {
	return &IntPolygon{circular.WithCapacity[IntVector2](capacity)}
}

func (p *IntPolygon) Clone() *IntPolygon {
	return NewIntPolygon(p.Items()...)
}

func (p *IntPolygon) Float() *Polygon {
	result := NewPolygonWithCapacity(p.Len())
	for _, v := range p.Items() {
		result.Add(v.Float())
	}
	return result
}

// DoubleSignedArea is twice the signed area. It is an exact integer.
func (p *IntPolygon) DoubleSignedArea() int {
	if p.Len() < 3 {
		return 0
	}
	a := 0
	for i := 0; i < p.Len(); i++ {
		a += IntPerpDot(p.At(i-1), p.At(i))
	}
	return a
}

func (p *IntPolygon) SignedArea() float64 {
	return float64(p.DoubleSignedArea()) / 2
}

func (p *IntPolygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter sums exact edge lengths, not the truncated IntVector2 distances.
func (p *IntPolygon) Perimeter() float64 {
	var perimeter float64
	for i := 0; i < p.Len(); i++ {
		perimeter += p.At(i - 1).Float().Distance(p.At(i).Float())
	}
	return perimeter
}

// Centroid is the truncated mean of the vertices, or the origin for an empty
// polygon.
func (p *IntPolygon) Centroid() IntVector2 {
	if p.Len() == 0 {
		return IntVector2{}
	}
	var sum IntVector2
	for _, v := range p.Items() {
		sum = sum.Add(v)
	}
	return sum.Div(p.Len())
}

func (p *IntPolygon) SetCentroid(c IntVector2) {
	p.Move(c.Sub(p.Centroid()))
}

func (p *IntPolygon) Orientation() Orientation {
	return orientationOf(float64(p.DoubleSignedArea()), p.Len())
}

func (p *IntPolygon) Clockwise() bool {
	return p.Orientation() == Clockwise
}

func (p *IntPolygon) SetClockwise(clockwise bool) {
	o := p.Orientation()
	if o == NonOrientable {
		return
	}
	if clockwise != (o == Clockwise) {
		p.Reverse()
	}
}

func (p *IntPolygon) Convex() bool {
	if p.Len() < 3 {
		return false
	}
	if p.Len() == 3 {
		return true
	}
	var left, right bool
	for i := 0; i < p.Len(); i++ {
		turn := IntPerpDot(p.Edge(i), p.Edge(i+1))
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

func (p *IntPolygon) Edge(i int) IntVector2 {
	return p.At(i + 1).Sub(p.At(i))
}

func (p *IntPolygon) Segment(i int) IntSegment2 {
	return IntSegment2{p.At(i), p.At(i + 1)}
}

func (p *IntPolygon) Segments() []IntSegment2 {
	segments := make([]IntSegment2, p.Len())
	for i := range segments {
		segments[i] = p.Segment(i)
	}
	return segments
}

func (p *IntPolygon) IndexedSegments() []Indexed[IntSegment2] {
	segments := make([]Indexed[IntSegment2], p.Len())
	for i := range segments {
		segments[i] = Indexed[IntSegment2]{p.Segment(i), i}
	}
	return segments
}

func (p *IntPolygon) AABB() AABB[IntVector2] {
	if p.Len() == 0 {
		return AABB[IntVector2]{}
	}
	lo, hi := p.At(0), p.At(0)
	for _, v := range p.Items() {
		lo.X = minOf(lo.X, v.X)
		lo.Y = minOf(lo.Y, v.Y)
		hi.X = maxOf(hi.X, v.X)
		hi.Y = maxOf(hi.Y, v.Y)
	}
	return AABB[IntVector2]{lo, hi}
}

func (p *IntPolygon) Extrude(i int, offset IntVector2) {
	p.Insert(i, p.At(i).Add(offset))
}

// ExtrudeRange is the integer form of Polygon.ExtrudeRange.
func (p *IntPolygon) ExtrudeRange(start, end int, offset IntVector2) {
	if start > end {
		Swap(&start, &end)
	}
	startV := p.At(start).Add(offset)
	endV := p.At(end).Add(offset)
	for i := start + 1; i < end; i++ {
		p.Set(i, p.At(i).Add(offset))
	}
	p.Insert(start+1, startV)
	p.Insert(end+1, endV)
}

func (p *IntPolygon) Move(offset IntVector2) {
	for i := 0; i < p.Len(); i++ {
		p.Set(i, p.At(i).Add(offset))
	}
}

func (p *IntPolygon) Translated(offset IntVector2) *IntPolygon {
	result := p.Clone()
	result.Move(offset)
	return result
}

// Scaled scales about the (truncated) centroid.
func (p *IntPolygon) Scaled(factor int) *IntPolygon {
	result := p.Clone()
	c := result.Centroid()
	for i := 0; i < result.Len(); i++ {
		result.Set(i, result.At(i).Mul(factor))
	}
	result.SetCentroid(c)
	return result
}

func (p *IntPolygon) ScaledBy(factor IntVector2) *IntPolygon {
	result := p.Clone()
	c := result.Centroid()
	for i := 0; i < result.Len(); i++ {
		result.Set(i, result.At(i).Scale(factor))
	}
	result.SetCentroid(c)
	return result
}

// Contains is the exact winding number test; see Polygon.Contains for the
// boundary convention.
func (p *IntPolygon) Contains(point IntVector2) (inside bool, windingNumber int) {
	for i := 0; i < p.Len(); i++ {
		a, b := p.At(i), p.At(i+1)
		if a.Y <= point.Y {
			if b.Y > point.Y && IntLocatePointOnLine(a, b, point) > 0 {
				windingNumber++
			}
		} else if b.Y <= point.Y && IntLocatePointOnLine(a, b, point) < 0 {
			windingNumber--
		}
	}
	return windingNumber != 0, windingNumber
}

func (p *IntPolygon) RemoveDuplicateVertices() {
	seen := make(map[IntVector2]struct{}, p.Len())
	kept := make([]IntVector2, 0, p.Len())
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

func (p *IntPolygon) RemoveCollinearVertices() {
	kept := p.WithoutCollinearVertices()
	p.Clear()
	p.Add(kept.Items()...)
}

func (p *IntPolygon) WithoutCollinearVertices() *IntPolygon {
	current := p.Clone()
	for current.Len() > 3 {
		next := NewIntPolygonWithCapacity(current.Len())
		for i := 0; i < current.Len(); i++ {
			if IntLocatePointOnLine(current.At(i-1), current.At(i+1), current.At(i)) != 0 {
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

func (p *IntPolygon) Intersects(other *IntPolygon) bool {
	return IntPolygonToIntPolygon(p, other)
}

func (p *IntPolygon) IntersectsAll(other *IntPolygon) []IntSegment2 {
	return IntPolygonToIntPolygonAll(p, other)
}

func (p *IntPolygon) IntersectsSegment(segment IntSegment2) bool {
	return IntPolygonToIntSegment(p, segment)
}

func (p *IntPolygon) Triangulate() ([]int, error) {
	return p.Float().Triangulate()
}
