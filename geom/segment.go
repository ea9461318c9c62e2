package geom

import "fmt"

// Segment2 is a directed line segment from A to B.
type Segment2 struct {
	A, B Vector2
}

func Seg(a, b Vector2) Segment2 {
	return Segment2{A: a, B: b}
}

// SegXY builds a segment from raw coordinates.
func SegXY(x0, y0, x1, y1 float64) Segment2 {
	return Segment2{Vector2{x0, y0}, Vector2{x1, y1}}
}

// SegFromOrigin builds the segment from the origin to b.
func SegFromOrigin(b Vector2) Segment2 {
	return Segment2{B: b}
}

func (s Segment2) Direction() Vector2 {
	return s.B.Sub(s.A)
}

func (s Segment2) Length() float64 {
	return s.Direction().Magnitude()
}

// Slope is dy/dx with IEEE semantics: a vertical segment gives +Inf or -Inf,
// and a zero-length segment gives NaN.
func (s Segment2) Slope() float64 {
	return (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
}

// Left is the unit normal on the left of the direction of travel.
func (s Segment2) Left() Vector2 {
	return Perp(s.Direction()).Normalized()
}

func (s Segment2) Right() Vector2 {
	return Perp(s.Direction()).Normalized().Neg()
}

func (s Segment2) Add(v Vector2) Segment2 {
	return Segment2{s.A.Add(v), s.B.Add(v)}
}

func (s Segment2) Sub(v Vector2) Segment2 {
	return Segment2{s.A.Sub(v), s.B.Sub(v)}
}

func (s Segment2) CompareByLength(other Segment2) int {
	l, o := s.Length(), other.Length()
	switch {
	case l > o:
		return 1
	case l == o:
		return 0
	}
	return -1
}

func (s Segment2) Int() IntSegment2 {
	return IntSegment2{s.A.Int(), s.B.Int()}
}

// Intersects reports whether the segments touch. testBoundingBox enables a
// cheap rejection test that pays off when most pairs are far apart.
func (s Segment2) Intersects(other Segment2, testBoundingBox bool) bool {
	kind, _ := SegmentToSegment(s, other, testBoundingBox)
	return kind != None
}

// IntersectsE is Intersects with the kind of intersection.
func (s Segment2) IntersectsE(other Segment2, testBoundingBox bool) IntersectionType {
	kind, _ := SegmentToSegment(s, other, testBoundingBox)
	return kind
}

// Intersection returns the shared point (as a zero-length segment) or the
// shared sub-segment of collinear overlapping segments.
func (s Segment2) Intersection(other Segment2, testBoundingBox bool) (Segment2, bool) {
	kind, intersection := SegmentToSegment(s, other, testBoundingBox)
	return intersection, kind != None
}

func (s Segment2) String() string {
	return fmt.Sprintf("(%v %v)", s.A, s.B)
}
