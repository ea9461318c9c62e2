package geom

import (
	"fmt"
	"math"
)

// IntSegment2 is a directed line segment with integer endpoints.
type IntSegment2 struct {
	A, B IntVector2
}

func IntSeg(a, b IntVector2) IntSegment2 {
	return IntSegment2{A: a, B: b}
}

func IntSegXY(x0, y0, x1, y1 int) IntSegment2 {
	return IntSegment2{IntVector2{x0, y0}, IntVector2{x1, y1}}
}

func IntSegFromOrigin(b IntVector2) IntSegment2 {
	return IntSegment2{B: b}
}

func (s IntSegment2) Direction() IntVector2 {
	return s.B.Sub(s.A)
}

// Length is truncated.
func (s IntSegment2) Length() int {
	return s.Direction().Magnitude()
}

// Slope is computed in floating point, so a vertical segment gives +Inf or
// -Inf and a zero-length segment gives NaN.
func (s IntSegment2) Slope() float64 {
	return float64(s.B.Y-s.A.Y) / float64(s.B.X-s.A.X)
}

// Left is the integer-normalized left normal. Because of how IntVector2
// normalizes, only segments of truncated length 1 give a nonzero normal. Use
// LeftStep for a usable grid direction on longer segments.
func (s IntSegment2) Left() IntVector2 {
	return IntPerp(s.Direction()).Normalized()
}

func (s IntSegment2) Right() IntVector2 {
	return IntPerp(s.Direction()).Normalized().Neg()
}

// LeftStep is the left normal rounded to the nearest grid direction, so an
// axis-aligned segment of any length steps one cell outward.
func (s IntSegment2) LeftStep() IntVector2 {
	n := Perp(s.Direction().Float()).Normalized()
	return IV2F(math.Round(n.X), math.Round(n.Y))
}

func (s IntSegment2) Add(v IntVector2) IntSegment2 {
	return IntSegment2{s.A.Add(v), s.B.Add(v)}
}

func (s IntSegment2) Sub(v IntVector2) IntSegment2 {
	return IntSegment2{s.A.Sub(v), s.B.Sub(v)}
}

func (s IntSegment2) CompareByLength(other IntSegment2) int {
	l, o := s.Length(), other.Length()
	switch {
	case l > o:
		return 1
	case l == o:
		return 0
	}
	return -1
}

func (s IntSegment2) Float() Segment2 {
	return Segment2{s.A.Float(), s.B.Float()}
}

func (s IntSegment2) Intersects(other IntSegment2, testBoundingBox bool) bool {
	kind, _ := IntSegmentToIntSegment(s, other, testBoundingBox)
	return kind != None
}

func (s IntSegment2) IntersectsE(other IntSegment2, testBoundingBox bool) IntersectionType {
	kind, _ := IntSegmentToIntSegment(s, other, testBoundingBox)
	return kind
}

func (s IntSegment2) Intersection(other IntSegment2, testBoundingBox bool) (IntSegment2, bool) {
	kind, intersection := IntSegmentToIntSegment(s, other, testBoundingBox)
	return intersection, kind != None
}

func (s IntSegment2) String() string {
	return fmt.Sprintf("(%v %v)", s.A, s.B)
}
