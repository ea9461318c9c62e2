package geom

// IntersectionType classifies the geometry two shapes share.
type IntersectionType int

const (
	None IntersectionType = iota
	Point
	Line
	Ray
	Segment
	Polyline
)

func (t IntersectionType) String() string {
	switch t {
	case None:
		return "none"
	case Point:
		return "point"
	case Line:
		return "line"
	case Ray:
		return "ray"
	case Segment:
		return "segment"
	case Polyline:
		return "polyline"
	}
	return "unknown"
}

// SegmentToSegment intersects two float segments. A Point result is returned
// as a zero-length segment; collinear overlapping segments give the Segment
// they share. No epsilon is applied: only exactly zero cross products count as
// parallel, so callers that need tolerance must snap their coordinates first.
func SegmentToSegment(s0, s1 Segment2, testBoundingBox bool) (IntersectionType, Segment2) {
	kind, r := segmentIntersection(s0.A.X, s0.A.Y, s0.B.X, s0.B.Y, s1.A.X, s1.A.Y, s1.B.X, s1.B.Y, testBoundingBox)
	return kind, SegXY(r[0], r[1], r[2], r[3])
}

// IntSegmentToIntSegment is the exact integer version of SegmentToSegment. A
// Point result is truncated toward zero when it falls between grid points.
func IntSegmentToIntSegment(s0, s1 IntSegment2, testBoundingBox bool) (IntersectionType, IntSegment2) {
	kind, r := segmentIntersection(s0.A.X, s0.A.Y, s0.B.X, s0.B.Y, s1.A.X, s1.A.Y, s1.B.X, s1.B.Y, testBoundingBox)
	return kind, IntSegXY(r[0], r[1], r[2], r[3])
}

// Franklin Antonio, "Faster Line Segment Intersection", Graphics Gems III.
//
// The result is x0, y0, x1, y1 of the shared geometry.
func segmentIntersection[T Scalar](start0x, start0y, end0x, end0y, start1x, start1y, end1x, end1y T, testBoundingBox bool) (IntersectionType, [4]T) {
	var none [4]T
	ax := end0x - start0x
	ay := end0y - start0y
	bx := start1x - end1x
	by := start1y - end1y

	if testBoundingBox {
		x1lo, x1hi := start0x, end0x
		if ax < 0 {
			x1lo, x1hi = end0x, start0x
		}
		if bx > 0 {
			if x1hi < end1x || start1x < x1lo {
				return None, none
			}
		} else if x1hi < start1x || end1x < x1lo {
			return None, none
		}

		y1lo, y1hi := start0y, end0y
		if ay < 0 {
			y1lo, y1hi = end0y, start0y
		}
		if by > 0 {
			if y1hi < end1y || start1y < y1lo {
				return None, none
			}
		} else if y1hi < start1y || end1y < y1lo {
			return None, none
		}
	}

	cx := start0x - start1x
	cy := start0y - start1y
	denominator := ay*bx - ax*by

	alphaNumerator := by*cx - bx*cy
	if denominator > 0 {
		if alphaNumerator < 0 || alphaNumerator > denominator {
			return None, none
		}
	} else if alphaNumerator > 0 || alphaNumerator < denominator {
		return None, none
	}

	betaNumerator := ax*cy - ay*cx
	if denominator > 0 {
		if betaNumerator < 0 || betaNumerator > denominator {
			return None, none
		}
	} else if betaNumerator > 0 || betaNumerator < denominator {
		return None, none
	}

	if denominator != 0 {
		x := start0x + alphaNumerator*ax/denominator
		y := start0y + alphaNumerator*ay/denominator
		return Point, [4]T{x, y, x, y}
	}

	// Parallel. With a zero denominator the alpha test above only lets a zero
	// numerator through, which means the segments are collinear.
	if alphaNumerator != 0 {
		return None, none
	}

	if start0x > end0x {
		Swap(&start0x, &end0x)
		Swap(&start0y, &end0y)
	}
	if start1x > end1x {
		Swap(&start1x, &end1x)
		Swap(&start1y, &end1y)
	}
	biggestStartX := maxOf(start0x, start1x)
	smallestEndX := minOf(end0x, end1x)
	if biggestStartX > smallestEndX {
		return None, none
	}

	// Remember a Y swap so the result is not mirrored.
	swappedY := false
	if start0y > end0y {
		Swap(&start0x, &end0x)
		Swap(&start0y, &end0y)
		swappedY = true
	}
	if start1y > end1y {
		Swap(&start1x, &end1x)
		Swap(&start1y, &end1y)
		swappedY = true
	}
	biggestStartY := maxOf(start0y, start1y)
	smallestEndY := minOf(end0y, end1y)
	if biggestStartY > smallestEndY {
		return None, none
	}

	if swappedY {
		return Segment, [4]T{biggestStartX, smallestEndY, smallestEndX, biggestStartY}
	}
	return Segment, [4]T{biggestStartX, biggestStartY, smallestEndX, smallestEndY}
}

// lineParameters solves for the parameters r and s at which the line through
// v1 and v2 meets the line through v3 and v4. It fails for parallel lines.
func lineParameters(v1, v2, v3, v4 Vector2) (r, s float64, ok bool) {
	line1 := v2.Sub(v1)
	line2 := v4.Sub(v3)
	d := PerpDot(line1, line2)
	if d == 0 {
		return 0, 0, false
	}
	v3to1 := v1.Sub(v3)
	r = (v3to1.Y*line2.X - v3to1.X*line2.Y) / d
	s = (v3to1.Y*line1.X - v3to1.X*line1.Y) / d
	return r, s, true
}

// LineToLine intersects two infinite lines, each given by two points.
func LineToLine(line1Start, line1End, line2Start, line2End Vector2) (Vector2, bool) {
	r, _, ok := lineParameters(line1Start, line1End, line2Start, line2End)
	if !ok {
		return Vector2{}, false
	}
	return line1Start.Add(line1End.Sub(line1Start).Mul(r)), true
}

// SegmentToRay intersects a segment with the ray that starts at rayStart and
// passes through rayEnd.
func SegmentToRay(segment Segment2, rayStart, rayEnd Vector2) (Vector2, bool) {
	r, s, ok := lineParameters(rayStart, rayEnd, segment.A, segment.B)
	if !ok || r < 0 || s < 0 || s > 1 {
		return Vector2{}, false
	}
	return rayStart.Add(rayEnd.Sub(rayStart).Mul(r)), true
}

// IntSegmentToRay casts a float ray against an integer segment. The hit point
// is truncated.
func IntSegmentToRay(segment IntSegment2, rayStart, rayEnd Vector2) (IntVector2, bool) {
	hit, ok := SegmentToRay(segment.Float(), rayStart, rayEnd)
	if !ok {
		return IntVector2{}, false
	}
	return hit.Int(), true
}

// SegmentToPoint is a range check for a point already known to be collinear
// with the segment. It does not test collinearity itself.
func SegmentToPoint(segment Segment2, point Vector2) bool {
	start, end := segment.A, segment.B
	if start.X != end.X {
		return (start.X <= point.X && point.X <= end.X) || (start.X >= point.X && point.X >= end.X)
	}
	return (start.Y <= point.Y && point.Y <= end.Y) || (start.Y >= point.Y && point.Y >= end.Y)
}

// PolygonToPolygon is a naive O(n·m) test over every pair of edges.
func PolygonToPolygon(p1, p2 *Polygon) bool {
	segments2 := p2.Segments()
	for _, s1 := range p1.Segments() {
		for _, s2 := range segments2 {
			if s1.Intersects(s2, false) {
				return true
			}
		}
	}
	return false
}

// PolygonToPolygonAll collects the intersection of every intersecting pair of
// edges.
func PolygonToPolygonAll(p1, p2 *Polygon) []Segment2 {
	var intersections []Segment2
	segments2 := p2.Segments()
	for _, s1 := range p1.Segments() {
		for _, s2 := range segments2 {
			if intersection, ok := s1.Intersection(s2, false); ok {
				intersections = append(intersections, intersection)
			}
		}
	}
	return intersections
}

func PolygonToSegment(polygon *Polygon, segment Segment2) bool {
	for _, s := range polygon.Segments() {
		if s.Intersects(segment, false) {
			return true
		}
	}
	return false
}

func IntPolygonToIntPolygon(p1, p2 *IntPolygon) bool {
	segments2 := p2.Segments()
	for _, s1 := range p1.Segments() {
		for _, s2 := range segments2 {
			if s1.Intersects(s2, false) {
				return true
			}
		}
	}
	return false
}

func IntPolygonToIntPolygonAll(p1, p2 *IntPolygon) []IntSegment2 {
	var intersections []IntSegment2
	segments2 := p2.Segments()
	for _, s1 := range p1.Segments() {
		for _, s2 := range segments2 {
			if intersection, ok := s1.Intersection(s2, false); ok {
				intersections = append(intersections, intersection)
			}
		}
	}
	return intersections
}

func IntPolygonToIntSegment(polygon *IntPolygon, segment IntSegment2) bool {
	for _, s := range polygon.Segments() {
		if s.Intersects(segment, false) {
			return true
		}
	}
	return false
}
