package geom

import "math"

// parallelEpsilon is the threshold below which two segments are treated as
// parallel. It matches the smallest positive single-precision float, which
// is what the reference behavior was tuned against.
const parallelEpsilon = math.SmallestNonzeroFloat32

// PointToLine is the distance from point to the infinite line through
// lineStart and lineEnd.
func PointToLine(point, lineStart, lineEnd Vector2) float64 {
	v := lineEnd.Sub(lineStart)
	w := point.Sub(lineStart)
	b := w.Dot(v) / v.Dot(v)
	return point.Distance(lineStart.Add(v.Mul(b)))
}

// PointToSegment clamps the projection to the segment, so points beyond
// either end measure to the nearest endpoint.
func PointToSegment(point Vector2, segment Segment2) float64 {
	v := segment.Direction()
	w := point.Sub(segment.A)

	c1 := w.Dot(v)
	if c1 <= 0 {
		return point.Distance(segment.A)
	}
	c2 := v.Dot(v)
	if c2 <= c1 {
		return point.Distance(segment.B)
	}
	return point.Distance(segment.A.Add(v.Mul(c1 / c2)))
}

// SegmentToSegmentDistance is the closest distance between two segments.
func SegmentToSegmentDistance(s1, s2 Segment2) float64 {
	u := s1.Direction()
	v := s2.Direction()
	w := s1.A.Sub(s2.A)
	return closestApproach(u.Dot(u), u.Dot(v), v.Dot(v), u.Dot(w), v.Dot(w), func(sc, tc float64) float64 {
		return w.Add(u.Mul(sc)).Sub(v.Mul(tc)).Magnitude()
	})
}

// IntSegmentToIntSegmentDistance runs the same minimization over integer
// segments. The dot products are exact; the parameters are not, and the
// closest points are truncated to the grid before measuring, so the result is
// the truncated length of an integer offset.
func IntSegmentToIntSegmentDistance(s1, s2 IntSegment2) float64 {
	u := s1.Direction()
	v := s2.Direction()
	w := s1.A.Sub(s2.A)
	a := float64(u.Dot(u))
	b := float64(u.Dot(v))
	c := float64(v.Dot(v))
	d := float64(u.Dot(w))
	e := float64(v.Dot(w))
	return closestApproach(a, b, c, d, e, func(sc, tc float64) float64 {
		dP := w.Add(u.MulF(sc)).Sub(v.MulF(tc))
		return float64(dP.Magnitude())
	})
}

// closestApproach is the parametric minimization from Dan Sunday's "Distance
// between Segments". a, b, c, d, e are u·u, u·v, v·v, u·w and v·w. The
// clamping order matters at corners: clamp s, then t, then derive s again from
// the clamped t.
func closestApproach(a, b, c, d, e float64, measure func(sc, tc float64) float64) float64 {
	D := a*c - b*b
	sD, tD := D, D
	var sN, tN float64

	if D < parallelEpsilon {
		// Almost parallel: use the start of the first segment.
		sN = 0
		sD = 1
		tN = e
		tD = c
	} else {
		sN = b*e - c*d
		tN = a*e - b*d
		if sN < 0 {
			sN = 0
			tN = e
			tD = c
		} else if sN > sD {
			sN = sD
			tN = e + b
			tD = c
		}
	}

	if tN < 0 {
		tN = 0
		switch {
		case -d < 0:
			sN = 0
		case -d > a:
			sN = sD
		default:
			sN = -d
			sD = a
		}
	} else if tN > tD {
		tN = tD
		switch {
		case -d+b < 0:
			sN = 0
		case -d+b > a:
			sN = sD
		default:
			sN = -d + b
			sD = a
		}
	}

	var sc, tc float64
	if math.Abs(sN) >= parallelEpsilon {
		sc = sN / sD
	}
	if math.Abs(tN) >= parallelEpsilon {
		tc = tN / tD
	}
	return measure(sc, tc)
}
