package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentToSegment(t *testing.T) {
	cases := []struct {
		name     string
		s0, s1   Segment2
		kind     IntersectionType
		expected Segment2
	}{
		{"crossing", SegXY(0, 0, 10, 10), SegXY(0, 10, 10, 0), Point, SegXY(5, 5, 5, 5)},
		{"collinear overlap", SegXY(0, 0, 10, 0), SegXY(5, 0, 15, 0), Segment, SegXY(5, 0, 10, 0)},
		{"collinear disjoint", SegXY(0, 0, 1, 1), SegXY(2, 2, 3, 3), None, Segment2{}},
		{"parallel", SegXY(0, 0, 10, 0), SegXY(0, 1, 10, 1), None, Segment2{}},
		{"touching end", SegXY(0, 0, 1, 1), SegXY(1, 1, 2, 0), Point, SegXY(1, 1, 1, 1)},
		{"miss", SegXY(0, 0, 1, 0), SegXY(2, -1, 2, 1), None, Segment2{}},
	}

	for _, c := range cases {
		for _, testBoundingBox := range []bool{false, true} {
			t.Run(c.name, func(t *testing.T) {
				kind, intersection := SegmentToSegment(c.s0, c.s1, testBoundingBox)
				assert.Equal(t, c.kind, kind)
				if c.kind != None {
					assert.Equal(t, c.expected, intersection)
				}
			})
		}
	}
}

func TestSegmentToSegment_Symmetric(t *testing.T) {
	s0, s1 := SegXY(0, 0, 10, 10), SegXY(0, 10, 10, 0)
	_, forward := SegmentToSegment(s0, s1, false)
	_, backward := SegmentToSegment(s1, s0, false)
	assert.Equal(t, forward, backward)
}

func TestIntSegmentToIntSegment(t *testing.T) {
	t.Run("exact point", func(t *testing.T) {
		kind, intersection := IntSegmentToIntSegment(IntSegXY(0, 0, 10, 10), IntSegXY(0, 10, 10, 0), true)
		assert.Equal(t, Point, kind)
		assert.Equal(t, IntSegXY(5, 5, 5, 5), intersection)
	})

	t.Run("point between grid points truncates", func(t *testing.T) {
		kind, intersection := IntSegmentToIntSegment(IntSegXY(0, 0, 3, 3), IntSegXY(0, 3, 3, 0), false)
		assert.Equal(t, Point, kind)
		assert.Equal(t, IntSegXY(1, 1, 1, 1), intersection)
	})

	t.Run("collinear overlap", func(t *testing.T) {
		kind, intersection := IntSegmentToIntSegment(IntSegXY(0, 0, 10, 0), IntSegXY(5, 0, 15, 0), false)
		assert.Equal(t, Segment, kind)
		assert.Equal(t, IntSegXY(5, 0, 10, 0), intersection)
	})

	t.Run("typed", func(t *testing.T) {
		assert.Equal(t, None, IntSegXY(0, 0, 1, 1).IntersectsE(IntSegXY(2, 2, 3, 3), false))
		assert.Equal(t, Point, SegXY(0, 0, 2, 0).IntersectsE(SegXY(1, -1, 1, 1), true))
	})
}

func TestLineToLine(t *testing.T) {
	point, ok := LineToLine(V2(0, 0), V2(1, 1), V2(0, 2), V2(2, 0))
	require.True(t, ok)
	assert.Equal(t, V2(1, 1), point)

	_, ok = LineToLine(V2(0, 0), V2(1, 0), V2(0, 1), V2(1, 1))
	assert.False(t, ok, "parallel lines never meet")
}

func TestSegmentToRay(t *testing.T) {
	segment := SegXY(0, -1, 0, 1)

	hit, ok := SegmentToRay(segment, V2(-5, 0), V2(-4, 0))
	require.True(t, ok)
	assert.Equal(t, V2(0, 0), hit)

	_, ok = SegmentToRay(segment, V2(-5, 0), V2(-6, 0))
	assert.False(t, ok, "ray pointing away")

	_, ok = SegmentToRay(segment, V2(-5, 3), V2(-4, 3))
	assert.False(t, ok, "ray passing beyond the segment")

	intHit, ok := IntSegmentToRay(IntSegXY(3, -2, 3, 2), V2(0, 0.5), V2(1, 0.5))
	require.True(t, ok)
	assert.Equal(t, IV2(3, 0), intHit)
}

func TestSegmentToPoint(t *testing.T) {
	assert.True(t, SegmentToPoint(SegXY(0, 0, 4, 0), V2(2, 0)))
	assert.False(t, SegmentToPoint(SegXY(0, 0, 4, 0), V2(5, 0)))
	assert.True(t, SegmentToPoint(SegXY(0, 4, 0, 0), V2(0, 1)))
}

func TestPolygonToPolygon(t *testing.T) {
	square := NewPolygon(V2(0, 0), V2(0, 2), V2(2, 2), V2(2, 0))

	assert.True(t, square.Intersects(square.Translated(V2(1, 1))))
	assert.False(t, square.Intersects(square.Translated(V2(5, 0))))
	assert.True(t, square.IntersectsSegment(SegXY(-1, 1, 1, 1)))
	assert.False(t, square.IntersectsSegment(SegXY(0.5, 0.5, 1.5, 1.5)), "segment fully inside")

	all := square.IntersectsAll(square.Translated(V2(1, 1)))
	assert.ElementsMatch(t, []Segment2{SegXY(1, 2, 1, 2), SegXY(2, 1, 2, 1)}, all)

	intSquare := square.Int()
	intAll := intSquare.IntersectsAll(intSquare.Translated(IV2(1, 1)))
	assert.ElementsMatch(t, []IntSegment2{IntSegXY(1, 2, 1, 2), IntSegXY(2, 1, 2, 1)}, intAll)
	assert.False(t, intSquare.Intersects(intSquare.Translated(IV2(10, 10))))
	assert.True(t, intSquare.IntersectsSegment(IntSegXY(-1, 1, 1, 1)))
}
