// Package circuit samples a closed loop of waypoints by distance travelled.
//
// Positions come from a uniform Catmull-Rom spline through the waypoints, or
// from straight lines between them when smoothing is off. Distances are
// measured along the straight legs, so the spline is only approximately
// arclength parameterized: a car driven at constant distance per frame speeds
// up and slows down a little where legs of different lengths meet.
package circuit

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/geom2d/geom"
	"github.com/osuushi/geom2d/internal/circular"
)

// TangentStep is how far ahead PointAndTangentAtDistance looks to estimate
// the direction of travel.
const TangentStep = 0.1

var ErrTooFewWaypoints = errors.New("circuit needs at least 2 waypoints")

// RoutePoint is a position on the circuit and the unit direction of travel
// there.
type RoutePoint struct {
	Position  geom.Vector2
	Direction geom.Vector2
}

type Circuit struct {
	// Smooth selects Catmull-Rom interpolation. Without it, the circuit is the
	// closed polyline through the waypoints.
	Smooth bool

	waypoints []geom.Vector2

	// points repeats the first waypoint at the end, and distances[i] is the
	// distance travelled from points[0] to points[i], so the last distance is
	// the length of the whole loop.
	points    []geom.Vector2
	distances []float64
}

func New(waypoints []geom.Vector2, smooth bool) (*Circuit, error) {
	c := &Circuit{Smooth: smooth}
	if err := c.SetWaypoints(waypoints); err != nil {
		return nil, err
	}
	return c, nil
}

// SetWaypoints replaces the waypoints and rebuilds the cached distances.
func (c *Circuit) SetWaypoints(waypoints []geom.Vector2) error {
	if len(waypoints) < 2 {
		return errors.Wrapf(ErrTooFewWaypoints, "got %d", len(waypoints))
	}
	c.waypoints = append(c.waypoints[:0], waypoints...)
	c.Initialize()
	return nil
}

func (c *Circuit) Waypoints() []geom.Vector2 {
	return append([]geom.Vector2(nil), c.waypoints...)
}

// Initialize rebuilds the cached positions and cumulative distances from the
// waypoints. It must be called after editing waypoints in place; SetWaypoints
// calls it for you.
func (c *Circuit) Initialize() {
	n := len(c.waypoints)
	c.points = make([]geom.Vector2, n+1)
	c.distances = make([]float64, n+1)

	var travelled float64
	for i := range c.points {
		c.points[i] = c.waypoints[i%n]
		c.distances[i] = travelled
		travelled += c.waypoints[i%n].Distance(c.waypoints[(i+1)%n])
	}

	geom.Logger().Debug("rebuilt circuit", "waypoints", n, "length", c.Length(), "smooth", c.Smooth)
}

func (c *Circuit) Length() float64 {
	return c.distances[len(c.distances)-1]
}

// PositionAtDistance wraps d into the loop, so negative distances and
// distances past Length are fine.
func (c *Circuit) PositionAtDistance(d float64) geom.Vector2 {
	n := len(c.waypoints)
	d = Repeat(d, c.Length())

	// Waypoint counts are small, so a linear scan is fine.
	point := 0
	for c.distances[point] < d {
		point++
	}

	p1n := circular.Index(point-1, n)
	p2n := point
	i := InverseLerp(c.distances[p1n], c.distances[p2n], d)

	if !c.Smooth {
		return c.points[p1n].Lerp(c.points[p2n], i)
	}

	p0n := circular.Index(point-2, n)
	p3n := circular.Index(point+1, n)
	// point may be the duplicate of the first waypoint at the end
	p2n %= n
	return CatmullRom(c.points[p0n], c.points[p1n], c.points[p2n], c.points[p3n], i)
}

// PointAndTangentAtDistance estimates the direction of travel with a forward
// difference of TangentStep.
func (c *Circuit) PointAndTangentAtDistance(d float64) RoutePoint {
	p1 := c.PositionAtDistance(d)
	p2 := c.PositionAtDistance(d + TangentStep)
	return RoutePoint{Position: p1, Direction: p2.Sub(p1).Normalized()}
}

// Sample returns steps evenly spaced positions starting at distance 0. The
// polyline is open; its last point is one step short of the first.
func (c *Circuit) Sample(steps int) []geom.Vector2 {
	if steps <= 0 {
		return nil
	}
	samples := make([]geom.Vector2, steps)
	step := c.Length() / float64(steps)
	for i := range samples {
		samples[i] = c.PositionAtDistance(float64(i) * step)
	}
	return samples
}

// Polygon is the straight-legged loop through the waypoints.
func (c *Circuit) Polygon() *geom.Polygon {
	return geom.NewPolygon(c.waypoints...)
}

// CatmullRom evaluates the uniform Catmull-Rom segment between p1 and p2 at i
// in [0, 1].
func CatmullRom(p0, p1, p2, p3 geom.Vector2, i float64) geom.Vector2 {
	i2 := i * i
	i3 := i2 * i
	return p1.Mul(2).
		Add(p2.Sub(p0).Mul(i)).
		Add(p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(i2)).
		Add(p0.Neg().Add(p1.Mul(3)).Sub(p2.Mul(3)).Add(p3).Mul(i3)).
		Mul(0.5)
}

// Repeat wraps t into [0, length]. A loop of zero length always gives 0.
func Repeat(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	return clamp(t-math.Floor(t/length)*length, 0, length)
}

// InverseLerp is the fraction of the way value lies from a to b, clamped to
// [0, 1]. It is 0 when a and b are equal.
func InverseLerp(a, b, value float64) float64 {
	if a == b {
		return 0
	}
	return clamp((value-a)/(b-a), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
