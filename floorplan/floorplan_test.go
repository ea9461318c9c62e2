package floorplan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/osuushi/geom2d/geom"
	"github.com/osuushi/geom2d/raster"
)

func newGenerator(seed int64) *Generator {
	return New(64, rand.New(rand.NewSource(seed)))
}

func TestOuterRoom_Cross(t *testing.T) {
	g := newGenerator(1)
	require.NoError(t, g.SetOuterWalls(Rect{10, 10, 40, 20}, Rect{30, 5, 10, 40}))

	outer := g.OuterRoom()
	require.NotNil(t, outer)
	assert.False(t, outer.CanGrow)
	assert.Equal(t, 12, outer.Len())
	assert.Equal(t, 1000.0, outer.Area())
	assert.Equal(t, geom.CounterClockwise, outer.Orientation())

	for _, v := range []geom.IntVector2{{X: 30, Y: 10}, {X: 40, Y: 10}, {X: 30, Y: 30}, {X: 40, Y: 30}} {
		assert.Contains(t, outer.Items(), v, "crossing point %v", v)
	}
	assert.False(t, outer.Intersects(geom.IntRect(20, 15, 5, 5)), "interior block")
}

func TestOuterRoom_Contained(t *testing.T) {
	g := newGenerator(1)
	require.NoError(t, g.SetOuterWalls(Rect{0, 0, 20, 20}, Rect{5, 5, 5, 5}))
	assert.Equal(t, 4, g.OuterRoom().Len())
	assert.Equal(t, 400.0, g.OuterRoom().Area())
}

func TestSetOuterWalls_Invalid(t *testing.T) {
	cases := map[string][]Rect{
		"none":     {},
		"empty":    {{0, 0, 0, 5}},
		"disjoint": {{0, 0, 5, 5}, {10, 10, 5, 5}},
		"shared x": {{0, 0, 10, 10}, {0, 5, 20, 20}},
		"shared y": {{0, 0, 10, 10}, {5, 10, 20, 20}},
	}
	for name, walls := range cases {
		t.Run(name, func(t *testing.T) {
			g := newGenerator(1)
			require.NoError(t, g.SetOuterWalls(Rect{0, 0, 30, 30}))
			assert.Error(t, g.SetOuterWalls(walls...))
			assert.Equal(t, []Rect{{0, 0, 30, 30}}, g.OuterWalls, "walls are left alone")
			assert.Equal(t, 900.0, g.OuterRoom().Area())
		})
	}
}

func TestGenerateOuterWalls(t *testing.T) {
	g := newGenerator(7)
	g.Reset()

	require.NotEmpty(t, g.OuterWalls)
	for _, wall := range g.OuterWalls {
		assert.GreaterOrEqual(t, wall.Width, g.Resolution/8)
		assert.Less(t, wall.Width, g.Resolution/2)
		assert.GreaterOrEqual(t, wall.X, 0)
		assert.LessOrEqual(t, wall.X+wall.Width, g.Resolution)
		assert.LessOrEqual(t, wall.Y+wall.Height, g.Resolution)
	}
	require.Len(t, g.Rooms, 1)
	assert.Positive(t, g.OuterRoom().Area())
}

func TestAddRoom(t *testing.T) {
	g := newGenerator(1)
	_, err := g.AddRoom(geom.IV2(5, 5))
	assert.Error(t, err, "no outer walls yet")

	require.NoError(t, g.SetOuterWalls(Rect{0, 0, 20, 20}))
	room, err := g.AddRoom(geom.IV2(10, 10))
	require.NoError(t, err)
	assert.True(t, room.CanGrow)
	assert.Equal(t, []bool{true, true, true, true}, room.GrowableWalls)
	assert.Equal(t, geom.IntUnitRect().Translated(geom.IV2(10, 10)).Items(), room.Items())

	for name, center := range map[string]geom.IntVector2{
		"outside":     {X: 30, Y: 30},
		"on the wall": {X: 0, Y: 10},
		"overlapping": {X: 11, Y: 11},
		"touching":    {X: 12, Y: 10},
	} {
		_, err := g.AddRoom(center)
		assert.Error(t, err, name)
	}
	assert.Len(t, g.Rooms, 2)
}

func TestGrow_SingleRoomFillsOuterRoom(t *testing.T) {
	g := newGenerator(3)
	require.NoError(t, g.SetOuterWalls(Rect{0, 0, 20, 20}))
	room, err := g.AddRoom(geom.IV2(10, 10))
	require.NoError(t, err)

	assert.True(t, g.Grow())
	assert.Equal(t, geom.AABB[geom.IntVector2]{Min: geom.IV2(8, 8), Max: geom.IV2(12, 12)}, room.AABB())

	// Seven more passes reach the walls, and a ninth finds every wall blocked.
	assert.Equal(t, 8, g.GrowAll(100))
	assert.False(t, room.CanGrow)
	assert.Equal(t, geom.AABB[geom.IntVector2]{Min: geom.IV2(1, 1), Max: geom.IV2(19, 19)}, room.AABB())
	assert.Equal(t, 4, room.Len())
	assert.Equal(t, geom.CounterClockwise, room.Orientation())
}

func TestGrow_RoomsNeverOverlap(t *testing.T) {
	g := newGenerator(11)
	g.Reset()
	added := g.AddRandomRooms(5, 500)
	require.Positive(t, added)
	seedArea := geom.IntUnitRect().Area()

	g.GrowAll(4 * g.Resolution)

	outer := g.OuterRoom()
	rooms := g.Rooms[1:]
	var total float64
	for i, room := range rooms {
		total += room.Area()
		assert.False(t, room.CanGrow, "room %d still growing", i)
		assert.GreaterOrEqual(t, room.Area(), seedArea, "room %d", i)
		assert.False(t, room.Intersects(&outer.IntPolygon), "room %d touches the outer room", i)
		for _, v := range room.Items() {
			inside, _ := outer.Contains(v)
			assert.True(t, inside, "room %d vertex %v", i, v)
		}
		for j := i + 1; j < len(rooms); j++ {
			assert.False(t, room.Intersects(&rooms[j].IntPolygon), "rooms %d and %d", i, j)
		}
	}
	assert.Greater(t, total, float64(added)*seedArea, "rooms grew")
}

func TestGenerator_Deterministic(t *testing.T) {
	run := func() []*Room {
		g := newGenerator(42)
		g.Reset()
		g.AddRandomRooms(4, 200)
		g.GrowAll(200)
		return g.Rooms
	}

	first, second := run(), run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Items(), second[i].Items(), "room %d", i)
		assert.Equal(t, first[i].Color, second[i].Color, "room %d", i)
	}
}

func TestShuffle(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(rand.New(rand.NewSource(5)), items)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, items)

	again := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(rand.New(rand.NewSource(5)), again)
	assert.Equal(t, items, again)

	Shuffle[int](rand.New(rand.NewSource(5)), nil)
}

func TestRender(t *testing.T) {
	g := newGenerator(3)
	require.NoError(t, g.SetOuterWalls(Rect{0, 0, 20, 20}))
	room, err := g.AddRoom(geom.IV2(10, 10))
	require.NoError(t, err)
	g.GrowAll(100)

	canvas := raster.NewCanvas(21, 21)
	g.Render(canvas)

	assert.Equal(t, colornames.Gray, canvas.At(0, 5), "outer room outline")
	assert.Equal(t, room.Color, canvas.At(1, 5), "room outline")
	assert.Equal(t, colornames.White, canvas.At(10, 10), "inside")
}
