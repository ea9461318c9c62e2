// Package floorplan lays out rooms by growing them inside a random outline.
//
// A Generator starts from one or two overlapping rectangles (the outer
// walls), joins them into a fixed outer room, and then grows seeded rooms one
// wall step at a time until every wall is blocked by another room.
package floorplan

import (
	"image/color"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/osuushi/geom2d/geom"
	"github.com/osuushi/geom2d/raster"
)

// maxOuterWallAttempts bounds the search for two overlapping rectangles
// before falling back to a single one.
const maxOuterWallAttempts = 1000

var roomPalette = []color.RGBA{
	colornames.Crimson,
	colornames.Seagreen,
	colornames.Royalblue,
	colornames.Darkorange,
	colornames.Mediumorchid,
	colornames.Teal,
	colornames.Goldenrod,
	colornames.Slateblue,
}

type Generator struct {
	// Resolution is the side of the square grid everything is laid out on.
	Resolution int
	OuterWalls []Rect
	// Rooms[0] is the outer room once the outer walls are set. It never grows.
	Rooms []*Room

	rng *rand.Rand
}

func New(resolution int, rng *rand.Rand) *Generator {
	return &Generator{Resolution: resolution, rng: rng}
}

// Reset discards all rooms and lays out new outer walls.
func (g *Generator) Reset() {
	g.Rooms = nil
	g.GenerateOuterWalls()
}

// RandomRect picks a rectangle with sides in [Resolution/8, Resolution/2)
// that fits on the grid.
func (g *Generator) RandomRect() Rect {
	width := g.rangeInt(g.Resolution/8, g.Resolution/2)
	height := g.rangeInt(g.Resolution/8, g.Resolution/2)
	return Rect{
		X:      g.rangeInt(0, g.Resolution-width),
		Y:      g.rangeInt(0, g.Resolution-height),
		Width:  width,
		Height: height,
	}
}

// GenerateOuterWalls picks two random rectangles that can be joined into one
// outer room and builds that room. If no such pair turns up, a single
// rectangle is used.
func (g *Generator) GenerateOuterWalls() {
	for attempt := 0; attempt < maxOuterWallAttempts; attempt++ {
		if err := g.SetOuterWalls(g.RandomRect(), g.RandomRect()); err == nil {
			return
		}
	}
	geom.Logger().Debug("no joinable outer walls, using one rectangle", "attempts", maxOuterWallAttempts)
	if err := g.SetOuterWalls(g.RandomRect()); err != nil {
		// A lone rectangle always has an outline.
		panic(err)
	}
}

// SetOuterWalls replaces the outer walls and the outer room built from them.
// Two rectangles must overlap and must not share any X or Y coordinate.
func (g *Generator) SetOuterWalls(walls ...Rect) error {
	if len(walls) == 0 {
		return errors.New("at least one outer wall is required")
	}
	for _, wall := range walls {
		if wall.Width <= 0 || wall.Height <= 0 {
			return errors.Errorf("outer wall %+v is empty", wall)
		}
	}
	if err := checkGeneralPosition(walls); err != nil {
		return err
	}

	previous := g.OuterWalls
	g.OuterWalls = walls
	if err := g.GenerateOuterRoom(); err != nil {
		g.OuterWalls = previous
		return err
	}
	return nil
}

func checkGeneralPosition(walls []Rect) error {
	xs := make(map[int]int)
	ys := make(map[int]int)
	for i, wall := range walls {
		for _, x := range []int{wall.X, wall.X + wall.Width} {
			if owner, ok := xs[x]; ok && owner != i {
				return errors.Errorf("outer walls %d and %d share x = %d", owner, i, x)
			}
			xs[x] = i
		}
		for _, y := range []int{wall.Y, wall.Y + wall.Height} {
			if owner, ok := ys[y]; ok && owner != i {
				return errors.Errorf("outer walls %d and %d share y = %d", owner, i, y)
			}
			ys[y] = i
		}
	}
	return nil
}

// GenerateOuterRoom rebuilds Rooms[0] from the outer walls, dropping every
// other room.
func (g *Generator) GenerateOuterRoom() error {
	polygon, err := outline(g.OuterWalls)
	if err != nil {
		return errors.Wrap(err, "joining outer walls")
	}
	outer := NewRoom(polygon, colornames.Gray)
	outer.CanGrow = false
	for i := range outer.GrowableWalls {
		outer.GrowableWalls[i] = false
	}
	g.Rooms = []*Room{outer}
	return nil
}

// OuterRoom is nil until outer walls are set.
func (g *Generator) OuterRoom() *Room {
	if len(g.Rooms) == 0 {
		return nil
	}
	return g.Rooms[0]
}

// AddRoom seeds a room of side 2 centered on center. The seed must lie inside
// the outer room and must not touch any existing room.
func (g *Generator) AddRoom(center geom.IntVector2) (*Room, error) {
	outer := g.OuterRoom()
	if outer == nil {
		return nil, errors.New("outer walls must be set before adding rooms")
	}
	seed := geom.IntUnitRect().Translated(center)
	for _, v := range seed.Items() {
		if inside, _ := outer.Contains(v); !inside {
			return nil, errors.Errorf("room at %v does not fit inside the outer room", center)
		}
	}
	for _, other := range g.Rooms {
		if other.Intersects(seed) {
			return nil, errors.Errorf("room at %v touches an existing room", center)
		}
		if other != outer {
			if inside, _ := other.Contains(center); inside {
				return nil, errors.Errorf("room at %v is inside an existing room", center)
			}
		}
	}

	room := NewRoom(seed, roomPalette[g.rng.Intn(len(roomPalette))])
	g.Rooms = append(g.Rooms, room)
	return room, nil
}

// AddRandomRooms tries up to attempts random seed positions and returns how
// many rooms were added, stopping once count rooms are in.
func (g *Generator) AddRandomRooms(count, attempts int) int {
	added := 0
	for i := 0; i < attempts && added < count; i++ {
		center := geom.IV2(g.rangeInt(1, g.Resolution-1), g.rangeInt(1, g.Resolution-1))
		if _, err := g.AddRoom(center); err == nil {
			added++
		}
	}
	return added
}

// Grow runs one growth pass over every room that can still grow, and reports
// whether any room is still able to grow afterwards.
//
// Each room visits its walls from longest to shortest (ties in a random
// order). A wall that touches another room is frozen. Otherwise it moves one
// step along its left normal, unless the moved wall would touch another room,
// in which case it is frozen instead. A room with no free walls stops
// growing.
func (g *Generator) Grow() bool {
	growing := 0
	for i := 1; i < len(g.Rooms); i++ {
		room := g.Rooms[i]
		if !room.CanGrow {
			continue
		}

		walls := room.IndexedSegments()
		Shuffle(g.rng, walls)
		sort.SliceStable(walls, func(a, b int) bool {
			return walls[a].Value.CompareByLength(walls[b].Value) < 0
		})

		for j := len(walls) - 1; j >= 0; j-- {
			index := walls[j].Index
			if !room.GrowableWalls[index] {
				continue
			}

			wall := room.Segment(index)
			if g.touchesOtherRoom(room, wall) {
				room.GrowableWalls[index] = false
				continue
			}

			step := wall.LeftStep()
			if g.touchesOtherRoom(room, wall.Add(step)) {
				room.GrowableWalls[index] = false
				if !room.anyGrowableWalls() {
					room.CanGrow = false
				}
				continue
			}
			room.Set(index, room.At(index).Add(step))
			room.Set(index+1, room.At(index+1).Add(step))
		}
		if !room.anyGrowableWalls() {
			room.CanGrow = false
		}
		if room.CanGrow {
			growing++
		}
	}

	geom.Logger().Debug("floor plan growth pass", "rooms", len(g.Rooms)-1, "growing", growing)
	return growing > 0
}

// GrowAll repeats Grow until no room can grow or maxPasses passes have run,
// and returns the number of passes.
func (g *Generator) GrowAll(maxPasses int) int {
	passes := 0
	for passes < maxPasses {
		passes++
		if !g.Grow() {
			break
		}
	}
	return passes
}

func (g *Generator) touchesOtherRoom(room *Room, wall geom.IntSegment2) bool {
	for _, other := range g.Rooms {
		if other != room && other.IntersectsSegment(wall) {
			return true
		}
	}
	return false
}

// Render draws the outer walls as black blocks with white interiors, then
// outlines each room in its color.
func (g *Generator) Render(canvas *raster.Canvas) {
	for _, wall := range g.OuterWalls {
		canvas.DrawRect(wall.X, wall.Y, wall.Width, wall.Height, colornames.Black)
	}
	for _, wall := range g.OuterWalls {
		canvas.DrawRect(wall.X+1, wall.Y+1, wall.Width-2, wall.Height-2, colornames.White)
	}
	for _, room := range g.Rooms {
		canvas.DrawPolygon(&room.IntPolygon, room.Color)
	}
}

// rangeInt picks from [lo, hi), or returns lo for an empty range.
func (g *Generator) rangeInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo)
}

// Shuffle is a Fisher-Yates shuffle driven by rng.
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := 0; i < len(items)-1; i++ {
		j := i + rng.Intn(len(items)-i)
		items[i], items[j] = items[j], items[i]
	}
}
