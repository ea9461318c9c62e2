package dbg

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/geom2d/geom"
)

func TestName(t *testing.T) {
	a, b := geom.UnitRect(), geom.UnitRect()

	name := Name(a)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(a), "memoized")
	assert.NotEqual(t, name, Name(b), "distinct pointers get distinct names")

	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name((*geom.Polygon)(nil)))
	assert.NotEqual(t, "Ø", Name(42), "non-pointer values are named too")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Otter", capitalize("otter"))
	assert.Equal(t, "", capitalize(""))
}

func TestDescribe(t *testing.T) {
	SetColors(false)
	defer SetColors(true)

	d := Describe(geom.UnitRect())
	assert.Contains(t, d, "4 vertices")
	assert.Contains(t, d, "area 1,")
	assert.Contains(t, d, "counterclockwise")
	assert.Contains(t, d, "convex")
	assert.NotContains(t, d, "\x1b[", "no escape codes")

	SetColors(true)
	assert.Contains(t, Describe(geom.Square()), "\x1b[")
}

func TestDrawPolygons(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polygons.png")
	require.NoError(t, DrawPolygons([]*geom.Polygon{geom.UnitRect(), geom.UnitRect().Translated(geom.V2(0.5, 0.5))}, 10, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	config, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 15+2*drawPadding, config.Width)
	assert.Equal(t, 15+2*drawPadding, config.Height)

	assert.Error(t, DrawPolygons(nil, 10, path))
}
