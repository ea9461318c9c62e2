package geom2d

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Vector2{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, err := Triangulate(points...)
	assert.NoError(t, err)
	assert.Len(t, triangles, 6)

	_, err = Triangulate(points[:2]...)
	assert.Error(t, err)

	_, err = Triangulate(Vector2{X: 0, Y: 0}, Vector2{X: 1, Y: 1}, Vector2{X: 2, Y: 2})
	assert.ErrorContains(t, err, "zero area")
}

func TestTriangles(t *testing.T) {
	points := []Vector2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	triangles, err := Triangles(points...)
	require.NoError(t, err)
	require.Len(t, triangles, 1)
	assert.ElementsMatch(t, points, triangles[0][:])

	_, err = Triangles()
	assert.Error(t, err)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Triangulate(Vector2{X: 0, Y: 0}, Vector2{X: 0, Y: 1}, Vector2{X: 1, Y: 1}, Vector2{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "triangles=2")
}
