package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter() (*printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &printer{w: &buf, au: aurora.NewAurora(false)}, &buf
}

func TestReadPolygons(t *testing.T) {
	input := `
100 400
250 100
400 400


10 10
90 90
90 10
10 90`
	polygons, err := readPolygons(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Equal(t, []advanced.Point{{X: 100, Y: 400}, {X: 250, Y: 100}, {X: 400, Y: 400}}, polygons[0].Points)
	assert.Equal(t, 4, polygons[1].Len())

	_, err = readPolygons(strings.NewReader("1 2\n3\n"))
	assert.EqualError(t, err, `line 2: expected "x y", got "3"`)

	_, err = readPolygons(strings.NewReader("1 2\n3 y\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2: y")
}

func TestInspect(t *testing.T) {
	out, buf := newTestPrinter()
	polygons, err := readPolygons(strings.NewReader("100 400\n250 100\n400 400\n\n10 10\n90 90\n90 10\n10 90\n"))
	require.NoError(t, err)
	require.NoError(t, out.inspect(polygons))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "3 vertices, Convex, simple, counterclockwise")
	assert.Contains(t, lines[0], "area 45000")
	assert.Contains(t, lines[1], "4 vertices, Concave, self-intersecting")

	err = out.inspect(advanced.PolygonList{{Points: []advanced.Point{{X: 0, Y: 0}}}})
	assert.ErrorIs(t, err, polyclip.ErrTooFewVertices)
}

func TestLocate(t *testing.T) {
	out, buf := newTestPrinter()
	star := advanced.Polygon{Points: []advanced.Point{
		{X: 100, Y: 400}, {X: 250, Y: 100}, {X: 400, Y: 400}, {X: 80, Y: 150}, {X: 420, Y: 150},
	}}
	require.NoError(t, out.locate(advanced.PolygonList{star}, polyclip.Point{X: 250, Y: 250}, polyclip.EvenOdd))
	require.NoError(t, out.locate(advanced.PolygonList{star}, polyclip.Point{X: 250, Y: 250}, polyclip.NonZeroWinding))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "(250, 250) is Outside (evenodd)")
	assert.Contains(t, lines[1], "(250, 250) is Inside (nonzero)")
}

func TestClip(t *testing.T) {
	scene, err := LoadScene("testdata/triangle.yaml")
	require.NoError(t, err)

	out, buf := newTestPrinter()
	result, err := out.clip(scene)
	require.NoError(t, err)

	require.Len(t, result.Polygons, 1)
	clipped := result.Polygons[0]
	assert.True(t, clipped.Contains(advanced.Point{X: 250, Y: 300}, advanced.EvenOdd))
	// Cut off by the right side of the triangle
	assert.False(t, clipped.Contains(advanced.Point{X: 370, Y: 300}, advanced.EvenOdd))
	assert.Less(t, clipped.Area(), scene.Subjects[0].Area())
	require.Len(t, result.Lines, 1)
	assert.InDelta(t, 218.18, result.Lines[0].Start.X, 0.01)
	assert.InDelta(t, 320, result.Lines[0].End.X, 0.01)

	output := buf.String()
	assert.Contains(t, output, "outside")
	assert.Contains(t, output, "rejected")
	assert.Equal(t, 2, strings.Count(output, "clipped to"))

	scene.Clip = advanced.Polygon{Points: []advanced.Point{{X: 10, Y: 10}, {X: 50, Y: 40}, {X: 90, Y: 10}, {X: 50, Y: 90}}}
	_, err = out.clip(scene)
	assert.ErrorIs(t, err, polyclip.ErrNotConvex)
}

func TestRender(t *testing.T) {
	scene, err := LoadScene("testdata/triangle.yaml")
	require.NoError(t, err)
	out, _ := newTestPrinter()
	result, err := out.clip(scene)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, pixels := range []bool{false, true} {
		path := filepath.Join(dir, "vector.png")
		if pixels {
			path = filepath.Join(dir, "pixels.png")
		}
		require.NoError(t, render(scene, result, path, pixels, false))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
