package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipPolygon(t *testing.T) {
	triangle := LoadFixture("triangle")

	t.Run("subject inside the clip is unchanged", func(t *testing.T) {
		squares := LoadFixtureList("squares")
		inner, outer := squares[0], squares[1]
		result := ClipPolygon(inner, outer)
		assert.True(t, result.EquivalentTo(inner), "got %v", result)
	})

	t.Run("clipping to itself", func(t *testing.T) {
		result := ClipPolygon(triangle, triangle)
		assert.True(t, result.EquivalentTo(triangle), "got %v", result)
	})

	t.Run("disjoint", func(t *testing.T) {
		result := ClipPolygon(Square(0, 0, 10, 10), triangle)
		assert.Equal(t, 0, result.Len())
	})

	t.Run("clip inside the subject", func(t *testing.T) {
		subject := Square(0, 0, 640, 480)
		result := ClipPolygon(subject, triangle)
		assert.InDelta(t, triangle.Area(), result.Area(), Tolerance)
		assertWellFormedClip(t, result, triangle)
		validateClipBySampling(t, result, subject, triangle)
	})

	t.Run("either clip winding", func(t *testing.T) {
		subject := Square(150, 150, 350, 350)
		ccw := ClipPolygon(subject, triangle)
		cw := ClipPolygon(subject, triangle.Reverse())
		require.Greater(t, ccw.Len(), 0)
		assert.InDelta(t, ccw.Area(), cw.Area(), Tolerance)
		validateClipBySampling(t, ccw, subject, triangle)
		validateClipBySampling(t, cw, subject, triangle.Reverse())
	})

	t.Run("subject winding is kept", func(t *testing.T) {
		subject := Square(150, 150, 350, 350).Reverse()
		result := ClipPolygon(subject, triangle)
		assert.True(t, result.IsCW())
	})
}

func TestClipPolygon_Concave(t *testing.T) {
	cases := []struct {
		name    string
		subject Polygon
		clip    Polygon
	}{
		{"star in square", SimpleStar(100, 40), Square(-50, -50, 50, 50)},
		{"star in hexagon", SimpleStar(100, 40), RegularPolygon(6, 10, 0, 70)},
		{"chevron in triangle", LoadFixture("chevron"), Polygon{[]Point{{0, 0}, {100, 0}, {50, 60}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := ClipPolygon(c.subject, c.clip)
			assertWellFormedClip(t, result, c.clip)
			validateClipBySampling(t, result, c.subject, c.clip)
		})
	}
}

func TestClipPolygon_Bridge(t *testing.T) {
	// Both prongs of the chevron poke below the top of the clip, so the
	// result is two pieces joined along the clip boundary.
	chevron := LoadFixture("chevron")
	clip := Square(0, 0, 100, 30)
	result := ClipPolygon(chevron, clip)

	require.Equal(t, 6, result.Len())
	assert.Equal(t, Point{10, 10}, result.Points[1])
	assert.Equal(t, Point{90, 10}, result.Points[4])
	for _, i := range []int{0, 2, 3, 5} {
		assert.InDelta(t, 30.0, result.Points[i].Y, Tolerance)
	}
	assert.False(t, result.Contains(Point{50, 20}, EvenOdd))
	validateClipBySampling(t, result, chevron, clip)
}

func TestClipPolygonList(t *testing.T) {
	squares := LoadFixtureList("squares")

	result := ClipPolygonList(squares, Square(0, 0, 300, 300))
	require.Len(t, result, 2)
	assert.InDelta(t, 100.0*100, result[0].Area(), Tolerance)
	assert.InDelta(t, 200.0*200, result[1].Area(), Tolerance)

	assert.Empty(t, ClipPolygonList(squares, Square(0, 0, 50, 50)))

	// Only the outer square reaches this corner
	result = ClipPolygonList(squares, Square(450, 450, 600, 600))
	require.Len(t, result, 1)
	assert.InDelta(t, 50.0*50, result[0].Area(), Tolerance)
}

func TestDedupeCycle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{1, 1}
	assert.Equal(t, []Point{a, b, c}, dedupeCycle([]Point{a, a, b, c, c, a, a}))
	assert.Equal(t, []Point{a}, dedupeCycle([]Point{a, a, a}))
	assert.Empty(t, dedupeCycle(nil))
}
