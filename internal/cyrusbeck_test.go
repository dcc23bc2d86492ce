package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipSegment(t *testing.T) {
	triangle := LoadFixture("triangle")

	for _, clip := range []Polygon{triangle, triangle.Reverse()} {
		name := "CCW"
		if clip.IsCW() {
			name = "CW"
		}
		t.Run(name, func(t *testing.T) {
			t.Run("crossing diagonal", func(t *testing.T) {
				clipped, ok := ClipSegment(Segment{Point{0, 0}, Point{640, 480}}, clip)
				require.True(t, ok)
				assert.InDelta(t, 218.18, clipped.Start.X, 0.01)
				assert.InDelta(t, 163.64, clipped.Start.Y, 0.01)
				assert.InDelta(t, 320.0, clipped.End.X, 0.01)
				assert.InDelta(t, 240.0, clipped.End.Y, 0.01)
			})

			t.Run("direction is kept", func(t *testing.T) {
				clipped, ok := ClipSegment(Segment{Point{640, 480}, Point{0, 0}}, clip)
				require.True(t, ok)
				assert.InDelta(t, 320.0, clipped.Start.X, 0.01)
				assert.InDelta(t, 218.18, clipped.End.X, 0.01)
			})

			t.Run("fully inside", func(t *testing.T) {
				seg := Segment{Point{200, 300}, Point{300, 300}}
				clipped, ok := ClipSegment(seg, clip)
				require.True(t, ok)
				assert.Equal(t, seg, clipped)
			})

			t.Run("fully outside", func(t *testing.T) {
				clipped, ok := ClipSegment(Segment{Point{0, 0}, Point{50, 50}}, clip)
				assert.False(t, ok)
				assert.Equal(t, Segment{}, clipped)
			})

			t.Run("parallel outside", func(t *testing.T) {
				_, ok := ClipSegment(Segment{Point{0, 500}, Point{600, 500}}, clip)
				assert.False(t, ok)
			})

			t.Run("parallel inside", func(t *testing.T) {
				seg := Segment{Point{150, 350}, Point{350, 350}}
				clipped, ok := ClipSegment(seg, clip)
				require.True(t, ok)
				assert.Equal(t, seg, clipped)
			})

			t.Run("along an edge", func(t *testing.T) {
				seg := Segment{Point{100, 400}, Point{400, 400}}
				clipped, ok := ClipSegment(seg, clip)
				require.True(t, ok)
				assert.Equal(t, seg, clipped)
			})

			t.Run("touching a vertex", func(t *testing.T) {
				clipped, ok := ClipSegment(Segment{Point{0, 100}, Point{500, 100}}, clip)
				require.True(t, ok)
				assert.Equal(t, Point{250, 100}, clipped.Start)
				assert.Equal(t, Point{250, 100}, clipped.End)
			})
		})
	}
}

// Walk along random segments and check that the clipped piece covers exactly
// the samples that are inside the clip polygon.
func TestClipSegment_Sampling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	clip := RegularPolygon(6, 50, 50, 40)

	for i := 0; i < 200; i++ {
		seg := Segment{
			Point{rng.Float64() * 100, rng.Float64() * 100},
			Point{rng.Float64() * 100, rng.Float64() * 100},
		}
		clipped, ok := ClipSegment(seg, clip)
		if ok {
			assert.Less(t, distanceToSegment(clipped.Start, seg), Tolerance)
			assert.Less(t, distanceToSegment(clipped.End, seg), Tolerance)
		}

		for s := 0.0; s <= 1; s += 1.0 / 64 {
			p := seg.At(s)
			if nearAnyEdge(p, []Polygon{clip}) {
				continue
			}
			inClipped := ok && distanceToSegment(p, clipped) < Tolerance
			assert.Equal(t, clip.Contains(p, EvenOdd), inClipped,
				"sample %v of %v clipped to %v", p, seg, clipped)
		}
	}
}
