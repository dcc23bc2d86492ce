package internal

// This contains no actual tests. It is just a helper for testing clipping
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check a clipped polygon by sampling a grid over the inputs. Every
// sample away from all of the boundaries must be inside the result iff it is
// inside both the subject and the clip polygon. Samples within Tolerance of
// any edge are skipped, since exact comparisons make the boundary itself
// arbitrary.
func validateClipBySampling(t *testing.T, result, subject, clip Polygon) {
	t.Helper()
	all := []Polygon{result, subject, clip}

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, poly := range all {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	require.False(t, math.IsInf(minX, 1), "nothing to sample")

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// An odd divisor keeps samples off the round coordinates fixtures use
	step := math.Max(maxX-minX, maxY-minY) / 47

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if nearAnyEdge(p, all) {
				continue
			}

			expected := subject.Contains(p, EvenOdd) && clip.Contains(p, EvenOdd)
			actual := result.Len() > 0 && result.Contains(p, EvenOdd)
			if expected {
				assert.True(t, actual, "point %v should be in the clipped polygon", p)
			} else {
				assert.False(t, actual, "point %v should not be in the clipped polygon", p)
			}
		}
	}
}

func nearAnyEdge(p Point, polygons []Polygon) bool {
	for _, poly := range polygons {
		for i := range poly.Points {
			if distanceToSegment(p, poly.Edge(i)) < Tolerance {
				return true
			}
		}
	}
	return false
}

func distanceToSegment(p Point, s Segment) float64 {
	d := s.Direction()
	lengthSquared := d.Dot(d)
	if lengthSquared == 0 {
		return math.Hypot(p.X-s.Start.X, p.Y-s.Start.Y)
	}
	t := math.Max(0, math.Min(1, p.Sub(s.Start).Dot(d)/lengthSquared))
	closest := s.At(t)
	return math.Hypot(p.X-closest.X, p.Y-closest.Y)
}

// A clipped polygon must not have repeated consecutive vertices, and every
// vertex must be inside (or on) the clip polygon.
func assertWellFormedClip(t *testing.T, result, clip Polygon) {
	t.Helper()
	if result.Len() == 0 {
		return
	}
	require.GreaterOrEqual(t, result.Len(), 3)
	for i := range result.Points {
		assert.False(t, result.Edge(i).IsDegenerate(), "edge %d of %v is degenerate", i, result)
		p := result.Points[i]
		assert.True(t, clip.Contains(p, EvenOdd) || nearAnyEdge(p, []Polygon{clip}),
			"vertex %v is outside the clip polygon", p)
	}
}
