package raster

import (
	"image/color"
	"math"

	"github.com/osuushi/polyclip/advanced"
)

// DrawCircle plots a circle outline with the midpoint algorithm, using
// eight-way symmetry.
func DrawCircle(sink PixelSink, cx, cy, r int, c color.Color) {
	if r < 0 {
		return
	}
	x, y := 0, r
	d := 1 - r
	for x <= y {
		plotOctants(sink, cx, cy, x, y, c)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

func plotOctants(sink PixelSink, cx, cy, x, y int, c color.Color) {
	sink.SetPixel(cx+x, cy+y, c)
	sink.SetPixel(cx-x, cy+y, c)
	sink.SetPixel(cx+x, cy-y, c)
	sink.SetPixel(cx-x, cy-y, c)
	sink.SetPixel(cx+y, cy+x, c)
	sink.SetPixel(cx-y, cy+x, c)
	sink.SetPixel(cx+y, cy-x, c)
	sink.SetPixel(cx-y, cy-x, c)
}

// DrawBezier plots a cubic Bézier curve by flattening it into line segments.
// The number of segments follows the length of the control polygon, roughly
// one per four pixels.
func DrawBezier(sink PixelSink, p0, p1, p2, p3 advanced.Point, c color.Color) {
	length := math.Hypot(p1.X-p0.X, p1.Y-p0.Y) +
		math.Hypot(p2.X-p1.X, p2.Y-p1.Y) +
		math.Hypot(p3.X-p2.X, p3.Y-p2.Y)
	if math.IsInf(length, 0) || math.IsNaN(length) {
		return
	}
	steps := int(math.Ceil(length / 4))
	if steps < 1 {
		steps = 1
	}

	prev := p0
	for i := 1; i <= steps; i++ {
		next := bezierAt(p0, p1, p2, p3, float64(i)/float64(steps))
		if i == steps {
			next = p3
		}
		DrawSegment(sink, advanced.Segment{Start: prev, End: next}, c)
		prev = next
	}
}

func bezierAt(p0, p1, p2, p3 advanced.Point, t float64) advanced.Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	cc := 3 * u * t * t
	d := t * t * t
	return advanced.Point{
		X: a*p0.X + b*p1.X + cc*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + cc*p2.Y + d*p3.Y,
	}
}
