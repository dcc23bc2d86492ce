package raster

import (
	"image/color"
	"math"

	"github.com/osuushi/polyclip/advanced"
)

// DrawLine plots the segment with Bresenham's algorithm. Both endpoints are
// plotted. When the error term lands exactly on zero the step is taken only
// for non-negative minor directions, so a line drawn in either direction
// covers the same pixels.
func DrawLine(sink PixelSink, x0, y0, x1, y1 int, c color.Color) {
	dx, dy := x1-x0, y1-y0
	ix, iy := sign(dx), sign(dy)
	dx, dy = abs(dx), abs(dy)
	x, y := x0, y0

	if dx >= dy {
		e := 2*dy - dx
		for i := 0; i <= dx; i++ {
			sink.SetPixel(x, y, c)
			if e > 0 || (e == 0 && iy >= 0) {
				y += iy
				e -= 2 * dx
			}
			x += ix
			e += 2 * dy
		}
		return
	}

	e := 2*dx - dy
	for i := 0; i <= dy; i++ {
		sink.SetPixel(x, y, c)
		if e > 0 || (e == 0 && ix >= 0) {
			x += ix
			e -= 2 * dy
		}
		y += iy
		e += 2 * dx
	}
}

func DrawSegment(sink PixelSink, s advanced.Segment, c color.Color) {
	x0, y0 := pixel(s.Start)
	x1, y1 := pixel(s.End)
	DrawLine(sink, x0, y0, x1, y1, c)
}

// DrawClippedSegment clips the segment to a convex polygon with Cyrus-Beck
// and draws whatever survives. It reports whether anything was drawn.
func DrawClippedSegment(sink PixelSink, s advanced.Segment, clip advanced.Polygon, c color.Color) bool {
	clipped, ok := advanced.ClipSegment(s, clip)
	if !ok {
		return false
	}
	DrawSegment(sink, clipped, c)
	return true
}

// DrawPolygon strokes the polygon outline, closing edge included.
func DrawPolygon(sink PixelSink, poly advanced.Polygon, c color.Color) {
	for i := range poly.Points {
		DrawSegment(sink, poly.Edge(i), c)
	}
}

func pixel(p advanced.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
