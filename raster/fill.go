package raster

import (
	"image/color"
	"math"

	"github.com/osuushi/polyclip/advanced"
	"github.com/pkg/errors"
)

// FillPolygon fills every pixel of the polygon's bounding box that the fill
// rule places inside, boundary included.
func FillPolygon(sink PixelSink, poly advanced.Polygon, rule advanced.FillRule, c color.Color) {
	FillPolygonFunc(sink, poly, rule.Test(), c)
}

// FillPolygonFunc is FillPolygon with a caller supplied containment test.
func FillPolygonFunc(sink PixelSink, poly advanced.Polygon, test advanced.ContainmentTest, c color.Color) {
	scanBounds(poly, func(x, y int) {
		if test(advanced.Point{X: float64(x), Y: float64(y)}, poly) == advanced.Inside {
			sink.SetPixel(x, y, c)
		}
	})
}

// FillPolygonShaded fills a convex polygon, interpolating one color per
// vertex across a triangle fan (Gouraud shading). vertexColors must have one
// entry per polygon vertex.
func FillPolygonShaded(sink PixelSink, poly advanced.Polygon, vertexColors []color.Color) {
	if len(vertexColors) != poly.Len() {
		panic(errors.Errorf("raster: need one color per vertex, got %d colors for %d vertices", len(vertexColors), poly.Len()))
	}
	fan := poly.Fan()
	fanColors := make([][3]color.Color, len(fan))
	for i := range fan {
		fanColors[i] = [3]color.Color{vertexColors[0], vertexColors[i+1], vertexColors[i+2]}
	}

	scanBounds(poly, func(x, y int) {
		p := advanced.Point{X: float64(x), Y: float64(y)}
		for i, tri := range fan {
			if advanced.PointInPolygonEvenOdd(p, tri.ToPolygon()) != advanced.Inside {
				continue
			}
			a, b, c := tri.Barycentric(p)
			sink.SetPixel(x, y, blend3(fanColors[i], a, b, c))
			return
		}
	})
}

// Call fn for every integer point of the polygon's bounding box.
func scanBounds(poly advanced.Polygon, fn func(x, y int)) {
	if poly.Len() == 0 {
		return
	}
	min, max := poly.Bounds()
	xMin, xMax := int(math.Floor(min.X)), int(math.Ceil(max.X))
	yMin, yMax := int(math.Floor(min.Y)), int(math.Ceil(max.Y))
	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			fn(x, y)
		}
	}
}

func blend3(colors [3]color.Color, a, b, c float64) color.Color {
	weights := [3]float64{a, b, c}
	var r, g, bl, al float64
	for i, col := range colors {
		cr, cg, cb, ca := col.RGBA()
		w := weights[i]
		r += w * float64(cr)
		g += w * float64(cg)
		bl += w * float64(cb)
		al += w * float64(ca)
	}
	return color.RGBA64{clamp16(r), clamp16(g), clamp16(bl), clamp16(al)}
}

func clamp16(v float64) uint16 {
	return uint16(math.Max(0, math.Min(0xffff, math.Round(v))))
}
