package internal

import (
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polyclip/dbg"
	"github.com/pkg/errors"
)

// Padding around the shapes so strokes on the bounding box stay visible
const dbgDrawPadding = 100

// One set of shapes drawn in a single style. A nil Fill leaves polygons
// unfilled.
type Layer struct {
	Polygons PolygonList
	Segments []Segment
	Fill     color.Color
	Stroke   color.Color
	Rule     FillRule
	// Write each polygon's debug name at its centroid
	Labels bool
}

// DrawLayers renders the layers in order onto a black canvas sized to fit
// them all. The canvas is flipped so that the origin is at the bottom left,
// matching the y-up convention the orientation predicates use.
func DrawLayers(layers []Layer, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, layer := range layers {
		for _, poly := range layer.Polygons {
			for _, p := range poly.Points {
				grow(p)
			}
		}
		for _, s := range layer.Segments {
			grow(s.Start)
			grow(s.End)
		}
	}
	if math.IsInf(minX, 1) {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, layer := range layers {
		layer.draw(c)
	}
	return c
}

func (layer Layer) draw(c *gg.Context) {
	if layer.Rule == NonZeroWinding {
		c.SetFillRuleWinding()
	} else {
		c.SetFillRuleEvenOdd()
	}

	stroke := layer.Stroke
	if stroke == nil {
		stroke = color.White
	}

	if len(layer.Polygons) > 0 {
		for _, poly := range layer.Polygons {
			if poly.Len() == 0 {
				continue
			}
			c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
			for _, p := range poly.Points[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
		}
		if layer.Fill != nil {
			c.SetColor(layer.Fill)
			c.FillPreserve()
		}
		c.SetColor(stroke)
		c.Stroke()
	}

	for _, s := range layer.Segments {
		c.MoveTo(s.Start.X, s.Start.Y)
		c.LineTo(s.End.X, s.End.Y)
	}
	if len(layer.Segments) > 0 {
		c.SetColor(stroke)
		c.Stroke()
	}

	if layer.Labels {
		for i := range layer.Polygons {
			poly := &layer.Polygons[i]
			if poly.Len() == 0 {
				continue
			}
			var center Point
			for _, p := range poly.Points {
				center = center.Add(p)
			}
			center = center.Scale(1 / float64(poly.Len()))
			// We have to go back to identity to draw the text, so get the point in native coordinates
			x, y := c.TransformPoint(center.X, center.Y)
			c.Push()
			c.Identity()
			c.SetColor(stroke)
			c.DrawStringAnchored(dbg.Name(poly), x, y, 0.5, 0.5)
			c.Pop()
		}
	}
}

// SaveLayers draws the layers to a PNG file, and optionally prints the image
// to the terminal (iTerm only).
func SaveLayers(layers []Layer, scale float64, path string, echo bool) error {
	c := DrawLayers(layers, scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if echo {
		return EchoPNG(path, os.Stdout)
	}
	return nil
}

// EchoPNG writes an image file to w as an inline image escape sequence, which
// iTerm renders in place.
func EchoPNG(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "imgcat")
}

// Helper to draw and print a polygon list in the terminal for debugging.
func (pl PolygonList) dbgDraw(scale float64) {
	layers := []Layer{{
		Polygons: pl,
		Fill:     color.RGBA{0, 128, 0, 255},
		Stroke:   color.RGBA{0, 255, 255, 255},
		Labels:   true,
	}}
	if err := SaveLayers(layers, scale, "/tmp/polygon_list.png", true); err != nil {
		logger().Warn("debug draw failed", "err", err)
	}
}
