// Package raster draws clipping results pixel by pixel.
//
// Everything here writes through a PixelSink, so the same code renders into
// a gg context, a plain image, or a test recorder. Coordinates are device
// pixels; polygons and segments from the geometry packages are rounded to the
// nearest pixel.
//
// Sinks are not safe for concurrent use.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

type PixelSink interface {
	SetPixel(x, y int, c color.Color)
}

// ContextSink plots pixels into a gg context, ignoring its transform.
type ContextSink struct {
	Context *gg.Context
}

func NewContextSink(width, height int) *ContextSink {
	return &ContextSink{Context: gg.NewContext(width, height)}
}

func (s *ContextSink) SetPixel(x, y int, c color.Color) {
	s.Context.SetColor(c)
	s.Context.SetPixel(x, y)
}

// Clear fills the whole context with c.
func (s *ContextSink) Clear(c color.Color) {
	s.Context.SetColor(c)
	s.Context.Clear()
}

func (s *ContextSink) SavePNG(path string) error {
	return s.Context.SavePNG(path)
}

// ImageSink plots into any draw.Image. Pixels outside the bounds are dropped.
type ImageSink struct {
	Image draw.Image
}

func (s ImageSink) SetPixel(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(s.Image.Bounds()) {
		return
	}
	s.Image.Set(x, y, c)
}
