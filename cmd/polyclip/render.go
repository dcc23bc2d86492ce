package main

import (
	"image/color"
	"os"

	"github.com/osuushi/polyclip/advanced"
	"github.com/osuushi/polyclip/raster"
	"github.com/pkg/errors"
)

// Vector rendering fits the drawing to the scene's shapes with the y axis up.
// Pixel rendering uses the scene's width and height as a y-down device, the
// way the shapes would appear on screen.
func render(scene *Scene, result *clipResult, path string, pixels, echo bool) error {
	if !pixels {
		layers := []advanced.Layer{
			{Polygons: scene.Subjects, Segments: scene.Lines, Stroke: dim(scene.SubjectColor), Rule: scene.Rule},
			{Polygons: advanced.PolygonList{scene.Clip}, Stroke: scene.ClipColor},
			{Polygons: result.Polygons, Segments: result.Lines, Fill: scene.ResultColor, Stroke: scene.ResultColor, Rule: scene.Rule, Labels: true},
		}
		return advanced.SaveLayers(layers, scene.Scale, path, echo)
	}

	sink := raster.NewContextSink(scene.Width, scene.Height)
	sink.Clear(color.Black)
	for _, subject := range scene.Subjects {
		raster.DrawPolygon(sink, subject, dim(scene.SubjectColor))
	}
	for _, line := range scene.Lines {
		raster.DrawSegment(sink, line, dim(scene.SubjectColor))
	}
	for _, poly := range result.Polygons {
		raster.FillPolygon(sink, poly, scene.Rule, scene.ResultColor)
	}
	for _, line := range scene.Lines {
		raster.DrawClippedSegment(sink, line, scene.Clip, scene.ResultColor)
	}
	raster.DrawPolygon(sink, scene.Clip, scene.ClipColor)

	if err := sink.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if echo {
		return advanced.EchoPNG(path, os.Stdout)
	}
	return nil
}

// Half intensity version of a color, for the unclipped input.
func dim(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{uint16(r / 2), uint16(g / 2), uint16(b / 2), uint16(a)}
}
