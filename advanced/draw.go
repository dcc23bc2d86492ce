package advanced

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/polyclip/internal"
)

// DrawLayers renders layers of polygons and segments onto a new gg context,
// y axis up. See Layer.
func DrawLayers(layers []Layer, scale float64) *gg.Context {
	return internal.DrawLayers(layers, scale)
}

// SaveLayers renders to a PNG file, optionally echoing it to an iTerm
// compatible terminal.
func SaveLayers(layers []Layer, scale float64, path string, echo bool) error {
	return internal.SaveLayers(layers, scale, path, echo)
}

// EchoPNG prints an image file to an iTerm compatible terminal.
func EchoPNG(path string, w io.Writer) error {
	return internal.EchoPNG(path, w)
}

// ParseSVGPolygons reads every <polygon> element of an SVG document.
func ParseSVGPolygons(r io.Reader) (PolygonList, error) {
	return internal.ParseSVGPolygons(r)
}
