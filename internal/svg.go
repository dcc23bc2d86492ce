package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It finds every <polygon>
// element in the document and reads its points attribute. Transforms, paths
// and units are ignored.
func ParseSVGPolygons(r io.Reader) (PolygonList, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	list := make(PolygonList, 0, len(polygonEls))
	for i, polygonEl := range polygonEls {
		points, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		list = append(list, Polygon{Points: points})
	}
	return list, nil
}

// Points are "x,y" pairs separated by whitespace. Pairs may also be written
// with whitespace instead of the comma.
func parseSVGPoints(pointString string) ([]Point, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", pointString)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
