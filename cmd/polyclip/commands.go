package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/advanced"
	"github.com/osuushi/polyclip/dbg"
	"github.com/pkg/errors"
)

type printer struct {
	w       io.Writer
	au      aurora.Aurora
	verbose bool
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) dump(v interface{}) {
	if p.verbose {
		p.printf("%s", dbg.Dump(v))
	}
}

func (p *printer) name(poly *advanced.Polygon) string {
	return p.au.Bold(dbg.Name(poly)).String()
}

func (p *printer) inspect(polygons advanced.PolygonList) error {
	for i := range polygons {
		poly := &polygons[i]
		kind, err := polyclip.PolygonType(poly.Points)
		if err != nil {
			return errors.Wrapf(err, "polygon %s", dbg.Name(poly))
		}
		crosses, err := polyclip.SelfIntersects(poly.Points)
		if err != nil {
			return errors.Wrapf(err, "polygon %s", dbg.Name(poly))
		}
		winding := "counterclockwise"
		if poly.IsCW() {
			winding = "clockwise"
		}
		selfIntersection := p.au.Green("simple").String()
		if crosses {
			selfIntersection = p.au.Red("self-intersecting").String()
		}
		p.printf("%s: %d vertices, %s, %s, %s (y up), area %g\n",
			p.name(poly), poly.Len(), kind.Colored(p.au), selfIntersection, winding, poly.Area())
	}
	return nil
}

func (p *printer) locate(polygons advanced.PolygonList, q polyclip.Point, rule polyclip.FillRule) error {
	for i := range polygons {
		poly := &polygons[i]
		location, err := polyclip.PointInPolygon(q, poly.Points, rule)
		if err != nil {
			return errors.Wrapf(err, "polygon %s", dbg.Name(poly))
		}
		p.printf("%s: %v is %s (%s)\n", p.name(poly), q, location.Colored(p.au), rule)
	}
	return nil
}

type clipResult struct {
	Polygons advanced.PolygonList
	Lines    []advanced.Segment
}

// clip runs every subject through Sutherland-Hodgman and every line through
// Cyrus-Beck, printing what survives.
func (p *printer) clip(scene *Scene) (*clipResult, error) {
	result := &clipResult{}
	clipPoly := &scene.Clip
	p.printf("clip polygon %s: %v\n", p.name(clipPoly), *clipPoly)

	for i := range scene.Subjects {
		subject := &scene.Subjects[i]
		points, err := polyclip.ClipPolygon(subject.Points, clipPoly.Points)
		if err != nil {
			return nil, errors.Wrapf(err, "subject %d", i)
		}
		if len(points) == 0 {
			p.printf("subject %s: %s\n", p.name(subject), p.au.Red("outside"))
			continue
		}
		clipped := advanced.Polygon{Points: points}
		result.Polygons = append(result.Polygons, clipped)
		p.printf("subject %s: %s %v\n", p.name(subject), p.au.Green("clipped to"), clipped)
	}

	for i, line := range scene.Lines {
		clipped, ok, err := polyclip.ClipLine(line, clipPoly.Points)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i)
		}
		if !ok {
			p.printf("line %v: %s\n", line, p.au.Red("rejected"))
			continue
		}
		result.Lines = append(result.Lines, clipped)
		p.printf("line %v: %s %v\n", line, p.au.Green("clipped to"), clipped)
	}
	return result, nil
}
