// Package advanced exposes the clipping engine without input validation.
//
// Everything here assumes well formed input: polygons of at least three
// vertices without repeated consecutive points, non-degenerate segments, and
// convex clip polygons. Bad input produces meaningless results (or a panic)
// rather than an error. Use the top level polyclip package unless you have
// already validated your geometry and are calling these in a hot loop.
package advanced

import (
	"log/slog"

	"github.com/osuushi/polyclip/internal"
)

type Point = internal.Point
type Segment = internal.Segment
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type Triangle = internal.Triangle

type PointClass = internal.PointClass
type EdgeClass = internal.EdgeClass
type Location = internal.Location
type PolygonKind = internal.PolygonKind
type IntersectKind = internal.IntersectKind
type FillRule = internal.FillRule
type ContainmentTest = internal.ContainmentTest

type Layer = internal.Layer

const (
	Left        = internal.Left
	Right       = internal.Right
	Beyond      = internal.Beyond
	Behind      = internal.Behind
	Between     = internal.Between
	Origin      = internal.Origin
	Destination = internal.Destination

	Touching    = internal.Touching
	CrossLeft   = internal.CrossLeft
	CrossRight  = internal.CrossRight
	Inessential = internal.Inessential

	Inside  = internal.Inside
	Outside = internal.Outside

	Convex  = internal.Convex
	Concave = internal.Concave

	Same        = internal.Same
	Parallel    = internal.Parallel
	Skew        = internal.Skew
	SkewCross   = internal.SkewCross
	SkewNoCross = internal.SkewNoCross

	EvenOdd        = internal.EvenOdd
	NonZeroWinding = internal.NonZeroWinding
)

var (
	ErrTooFewVertices    = internal.ErrTooFewVertices
	ErrDegenerateEdge    = internal.ErrDegenerateEdge
	ErrDegenerateSegment = internal.ErrDegenerateSegment
	ErrNotConvex         = internal.ErrNotConvex
	ErrDegenerateClip    = internal.ErrDegenerateClip
)

func Classify(origin, dest, q Point) PointClass {
	return internal.Classify(origin, dest, q)
}

func EdgeType(edge Segment, q Point) EdgeClass {
	return internal.EdgeType(edge, q)
}

func Intersect(ab, cd Segment) (IntersectKind, float64) {
	return internal.Intersect(ab, cd)
}

func Cross(ab, cd Segment) (IntersectKind, float64, float64) {
	return internal.Cross(ab, cd)
}

func PointInPolygon(q Point, poly Polygon, rule FillRule) Location {
	return internal.PointInPolygon(q, poly, rule)
}

func PointInPolygonEvenOdd(q Point, poly Polygon) Location {
	return internal.PointInPolygonEvenOdd(q, poly)
}

func PointInPolygonNonZero(q Point, poly Polygon) Location {
	return internal.PointInPolygonNonZero(q, poly)
}

func ClipSegment(seg Segment, clip Polygon) (Segment, bool) {
	return internal.ClipSegment(seg, clip)
}

func ClipPolygon(subject, clip Polygon) Polygon {
	return internal.ClipPolygon(subject, clip)
}

func ClipPolygonList(list PolygonList, clip Polygon) PolygonList {
	return internal.ClipPolygonList(list, clip)
}

func ParseFillRule(s string) (FillRule, error) {
	return internal.ParseFillRule(s)
}

// Convert a recovered panic value into an error if it was raised by
// validation, re-panicking otherwise. See polyclip's public functions for the
// intended use in a deferred recover.
func HandlePanicRecover(r interface{}) error {
	return internal.HandlePanicRecover(r)
}

// SetLogger installs a logger for engine debug records. nil turns logging off.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
