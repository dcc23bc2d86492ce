// 2D polygon classification and clipping for Go.
//
// This package classifies points against segments and polygons (even-odd and
// non-zero winding), intersects segments, detects convexity and
// self-intersection, and clips segments (Cyrus-Beck) and polygons
// (Sutherland-Hodgman) against convex clip polygons.
//
// Every function validates its input and returns an error for degenerate
// geometry: polygons with fewer than three vertices or repeated consecutive
// vertices, zero length segments, and clip polygons that are concave or
// enclose no area (all vertices on one line). Parallel and
// collinear segments are ordinary results, not errors. The advanced package
// offers the same operations without validation.
//
// Comparisons are exact. A point that should lie on an edge but is off by a
// rounding error is treated as off the edge.
package polyclip

import (
	"log/slog"

	"github.com/osuushi/polyclip/advanced"
)

type Point = advanced.Point
type Segment = advanced.Segment
type PointClass = advanced.PointClass
type EdgeClass = advanced.EdgeClass
type Location = advanced.Location
type PolygonKind = advanced.PolygonKind
type IntersectKind = advanced.IntersectKind
type FillRule = advanced.FillRule

const (
	Left        = advanced.Left
	Right       = advanced.Right
	Beyond      = advanced.Beyond
	Behind      = advanced.Behind
	Between     = advanced.Between
	Origin      = advanced.Origin
	Destination = advanced.Destination

	Touching    = advanced.Touching
	CrossLeft   = advanced.CrossLeft
	CrossRight  = advanced.CrossRight
	Inessential = advanced.Inessential

	Inside  = advanced.Inside
	Outside = advanced.Outside

	Convex  = advanced.Convex
	Concave = advanced.Concave

	Same        = advanced.Same
	Parallel    = advanced.Parallel
	Skew        = advanced.Skew
	SkewCross   = advanced.SkewCross
	SkewNoCross = advanced.SkewNoCross

	EvenOdd        = advanced.EvenOdd
	NonZeroWinding = advanced.NonZeroWinding
)

var (
	ErrTooFewVertices    = advanced.ErrTooFewVertices
	ErrDegenerateEdge    = advanced.ErrDegenerateEdge
	ErrDegenerateSegment = advanced.ErrDegenerateSegment
	ErrNotConvex         = advanced.ErrNotConvex
	ErrDegenerateClip    = advanced.ErrDegenerateClip
)

// SetLogger configures debug logging for the clipping engine. By default
// nothing is logged. Pass nil to turn logging off again.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}

// Classify reports where q lies relative to the directed line from origin to
// dest: Left, Right, Behind (collinear, outside the segment on either end),
// Between, Origin or Destination. Beyond is never returned.
func Classify(origin, dest, q Point) (class PointClass, err error) {
	defer recoverInto(&err)
	validateSegment(Segment{Start: origin, End: dest})
	return advanced.Classify(origin, dest, q), nil
}

// EdgeType classifies the edge origin->dest against a ray cast from q toward
// +X. This is the building block of the point in polygon tests.
func EdgeType(origin, dest, q Point) (class EdgeClass, err error) {
	defer recoverInto(&err)
	edge := Segment{Start: origin, End: dest}
	validateSegment(edge)
	return advanced.EdgeType(edge, q), nil
}

// PointInPolygon tests q against the polygon with the given fill rule. Points
// on the boundary are inside under both rules.
func PointInPolygon(q Point, polygon []Point, rule FillRule) (location Location, err error) {
	defer recoverInto(&err)
	poly := newPolygon(polygon)
	return advanced.PointInPolygon(q, poly, rule), nil
}

// PolygonType reports whether the polygon is convex.
func PolygonType(polygon []Point) (kind PolygonKind, err error) {
	defer recoverInto(&err)
	return newPolygon(polygon).Kind(), nil
}

// SelfIntersects reports whether any two non-adjacent edges cross strictly
// inside both edges.
func SelfIntersects(polygon []Point) (crosses bool, err error) {
	defer recoverInto(&err)
	return newPolygon(polygon).SelfIntersects(), nil
}

// Intersect finds the parameter t along ab at which ab's line meets cd's
// line. t is only meaningful for Skew, and may be outside [0, 1].
func Intersect(ab, cd Segment) (kind IntersectKind, t float64, err error) {
	defer recoverInto(&err)
	validateSegment(ab)
	validateSegment(cd)
	kind, t = advanced.Intersect(ab, cd)
	return kind, t, nil
}

// Cross reports whether the segments cross within both their extents
// (SkewCross) and the crossing parameters along each.
func Cross(ab, cd Segment) (kind IntersectKind, tab, tcd float64, err error) {
	defer recoverInto(&err)
	validateSegment(ab)
	validateSegment(cd)
	kind, tab, tcd = advanced.Cross(ab, cd)
	return kind, tab, tcd, nil
}

// ClipLine clips a segment to a convex polygon using Cyrus-Beck. ok is false
// when no part of the segment is inside, and the returned segment is then the
// zero value.
func ClipLine(seg Segment, clip []Point) (clipped Segment, ok bool, err error) {
	defer recoverInto(&err)
	validateSegment(seg)
	clipPoly := newConvexPolygon(clip)
	clipped, ok = advanced.ClipSegment(seg, clipPoly)
	return clipped, ok, nil
}

// ClipPolygon clips the subject polygon to a convex clip polygon using
// Sutherland-Hodgman. A subject disjoint from the clip region gives an empty
// (nil) result and no error.
func ClipPolygon(subject, clip []Point) (result []Point, err error) {
	defer recoverInto(&err)
	subjectPoly := newPolygon(subject)
	clipPoly := newConvexPolygon(clip)
	return advanced.ClipPolygon(subjectPoly, clipPoly).Points, nil
}
