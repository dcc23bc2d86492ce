package internal

// All geometry is plain values. Nothing in the engine mutates a point or a
// polygon it was given; clipping always builds new point slices.

type Point struct {
	X float64
	Y float64
}

// A directed segment. Direction matters: Classify distinguishes the origin
// from the destination, and Cyrus-Beck parameters run from Start to End.
type Segment struct {
	Start Point
	End   Point
}

// A closed polygon. The edge from the last point back to the first is
// implicit.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

type Triangle struct {
	A, B, C Point
}

// Position of a point relative to a directed segment's supporting line and
// extent.
type PointClass int

const (
	Left PointClass = iota
	Right
	// Beyond is part of the enumeration for completeness but Classify never
	// returns it: points past the destination are reported as Behind.
	Beyond
	Behind
	Between
	Origin
	Destination
)

// How a polygon edge relates to a horizontal ray cast from a query point
// toward +X.
type EdgeClass int

const (
	Touching EdgeClass = iota
	CrossLeft
	CrossRight
	Inessential
)

type Location int

const (
	Inside Location = iota
	Outside
)

type PolygonKind int

const (
	Convex PolygonKind = iota
	Concave
)

type IntersectKind int

const (
	// The two lines are the same line.
	Same IntersectKind = iota
	// Distinct parallel lines.
	Parallel
	// The lines meet at a single point. Reported by Intersect only.
	Skew
	// The segments cross within both of their extents.
	SkewCross
	// The lines meet, but outside at least one segment's extent.
	SkewNoCross
)

// Fill rule used for point in polygon tests. The zero value is EvenOdd.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZeroWinding
)
