package internal

// EdgeType classifies a polygon edge against a horizontal ray cast from q
// toward +X. Upward edges with q on their left and downward edges with q on
// their right cross the ray; the half-open y test keeps a vertex shared by two
// edges from being counted twice. Any edge q lies on is Touching.
func EdgeType(edge Segment, q Point) EdgeClass {
	switch edge.Classify(q) {
	case Left:
		if q.Y > edge.Start.Y && q.Y <= edge.End.Y {
			return CrossLeft
		}
		return Inessential
	case Right:
		if q.Y > edge.End.Y && q.Y <= edge.Start.Y {
			return CrossRight
		}
		return Inessential
	case Between, Origin, Destination:
		return Touching
	default:
		return Inessential
	}
}

// Even-odd point in polygon. Points on the boundary are inside.
func PointInPolygonEvenOdd(q Point, poly Polygon) Location {
	inside := false
	for i := range poly.Points {
		switch EdgeType(poly.Edge(i), q) {
		case Touching:
			return Inside
		case CrossLeft, CrossRight:
			inside = !inside
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// Non-zero winding point in polygon. Points on the boundary are inside.
func PointInPolygonNonZero(q Point, poly Polygon) Location {
	winding := 0
	for i := range poly.Points {
		switch EdgeType(poly.Edge(i), q) {
		case Touching:
			return Inside
		case CrossLeft:
			winding++
		case CrossRight:
			winding--
		}
	}
	if winding != 0 {
		return Inside
	}
	return Outside
}

// A point in polygon strategy. Renderers take one of these so that callers
// can plug in their own test.
type ContainmentTest func(q Point, poly Polygon) Location

func (r FillRule) Test() ContainmentTest {
	if r == NonZeroWinding {
		return PointInPolygonNonZero
	}
	return PointInPolygonEvenOdd
}

func PointInPolygon(q Point, poly Polygon, rule FillRule) Location {
	return rule.Test()(q, poly)
}

func (poly Polygon) Contains(q Point, rule FillRule) bool {
	return PointInPolygon(q, poly, rule) == Inside
}

// Kind reports whether the polygon is convex. For every edge, every other
// vertex must fall on the same side of the edge's line. Vertices collinear
// with an edge do not count either way. O(n²).
func (poly Polygon) Kind() PolygonKind {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		edge := poly.Edge(i)
		var baseline PointClass
		haveBaseline := false
		for j := 0; j < n; j++ {
			if j == i || j == CircularIndex(i+1, n) {
				continue
			}
			class := edge.Classify(poly.Points[j])
			if class != Left && class != Right {
				continue
			}
			if !haveBaseline {
				baseline = class
				haveBaseline = true
			} else if class != baseline {
				return Concave
			}
		}
	}
	return Convex
}

// SelfIntersects checks every pair of non-adjacent edges for a crossing
// strictly inside both edges. Edges that only touch at an endpoint, and
// collinear overlapping edges, are not reported. O(n²).
func (poly Polygon) SelfIntersects() bool {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			kind, tab, tcd := Cross(poly.Edge(i), poly.Edge(j))
			if kind != SkewCross {
				continue
			}
			if tab == 0 || tab == 1 || tcd == 0 || tcd == 1 {
				continue
			}
			return true
		}
	}
	return false
}
