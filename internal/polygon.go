package internal

import "math"

func NewPolygon(points ...Point) Polygon {
	return Polygon{Points: points}
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Edge i runs from vertex i to vertex i+1, wrapping around at the end.
func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return Segment{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

func (poly Polygon) Edges() []Segment {
	edges := make([]Segment, len(poly.Points))
	for i := range poly.Points {
		edges[i] = poly.Edge(i)
	}
	return edges
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area. Positive when the vertices wind counterclockwise in a y-up
// coordinate system (equivalently, clockwise on a y-down screen).
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.Cross(q)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Checks the polygon is usable by the engine, panicking with a GeometryError
// if not.
func (poly Polygon) Validate() {
	if len(poly.Points) < 3 {
		fatalWrapf(ErrTooFewVertices, "got %d", len(poly.Points))
	}
	for i := range poly.Points {
		if edge := poly.Edge(i); edge.IsDegenerate() {
			fatalWrapf(ErrDegenerateEdge, "edge %d at %v", i, edge.Start)
		}
	}
}

// Whether two polygons describe the same cycle of points, allowing for a
// rotation of the starting vertex and Tolerance in the coordinates.
func (poly Polygon) EquivalentTo(other Polygon) bool {
	n := len(poly.Points)
	if n != len(other.Points) {
		return false
	}
	if n == 0 {
		return true
	}
	for offset := 0; offset < n; offset++ {
		if !poly.Points[0].ApproxEqual(other.Points[offset]) {
			continue
		}
		matched := true
		for i := 1; i < n; i++ {
			if !poly.Points[i].ApproxEqual(other.Points[CircularIndex(i+offset, n)]) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// Split a convex polygon into a fan of triangles around its first vertex.
// Triangles and quads are the common case, but any convex polygon works.
func (poly Polygon) Fan() []Triangle {
	if len(poly.Points) < 3 {
		fatalf("cannot fan degenerate polygon with point count: %d", len(poly.Points))
	}
	triangles := make([]Triangle, 0, len(poly.Points)-2)
	for i := 1; i+1 < len(poly.Points); i++ {
		triangles = append(triangles, Triangle{poly.Points[0], poly.Points[i], poly.Points[i+1]})
	}
	return triangles
}

func (list PolygonList) Contains(p Point, rule FillRule) bool {
	for _, poly := range list {
		if poly.Contains(p, rule) {
			return true
		}
	}
	return false
}

func (tri Triangle) SignedArea() float64 {
	return tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A)) / 2
}

func (tri Triangle) IsCCW() bool {
	return tri.SignedArea() > 0
}

func (tri Triangle) IsCW() bool {
	return tri.SignedArea() < 0
}

func (tri Triangle) ToPolygon() Polygon {
	return Polygon{Points: []Point{tri.A, tri.B, tri.C}}
}

// Barycentric weights of p with respect to the triangle. The weights sum to 1
// and are all non-negative when p is inside. A zero-area triangle yields NaNs.
func (tri Triangle) Barycentric(p Point) (a, b, c float64) {
	area := tri.SignedArea()
	a = Triangle{p, tri.B, tri.C}.SignedArea() / area
	b = Triangle{tri.A, p, tri.C}.SignedArea() / area
	c = 1 - a - b
	return a, b, c
}
