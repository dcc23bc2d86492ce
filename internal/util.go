package internal

import "math"

// Tolerance is only used for comparing results after the fact (for example
// checking that a clipped polygon matches an expected one). The predicates in
// this package compare coordinates exactly.
const Tolerance = 1e-6

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is the 2D determinant |p q|. Positive when q is counterclockwise of p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - q.X*p.Y
}

// Perp rotates the vector a quarter turn clockwise.
func (p Point) Perp() Point {
	return Point{p.Y, -p.X}
}

// Approximate comparison, see Tolerance.
func (p Point) ApproxEqual(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (s Segment) Direction() Point {
	return s.End.Sub(s.Start)
}

// Point at parameter t along the segment. t=0 is Start and t=1 is End.
func (s Segment) At(t float64) Point {
	return s.Start.Add(s.Direction().Scale(t))
}

func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

func (s Segment) Reverse() Segment {
	return Segment{s.End, s.Start}
}
