package internal

// Classify reports where q lies relative to the directed line origin->dest.
// Off the line, the sign of the cross product decides Left or Right. On the
// line, points before the origin or past the destination are both Behind, and
// the endpoints themselves are recognized by exact equality.
//
// origin and dest must differ; a zero length segment gives a meaningless
// answer.
func Classify(origin, dest, q Point) PointClass {
	a := dest.Sub(origin)
	b := q.Sub(origin)
	s := a.Cross(b)
	if s > 0 {
		return Left
	}
	if s < 0 {
		return Right
	}
	if a.X*b.X < 0 || a.Y*b.Y < 0 {
		return Behind
	}
	if a.Dot(a) < b.Dot(b) {
		return Behind
	}
	if q == origin {
		return Origin
	}
	if q == dest {
		return Destination
	}
	return Between
}

func (s Segment) Classify(q Point) PointClass {
	return Classify(s.Start, s.End, q)
}

// Whether q lies on the closed segment.
func (s Segment) Contains(q Point) bool {
	switch s.Classify(q) {
	case Between, Origin, Destination:
		return true
	}
	return false
}
