package internal

// Facilities shared by both clippers. The clip polygon may wind either way;
// its signed area decides which side of each edge is inside.

// Normal of the edge pointing away from the interior of a polygon with the
// given winding.
func outwardNormal(edge Segment, ccw bool) Point {
	n := edge.Direction().Perp()
	if !ccw {
		n = n.Scale(-1)
	}
	return n
}

// Whether p is on the inside half-plane of the edge, boundary included.
func insideEdge(edge Segment, p Point, ccw bool) bool {
	s := edge.Direction().Cross(p.Sub(edge.Start))
	if ccw {
		return s >= 0
	}
	return s <= 0
}

// ClipSegment clips a segment to a convex polygon with the Cyrus-Beck
// algorithm. Each clip edge bounds a half-plane; the segment parameter range
// [t1, t2] is narrowed by every edge the segment enters or exits through. The
// second result is false when nothing of the segment survives, in which case
// the returned segment is the zero value.
//
// The clip polygon must be convex. The result for a concave one is wrong
// rather than an error; validate first if the input is untrusted.
func ClipSegment(seg Segment, clip Polygon) (Segment, bool) {
	ccw := clip.SignedArea() > 0
	outside := Right
	if !ccw {
		outside = Left
	}

	d := seg.Direction()
	t1, t2 := 0.0, 1.0
	for i := range clip.Points {
		edge := clip.Edge(i)
		normal := outwardNormal(edge, ccw)
		denom := normal.Dot(d)
		if denom == 0 {
			// Parallel to this edge, so the whole segment is on one side of it.
			if edge.Classify(seg.Start) == outside {
				logger().Debug("cyrus-beck rejected parallel segment", "segment", seg, "edge", i)
				return Segment{}, false
			}
			continue
		}
		t := normal.Dot(edge.Start.Sub(seg.Start)) / denom
		if denom < 0 {
			// Entering the half-plane
			if t > t1 {
				t1 = t
			}
		} else if t < t2 {
			t2 = t
		}
	}

	if t1 > t2 {
		logger().Debug("cyrus-beck rejected segment", "segment", seg, "t1", t1, "t2", t2)
		return Segment{}, false
	}
	logger().Debug("cyrus-beck accepted segment", "segment", seg, "t1", t1, "t2", t2)
	return Segment{clipParameter(seg, t1), clipParameter(seg, t2)}, true
}

// Evaluate the segment at t, returning the original endpoints untouched for t
// of exactly 0 or 1 so an unclipped segment round trips.
func clipParameter(seg Segment, t float64) Point {
	switch t {
	case 0:
		return seg.Start
	case 1:
		return seg.End
	}
	return seg.At(t)
}
