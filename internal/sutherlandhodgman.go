package internal

// ClipPolygon clips the subject polygon to a convex clip polygon with the
// Sutherland-Hodgman algorithm: the subject is cut by each clip edge's
// half-plane in turn. The subject may be concave; a concave subject can come
// out with zero width bridges along the clip boundary, which is inherent to
// the algorithm.
//
// The result has no repeated consecutive vertices. If less than a triangle
// survives, the result is an empty polygon.
func ClipPolygon(subject, clip Polygon) Polygon {
	ccw := clip.SignedArea() > 0

	output := append([]Point(nil), subject.Points...)
	for i := range clip.Points {
		if len(output) == 0 {
			logger().Debug("sutherland-hodgman emptied polygon", "edge", i)
			break
		}
		edge := clip.Edge(i)
		input := output
		output = make([]Point, 0, len(input)+2)

		prev := input[len(input)-1]
		prevInside := insideEdge(edge, prev, ccw)
		for _, cur := range input {
			curInside := insideEdge(edge, cur, ccw)
			if curInside {
				if !prevInside {
					output = appendCrossing(output, Segment{prev, cur}, edge)
				}
				output = append(output, cur)
			} else if prevInside {
				output = appendCrossing(output, Segment{prev, cur}, edge)
			}
			prev, prevInside = cur, curInside
		}
		logger().Debug("sutherland-hodgman clipped edge", "edge", i, "in", len(input), "out", len(output))
	}

	output = dedupeCycle(output)
	if len(output) < 3 {
		return Polygon{}
	}
	return Polygon{Points: output}
}

// Append the point where a subject edge crosses the clip edge's line. Only
// crossings inside the subject edge's extent count.
func appendCrossing(points []Point, subjectEdge, clipEdge Segment) []Point {
	kind, t := Intersect(subjectEdge, clipEdge)
	if kind != Skew || t < 0 || t > 1 {
		return points
	}
	return append(points, clipParameter(subjectEdge, t))
}

// Remove exact repeats of consecutive points, including the wrap around from
// the last point to the first.
func dedupeCycle(points []Point) []Point {
	if len(points) == 0 {
		return points
	}
	result := points[:1]
	for _, p := range points[1:] {
		if p != result[len(result)-1] {
			result = append(result, p)
		}
	}
	for len(result) > 1 && result[len(result)-1] == result[0] {
		result = result[:len(result)-1]
	}
	return result
}

// ClipPolygonList clips every subject polygon, dropping those that vanish.
func ClipPolygonList(list PolygonList, clip Polygon) PolygonList {
	var result PolygonList
	for _, subject := range list {
		clipped := ClipPolygon(subject, clip)
		if clipped.Len() > 0 {
			result = append(result, clipped)
		}
	}
	return result
}
