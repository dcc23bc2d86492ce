package internal

// Intersect finds where the line through ab meets the line through cd, as a
// parameter t along ab (ab.At(t) is the meeting point). t is not bounds
// checked; see Cross for the segment version.
//
// When the lines are parallel, t is 0 and the kind tells whether they are the
// same line or distinct ones.
func Intersect(ab, cd Segment) (IntersectKind, float64) {
	n := cd.Direction().Perp()
	denom := n.Dot(ab.Direction())
	if denom == 0 {
		switch cd.Classify(ab.Start) {
		case Left, Right:
			return Parallel, 0
		default:
			return Same, 0
		}
	}
	num := n.Dot(ab.Start.Sub(cd.Start))
	return Skew, -num / denom
}

// Cross checks whether two segments cross within both of their extents. tab
// and tcd are the line meeting parameters along ab and cd respectively, and
// are filled in for SkewNoCross too. Same and Parallel are passed through from
// Intersect with both parameters 0.
func Cross(ab, cd Segment) (kind IntersectKind, tab, tcd float64) {
	kind, tab = Intersect(ab, cd)
	if kind == Same || kind == Parallel {
		return kind, 0, 0
	}
	_, tcd = Intersect(cd, ab)
	if tab < 0 || tab > 1 || tcd < 0 || tcd > 1 {
		return SkewNoCross, tab, tcd
	}
	return SkewCross, tab, tcd
}
