package polyclip

import (
	"github.com/osuushi/polyclip/advanced"
	"github.com/pkg/errors"
)

// Validation panics, and the exported functions recover into their error
// result. This keeps each exported function a straight line call into the
// engine.

func recoverInto(err *error) {
	if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

func validateSegment(s Segment) {
	if s.IsDegenerate() {
		panic(errors.Wrapf(ErrDegenerateSegment, "at %v", s.Start))
	}
}

func newPolygon(points []Point) advanced.Polygon {
	poly := advanced.Polygon{Points: points}
	poly.Validate()
	return poly
}

// A clip polygon must enclose an area. Kind ignores collinear vertices, so a
// polygon lying on one line would otherwise pass as convex.
func newConvexPolygon(points []Point) advanced.Polygon {
	poly := newPolygon(points)
	if poly.SignedArea() == 0 {
		panic(errors.Wrapf(ErrDegenerateClip, "%v", poly))
	}
	if poly.Kind() != advanced.Convex {
		panic(errors.Wrapf(ErrNotConvex, "%v", poly))
	}
	return poly
}
