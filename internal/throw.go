package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading contract checks through every predicate would clutter the
// geometry. Instead, validation panics with a GeometryError, and the public API
// recovers to convert it to an error.

type GeometryError error

var (
	ErrTooFewVertices    = errors.New("polygon needs at least 3 vertices")
	ErrDegenerateEdge    = errors.New("polygon has a zero length edge")
	ErrDegenerateSegment = errors.New("segment has zero length")
	ErrNotConvex         = errors.New("clip polygon is not convex")
	ErrDegenerateClip    = errors.New("clip polygon has zero area")
)

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with a GeometryError wrapping one of the sentinel errors, so callers
// can still match it with errors.Is.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if geometryError, ok := r.(GeometryError); ok {
			logger().Debug("recovered geometry error", "err", geometryError)
			return geometryError
		}
		panic(r)
	}
	return nil
}
