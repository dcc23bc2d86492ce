package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

var pointClassNames = [...]string{"Left", "Right", "Beyond", "Behind", "Between", "Origin", "Destination"}

func (c PointClass) String() string {
	if c < 0 || int(c) >= len(pointClassNames) {
		return fmt.Sprintf("PointClass(%d)", int(c))
	}
	return pointClassNames[c]
}

var edgeClassNames = [...]string{"Touching", "CrossLeft", "CrossRight", "Inessential"}

func (c EdgeClass) String() string {
	if c < 0 || int(c) >= len(edgeClassNames) {
		return fmt.Sprintf("EdgeClass(%d)", int(c))
	}
	return edgeClassNames[c]
}

func (l Location) String() string {
	switch l {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Colored renders the location in green or red for terminal output.
func (l Location) Colored(au aurora.Aurora) string {
	if l == Inside {
		return au.Green(l.String()).String()
	}
	return au.Red(l.String()).String()
}

func (k PolygonKind) String() string {
	switch k {
	case Convex:
		return "Convex"
	case Concave:
		return "Concave"
	}
	return fmt.Sprintf("PolygonKind(%d)", int(k))
}

func (k PolygonKind) Colored(au aurora.Aurora) string {
	if k == Convex {
		return au.Green(k.String()).String()
	}
	return au.Yellow(k.String()).String()
}

var intersectKindNames = [...]string{"Same", "Parallel", "Skew", "SkewCross", "SkewNoCross"}

func (k IntersectKind) String() string {
	if k < 0 || int(k) >= len(intersectKindNames) {
		return fmt.Sprintf("IntersectKind(%d)", int(k))
	}
	return intersectKindNames[k]
}

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "evenodd"
	case NonZeroWinding:
		return "nonzero"
	}
	return fmt.Sprintf("FillRule(%d)", int(r))
}

// ParseFillRule accepts the names produced by FillRule.String, plus a few
// common spellings.
func ParseFillRule(s string) (FillRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "evenodd", "even-odd", "eo":
		return EvenOdd, nil
	case "nonzero", "non-zero", "winding", "nzw":
		return NonZeroWinding, nil
	}
	return EvenOdd, errors.Errorf("unknown fill rule %q", s)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (tri Triangle) String() string {
	return fmt.Sprintf("Triangle{%v %v %v}", tri.A, tri.B, tri.C)
}
