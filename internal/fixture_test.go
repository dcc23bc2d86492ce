package internal

import (
	"embed"
	"log"
	"math"
)

// SVG fixtures live in fixtures/, loaded by name sans extension. Coordinates
// are used exactly as written, so polygons keep their winding. If anything
// goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixtureList(name string) PolygonList {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	list, err := ParseSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return list
}

// The first polygon of a fixture
func LoadFixture(name string) Polygon {
	return LoadFixtureList(name)[0]
}

// Some ad hoc fixtures

// Regular polygon, counterclockwise (y up), first vertex on the +X axis.
func RegularPolygon(n int, cx, cy, radius float64) Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)}
	}
	return Polygon{points}
}

// Ten vertex star outline alternating between the two radii. Simple, concave.
func SimpleStar(outerRadius, innerRadius float64) Polygon {
	var points []Point
	for i := 0; i < 10; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// Five pointed star drawn in one stroke, so the center pentagon is wound
// twice. Even-odd leaves the center empty, non-zero fills it.
func Pentagram(radius float64) Polygon {
	var points []Point
	for i := 0; i < 5; i++ {
		angle := math.Pi/2 + 2*math.Pi*float64(i*2%5)/5
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func Square(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{[]Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}}
}
