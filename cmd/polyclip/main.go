package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of classification and clipping.
//
// inspect and locate read polygons from stdin as newline separated points in
// the form "x y", with each polygon separated by an extra newline, or from the
// <polygon> elements of an SVG file. clip reads a YAML scene (see scene.go)
// and renders the result to a PNG.
func main() {
	app := kingpin.New("polyclip", "Classify and clip 2D polygons.")
	verbose := app.Flag("verbose", "Log engine debug records to stderr and dump parsed input.").Short('v').Bool()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()

	inspectCmd := app.Command("inspect", "Report convexity, self-intersection and orientation of polygons.")
	inspectSVG := inspectCmd.Flag("svg", "Read polygons from an SVG file instead of stdin.").ExistingFile()

	locateCmd := app.Command("locate", "Test a point against polygons.")
	locateX := locateCmd.Arg("x", "X coordinate.").Required().Float64()
	locateY := locateCmd.Arg("y", "Y coordinate.").Required().Float64()
	locateRule := locateCmd.Flag("rule", "Fill rule.").Default("evenodd").Enum("evenodd", "nonzero")
	locateSVG := locateCmd.Flag("svg", "Read polygons from an SVG file instead of stdin.").ExistingFile()

	clipCmd := app.Command("clip", "Clip the subjects and lines of a scene against its clip polygon.")
	clipScene := clipCmd.Arg("scene", "YAML scene file.").Required().ExistingFile()
	clipPNG := clipCmd.Flag("png", "Write a rendering of the scene to this file.").String()
	clipPixels := clipCmd.Flag("pixels", "Render with the pixel rasterizer instead of vector drawing.").Bool()
	clipEcho := clipCmd.Flag("imgcat", "Print the rendering to the terminal (iTerm only).").Bool()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		polyclip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	out := &printer{w: os.Stdout, au: aurora.NewAurora(!*noColor), verbose: *verbose}

	switch command {
	case inspectCmd.FullCommand():
		polygons, err := loadPolygons(*inspectSVG)
		app.FatalIfError(err, "reading polygons")
		out.dump(polygons)
		app.FatalIfError(out.inspect(polygons), "inspect")

	case locateCmd.FullCommand():
		polygons, err := loadPolygons(*locateSVG)
		app.FatalIfError(err, "reading polygons")
		out.dump(polygons)
		rule, err := advanced.ParseFillRule(*locateRule)
		app.FatalIfError(err, "")
		app.FatalIfError(out.locate(polygons, polyclip.Point{X: *locateX, Y: *locateY}, rule), "locate")

	case clipCmd.FullCommand():
		scene, err := LoadScene(*clipScene)
		app.FatalIfError(err, "loading scene")
		out.dump(scene)
		result, err := out.clip(scene)
		app.FatalIfError(err, "clip")
		if *clipPNG != "" {
			app.FatalIfError(render(scene, result, *clipPNG, *clipPixels, *clipEcho), "render")
		}
	}
}

func loadPolygons(svgPath string) (advanced.PolygonList, error) {
	if svgPath == "" {
		return readPolygons(os.Stdin)
	}
	f, err := os.Open(svgPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return advanced.ParseSVGPolygons(f)
}

func readPolygons(in io.Reader) (advanced.PolygonList, error) {
	polygons := advanced.PolygonList{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []advanced.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		// Read the next line
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, advanced.Polygon{Points: points})
				points = []advanced.Point{}
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, advanced.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}
