package main

import (
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/osuushi/polyclip/advanced"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// A scene file describes one clip polygon and the things to clip against it:
//
//	width: 640
//	height: 480
//	scale: 1
//	rule: evenodd
//	clip: [[100, 400], [250, 100], [400, 400]]
//	subjects:
//	  - [[200, 200], [300, 200], [300, 350], [200, 350]]
//	lines:
//	  - [[0, 0], [640, 480]]
//	colors:
//	  clip: gray
//	  subject: steelblue
//	  result: crimson
//
// Colors are CSS/SVG color names.
type sceneFile struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Scale    float64       `yaml:"scale"`
	Rule     string        `yaml:"rule"`
	Clip     [][]float64   `yaml:"clip"`
	Subjects [][][]float64 `yaml:"subjects"`
	Lines    [][][]float64 `yaml:"lines"`
	Colors   struct {
		Clip    string `yaml:"clip"`
		Subject string `yaml:"subject"`
		Result  string `yaml:"result"`
	} `yaml:"colors"`
}

type Scene struct {
	Width, Height int
	Scale         float64
	Rule          advanced.FillRule
	Clip          advanced.Polygon
	Subjects      advanced.PolygonList
	Lines         []advanced.Segment

	ClipColor, SubjectColor, ResultColor color.Color
}

const (
	defaultWidth        = 640
	defaultHeight       = 480
	defaultClipColor    = "gray"
	defaultSubjectColor = "steelblue"
	defaultResultColor  = "crimson"
)

func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scene, err := DecodeScene(f)
	return scene, errors.Wrap(err, path)
}

func DecodeScene(r io.Reader) (*Scene, error) {
	var file sceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return file.resolve()
}

func (file sceneFile) resolve() (*Scene, error) {
	scene := &Scene{
		Width:  file.Width,
		Height: file.Height,
		Scale:  file.Scale,
	}
	if scene.Width <= 0 {
		scene.Width = defaultWidth
	}
	if scene.Height <= 0 {
		scene.Height = defaultHeight
	}
	if scene.Scale <= 0 {
		scene.Scale = 1
	}

	var err error
	if scene.Rule, err = advanced.ParseFillRule(file.Rule); err != nil {
		return nil, err
	}

	if len(file.Clip) == 0 {
		return nil, errors.New("scene has no clip polygon")
	}
	if scene.Clip, err = toPolygon(file.Clip); err != nil {
		return nil, errors.Wrap(err, "clip")
	}
	for i, subject := range file.Subjects {
		poly, err := toPolygon(subject)
		if err != nil {
			return nil, errors.Wrapf(err, "subject %d", i)
		}
		scene.Subjects = append(scene.Subjects, poly)
	}
	for i, line := range file.Lines {
		points, err := toPoints(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i)
		}
		if len(points) != 2 {
			return nil, errors.Errorf("line %d: expected 2 points, got %d", i, len(points))
		}
		scene.Lines = append(scene.Lines, advanced.Segment{Start: points[0], End: points[1]})
	}

	if scene.ClipColor, err = parseColor(file.Colors.Clip, defaultClipColor); err != nil {
		return nil, err
	}
	if scene.SubjectColor, err = parseColor(file.Colors.Subject, defaultSubjectColor); err != nil {
		return nil, err
	}
	if scene.ResultColor, err = parseColor(file.Colors.Result, defaultResultColor); err != nil {
		return nil, err
	}
	return scene, nil
}

func toPoints(raw [][]float64) ([]advanced.Point, error) {
	points := make([]advanced.Point, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, errors.Errorf("point %d: expected [x, y], got %v", i, pair)
		}
		points = append(points, advanced.Point{X: pair[0], Y: pair[1]})
	}
	return points, nil
}

func toPolygon(raw [][]float64) (advanced.Polygon, error) {
	points, err := toPoints(raw)
	return advanced.Polygon{Points: points}, err
}

func parseColor(name, fallback string) (color.Color, error) {
	if name == "" {
		name = fallback
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown color %q", name)
	}
	return c, nil
}
