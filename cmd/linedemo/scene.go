package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/line"
)

// Scene is a set of lines loaded from YAML.
//
//	width: 800
//	height: 600
//	background: "#101018"
//	lines:
//	  - points: [[40, 40], [300, 40], [300, 200]]
//	    thickness: 8
//	    color: "#ff6030"
//	    dash: 12
//	    gap: 4
type Scene struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background string     `yaml:"background"`
	Lines      []LineSpec `yaml:"lines"`
}

// LineSpec describes one line of a scene. Zero values fall back to the
// line package defaults.
type LineSpec struct {
	Points     [][2]float64 `yaml:"points"`
	Thickness  float64      `yaml:"thickness"`
	Color      string       `yaml:"color"`
	Dash       float64      `yaml:"dash"`
	Gap        float64      `yaml:"gap"`
	Offset     float64      `yaml:"offset"`
	Closed     bool         `yaml:"closed"`
	MiterLimit float64      `yaml:"miterLimit"`

	// Advance feeds points through Line.Advance after construction, turning
	// the line into a trail.
	Advance [][2]float64 `yaml:"advance"`

	Translate [2]float64 `yaml:"translate"`
	Rotate    float64    `yaml:"rotate"` // degrees
	Scale     float64    `yaml:"scale"`
}

var errNoLines = errors.New("scene has no lines")

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if len(s.Lines) == 0 {
		return nil, errNoLines
	}
	return &s, nil
}

// BackgroundColor returns the parsed background, black if unset.
func (s *Scene) BackgroundColor() (line.Color, error) {
	if s.Background == "" {
		return 0, nil
	}
	return line.ParseColor(s.Background)
}

// Build creates the lines of the scene.
func (s *Scene) Build() ([]*line.Line, error) {
	lines := make([]*line.Line, 0, len(s.Lines))
	for i, spec := range s.Lines {
		l, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if _, ok := l.Buffers(); !ok {
			line.Logger().Warn("line has no geometry", "index", i, "points", l.Len())
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func (spec LineSpec) build() (*line.Line, error) {
	opts := []line.Option{
		line.WithThickness(spec.Thickness),
		line.WithDashSize(spec.Dash),
		line.WithGapSize(spec.Gap),
		line.WithOffset(spec.Offset),
		line.WithClosed(spec.Closed),
		line.WithTransform(spec.transform()),
	}
	if spec.Color != "" {
		c, err := line.ParseColor(spec.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, line.WithColor(c))
	}
	if spec.MiterLimit > 0 {
		opts = append(opts, line.WithMiterLimit(spec.MiterLimit))
	}

	l := line.New(spec.Points, opts...)
	for _, p := range spec.Advance {
		l.Advance(p[0], p[1])
	}
	if err := l.Refresh(); err != nil {
		return nil, err
	}
	return l, nil
}

// transform composes scale, then rotation, then translation.
func (spec LineSpec) transform() line.Matrix {
	m := line.Translate(spec.Translate[0], spec.Translate[1])
	if spec.Rotate != 0 {
		m = m.Multiply(line.Rotate(spec.Rotate * math.Pi / 180))
	}
	if spec.Scale != 0 {
		m = m.Multiply(line.Scale(spec.Scale, spec.Scale))
	}
	return m
}

// defaultScene is drawn when no scene file is given.
const defaultScene = `
width: 800
height: 600
background: "#101018"
lines:
  - points: [[60, 80], [360, 80], [360, 260], [120, 200]]
    thickness: 10
    color: "#ff6030"
    dash: 1000
  - points: [[460, 80], [740, 80], [740, 260], [460, 260]]
    thickness: 6
    color: "#30c0ff"
    dash: 16
    gap: 4
    closed: true
  - points: [[0, 0], [80, 60], [160, 0], [240, 60], [320, 0]]
    thickness: 4
    color: "#a0ff60"
    dash: 8
    offset: 3
    translate: [60, 380]
  - points: [[0, 0], [0, 0], [0, 0], [0, 0], [0, 0], [0, 0]]
    thickness: 5
    color: "#ffffff"
    dash: 1000
    translate: [600, 450]
    advance: [[0, -100], [60, -80], [100, -30], [100, 30], [60, 80], [0, 100]]
`
