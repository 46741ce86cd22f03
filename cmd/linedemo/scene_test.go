package main

import (
	"bytes"
	"errors"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/line"
)

func TestParseScene(t *testing.T) {
	s, err := ParseScene([]byte(`
width: 320
height: 200
background: "#102030"
lines:
  - points: [[0, 0], [100, 0], [100, 100]]
    thickness: 6
    color: "#ff0000"
    dash: 10
    gap: 2
    closed: true
    translate: [10, 20]
`))
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}
	if s.Width != 320 || s.Height != 200 {
		t.Errorf("size = %dx%d, want 320x200", s.Width, s.Height)
	}
	if bg, err := s.BackgroundColor(); err != nil || bg != 0x102030 {
		t.Errorf("BackgroundColor() = %v, %v, want #102030", bg, err)
	}

	lines, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	l := lines[0]
	if l.Thickness() != 6 || l.Color() != 0xff0000 || !l.Closed() {
		t.Errorf("line options not applied: thickness %v color %v closed %v", l.Thickness(), l.Color(), l.Closed())
	}
	if l.GapSize() != 7 {
		t.Errorf("GapSize() = %v, want 7 (10/2 + 2)", l.GapSize())
	}
	if got := l.Transform().TransformPoint(line.Pt(0, 0)); got != line.Pt(10, 20) {
		t.Errorf("transform maps origin to %v, want (10, 20)", got)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no lines", "width: 10\nheight: 10\n"},
		{"bad yaml", "lines: [[[\n"},
		{"wrong point arity", "lines:\n  - points: [[1, 2, 3]]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScene([]byte(tt.yaml)); err == nil {
				t.Error("ParseScene() error = nil")
			}
		})
	}

	if _, err := ParseScene([]byte("width: 1\n")); !errors.Is(err, errNoLines) {
		t.Errorf("ParseScene() error = %v, want errNoLines", err)
	}
}

func TestBuildRejectsBadColor(t *testing.T) {
	s := &Scene{Lines: []LineSpec{{Points: [][2]float64{{0, 0}, {1, 1}}, Color: "orange"}}}
	if _, err := s.Build(); err == nil {
		t.Error("Build() error = nil for an invalid color")
	}
}

func TestBuildAdvance(t *testing.T) {
	s := &Scene{Lines: []LineSpec{{
		Points:  [][2]float64{{0, 0}, {0, 0}, {0, 0}},
		Advance: [][2]float64{{1, 0}, {2, 0}, {3, 0}},
	}}}
	lines, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	l := lines[0]
	if !l.Advancing() {
		t.Error("Advancing() = false")
	}
	if got := l.PointAt(0); got != line.Pt(3, 0) {
		t.Errorf("PointAt(0) = %v, want (3, 0)", got)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestDefaultSceneBuilds(t *testing.T) {
	s, err := ParseScene([]byte(defaultScene))
	if err != nil {
		t.Fatalf("ParseScene(defaultScene) error = %v", err)
	}
	lines, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, l := range lines {
		if _, ok := l.Buffers(); !ok {
			t.Errorf("line %d has no geometry", i)
		}
	}
}

func TestRunWritesOutputs(t *testing.T) {
	orig := line.Logger()
	t.Cleanup(func() { line.SetLogger(orig) })

	dir := t.TempDir()
	for _, name := range []string{"lines.png", "lines.pdf"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)
			if err := run([]string{"-output", out, "-width", "200", "-height", "150"}); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			if strings.HasSuffix(name, ".pdf") {
				if !bytes.HasPrefix(data, []byte("%PDF")) {
					t.Error("output is not a PDF")
				}
				return
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode png: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
				t.Errorf("png size = %dx%d, want 200x150", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRunLogFile(t *testing.T) {
	orig := line.Logger()
	t.Cleanup(func() { line.SetLogger(orig) })

	dir := t.TempDir()
	logFile := filepath.Join(dir, "linedemo.log")
	out := filepath.Join(dir, "lines.png")
	if err := run([]string{"-output", out, "-log-file", logFile, "-v"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"scene rendered"`) {
		t.Errorf("log file missing render record:\n%s", data)
	}
	if !strings.Contains(string(data), "geometry rebuilt") {
		t.Errorf("log file missing debug rebuild records:\n%s", data)
	}
}

func TestRunRejectsMissingScene(t *testing.T) {
	orig := line.Logger()
	t.Cleanup(func() { line.SetLogger(orig) })

	if err := run([]string{"-scene", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("run() error = nil for a missing scene file")
	}
}

func TestFanout(t *testing.T) {
	var a, b bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	logger := slog.New(h).With("k", "v")

	logger.Debug("debug only")
	logger.Warn("both")

	if !strings.Contains(a.String(), "debug only") || !strings.Contains(a.String(), "both") {
		t.Errorf("first handler output = %q", a.String())
	}
	if strings.Contains(b.String(), "debug only") || !strings.Contains(b.String(), "k=v") {
		t.Errorf("second handler output = %q", b.String())
	}
}
