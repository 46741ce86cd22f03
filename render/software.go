// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/line"
)

// maxDashesPerSegment caps the dash split of a single segment. Beyond it the
// dashes are far below pixel size and the segment is drawn solid.
const maxDashesPerSegment = 1 << 16

// ErrNilTarget is returned when rendering into a nil target.
var ErrNilTarget = errors.New("render: nil target")

// Triangle is a filled triangle in world coordinates.
type Triangle [3]line.Point

// SoftwareRenderer is a CPU preview of the line shader.
//
// It expands the mesh rails the way the vertex stage does, splits every
// segment quad at dash boundaries by arc length and rasterizes the visible
// pieces with golang.org/x/image/vector. Output matches the GPU pipeline
// up to anti-aliasing.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	if err := renderer.Render(target, l); err != nil { ... }
//	img := target.Image()
type SoftwareRenderer struct {
	// rasterizer is reused across lines of the same target size.
	rasterizer *vector.Rasterizer
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Render draws lines into target in order, compositing each over the
// current contents. Lines are refreshed first; lines without geometry are
// skipped.
func (r *SoftwareRenderer) Render(target *PixmapTarget, lines ...*line.Line) error {
	if target == nil {
		return ErrNilTarget
	}
	for _, l := range lines {
		if err := r.Draw(target.Image(), l); err != nil {
			return err
		}
	}
	return nil
}

// Draw composites l over dst.
func (r *SoftwareRenderer) Draw(dst draw.Image, l *line.Line) error {
	if err := l.Refresh(); err != nil {
		return err
	}
	tris := Tessellate(l)
	if len(tris) == 0 {
		return nil
	}

	bounds := dst.Bounds()
	r.ensureRasterizer(bounds.Dx(), bounds.Dy())
	z := r.rasterizer

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	for _, t := range tris {
		a, b, c := t[0], t[1], t[2]
		// Signed areas accumulate in the rasterizer, so every triangle
		// must wind the same way.
		if cross(a, b, c) < 0 {
			b, c = c, b
		}
		z.MoveTo(float32(a.X-ox), float32(a.Y-oy))
		z.LineTo(float32(b.X-ox), float32(b.Y-oy))
		z.LineTo(float32(c.X-ox), float32(c.Y-oy))
		z.ClosePath()
	}
	z.Draw(dst, bounds, image.NewUniform(l.Color()), image.Point{})
	return nil
}

func (r *SoftwareRenderer) ensureRasterizer(width, height int) {
	if r.rasterizer == nil {
		r.rasterizer = vector.NewRasterizer(width, height)
		return
	}
	r.rasterizer.Reset(width, height)
}

// Tessellate returns the visible part of l as world-space triangles: the
// mesh rails expanded by thickness, cut at dash boundaries. It returns nil
// when the line has no geometry.
func Tessellate(l *line.Line) []Triangle {
	b, ok := l.Buffers()
	if !ok {
		return nil
	}
	rails := l.Rails()
	m := l.Transform()
	for i, p := range rails {
		rails[i] = m.TransformPoint(p)
	}

	dash, gap, offset := l.DashSize(), l.GapSize(), l.Offset()
	segments := b.VertexCount()/2 - 1
	tris := make([]Triangle, 0, segments*2)

	for j := range segments {
		i := 2 * j
		// Rail quad: a0/b0 at the segment start, a1/b1 at its end.
		a0, b0, a1, b1 := rails[i], rails[i+1], rails[i+2], rails[i+3]
		l0, l1 := float64(b.LengthSoFar[i]), float64(b.LengthSoFar[i+2])

		if l1 <= l0 {
			continue
		}
		if gap <= 0 || (l1-l0)/(dash+gap) > maxDashesPerSegment {
			tris = appendQuad(tris, a0, b0, a1, b1)
			continue
		}
		for _, span := range dashSpans(l0, l1, offset, dash, gap) {
			t0 := (span[0] - l0) / (l1 - l0)
			t1 := (span[1] - l0) / (l1 - l0)
			tris = appendQuad(tris,
				a0.Lerp(a1, t0), b0.Lerp(b1, t0),
				a0.Lerp(a1, t1), b0.Lerp(b1, t1),
			)
		}
	}
	return tris
}

// dashSpans returns the arc length intervals of [from, to] that fall on
// dashes.
func dashSpans(from, to, offset, dash, gap float64) [][2]float64 {
	if dash <= 0 {
		return nil
	}
	period := dash + gap
	start := math.Floor((from+offset)/period)*period - offset

	var spans [][2]float64
	for s := start; s < to; s += period {
		lo := math.Max(s, from)
		hi := math.Min(s+dash, to)
		if hi > lo {
			spans = append(spans, [2]float64{lo, hi})
		}
	}
	return spans
}

// appendQuad appends the two triangles of a rail quad in mesh index order:
// (a0, b0, a1) and (a1, b0, b1).
func appendQuad(tris []Triangle, a0, b0, a1, b1 line.Point) []Triangle {
	return append(tris, Triangle{a0, b0, a1}, Triangle{a1, b0, b1})
}

func cross(a, b, c line.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
