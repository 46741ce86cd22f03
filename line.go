package line

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/line/internal/mesh"
)

// Buffers is the geometry of a stroke, ready for upload to the GPU.
//
// For a refined path of n points it holds 2n vertices (two rails):
//
//	Vertices, UVs, Normals  4n float32
//	Miters, LengthSoFar     2n float32
//	Indices                 6(n-1) uint16
//
// The second vertex of every pair carries the negated normal and miter of
// the first. Buffers are replaced wholesale on every rebuild; callers must
// not modify them.
type Buffers = mesh.Buffers

// MaxPoints is the largest refined path a Line can build: its 2*MaxPoints
// vertices still fit 16-bit indices.
const MaxPoints = mesh.MaxPoints

// ErrIndexOverflow is returned by Refresh when the refined path has more
// than MaxPoints points.
var ErrIndexOverflow = mesh.ErrIndexOverflow

// Line is a polyline stroked as a variable-width, optionally dashed band
// with mitered corners.
//
// Path mutations (MoveTo, LineTo, Advance) only mark the line dirty; the
// mesh is rebuilt lazily by Refresh, at most once per mutation batch.
// Every rebuild replaces all buffers and bumps both GeometryVersion and
// IndexVersion so renderers can re-upload what changed.
//
// Line is not safe for concurrent use. It is meant to be owned by the
// render loop that draws it.
type Line struct {
	id   uuid.UUID
	opts options

	// path is the caller's polyline. refined is the path the current
	// buffers were built from (path plus inserted corner points).
	path    []Point
	refined []Point

	buffers mesh.Buffers
	valid   bool

	shouldRefresh bool
	advancing     bool

	geometryVersion uint64
	indexVersion    uint64
}

// New creates a line through path, where each entry holds x at index 0 and
// y at index 1. Geometry is built immediately when the path has at least
// two points.
func New(path [][2]float64, opts ...Option) *Line {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.gapSize += o.dashSize / 2

	l := &Line{
		id:            uuid.New(),
		opts:          o,
		path:          PointsFromPairs(path),
		shouldRefresh: true,
	}
	if err := l.Refresh(); err != nil {
		Logger().Warn("line: initial build failed", "id", l.id, "err", err)
	}
	return l
}

// ID returns the identity of the line. Renderers key per-line GPU
// resources by it.
func (l *Line) ID() uuid.UUID {
	return l.id
}

// MoveTo appends a point to the path.
//
// A Line holds a single polyline, so MoveTo behaves like LineTo; both exist
// so the line can be driven by path-building code.
func (l *Line) MoveTo(x, y float64) {
	l.path = append(l.path, Point{X: x, Y: y})
	l.shouldRefresh = true
}

// LineTo appends a point to the path.
func (l *Line) LineTo(x, y float64) {
	l.path = append(l.path, Point{X: x, Y: y})
	l.shouldRefresh = true
}

// Advance drops the last point of the path and prepends (x, y), keeping the
// path length constant. This turns the line into a sliding window, as used
// for trails.
//
// The first call switches the line to streaming mode for good. The path is
// replaced by its corner-refined form, so the window slides over the same
// points the mesh was built from and the buffer sizes stay fixed. Later
// rebuilds skip corner refinement.
func (l *Line) Advance(x, y float64) {
	if !l.advancing {
		l.path = fromMesh(mesh.Refine(toMesh(l.path), l.opts.closed))
		l.advancing = true
	}
	l.shouldRefresh = true

	p := Point{X: x, Y: y}
	if len(l.path) == 0 {
		l.path = append(l.path, p)
		return
	}
	copy(l.path[1:], l.path[:len(l.path)-1])
	l.path[0] = p
}

// Refresh rebuilds the geometry if the path changed since the last build
// and has at least two points. Otherwise it does nothing.
//
// On error the line has no geometry: Buffers reports invalid until a later
// rebuild succeeds.
func (l *Line) Refresh() error {
	if !l.shouldRefresh || len(l.path) < 2 {
		return nil
	}
	return l.rebuild()
}

// ForceRefresh rebuilds the geometry even if the path did not change.
// Paths with fewer than two points are still skipped.
func (l *Line) ForceRefresh() error {
	if len(l.path) < 2 {
		return nil
	}
	return l.rebuild()
}

func (l *Line) rebuild() error {
	l.shouldRefresh = false

	src := toMesh(l.path)
	if !l.advancing {
		src = mesh.Refine(src, l.opts.closed)
	}
	pairs := computeNormals(l.opts.normals, src, l.opts.closed)

	buffers, err := mesh.Assemble(src, pairs)
	if err != nil {
		l.buffers = mesh.Buffers{}
		l.refined = nil
		l.valid = false
		Logger().Warn("line: rebuild failed", "id", l.id, "points", len(src), "err", err)
		return fmt.Errorf("line: rebuild: %w", err)
	}

	l.buffers = buffers
	l.refined = fromMesh(src)
	l.valid = true
	l.geometryVersion++
	l.indexVersion++

	Logger().Debug("line: geometry rebuilt",
		"id", l.id,
		"points", len(l.path),
		"refined", len(src),
		"advancing", l.advancing,
		"version", l.geometryVersion,
	)
	return nil
}

// Buffers returns the current geometry and whether it is valid. Before the
// first successful build, and after a failed one, ok is false and the
// buffers are empty.
func (l *Line) Buffers() (b Buffers, ok bool) {
	return l.buffers, l.valid
}

// GeometryVersion increments on every rebuild of the vertex buffers.
func (l *Line) GeometryVersion() uint64 {
	return l.geometryVersion
}

// IndexVersion increments on every rebuild of the index buffer.
func (l *Line) IndexVersion() uint64 {
	return l.indexVersion
}

// NeedsRefresh reports whether the path changed since the last build.
func (l *Line) NeedsRefresh() bool {
	return l.shouldRefresh
}

// Path returns a copy of the path as given by the caller. Once the line is
// advancing this is the sliding window over the refined path.
func (l *Line) Path() []Point {
	return append([]Point(nil), l.path...)
}

// RefinedPath returns a copy of the path the current geometry was built
// from, including points inserted at sharp corners.
func (l *Line) RefinedPath() []Point {
	return append([]Point(nil), l.refined...)
}

// Len returns the number of points in the path.
func (l *Line) Len() int {
	return len(l.path)
}

// PointAt returns the path point at index i, clamped to the path bounds.
// It returns the zero Point for an empty path.
func (l *Line) PointAt(i int) Point {
	if len(l.path) == 0 {
		return Point{}
	}
	return l.path[clamp(i, 0, len(l.path)-1)]
}

// Relative returns the point offset positions away from index i, clamped to
// the path bounds.
func (l *Line) Relative(i, offset int) Point {
	return l.PointAt(i + offset)
}

// Count returns the number of indices to draw.
func (l *Line) Count() int {
	return len(l.buffers.Indices)
}

// MaxLength returns the total arc length of the built geometry.
func (l *Line) MaxLength() float64 {
	return l.buffers.MaxLength
}

// Closed reports whether the path is treated as a loop.
func (l *Line) Closed() bool {
	return l.opts.closed
}

// Advancing reports whether the line is in streaming mode.
func (l *Line) Advancing() bool {
	return l.advancing
}

// Thickness returns the stroke width.
func (l *Line) Thickness() float64 {
	return l.opts.thickness
}

// SetThickness sets the stroke width. It is a uniform and does not trigger
// a rebuild. Non-positive values are ignored.
func (l *Line) SetThickness(thickness float64) {
	if thickness > 0 {
		l.opts.thickness = thickness
	}
}

// Color returns the stroke color.
func (l *Line) Color() Color {
	return l.opts.color
}

// SetColor sets the stroke color. It does not trigger a rebuild.
func (l *Line) SetColor(c Color) {
	l.opts.color = c
}

// DashSize returns the length of an opaque dash.
func (l *Line) DashSize() float64 {
	return l.opts.dashSize
}

// GapSize returns the length of a transparent gap.
func (l *Line) GapSize() float64 {
	return l.opts.gapSize
}

// Offset returns the dash pattern phase offset.
func (l *Line) Offset() float64 {
	return l.opts.offset
}

// Transform returns the local-to-world transform.
func (l *Line) Transform() Matrix {
	return l.opts.transform
}

// SetTransform sets the local-to-world transform. It does not trigger a
// rebuild.
func (l *Line) SetTransform(m Matrix) {
	l.opts.transform = m
}
