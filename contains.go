package line

import "github.com/gogpu/line/internal/mesh"

// Rails returns the expanded stroke outline in local space: each built
// vertex pushed along its normal by |miter| * thickness/2. The result is
// index-aligned with the vertex buffer, so Buffers().Indices triangulate it.
// It returns nil when the line has no valid geometry.
func (l *Line) Rails() []Point {
	if !l.valid {
		return nil
	}
	return fromMesh(mesh.RailPoints(&l.buffers, l.opts.thickness/2))
}

// Bounds returns the world-space bounding box of the expanded stroke.
// A line without valid geometry has an empty Rect.
func (l *Line) Bounds() Rect {
	r := emptyRect()
	for _, p := range l.Rails() {
		r = r.extend(l.opts.transform.TransformPoint(p))
	}
	return r
}

// ContainsPoint reports whether the world-space point p lies on the
// stroke. The point is checked against the bounds first, then mapped into
// local space and tested against each mesh triangle; the first hit wins.
//
// Dash gaps are not taken into account: the test covers the whole band.
func (l *Line) ContainsPoint(p Point) bool {
	if !l.valid {
		return false
	}
	if !l.Bounds().Contains(p) {
		return false
	}
	inv, ok := l.opts.transform.Invert()
	if !ok {
		return false
	}

	local := mesh.Point(inv.TransformPoint(p))
	rails := mesh.RailPoints(&l.buffers, l.opts.thickness/2)
	for t := range len(l.buffers.Indices) / 3 {
		i0, i1, i2 := mesh.Triangle(l.buffers.Indices, t)
		if mesh.PointInTriangle(local, rails[i0], rails[i1], rails[i2]) {
			return true
		}
	}
	return false
}
