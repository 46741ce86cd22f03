package mesh

// PointInTriangle reports whether p lies inside or on the edge of the
// triangle (a, b, c). Either winding is accepted. Degenerate triangles
// contain no points.
func PointInTriangle(p, a, b, c Point) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))

	if b.Sub(a).Cross(c.Sub(a)) == 0 {
		return false
	}

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Triangle returns the three vertex indices of triangle t in indices.
func Triangle(indices []uint16, t int) (i0, i1, i2 int) {
	return int(indices[t*3]), int(indices[t*3+1]), int(indices[t*3+2])
}
