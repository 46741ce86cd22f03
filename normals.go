package line

import "github.com/gogpu/line/internal/mesh"

// NormalMiter is the offset direction and miter length of one path point.
type NormalMiter struct {
	// Normal is the unit vector along which the two rails are pushed apart.
	Normal Point

	// Miter stretches the offset at joints so that the offset edges of
	// adjacent segments meet. It is 1 on straight runs.
	Miter float64
}

// NormalComputer derives one NormalMiter per path point.
//
// Compute must return a slice index-aligned with path. A Line calls it with
// the corner-refined path on every rebuild.
type NormalComputer interface {
	Compute(path []Point, closed bool) []NormalMiter
}

// MiterNormals is the built-in NormalComputer: the normal at an interior
// point bisects the adjacent segment directions and the miter length keeps
// the offset edges joined. Ends of an open path use the perpendicular of
// their only segment.
type MiterNormals struct {
	// Limit caps the miter length at very sharp joints.
	// Zero means mesh.DefaultMiterLimit (10).
	Limit float64
}

// Compute implements NormalComputer.
func (m MiterNormals) Compute(path []Point, closed bool) []NormalMiter {
	pairs := mesh.MiterNormals{Limit: m.Limit}.Compute(toMesh(path), closed)
	out := make([]NormalMiter, len(pairs))
	for i, nm := range pairs {
		out[i] = NormalMiter{Normal: Point(nm.Normal), Miter: nm.Miter}
	}
	return out
}

// computeNormals runs nc over a mesh path. The built-in computer works on
// mesh points directly.
func computeNormals(nc NormalComputer, path []mesh.Point, closed bool) []mesh.NormalMiter {
	if mn, ok := nc.(MiterNormals); ok {
		return mesh.MiterNormals{Limit: mn.Limit}.Compute(path, closed)
	}

	pairs := nc.Compute(fromMesh(path), closed)
	out := make([]mesh.NormalMiter, len(pairs))
	for i, nm := range pairs {
		out[i] = mesh.NormalMiter{Normal: mesh.Point(nm.Normal), Miter: nm.Miter}
	}
	return out
}
