package mesh

// DefaultMiterLimit caps the miter length of MiterNormals when Limit is unset.
const DefaultMiterLimit = 10.0

// NormalMiter is the offset direction and stretch factor of one path point.
type NormalMiter struct {
	// Normal is the unit vector along which the rails are pushed apart.
	Normal Point

	// Miter scales the offset so that the offset edges of the two adjacent
	// segments meet at the joint. It is 1 on straight runs and path ends.
	Miter float64
}

// NormalComputer derives one NormalMiter per path point.
//
// Implementations must return a slice index-aligned with path.
type NormalComputer interface {
	Compute(path []Point, closed bool) []NormalMiter
}

// MiterNormals computes miter-joined normals: the normal at an interior point
// bisects the two adjacent segment directions (rotated 90 degrees), and the
// miter length is the reciprocal of the projection of that normal onto the
// incoming segment's normal. Ends of an open path take the perpendicular of
// their single segment.
type MiterNormals struct {
	// Limit caps the miter length at very sharp joints.
	// Zero means DefaultMiterLimit.
	Limit float64
}

// Compute implements NormalComputer.
func (m MiterNormals) Compute(path []Point, closed bool) []NormalMiter {
	n := len(path)
	out := make([]NormalMiter, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = NormalMiter{Normal: Point{X: 0, Y: 1}, Miter: 1}
		return out
	}

	limit := m.Limit
	if limit <= 0 {
		limit = DefaultMiterLimit
	}

	dirs := segmentDirections(path, closed)

	for i := range n {
		switch {
		case !closed && i == 0:
			out[i] = NormalMiter{Normal: dirs[0].Perp(), Miter: 1}
		case !closed && i == n-1:
			out[i] = NormalMiter{Normal: dirs[n-2].Perp(), Miter: 1}
		default:
			in := dirs[(i-1+len(dirs))%len(dirs)]
			out[i] = join(in, dirs[i%len(dirs)], limit)
		}
	}

	return out
}

// join computes the normal and miter length where a segment with unit
// direction in meets a segment with unit direction out.
func join(in, out Point, limit float64) NormalMiter {
	tangent := in.Add(out).Normalize()
	if tangent.IsZero() {
		// The path doubles back on itself.
		return NormalMiter{Normal: in.Perp(), Miter: limit}
	}

	normal := tangent.Perp()
	proj := normal.Dot(in.Perp())
	if proj <= 1/limit {
		return NormalMiter{Normal: normal, Miter: limit}
	}
	return NormalMiter{Normal: normal, Miter: 1 / proj}
}

// segmentDirections returns the unit direction of every segment: n-1 entries
// for an open path, n for a closed one (the last closes back to the start).
// Zero-length segments inherit the nearest preceding direction, or the first
// following one at the start of the path.
func segmentDirections(path []Point, closed bool) []Point {
	n := len(path)
	count := n - 1
	if closed {
		count = n
	}

	dirs := make([]Point, count)
	for i := range count {
		dirs[i] = path[(i+1)%n].Sub(path[i]).Normalize()
	}

	var last Point
	for i := range dirs {
		if dirs[i].IsZero() {
			dirs[i] = last
		} else {
			last = dirs[i]
		}
	}
	// Leading zero-length segments take the first real direction.
	first := -1
	for i := range dirs {
		if !dirs[i].IsZero() {
			first = i
			break
		}
	}
	if first < 0 {
		for i := range dirs {
			dirs[i] = Point{X: 1, Y: 0}
		}
		return dirs
	}
	for i := 0; i < first; i++ {
		dirs[i] = dirs[first]
	}

	return dirs
}
