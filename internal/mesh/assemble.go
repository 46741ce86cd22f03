package mesh

import (
	"errors"
	"fmt"
	"math"
)

// MaxPoints is the largest path that fits a uint16 index buffer: every point
// becomes two vertices and the highest index must not exceed 65535.
const MaxPoints = (math.MaxUint16 + 1) / 2

var (
	// ErrTooFewPoints is returned for paths with fewer than two points.
	ErrTooFewPoints = errors.New("mesh: path needs at least two points")

	// ErrPairCount is returned when normals are not index-aligned with the path.
	ErrPairCount = errors.New("mesh: normal count does not match path length")

	// ErrIndexOverflow is returned when the vertex count exceeds the uint16 index range.
	ErrIndexOverflow = errors.New("mesh: path too long for 16-bit indices")
)

// Buffers holds the GPU-ready geometry of one stroke.
type Buffers struct {
	// Vertices holds x, y of every duplicated path point.
	Vertices []float32

	// UVs holds u, v per vertex: u runs from 0 to 1 along the path,
	// v is 0 on the first rail and 1 on the second.
	UVs []float32

	// Normals holds the unit normal per vertex; the second rail is negated.
	Normals []float32

	// Miters holds one miter length per vertex; the second rail is negated.
	Miters []float32

	// LengthSoFar holds the arc length from the path start per vertex.
	LengthSoFar []float32

	// Indices holds two triangles per segment.
	Indices []uint16

	// MaxLength is the total arc length of the path.
	MaxLength float64
}

// VertexCount returns the number of vertices (two per path point).
func (b *Buffers) VertexCount() int {
	return len(b.Miters)
}

// Empty reports whether the buffers hold no geometry.
func (b *Buffers) Empty() bool {
	return len(b.Indices) == 0
}

// Assemble builds stroke buffers for path from its per-point normals.
func Assemble(path []Point, pairs []NormalMiter) (Buffers, error) {
	n := len(path)
	if n < 2 {
		return Buffers{}, ErrTooFewPoints
	}
	if len(pairs) != n {
		return Buffers{}, fmt.Errorf("%w: %d normals for %d points", ErrPairCount, len(pairs), n)
	}
	if n > MaxPoints {
		return Buffers{}, fmt.Errorf("%w: %d points (max %d)", ErrIndexOverflow, n, MaxPoints)
	}

	b := Buffers{
		Vertices:    make([]float32, 0, n*4),
		UVs:         make([]float32, 0, n*4),
		Normals:     make([]float32, 0, n*4),
		Miters:      make([]float32, 0, n*2),
		LengthSoFar: make([]float32, 0, n*2),
	}

	var length float64
	last := float64(n - 1)
	for i, p := range path {
		if i > 0 {
			length += p.Distance(path[i-1])
		}
		x, y := float32(p.X), float32(p.Y)
		nx, ny := float32(pairs[i].Normal.X), float32(pairs[i].Normal.Y)
		m := float32(pairs[i].Miter)
		u := float32(float64(i) / last)
		l := float32(length)

		b.Vertices = append(b.Vertices, x, y, x, y)
		b.UVs = append(b.UVs, u, 0, u, 1)
		b.Normals = append(b.Normals, nx, ny, -nx, -ny)
		b.Miters = append(b.Miters, m, -m)
		b.LengthSoFar = append(b.LengthSoFar, l, l)
	}
	b.MaxLength = length
	b.Indices = quadIndices(n - 1)

	return b, nil
}

// quadIndices returns the index buffer for a strip of segments quads.
// Segment j covers vertices 2j..2j+3 as triangles (i, i+1, i+2) and
// (i+2, i+1, i+3).
func quadIndices(segments int) []uint16 {
	indices := make([]uint16, 0, segments*6)
	for j := range segments {
		i := uint16(j * 2) //nolint:gosec // bounded by MaxPoints
		indices = append(indices, i, i+1, i+2, i+2, i+1, i+3)
	}
	return indices
}

// RailPoints returns the offset position of every vertex in b: the vertex
// pushed along its normal by the absolute miter length times halfWidth.
// The second rail negates both the normal and the miter, so the sign of the
// miter is dropped to keep the rails on opposite sides of the path.
func RailPoints(b *Buffers, halfWidth float64) []Point {
	count := b.VertexCount()
	out := make([]Point, count)
	for v := range count {
		m := math.Abs(float64(b.Miters[v])) * halfWidth
		out[v] = Point{
			X: float64(b.Vertices[v*2]) + float64(b.Normals[v*2])*m,
			Y: float64(b.Vertices[v*2+1]) + float64(b.Normals[v*2+1])*m,
		}
	}
	return out
}
