package line

import (
	"math"

	"github.com/gogpu/line/internal/mesh"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// PointsFromPairs converts coordinate pairs (index 0 is x, index 1 is y)
// into points.
func PointsFromPairs(pairs [][2]float64) []Point {
	out := make([]Point, len(pairs))
	for i, p := range pairs {
		out[i] = Point{X: p[0], Y: p[1]}
	}
	return out
}

func toMesh(path []Point) []mesh.Point {
	out := make([]mesh.Point, len(path))
	for i, p := range path {
		out[i] = mesh.Point(p)
	}
	return out
}

func fromMesh(path []mesh.Point) []Point {
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = Point(p)
	}
	return out
}
