package mesh

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		want    float64
		wantOK  bool
	}{
		{"right angle", Point{0, 0}, Point{10, 0}, Point{10, 10}, 90, true},
		{"straight", Point{0, 0}, Point{10, 0}, Point{20, 0}, 180, true},
		{"equilateral", Point{0, 0}, Point{1, 0}, Point{0.5, math.Sqrt(3) / 2}, 60, true},
		{"duplicate mid", Point{0, 0}, Point{0, 0}, Point{10, 0}, 0, false},
		{"duplicate ends", Point{0, 0}, Point{10, 0}, Point{0, 0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Angle(tt.a, tt.b, tt.c)
			if ok != tt.wantOK {
				t.Fatalf("Angle() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRefine_RightAngle(t *testing.T) {
	got := Refine(pts(0, 0, 10, 0, 10, 10), false)
	want := pts(0, 0, 9.5, 0, 10, 0, 10, 0.5, 10, 10)
	diff(t, want, got, approx)
}

func TestRefine_NoSharpJoint(t *testing.T) {
	tests := []struct {
		name string
		path []Point
	}{
		{"two points", pts(0, 0, 10, 0)},
		{"hairpin", pts(0, 0, 10, 0, 0, 1)},
		{"zigzag", pts(0, 0, 10, 0, 0, 1, 10, 2, 0, 3)},
		{"single", pts(3, 4)},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Refine(tt.path, false)
			if len(got) != len(tt.path) {
				t.Errorf("len(Refine()) = %d, want %d", len(got), len(tt.path))
			}
		})
	}
}

func TestRefine_DegenerateJointSkipped(t *testing.T) {
	path := pts(0, 0, 0, 0, 10, 0)
	got := Refine(path, false)
	diff(t, path, got)
}

func TestRefine_DoesNotMutateInput(t *testing.T) {
	path := pts(0, 0, 10, 0, 10, 10)
	orig := append([]Point(nil), path...)

	_ = Refine(path, false)
	diff(t, orig, path)
}

func TestRefine_ClosedWrapsToThirdPoint(t *testing.T) {
	square := pts(0, 0, 10, 0, 10, 10, 0, 10)
	got := Refine(square, true)

	// The third triple starts past the end of the path and borrows index 2
	// as its next point.
	want := pts(
		0, 0,
		9.5, 0, 10, 0, 10, 0.5,
		10, 9.525, 10, 10, 9.5, 10,
		0.475, 10, 0, 10, 0.5, 9.5,
	)
	diff(t, want, got, approx)
}

func TestRefine_NeverShrinks(t *testing.T) {
	paths := [][]Point{
		pts(0, 0, 5, 5, 10, 0, 15, 5, 20, 0, 25, 5),
		pts(0, 0, 1, 0, 2, 0, 3, 0),
		pts(0, 0, 0, 0, 0, 0),
	}
	for _, closed := range []bool{false, true} {
		for _, p := range paths {
			if got := Refine(p, closed); len(got) < len(p) {
				t.Errorf("Refine(%v, %v) shrank path from %d to %d", p, closed, len(p), len(got))
			}
		}
	}
}

// refineByInsertion splits joints by copying the whole sequence on every
// insertion. Refine must produce the same points.
func refineByInsertion(path []Point, closed bool) []Point {
	out := append([]Point(nil), path...)
	if len(out) < 3 {
		return out
	}
	for i := 0; i < scanBound(len(out), closed); i += tripleStep {
		current, mid := out[i], out[i+1]
		next := out[2]
		if i+2 < len(out) {
			next = out[i+2]
		}
		angle, ok := Angle(current, mid, next)
		if !ok || angle < SharpAngle {
			continue
		}
		grown := make([]Point, 0, len(out)+2)
		grown = append(grown, out[:i+1]...)
		grown = append(grown, cornerPoint(current, mid), mid, cornerPoint(next, mid))
		out = append(grown, out[i+2:]...)
	}
	return out
}

func TestRefine_MatchesInsertion(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{3, 4, 5, 6, 7, 10, 31, 100} {
		for _, closed := range []bool{false, true} {
			path := make([]Point, n)
			for i := range path {
				// Coarse grid so duplicates and collinear runs show up.
				path[i] = Point{X: float64(rng.IntN(5)), Y: float64(rng.IntN(5))}
			}
			diff(t, refineByInsertion(path, closed), Refine(path, closed))
		}
	}
}

func TestRefine_LongStraightPathAllocations(t *testing.T) {
	path := make([]Point, 30000)
	for i := range path {
		path[i] = Point{X: float64(i)}
	}

	// Straight runs measure 180 degrees, so every triple is split. The
	// output slice may grow a few times but is never rebuilt per split.
	allocs := testing.AllocsPerRun(3, func() {
		_ = Refine(path, false)
	})
	if allocs > 8 {
		t.Errorf("Refine() allocations = %v, want <= 8", allocs)
	}

	got := Refine(path, false)
	diff(t, path[len(path)-1], got[len(got)-1])
}

func BenchmarkRefine(b *testing.B) {
	path := make([]Point, 1000)
	for i := range path {
		path[i] = Point{X: float64(i), Y: float64(i % 2 * 10)}
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = Refine(path, false)
	}
}
