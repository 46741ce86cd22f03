package mesh

import "math"

const (
	// SharpAngle is the joint angle, in degrees, at or above which Refine
	// splits a joint.
	SharpAngle = 30.0

	// CornerRatio places each inserted corner point this fraction of the way
	// from the neighbouring point toward the joint.
	CornerRatio = 0.95

	// tripleStep is the stride between inspected triples.
	tripleStep = 3
)

// Angle returns the interior angle at b of the triangle (a, b, c) in degrees,
// computed with the law of cosines from the three pairwise distances.
//
// ok is false when any of the distances is zero: the angle is undefined for
// duplicate points and callers must not split such a joint.
func Angle(a, b, c Point) (deg float64, ok bool) {
	ab := a.Distance(b)
	bc := b.Distance(c)
	ac := a.Distance(c)
	if ab == 0 || bc == 0 || ac == 0 {
		return 0, false
	}

	cos := (bc*bc + ab*ab - ac*ac) / (2 * bc * ab)
	// Rounding can push the cosine just outside [-1, 1] for collinear points.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi, true
}

// cornerPoint returns the point CornerRatio of the way from a toward b.
func cornerPoint(a, b Point) Point {
	return a.Lerp(b, CornerRatio)
}

// Refine returns a copy of path with sharp joints split.
//
// Triples (current, mid, next) are inspected every third index of the
// refined sequence. When the angle at mid is at least SharpAngle, one point
// is inserted just before mid on the current-mid segment and one just after
// mid on the mid-next segment. Inserted points shift the later triples.
//
// For closed paths a missing next point wraps to index 2. Paths with fewer
// than three points are returned unchanged. The input slice is never
// modified and the result is never shorter than the input.
//
// The refined sequence is the written prefix out followed by the unread
// input path[r:]. Splits only touch positions at or past the current
// triple, so out is appended to and never copied: Refine runs in linear
// time.
func Refine(path []Point, closed bool) []Point {
	if len(path) < 3 {
		out := make([]Point, len(path))
		copy(out, path)
		return out
	}

	out := make([]Point, 0, len(path)+2*(len(path)/tripleStep+1))
	r := 0

	size := func() int { return len(out) + len(path) - r }
	at := func(k int) Point {
		if k < len(out) {
			return out[k]
		}
		return path[r+k-len(out)]
	}

	for i := 0; i < scanBound(size(), closed); i += tripleStep {
		for len(out) < i+2 {
			out = append(out, path[r])
			r++
		}
		current, mid := out[i], out[i+1]

		var next Point
		if i+2 < size() {
			next = at(i + 2)
		} else {
			next = at(2)
		}

		angle, ok := Angle(current, mid, next)
		if !ok || angle < SharpAngle {
			continue
		}
		out[i+1] = cornerPoint(current, mid)
		out = append(out, mid, cornerPoint(next, mid))
	}

	return append(out, path[r:]...)
}

// scanBound returns the exclusive upper bound of triple start indices.
func scanBound(n int, closed bool) int {
	if closed {
		return n - 1
	}
	return n - 2
}
