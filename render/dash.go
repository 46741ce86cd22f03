// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "math"

// DashVisible reports whether the point at arc length distance along a line
// falls on a dash. The pattern repeats every dash+gap units, shifted by
// offset, and starts with a dash. A non-positive gap draws a solid line.
//
// This mirrors the fragment shader so CPU previews match the GPU output.
func DashVisible(distance, offset, dash, gap float64) bool {
	if gap <= 0 {
		return true
	}
	if dash <= 0 {
		return false
	}
	period := dash + gap
	x := distance + offset
	phase := x - period*math.Floor(x/period)
	return phase < dash
}
