// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/line"
)

func decodeFloats(t *testing.T, b []byte) []float32 {
	t.Helper()
	if len(b)%4 != 0 {
		t.Fatalf("buffer length %d is not a multiple of 4", len(b))
	}
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

func TestUniformsBytes(t *testing.T) {
	l := line.New([][2]float64{{0, 0}, {1, 0}},
		line.WithThickness(6),
		line.WithColor(0xff8000),
		line.WithDashSize(4),
		line.WithGapSize(1),
		line.WithOffset(0.5),
		line.WithTransform(line.Translate(10, 20)),
	)

	b := UniformsFor(l, 640, 480).Bytes()
	if len(b) != UniformSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), UniformSize)
	}

	want := []float32{
		1, 0, 10, 0,
		0, 1, 20, 0,
		640, 480, 0, 0,
		1, float32(128.0 / 255), 0, 1,
		6, 0.5, 4, 3,
	}
	if d := cmp.Diff(want, decodeFloats(t, b)); d != "" {
		t.Errorf("uniform block mismatch (-want +got):\n%s", d)
	}
}

func TestUint16BytesPadding(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 4},
		{2, 4},
		{3, 8},
		{6, 12},
	}
	for _, tt := range tests {
		if got := len(uint16Bytes(make([]uint16, tt.n))); got != tt.want {
			t.Errorf("len(uint16Bytes(%d values)) = %d, want %d", tt.n, got, tt.want)
		}
	}

	b := uint16Bytes([]uint16{0x0102, 0xfffe})
	if d := cmp.Diff([]byte{0x02, 0x01, 0xfe, 0xff}, b); d != "" {
		t.Errorf("uint16Bytes mismatch (-want +got):\n%s", d)
	}
}
