// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/line"
)

// UniformSize is the byte size of the line uniform block.
//
// Layout (std140-compatible, all float32):
//
//	offset  0  row0      vec4  (a, b, c, 0)
//	offset 16  row1      vec4  (d, e, f, 0)
//	offset 32  viewport  vec4  (width, height, 0, 0)
//	offset 48  color     vec4  premultiplied RGBA
//	offset 64  params    vec4  (thickness, offset, dashSize, gapSize)
const UniformSize = 80

// Uniforms holds the per-line values the shader reads. They change without
// rebuilding the mesh and are rewritten every frame.
type Uniforms struct {
	Transform line.Matrix
	Viewport  [2]float32
	Color     [4]float32
	Thickness float32
	Offset    float32
	DashSize  float32
	GapSize   float32
}

// UniformsFor collects the uniforms of l for a target of the given size.
func UniformsFor(l *line.Line, width, height uint32) Uniforms {
	c := l.Color().Premultiplied(1)
	return Uniforms{
		Transform: l.Transform(),
		Viewport:  [2]float32{float32(width), float32(height)},
		Color:     [4]float32{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])},
		Thickness: float32(l.Thickness()),
		Offset:    float32(l.Offset()),
		DashSize:  float32(l.DashSize()),
		GapSize:   float32(l.GapSize()),
	}
}

// Bytes packs the uniforms into a UniformSize little-endian buffer.
func (u Uniforms) Bytes() []byte {
	m := u.Transform
	values := [UniformSize / 4]float32{
		float32(m.A), float32(m.B), float32(m.C), 0,
		float32(m.D), float32(m.E), float32(m.F), 0,
		u.Viewport[0], u.Viewport[1], 0, 0,
		u.Color[0], u.Color[1], u.Color[2], u.Color[3],
		u.Thickness, u.Offset, u.DashSize, u.GapSize,
	}
	return float32Bytes(values[:])
}

// float32Bytes encodes v as little-endian IEEE 754 words.
func float32Bytes(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// uint16Bytes encodes v as little-endian 16-bit words, zero-padded to a
// multiple of 4 bytes as required by buffer writes.
func uint16Bytes(v []uint16) []byte {
	size := (len(v)*2 + 3) &^ 3
	buf := make([]byte, size)
	for i, x := range v {
		binary.LittleEndian.PutUint16(buf[i*2:], x)
	}
	return buf
}
