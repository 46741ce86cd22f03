// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Vertex buffer slots, one per attribute stream of line.Buffers.
// Each stream lives in its own buffer so a geometry rebuild can be uploaded
// without repacking.
const (
	slotPosition = iota
	slotLengthSoFar
	slotUV
	slotNormal
	slotMiter

	vertexSlotCount
)

// VertexLayouts returns the vertex buffer layouts of the line pipeline:
//
//	slot 0  position     float32x2  location 0
//	slot 1  lengthSoFar  float32    location 1
//	slot 2  uv           float32x2  location 2
//	slot 3  normal       float32x2  location 3
//	slot 4  miter        float32    location 4
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		slotPosition:    attributeLayout(gputypes.VertexFormatFloat32x2, 8, 0),
		slotLengthSoFar: attributeLayout(gputypes.VertexFormatFloat32, 4, 1),
		slotUV:          attributeLayout(gputypes.VertexFormatFloat32x2, 8, 2),
		slotNormal:      attributeLayout(gputypes.VertexFormatFloat32x2, 8, 3),
		slotMiter:       attributeLayout(gputypes.VertexFormatFloat32, 4, 4),
	}
}

func attributeLayout(format gputypes.VertexFormat, stride uint64, location uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: format, Offset: 0, ShaderLocation: location},
		},
	}
}
