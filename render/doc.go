// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws line meshes on the GPU and on the CPU.
//
// # Key Principle
//
// render RECEIVES a GPU device from the host application, it does NOT
// create its own. LineRenderer takes a hal.Device and hal.Queue directly,
// or a gpucontext.DeviceProvider through NewLineRendererFromProvider, and
// records its draws into a render pass owned by the host.
//
// # GPU Path
//
// LineRenderer keeps one set of buffers per line:
//
//   - five vertex streams (position, lengthSoFar, uv, normal, miter), see
//     VertexLayouts
//   - a uint16 index buffer
//   - an 80-byte uniform block, see Uniforms
//
// A Tracker compares each line's geometry and index versions with the last
// upload, so unchanged lines cost one uniform write per frame.
//
// The WGSL shader (shaders/line.wgsl) pushes the two rails apart in the
// vertex stage and applies the dash pattern in the fragment stage. It is
// compiled to SPIR-V with naga.
//
// # CPU Path
//
// SoftwareRenderer reproduces the shader on the CPU: Tessellate expands the
// rails and cuts the mesh at dash boundaries, and the result is rasterized
// into a PixmapTarget with golang.org/x/image/vector.
package render
