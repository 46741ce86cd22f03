// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/google/uuid"

	"github.com/gogpu/line"
)

// Stats counts the GPU work done by a LineRenderer since it was created.
type Stats struct {
	// GeometryUploads counts vertex buffer uploads (all five streams).
	GeometryUploads int

	// IndexUploads counts index buffer uploads.
	IndexUploads int

	// UniformWrites counts uniform block writes.
	UniformWrites int

	// Draws counts DrawIndexed calls recorded.
	Draws int
}

// LineRenderer draws line.Line meshes with a HAL device.
//
// Per-line GPU buffers are created on first use and kept across frames.
// Prepare re-uploads a line's vertex streams only when its geometry
// version changed and its index buffer only when its index version
// changed. Uniforms are written on every Prepare.
//
// A frame looks like:
//
//	r.BeginFrame(width, height)
//	for _, l := range lines {
//	    if err := r.Prepare(l); err != nil { ... }
//	}
//	// inside the host's render pass:
//	r.RecordDraws(rp)
//
// LineRenderer is not safe for concurrent use.
type LineRenderer struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	// GPU objects for the render pipeline.
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	tracker *Tracker
	lines   map[uuid.UUID]*lineResources

	// frame lists the lines prepared since BeginFrame, in draw order.
	frame         []*lineResources
	width, height uint32

	stats Stats
}

// lineResources holds the GPU buffers of one line.
type lineResources struct {
	id         uuid.UUID
	vertex     [vertexSlotCount]hal.Buffer
	vertexSize [vertexSlotCount]uint64
	index      hal.Buffer
	indexSize  uint64
	indexCount uint32
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
}

// NewLineRenderer creates a renderer for the given device and queue that
// draws into targets of the given format. An undefined format selects
// BGRA8Unorm. The pipeline is not created until the first Prepare.
func NewLineRenderer(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) *LineRenderer {
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	return &LineRenderer{
		device:  device,
		queue:   queue,
		format:  format,
		tracker: NewTracker(),
		lines:   make(map[uuid.UUID]*lineResources),
	}
}

// Format returns the render target format of the pipeline.
func (r *LineRenderer) Format() gputypes.TextureFormat {
	return r.format
}

// Stats returns the upload and draw counters.
func (r *LineRenderer) Stats() Stats {
	return r.stats
}

// BeginFrame starts a new frame for a target of the given size. Lines
// prepared in the previous frame are no longer drawn.
func (r *LineRenderer) BeginFrame(width, height uint32) {
	r.frame = r.frame[:0]
	r.width, r.height = width, height
}

// Prepare refreshes l, uploads whatever changed and queues it for drawing
// in the current frame. A line without geometry is skipped.
func (r *LineRenderer) Prepare(l *line.Line) error {
	if err := r.ensurePipeline(); err != nil {
		return err
	}
	if err := l.Refresh(); err != nil {
		return fmt.Errorf("prepare line %s: %w", l.ID(), err)
	}
	b, ok := l.Buffers()
	if !ok {
		return nil
	}

	res, err := r.resources(l.ID())
	if err != nil {
		return err
	}

	geometry, index := r.tracker.Observe(l.ID(), l.GeometryVersion(), l.IndexVersion())
	if geometry {
		if err := r.uploadGeometry(res, &b); err != nil {
			r.tracker.Forget(l.ID())
			return err
		}
		r.stats.GeometryUploads++
	}
	if index {
		if err := r.uploadIndices(res, b.Indices); err != nil {
			r.tracker.Forget(l.ID())
			return err
		}
		r.stats.IndexUploads++
	}

	r.queue.WriteBuffer(res.uniformBuf, 0, UniformsFor(l, r.width, r.height).Bytes())
	r.stats.UniformWrites++

	r.frame = append(r.frame, res)
	return nil
}

// RecordDraws records one indexed draw per line prepared in the current
// frame into an existing render pass. The render pass is owned by the
// caller.
func (r *LineRenderer) RecordDraws(rp hal.RenderPassEncoder) {
	if r.pipeline == nil || len(r.frame) == 0 {
		return
	}
	rp.SetPipeline(r.pipeline)
	for _, res := range r.frame {
		if res.indexCount == 0 {
			continue
		}
		rp.SetBindGroup(0, res.bindGroup, nil)
		for slot, buf := range res.vertex {
			rp.SetVertexBuffer(uint32(slot), buf, 0) //nolint:gosec // slot < vertexSlotCount
		}
		rp.SetIndexBuffer(res.index, gputypes.IndexFormatUint16, 0)
		rp.DrawIndexed(res.indexCount, 1, 0, 0, 0)
		r.stats.Draws++
	}
}

// Release frees the GPU buffers of l. A later Prepare uploads everything
// again.
func (r *LineRenderer) Release(l *line.Line) {
	r.release(l.ID())
}

func (r *LineRenderer) release(id uuid.UUID) {
	res, ok := r.lines[id]
	if !ok {
		return
	}
	delete(r.lines, id)
	r.tracker.Forget(id)
	for i, f := range r.frame {
		if f == res {
			r.frame = append(r.frame[:i], r.frame[i+1:]...)
			break
		}
	}
	res.destroy(r.device)
}

// Lines returns the number of lines holding GPU buffers.
func (r *LineRenderer) Lines() int {
	return len(r.lines)
}

// Destroy releases all GPU resources held by the renderer. Safe to call
// multiple times.
func (r *LineRenderer) Destroy() {
	for id := range r.lines {
		r.release(id)
	}
	r.frame = nil
	r.destroyPipeline()
	logger().Info("line renderer destroyed")
}

// resources returns the buffers of line id, creating its uniform buffer
// and bind group on first use.
func (r *LineRenderer) resources(id uuid.UUID) (*lineResources, error) {
	if res, ok := r.lines[id]; ok {
		return res, nil
	}

	uniformBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "line_uniforms",
		Size:  UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create line uniform buffer: %w", err)
	}

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "line_bind_group",
		Layout: r.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: UniformSize,
			}},
		},
	})
	if err != nil {
		r.device.DestroyBuffer(uniformBuf)
		return nil, fmt.Errorf("create line bind group: %w", err)
	}

	res := &lineResources{id: id, uniformBuf: uniformBuf, bindGroup: bindGroup}
	r.lines[id] = res
	return res, nil
}

// uploadGeometry writes the five vertex streams of b, growing buffers that
// are too small.
func (r *LineRenderer) uploadGeometry(res *lineResources, b *line.Buffers) error {
	streams := [vertexSlotCount][]float32{
		slotPosition:    b.Vertices,
		slotLengthSoFar: b.LengthSoFar,
		slotUV:          b.UVs,
		slotNormal:      b.Normals,
		slotMiter:       b.Miters,
	}
	for slot, data := range streams {
		bytes := float32Bytes(data)
		buf, size, err := r.ensureBuffer(res.vertex[slot], res.vertexSize[slot], uint64(len(bytes)),
			"line_vertices", gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return err
		}
		res.vertex[slot], res.vertexSize[slot] = buf, size
		r.queue.WriteBuffer(buf, 0, bytes)
	}
	logger().Debug("line geometry uploaded", "id", res.id, "vertices", b.VertexCount())
	return nil
}

func (r *LineRenderer) uploadIndices(res *lineResources, indices []uint16) error {
	bytes := uint16Bytes(indices)
	buf, size, err := r.ensureBuffer(res.index, res.indexSize, uint64(len(bytes)),
		"line_indices", gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	res.index, res.indexSize = buf, size
	res.indexCount = uint32(len(indices)) //nolint:gosec // bounded by 6*MaxPoints
	r.queue.WriteBuffer(buf, 0, bytes)
	return nil
}

// ensureBuffer returns buf if it holds at least need bytes, or a new buffer
// of that size after destroying buf.
func (r *LineRenderer) ensureBuffer(buf hal.Buffer, size, need uint64, label string, usage gputypes.BufferUsage) (hal.Buffer, uint64, error) {
	if buf != nil && size >= need {
		return buf, size, nil
	}
	if buf != nil {
		r.device.DestroyBuffer(buf)
	}
	nb, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  need,
		Usage: usage,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("create %s: %w", label, err)
	}
	return nb, need, nil
}

func (res *lineResources) destroy(device hal.Device) {
	if res.bindGroup != nil {
		device.DestroyBindGroup(res.bindGroup)
	}
	if res.uniformBuf != nil {
		device.DestroyBuffer(res.uniformBuf)
	}
	if res.index != nil {
		device.DestroyBuffer(res.index)
	}
	for _, buf := range res.vertex {
		if buf != nil {
			device.DestroyBuffer(buf)
		}
	}
}

func (r *LineRenderer) ensurePipeline() error {
	if r.pipeline != nil {
		return nil
	}
	return r.createPipeline()
}

// createPipeline compiles the line shader and creates the render pipeline
// with premultiplied alpha blending.
func (r *LineRenderer) createPipeline() error { //nolint:funlen // pipeline descriptor is a single unit
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "line_shader",
		Source: lineShaderModuleSource(),
	})
	if err != nil {
		return fmt.Errorf("create line shader: %w", err)
	}
	r.shader = shader

	uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "line_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create line uniform layout: %w", err)
	}
	r.uniformLayout = uniformLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "line_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.uniformLayout},
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create line pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "line_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    VertexLayouts(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create line pipeline: %w", err)
	}
	r.pipeline = pipeline

	logger().Info("line pipeline created", "format", r.format)
	return nil
}

// destroyPipeline releases all pipeline resources in reverse creation order.
func (r *LineRenderer) destroyPipeline() {
	if r.device == nil {
		return
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}
