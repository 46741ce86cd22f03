// Package line builds triangulated stroke meshes for 2D polylines.
//
// # Overview
//
// A [Line] turns a path of points into GPU-ready geometry for a
// variable-width, optionally dashed stroke with mitered corners. The
// geometry does not depend on the stroke width or dash pattern: those are
// uniforms, applied by a renderer when the mesh is drawn. Changing them
// never rebuilds the mesh.
//
// # Quick Start
//
//	import "github.com/gogpu/line"
//
//	l := line.New([][2]float64{{0, 0}, {100, 0}, {100, 100}},
//	    line.WithThickness(6),
//	    line.WithColor(0x3366ff),
//	    line.WithDashSize(10),
//	)
//
//	l.LineTo(0, 100)
//	if err := l.Refresh(); err != nil {
//	    log.Fatal(err)
//	}
//
//	b, ok := l.Buffers()
//
// # Geometry
//
// Every rebuild runs three stages:
//
//   - Corner refinement inserts two points close to each sharp joint, so
//     the miter there only stretches a short segment.
//   - A [NormalComputer] derives a normal and a miter length per point.
//   - The assembler duplicates every point into a pair of rail vertices and
//     emits two triangles per segment.
//
// Refinement is skipped once the line is used as a sliding window via
// [Line.Advance].
//
// # Rendering
//
// The render sub-package uploads [Buffers] through a HAL device and draws
// them with a WGSL shader. It re-uploads a line's buffers only when
// [Line.GeometryVersion] or [Line.IndexVersion] changed. A CPU rasterizer
// in the same package produces image previews.
//
// # Logging
//
// By default line produces no log output. Use [SetLogger] to route
// rebuild and renderer diagnostics to any [log/slog] handler.
package line
