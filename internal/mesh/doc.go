// Package mesh builds triangulated stroke meshes from polylines.
//
// A stroke is rendered as a quad strip: every path point is emitted twice,
// once per rail, and the rails are pushed apart on the GPU along the point's
// normal scaled by its miter length and half the stroke thickness.
//
// # Pipeline
//
// Geometry is produced in three steps:
//
//  1. [Refine] splits sharp joints by inserting two extra points next to
//     the joint, which bounds the miter overshoot.
//  2. A [NormalComputer] (normally [MiterNormals]) derives one unit normal and
//     one miter length per path point.
//  3. [Assemble] duplicates points, normals and miters into GPU-ready
//     float32 buffers and builds the uint16 index buffer.
//
// # Buffer layout
//
// For a path of n points the assembled [Buffers] hold 2n vertices:
//
//	Vertices, UVs, Normals  4n float32 (two per vertex)
//	Miters, LengthSoFar     2n float32 (one per vertex)
//	Indices                 6(n-1) uint16 (two triangles per segment)
//
// The second vertex of each pair carries the negated normal and the negated
// miter of the first.
package mesh
