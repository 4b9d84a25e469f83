// Package vecpath provides a resolution-independent 2D vector-graphics
// rasterizer core: a structure-of-arrays path data model, a cubic-curve
// classifier, and a fill tessellator that emits Loop-Blinn GPU-analytic
// curve weights instead of flattening curves into line segments.
//
// # Overview
//
// vecpath never tessellates a curve into line segments. Instead it emits,
// for every curve segment, a small set of triangles carrying per-vertex
// implicit weights that let a fragment shader test curve coverage
// analytically at native resolution.
//
// # Quick Start
//
//	import "github.com/gogpu/vecpath"
//	import "github.com/gogpu/vecpath/path"
//
//	p := path.FromCircle([2]float32{0, 0}, 1)
//	shape, err := vecpath.BuildShape([]*path.Path{p})
//	if err != nil {
//		// handle err
//	}
//	// shape.VertexBuffer / shape.IndexBuffer are ready for GPU upload.
//
// # Architecture
//
//   - path: the path builder and its five-segment-kind data model.
//   - curve: power-basis conversion, inflection-point classification,
//     and Loop-Blinn weight derivation for a single cubic.
//   - fill: the tessellator, turning a Path into five GPU vertex streams.
//   - shape: assembles one or more paths' streams plus a convex hull and
//     cover quad into the flat byte buffers an external renderer consumes.
//
// # Coordinate System
//
// vecpath is coordinate-system agnostic: it performs no viewport or
// projection handling. Whatever coordinate space the caller's control
// points are in is the space the emitted vertex buffer is in.
package vecpath
