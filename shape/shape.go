// Package shape assembles one or more paths into the flat byte buffers
// a GPU renderer consumes: five tessellated vertex streams, a convex
// hull and full-screen cover quad for the anti-aliasing resolve pass,
// and the bounding box of every control point submitted.
package shape

import (
	"log/slog"
	"slices"

	"github.com/gogpu/vecpath/fill"
	"github.com/gogpu/vecpath/ga"
	"github.com/gogpu/vecpath/internal/diag"
	"github.com/gogpu/vecpath/path"
	"github.com/gogpu/vecpath/safefloat"
	"github.com/gogpu/vecpath/vertex"
)

// options holds the tunables a caller can override via Option.
type options struct {
	epsilon float32
}

func defaultOptions() options {
	return options{epsilon: 1e-6}
}

// Option configures Build.
type Option func(*options)

// WithEpsilon overrides the tie-break tolerance used by the convex-hull
// sweep (default 1e-6). The fill tessellator's triangulation tests use
// their own fixed tolerance and are not affected.
func WithEpsilon(eps float32) Option {
	return func(o *options) {
		o.epsilon = eps
	}
}

// Shape is the assembled output: one byte buffer per vertex record
// width isn't kept separate — instead a single vertex_buffer holds all
// five tessellated streams plus the hull and cover quad back to back,
// with VertexOffsets recording each range's end offset in bytes.
type Shape struct {
	VertexBuffer  []byte
	VertexOffsets [7]int

	IndexBuffer  []byte
	IndexOffsets [1]int

	// ConvexBox is [min_x, min_y, max_x, max_y] over every input
	// control point.
	ConvexBox [4]float32
}

// Build tessellates every path and assembles the combined Shape.
// Returns ErrEmptyPath if paths is empty. A path with no segments still
// contributes its start point to the hull, so it does not cause the
// error.
func Build(paths []*path.Path, opts ...Option) (*Shape, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var builder fill.Builder
	var protoHull []safefloat.Vec2
	for _, p := range paths {
		if err := builder.AddPath(&protoHull, p); err != nil {
			return nil, err
		}
	}
	if len(protoHull) == 0 {
		return nil, ErrEmptyPath
	}

	hull := convexHull(protoHull, o.epsilon)
	hullTriangles := vertex.FanToTriangles(toVertex0Slice(hull))

	box := boundingBox(protoHull)
	cover := coverQuad()

	s := &Shape{ConvexBox: box}
	s.VertexBuffer = vertex.AppendBytes(s.VertexBuffer, builder.SolidVertices)
	s.VertexOffsets[0] = len(s.VertexBuffer)
	s.VertexBuffer = vertex.AppendBytes(s.VertexBuffer, builder.IntegralQuadraticVertices)
	s.VertexOffsets[1] = len(s.VertexBuffer)
	s.VertexBuffer = vertex.AppendBytes(s.VertexBuffer, builder.IntegralCubicVertices)
	s.VertexOffsets[2] = len(s.VertexBuffer)
	s.VertexBuffer = vertex.AppendBytes(s.VertexBuffer, builder.RationalQuadraticVertices)
	s.VertexOffsets[3] = len(s.VertexBuffer)
	s.VertexBuffer = vertex.AppendBytes(s.VertexBuffer, builder.RationalCubicVertices)
	s.VertexOffsets[4] = len(s.VertexBuffer)
	s.VertexBuffer = vertex.AppendBytes(s.VertexBuffer, hullTriangles)
	s.VertexOffsets[5] = len(s.VertexBuffer)
	s.VertexBuffer = vertex.AppendBytes(s.VertexBuffer, cover)
	s.VertexOffsets[6] = len(s.VertexBuffer)

	s.IndexBuffer = appendIndices(s.IndexBuffer, builder.SolidIndices)
	s.IndexOffsets[0] = len(s.IndexBuffer)

	diag.Logger().Debug("shape built",
		slog.Int("hull_points", len(hull)),
		slog.Int("hull_triangles", len(hullTriangles)/3),
		slog.Int("solid_triangles", len(builder.SolidVertices)/3),
	)

	return s, nil
}

func toVertex0Slice(pts []safefloat.Vec2) []vertex.Vertex0 {
	out := make([]vertex.Vertex0, len(pts))
	for i, p := range pts {
		out[i] = vertex.Vertex0(p.Array())
	}
	return out
}

func appendIndices(buf []byte, indices []uint16) []byte {
	for _, idx := range indices {
		buf = append(buf, byte(idx), byte(idx>>8))
	}
	return buf
}

// boundingBox computes [min_x, min_y, max_x, max_y] over every
// collected control point.
func boundingBox(points []safefloat.Vec2) [4]float32 {
	box := [4]float32{points[0].X.Float32(), points[0].Y.Float32(), points[0].X.Float32(), points[0].Y.Float32()}
	for _, p := range points[1:] {
		x, y := p.X.Float32(), p.Y.Float32()
		if x < box[0] {
			box[0] = x
		}
		if y < box[1] {
			box[1] = y
		}
		if x > box[2] {
			box[2] = x
		}
		if y > box[3] {
			box[3] = y
		}
	}
	return box
}

// coverQuad emits two triangles covering the full render target, the
// fixed six-vertex quad every Shape carries for the cover pass
// regardless of whether a given renderer chooses to clip it to
// convex_box.
func coverQuad() []vertex.Vertex0 {
	min := vertex.Vertex0{-1, -1}
	max := vertex.Vertex0{1, 1}
	topLeft := vertex.Vertex0{-1, 1}
	bottomRight := vertex.Vertex0{1, -1}
	return []vertex.Vertex0{
		min, bottomRight, max,
		min, max, topLeft,
	}
}

// convexHull computes the convex hull of points via Andrew's
// monotone-chain algorithm: sort lexicographically, sweep the lower
// hull, then the upper hull, dropping the middle point of any
// near-collinear or clockwise turn (signed area ≤ epsilon).
func convexHull(points []safefloat.Vec2, epsilon float32) []safefloat.Vec2 {
	pts := append([]safefloat.Vec2(nil), points...)
	sortVec2(pts)
	pts = dedupeSorted(pts)
	if len(pts) < 3 {
		return pts
	}

	turn := func(a, b, c safefloat.Vec2) float32 {
		pa := ga.NewPoint(a.X.Float32(), a.Y.Float32())
		pb := ga.NewPoint(b.X.Float32(), b.Y.Float32())
		pc := ga.NewPoint(c.X.Float32(), c.Y.Float32())
		return ga.SignedArea2(pa, pb, pc)
	}

	build := func(seq []safefloat.Vec2) []safefloat.Vec2 {
		var hull []safefloat.Vec2
		for _, p := range seq {
			for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= epsilon {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}

	lower := build(pts)

	reversed := make([]safefloat.Vec2, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	upper := build(reversed)

	// Drop each chain's trailing point; it's the other chain's first.
	if len(lower) > 0 {
		lower = lower[:len(lower)-1]
	}
	if len(upper) > 0 {
		upper = upper[:len(upper)-1]
	}
	return append(lower, upper...)
}

func sortVec2(pts []safefloat.Vec2) {
	slices.SortFunc(pts, func(a, b safefloat.Vec2) int { return a.Compare(b) })
}

func dedupeSorted(pts []safefloat.Vec2) []safefloat.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Compare(out[len(out)-1]) != 0 {
			out = append(out, p)
		}
	}
	return out
}
