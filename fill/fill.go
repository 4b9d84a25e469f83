// Package fill implements the tessellator that turns paths into the
// five GPU vertex streams a fragment shader consumes to fill their
// interiors: a solid triangle stream for the straight-edged part of
// every path, and four Loop-Blinn weighted streams (integral
// quadratic, integral cubic, rational quadratic, rational cubic) that
// let the shader classify curve coverage analytically.
package fill

import (
	"log/slog"

	"github.com/gogpu/vecpath/curve"
	"github.com/gogpu/vecpath/ga"
	"github.com/gogpu/vecpath/internal/diag"
	"github.com/gogpu/vecpath/path"
	"github.com/gogpu/vecpath/safefloat"
	"github.com/gogpu/vecpath/vertex"
)

// errorMargin bounds the near-zero tests used throughout triangulation
// (degenerate triangle areas, the enclosing-triangle equality test).
const errorMargin = 1e-6

// Builder accumulates the five vertex streams and the solid-triangle
// index stream across however many paths are added to it.
type Builder struct {
	SolidIndices  []uint16
	SolidVertices []vertex.Vertex0

	IntegralQuadraticVertices []vertex.Vertex2f
	IntegralCubicVertices     []vertex.Vertex3f
	RationalQuadraticVertices []vertex.Vertex3f
	RationalCubicVertices     []vertex.Vertex4f
}

func toVertex0(v safefloat.Vec2) vertex.Vertex0 {
	a := v.Array()
	return vertex.Vertex0{a[0], a[1]}
}

func toVertex0Affine(p ga.Point) vertex.Vertex0 {
	a := p.Affine()
	return vertex.Vertex0{a[0], a[1]}
}

// AddPath tessellates a single path into the builder's streams,
// appending every control point it visits (in draw order) into
// protoHull so the caller can later compute the path set's convex
// hull without a second traversal.
func (b *Builder) AddPath(protoHull *[]safefloat.Vec2, p *path.Path) error {
	estimate := 1 + len(p.LineSegments) + len(p.IntegralQuadraticCurveSegments) +
		len(p.IntegralCubicCurveSegments)*5 + len(p.RationalQuadraticCurveSegments) +
		len(p.RationalCubicCurveSegments)*5
	pathSolid := make([]vertex.Vertex0, 0, estimate)
	pathSolid = append(pathSolid, toVertex0(p.Start))
	*protoHull = append(*protoHull, p.Start)

	li, qi, ci, rqi, rci := 0, 0, 0, 0, 0
	for _, st := range p.SegmentTypes {
		switch st {
		case path.Line:
			seg := p.LineSegments[li]
			li++
			*protoHull = append(*protoHull, seg.End)
			pathSolid = append(pathSolid, toVertex0(seg.End))

		case path.IntegralQuadraticCurve:
			seg := p.IntegralQuadraticCurveSegments[qi]
			qi++
			last := pathSolid[len(pathSolid)-1]
			b.IntegralQuadraticVertices = append(b.IntegralQuadraticVertices,
				vertex.Vertex2f{Position: seg.End.Array(), Weight: [2]float32{1, 1}},
				vertex.Vertex2f{Position: seg.Control.Array(), Weight: [2]float32{0.5, 0}},
				vertex.Vertex2f{Position: [2]float32(last), Weight: [2]float32{0, 0}},
			)
			*protoHull = append(*protoHull, seg.Control, seg.End)
			pathSolid = append(pathSolid, toVertex0(seg.End))

		case path.IntegralCubicCurve:
			seg := p.IntegralCubicCurveSegments[ci]
			ci++
			last := pathSolid[len(pathSolid)-1]
			points := [4]ga.Point{
				ga.NewPoint(last[0], last[1]),
				ga.NewPoint(seg.Control1.X.Float32(), seg.Control1.Y.Float32()),
				ga.NewPoint(seg.Control2.X.Float32(), seg.Control2.Y.Float32()),
				ga.NewPoint(seg.End.X.Float32(), seg.End.Y.Float32()),
			}
			tris, err := b.emitCubic(protoHull, &pathSolid, points)
			if err != nil {
				return err
			}
			for _, t := range tris {
				b.IntegralCubicVertices = append(b.IntegralCubicVertices, vertex.Vertex3f{
					Position: t.Position, Weight: [3]float32{t.W[0], t.W[1], t.W[2]},
				})
			}

		case path.RationalQuadraticCurve:
			seg := p.RationalQuadraticCurveSegments[rqi]
			rqi++
			w := 1 / seg.Weight.Float32()
			last := pathSolid[len(pathSolid)-1]
			b.RationalQuadraticVertices = append(b.RationalQuadraticVertices,
				vertex.Vertex3f{Position: seg.End.Array(), Weight: [3]float32{1, 1, 1}},
				vertex.Vertex3f{Position: seg.Control.Array(), Weight: [3]float32{0.5 * w, 0, w}},
				vertex.Vertex3f{Position: [2]float32(last), Weight: [3]float32{0, 0, 1}},
			)
			*protoHull = append(*protoHull, seg.Control, seg.End)
			pathSolid = append(pathSolid, toVertex0(seg.End))

		case path.RationalCubicCurve:
			seg := p.RationalCubicCurveSegments[rci]
			rci++
			last := pathSolid[len(pathSolid)-1]
			w := seg.Weights
			points := [4]ga.Point{
				ga.NewWeightedPoint([2]float32(last), w[0].Float32()),
				ga.NewWeightedPoint(seg.Control1.Array(), w[1].Float32()),
				ga.NewWeightedPoint(seg.Control2.Array(), w[2].Float32()),
				ga.NewWeightedPoint(seg.End.Array(), w[3].Float32()),
			}
			tris, err := b.emitCubic(protoHull, &pathSolid, points)
			if err != nil {
				return err
			}
			for _, t := range tris {
				b.RationalCubicVertices = append(b.RationalCubicVertices, vertex.Vertex4f{
					Position: t.Position, Weight: t.W,
				})
			}
		}
	}

	start := len(b.SolidVertices)
	b.SolidVertices = append(b.SolidVertices, vertex.FanToTriangles(pathSolid)...)
	for i := start; i < len(b.SolidVertices); i++ {
		b.SolidIndices = append(b.SolidIndices, uint16(i))
	}
	return nil
}

// weightedVertex is a triangulated cubic-curve vertex awaiting
// conversion into the width-specific Vertex3f/Vertex4f record its
// stream uses.
type weightedVertex struct {
	Position [2]float32
	W        [4]float32
}

// emitCubic classifies a cubic, splits it if it has an in-range double
// point, and triangulates each resulting quadrilateral. It also
// appends the curve's inner and end control points into protoHull and
// the curve's end into pathSolid, matching the bookkeeping every other
// segment kind performs inline.
func (b *Builder) emitCubic(protoHull *[]safefloat.Vec2, pathSolid *[]vertex.Vertex0, points [4]ga.Point) ([]weightedVertex, error) {
	pb := curve.ToPowerBasis(points[0], points[1], points[2], points[3])
	inf, err := curve.Classify(points[0], points[1], points[2], points[3])
	if err != nil {
		return nil, err
	}
	weights := curve.Weights(inf)
	planes := curve.WeightPlanes(points, weights)
	curve.NormalizeImplicitCurveSide(&planes, &weights, pb)

	var triangles []weightedVertex
	if t, ok := curve.FindDoublePointIssue(inf); ok {
		diag.Logger().Debug("cubic has a double point, splitting", slog.Float64("t", float64(t)))
		pointsA, pointsB := curve.SplitAt(points, t)

		var rows [4]curve.WeightRow
		for i := range weights {
			rows[i] = curve.WeightRow(weights[i])
		}
		rowsA, rowsB := curve.SplitAt(rows, t)
		var weightsA, weightsB [4][4]float32
		for i := range rowsA {
			weightsA[i] = [4]float32(rowsA[i])
		}
		for i := range rowsB {
			weightsB[i] = [4]float32(rowsB[i])
		}

		triangles = append(triangles, triangulateQuadrilateral(pathSolid, pointsA, weightsA)...)
		*pathSolid = append(*pathSolid, toVertex0Affine(pointsB[0]))
		for row := range weightsB {
			weightsB[row][0] *= -1
			weightsB[row][1] *= -1
		}
		triangles = append(triangles, triangulateQuadrilateral(pathSolid, pointsB, weightsB)...)
	} else {
		triangles = triangulateQuadrilateral(pathSolid, points, weights)
	}

	*protoHull = append(*protoHull,
		vecFromPoint(points[1]), vecFromPoint(points[2]), vecFromPoint(points[3]))
	*pathSolid = append(*pathSolid, toVertex0Affine(points[3]))
	return triangles, nil
}

func vecFromPoint(p ga.Point) safefloat.Vec2 {
	a := p.Affine()
	return safefloat.NewVec2(a[0], a[1])
}

// quadrilateralIndexSets[i] lists the indices of the three points
// remaining after deleting point i, in ascending order — both the
// signed-area test and the emitted triangle use this same triple.
var quadrilateralIndexSets = [4][3]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// triangulateQuadrilateral implements the cubic's quadrilateral
// triangulation: weights are first de-homogenized by each control
// point's own projective weight, then the four possible sub-triangles
// (each omitting one control point) are examined. A sub-triangle whose
// absolute area is half the total is "enclosing" and is emitted alone;
// otherwise the quadrilateral is reflex or self-intersecting and
// exactly two opposing triangles are emitted. Fill-completion vertices
// for the inner control points are appended to pathSolid as needed so
// the straight-line closure of the curve is still accounted for.
func triangulateQuadrilateral(pathSolid *[]vertex.Vertex0, points [4]ga.Point, weights [4][4]float32) []weightedVertex {
	w := weights
	for i := range w {
		invW := 1 / points[i].W
		for c := range w[i] {
			w[i][c] *= invW
		}
	}

	var signedAreas [4]float32
	for i, idx := range quadrilateralIndexSets {
		signedAreas[i] = ga.Join(points[idx[0]], points[idx[1]]).Meet(points[idx[2]])
	}
	areaSum := absf(signedAreas[0]) + absf(signedAreas[1]) + absf(signedAreas[2]) + absf(signedAreas[3])

	enclosing := -1
	found := 0
	for i, a := range signedAreas {
		if absf(areaSum/2-absf(a)) <= errorMargin {
			found++
			if found == 1 {
				enclosing = i
			} else {
				enclosing = -1
			}
		}
	}

	emitTriangle := func(i int) []weightedVertex {
		if absf(signedAreas[i]) <= errorMargin {
			return nil
		}
		idx := quadrilateralIndexSets[i]
		tri := []weightedVertex{
			{Position: points[idx[0]].Affine(), W: w[idx[0]]},
			{Position: points[idx[1]].Affine(), W: w[idx[1]]},
			{Position: points[idx[2]].Affine(), W: w[idx[2]]},
		}
		if signedAreas[i] < 0 {
			tri[0], tri[2] = tri[2], tri[0]
		}
		return tri
	}

	var triangles []weightedVertex
	if enclosing >= 0 {
		triangles = emitTriangle(enclosing)
	} else {
		opposite := 0
		for j := 1; j < 4; j++ {
			sideD := signedAreas[0]
			if j == 2 {
				sideD = -sideD
			}
			if signedAreas[j]*sideD < 0 {
				opposite = j
			}
		}
		triangles = append(triangles, emitTriangle(0)...)
		triangles = append(triangles, emitTriangle(opposite)...)
	}

	additional := 0
	for _, i := range [2]int{1, 2} {
		if i != enclosing && curve.ImplicitCurveValue(w[i]) < 0 {
			*pathSolid = append(*pathSolid, toVertex0Affine(points[i]))
			additional++
		}
	}
	if additional == 2 && signedAreas[0]*signedAreas[1] < 0 {
		n := len(*pathSolid)
		(*pathSolid)[n-1], (*pathSolid)[n-2] = (*pathSolid)[n-2], (*pathSolid)[n-1]
	}

	return triangles
}
