package fill

import (
	"math"
	"testing"

	"github.com/gogpu/vecpath/curve"
	"github.com/gogpu/vecpath/ga"
	"github.com/gogpu/vecpath/path"
	"github.com/gogpu/vecpath/safefloat"
	"github.com/gogpu/vecpath/vertex"
)

func vec(x, y float32) safefloat.Vec2 { return safefloat.NewVec2(x, y) }

func TestAddPathClosedUnitSquareProducesThreeSolidTriangles(t *testing.T) {
	p := path.New(vec(0, 0))
	p.PushLine(vec(1, 0))
	p.PushLine(vec(1, 1))
	p.PushLine(vec(0, 1))
	p.Close()

	var b Builder
	var hull []safefloat.Vec2
	if err := b.AddPath(&hull, p); err != nil {
		t.Fatalf("AddPath failed: %v", err)
	}

	// Close repeats the start point as the fan's last point, so the
	// 5-point fan yields 3 triangles, the last one degenerate.
	if len(b.SolidVertices) != 9 {
		t.Fatalf("expected 9 solid vertices (3 triangles) for a closed 4-gon, got %d", len(b.SolidVertices))
	}
	if len(b.SolidIndices) != 9 {
		t.Fatalf("expected 9 solid indices, got %d", len(b.SolidIndices))
	}
	if len(hull) == 0 {
		t.Fatalf("expected proto-hull points to be recorded")
	}
}

func TestAddPathIntegralQuadraticEmitsThreeWeightedVertices(t *testing.T) {
	p := path.New(vec(0, 0))
	p.PushIntegralQuadratic(vec(1, 1), vec(2, 0))

	var b Builder
	var hull []safefloat.Vec2
	if err := b.AddPath(&hull, p); err != nil {
		t.Fatalf("AddPath failed: %v", err)
	}

	if len(b.IntegralQuadraticVertices) != 3 {
		t.Fatalf("expected 3 integral-quadratic vertices, got %d", len(b.IntegralQuadraticVertices))
	}
	for _, v := range b.IntegralQuadraticVertices {
		if v.Weight != [2]float32{1, 1} && v.Weight != [2]float32{0.5, 0} && v.Weight != [2]float32{0, 0} {
			t.Fatalf("unexpected integral-quadratic weight %v", v.Weight)
		}
	}
}

func TestAddPathRationalQuadraticWeightsScaleByInverseMiddleWeight(t *testing.T) {
	p := path.New(vec(0, 0))
	p.PushRationalQuadratic(0.5, vec(1, 1), vec(2, 0))

	var b Builder
	var hull []safefloat.Vec2
	if err := b.AddPath(&hull, p); err != nil {
		t.Fatalf("AddPath failed: %v", err)
	}

	if len(b.RationalQuadraticVertices) != 3 {
		t.Fatalf("expected 3 rational-quadratic vertices, got %d", len(b.RationalQuadraticVertices))
	}
	var sawControl bool
	for _, v := range b.RationalQuadraticVertices {
		if v.Position == [2]float32{1, 1} {
			sawControl = true
			if v.Weight[2] != 2 {
				t.Fatalf("control vertex weight[2] = %v, want 1/0.5 = 2", v.Weight[2])
			}
		}
	}
	if !sawControl {
		t.Fatalf("expected to find the control-point vertex among rational-quadratic vertices")
	}
}

func TestAddPathSerpentineCubicEmitsTriangles(t *testing.T) {
	// A serpentine (non-looping, non-cuspy) S-curve.
	p := path.New(vec(0, 0))
	p.PushIntegralCubic(vec(1, 1), vec(2, -1), vec(3, 0))

	var b Builder
	var hull []safefloat.Vec2
	if err := b.AddPath(&hull, p); err != nil {
		t.Fatalf("AddPath failed: %v", err)
	}

	if len(b.IntegralCubicVertices) == 0 {
		t.Fatalf("expected at least one integral-cubic vertex to be emitted")
	}
	if len(b.IntegralCubicVertices)%3 != 0 {
		t.Fatalf("integral-cubic vertices must form whole triangles, got %d", len(b.IntegralCubicVertices))
	}
}

func TestAddPathLoopingCubicSplitsAtDoublePoint(t *testing.T) {
	// Self-intersecting loop whose double point (t ~ 0.6317) falls
	// strictly inside (0,1), unlike a bowtie quadrilateral (classifies
	// as a tangential cusp, never splits).
	p0 := ga.NewPoint(0, 0)
	p1 := ga.NewPoint(-1, 0)
	p2 := ga.NewPoint(0, 1)
	p3 := ga.NewPoint(2, 0)

	inf, err := curve.Classify(p0, p1, p2, p3)
	if err != nil {
		t.Fatalf("Classify returned an error: %v", err)
	}
	if inf.Class != curve.Loop {
		t.Fatalf("expected Loop, got %v (discriminant %v)", inf.Class, inf.Discriminant)
	}
	if _, ok := curve.FindDoublePointIssue(inf); !ok {
		t.Fatalf("expected a double point inside (0,1)")
	}

	path1 := path.New(vec(0, 0))
	path1.PushIntegralCubic(vec(-1, 0), vec(0, 1), vec(2, 0))

	var b Builder
	var hull []safefloat.Vec2
	if err := b.AddPath(&hull, path1); err != nil {
		t.Fatalf("AddPath failed: %v", err)
	}

	if len(b.IntegralCubicVertices) == 0 {
		t.Fatalf("expected triangles from both halves of the split loop")
	}

	// A single cubic segment's solid fan is just [start, end] unless
	// the double-point split runs, which inserts the split point
	// (pointsB[0]) between them — three fan points instead of two,
	// producing exactly one solid triangle where an unsplit cubic
	// segment would produce none. This is the one observable effect
	// that only the split branch of emitCubic can cause.
	if len(b.SolidVertices) != 3 {
		t.Fatalf("expected 1 solid triangle (3 vertices) from the inserted split point, got %d vertices", len(b.SolidVertices))
	}
}

func TestAddPathRationalCubicUnitWeightsMatchIntegral(t *testing.T) {
	integral := path.New(vec(0, 0))
	integral.PushIntegralCubic(vec(1, 1), vec(2, -1), vec(3, 0))

	rational := path.New(vec(0, 0))
	rational.PushRationalCubic([4]float32{1, 1, 1, 1}, vec(1, 1), vec(2, -1), vec(3, 0))

	var bi, br Builder
	var hi, hr []safefloat.Vec2
	if err := bi.AddPath(&hi, integral); err != nil {
		t.Fatalf("AddPath failed: %v", err)
	}
	if err := br.AddPath(&hr, rational); err != nil {
		t.Fatalf("AddPath failed: %v", err)
	}

	if len(bi.IntegralCubicVertices) == 0 || len(br.RationalCubicVertices) == 0 {
		t.Fatalf("expected both paths to emit curve triangles")
	}
	if len(bi.IntegralCubicVertices) != len(br.RationalCubicVertices) {
		t.Fatalf("unit-weight rational cubic should triangulate the same as the integral cubic: %d vs %d",
			len(bi.IntegralCubicVertices), len(br.RationalCubicVertices))
	}
	for i := range bi.IntegralCubicVertices {
		ip := bi.IntegralCubicVertices[i].Position
		rp := br.RationalCubicVertices[i].Position
		if math.Abs(float64(ip[0]-rp[0])) > 1e-4 || math.Abs(float64(ip[1]-rp[1])) > 1e-4 {
			t.Fatalf("vertex %d position mismatch: integral %v vs rational %v", i, ip, rp)
		}
	}
}

func TestTriangulateQuadrilateralSkipsDegenerateTriangles(t *testing.T) {
	// A degenerate "curve" where all four control points are collinear
	// produces zero-area sub-triangles throughout.
	points := [4]ga.Point{
		ga.NewPoint(0, 0),
		ga.NewPoint(1, 0),
		ga.NewPoint(2, 0),
		ga.NewPoint(3, 0),
	}
	var weights [4][4]float32
	pathSolid := make([]vertex.Vertex0, 0)
	tris := triangulateQuadrilateral(&pathSolid, points, weights)
	if len(tris) != 0 {
		t.Fatalf("expected no triangles from a fully collinear quadrilateral, got %d", len(tris))
	}
}
