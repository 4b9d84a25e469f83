package curve

import (
	"testing"

	"github.com/gogpu/vecpath/ga"
)

func approx(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestToPowerBasisStartsAtP0(t *testing.T) {
	p0 := ga.NewPoint(1, 2)
	p1 := ga.NewPoint(3, 4)
	p2 := ga.NewPoint(5, 1)
	p3 := ga.NewPoint(7, 2)
	pb := ToPowerBasis(p0, p1, p2, p3)
	if pb.C0 != p0 {
		t.Fatalf("C0 = %v, want %v", pb.C0, p0)
	}
	got := pb.Evaluate(0)
	if !approx(got.X, p0.X, 1e-4) || !approx(got.Y, p0.Y, 1e-4) {
		t.Fatalf("Evaluate(0) = %v, want %v", got, p0)
	}
	got = pb.Evaluate(1)
	if !approx(got.X, p3.X, 1e-4) || !approx(got.Y, p3.Y, 1e-4) {
		t.Fatalf("Evaluate(1) = %v, want %v", got, p3)
	}
}

func TestClassifySerpentine(t *testing.T) {
	p0 := ga.NewPoint(0, 0)
	p1 := ga.NewPoint(1, 2)
	p2 := ga.NewPoint(2, -2)
	p3 := ga.NewPoint(3, 0)
	inf, err := Classify(p0, p1, p2, p3)
	if err != nil {
		t.Fatalf("Classify returned an error: %v", err)
	}
	if inf.Class != Serpentine {
		t.Fatalf("expected Serpentine, got %v (discriminant %v)", inf.Class, inf.Discriminant)
	}
	if inf.Discriminant <= 0 {
		t.Fatalf("expected positive discriminant, got %v", inf.Discriminant)
	}
}

func TestClassifyLoopHasDoublePoint(t *testing.T) {
	// This control polygon's self-intersection parameter falls strictly
	// inside (0,1) while its paired root falls outside, giving exactly
	// one double point to split at (unlike a bowtie quadrilateral, whose
	// tangential self-intersection at the midpoint classifies as a cusp).
	p0 := ga.NewPoint(0, 0)
	p1 := ga.NewPoint(-1, 0)
	p2 := ga.NewPoint(0, 1)
	p3 := ga.NewPoint(2, 0)
	inf, err := Classify(p0, p1, p2, p3)
	if err != nil {
		t.Fatalf("Classify returned an error: %v", err)
	}
	if inf.Class != Loop {
		t.Fatalf("expected Loop, got %v (discriminant %v)", inf.Class, inf.Discriminant)
	}
	t0, ok := FindDoublePointIssue(inf)
	if !ok {
		t.Fatalf("expected a double point inside (0,1)")
	}
	if !approx(t0, 0.6317, 1e-3) {
		t.Fatalf("double point t = %v, want ~0.6317", t0)
	}
}

func TestFindDoublePointIssueOnlyForLoop(t *testing.T) {
	inf := Inflection{Class: Serpentine}
	if _, ok := FindDoublePointIssue(inf); ok {
		t.Fatalf("serpentine curves must never report a double point")
	}
}

func TestWeightsColumn3AlwaysFromThirdRoot(t *testing.T) {
	p0 := ga.NewPoint(0, 0)
	p1 := ga.NewPoint(1, 2)
	p2 := ga.NewPoint(2, -2)
	p3 := ga.NewPoint(3, 0)
	inf, err := Classify(p0, p1, p2, p3)
	if err != nil {
		t.Fatalf("Classify returned an error: %v", err)
	}
	w := Weights(inf)
	// n = weights[*][3] must be constant across rows when the third
	// root is the structural root at infinity (numerator 1, denom 0).
	for row := 1; row < 4; row++ {
		if w[row][3] != w[0][3] {
			t.Fatalf("expected constant n column, row %d = %v, row 0 = %v", row, w[row][3], w[0][3])
		}
	}
}

func TestImplicitCurveValueSign(t *testing.T) {
	// k=0, l=m=n=1 gives -1, strictly inside.
	if v := ImplicitCurveValue([4]float32{0, 1, 1, 1}); v >= 0 {
		t.Fatalf("expected negative (inside) value, got %v", v)
	}
	// k=2, l=m=n=0 gives 8, strictly outside.
	if v := ImplicitCurveValue([4]float32{2, 0, 0, 0}); v <= 0 {
		t.Fatalf("expected positive (outside) value, got %v", v)
	}
}

func TestSplitAtPointsMidpoint(t *testing.T) {
	pts := [4]ga.Point{ga.NewPoint(0, 0), ga.NewPoint(0, 1), ga.NewPoint(1, 1), ga.NewPoint(1, 0)}
	a, b := SplitAt(pts, 0.5)
	if a[0] != pts[0] {
		t.Fatalf("left half must start where the curve started")
	}
	if b[3] != pts[3] {
		t.Fatalf("right half must end where the curve ended")
	}
	if a[3] != b[0] {
		t.Fatalf("the two halves must meet at the split point: %v != %v", a[3], b[0])
	}
}

func TestSplitAtWeightRows(t *testing.T) {
	rows := [4]WeightRow{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	a, b := SplitAt(rows, 0.25)
	if a[0] != rows[0] {
		t.Fatalf("left half must start at row 0")
	}
	if b[3] != rows[3] {
		t.Fatalf("right half must end at row 3")
	}
}

func TestRootParameter(t *testing.T) {
	r := Root{Numerator: 1, Denominator: 2}
	p, ok := r.Parameter()
	if !ok || !approx(p, 0.5, 1e-6) {
		t.Fatalf("Parameter() = %v, %v; want 0.5, true", p, ok)
	}
	inf := rootAtInfinity
	if _, ok := inf.Parameter(); ok {
		t.Fatalf("root at infinity must report no finite parameter")
	}
}

func TestNormalizeImplicitCurveSideFlipsOnDisagreement(t *testing.T) {
	p0, p1, p2, p3 := ga.NewPoint(0, 0), ga.NewPoint(1, 2), ga.NewPoint(2, -2), ga.NewPoint(3, 0)
	pb := ToPowerBasis(p0, p1, p2, p3)
	inf, err := Classify(p0, p1, p2, p3)
	if err != nil {
		t.Fatalf("Classify returned an error: %v", err)
	}
	w := Weights(inf)
	planes := WeightPlanes([4]ga.Point{p0, p1, p2, p3}, w)

	gradient := ImplicitCurveGradient(planes, w[0])
	tangent := pb.FirstOrderDerivative(0)
	before := tangent.InnerProduct(gradient)

	NormalizeImplicitCurveSide(&planes, &w, pb)

	gradientAfter := ImplicitCurveGradient(planes, w[0])
	after := tangent.InnerProduct(gradientAfter)
	if before > 0 && after > 0 {
		t.Fatalf("normalization did not flip a disagreeing gradient")
	}
}
