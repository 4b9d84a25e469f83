// Package curve implements the cubic-curve classifier: power-basis
// conversion, the inflection-point polynomial, root extraction, and the
// implicit per-vertex weights that let a fragment shader test curve
// coverage analytically instead of by tessellating into line segments.
//
// Integral curves are treated as a special case of rational curves with
// every control point's homogeneous weight fixed at 1 — the same code
// path serves both, matching the way the fill tessellator consumes
// them.
package curve

import (
	"errors"
	"math"

	"github.com/gogpu/vecpath/ga"
)

// ErrNumericOverflow is returned by Classify when the inflection-point
// polynomial's coefficients overflow float32 range, which only happens
// for pathologically large or ill-conditioned control points.
var ErrNumericOverflow = errors.New("vecpath: derived quantity exceeds representable range")

// PowerBasis holds the coefficients of C(t) = C0 + C1*t + C2*t^2 + C3*t^3
// for a cubic with control points P0..P3.
type PowerBasis struct {
	C0, C1, C2, C3 ga.Point
}

func scale(p ga.Point, s float32) ga.Point {
	return ga.Point{W: p.W * s, X: p.X * s, Y: p.Y * s}
}

func add(p, q ga.Point) ga.Point {
	return ga.Point{W: p.W + q.W, X: p.X + q.X, Y: p.Y + q.Y}
}

func sub(p, q ga.Point) ga.Point {
	return ga.Point{W: p.W - q.W, X: p.X - q.X, Y: p.Y - q.Y}
}

// ToPowerBasis converts four cubic control points to power-basis form:
// c0=P0, c1=3(P1-P0), c2=3(P0-2P1+P2), c3=P3-3P2+3P1-P0.
func ToPowerBasis(p0, p1, p2, p3 ga.Point) PowerBasis {
	c0 := p0
	c1 := scale(sub(p1, p0), 3)
	c2 := scale(add(sub(p0, scale(p1, 2)), p2), 3)
	c3 := add(sub(add(p3, scale(p1, 3)), scale(p2, 3)), scale(p0, -1))
	return PowerBasis{C0: c0, C1: c1, C2: c2, C3: c3}
}

// Evaluate returns the curve point at parameter t.
func (pb PowerBasis) Evaluate(t float32) ga.Point {
	t2 := t * t
	t3 := t2 * t
	return add(add(pb.C0, scale(pb.C1, t)), add(scale(pb.C2, t2), scale(pb.C3, t3)))
}

// FirstOrderDerivative returns C'(t) = C1 + 2*C2*t + 3*C3*t^2, used to
// orient the implicit-curve gradient against the curve's direction of
// travel.
func (pb PowerBasis) FirstOrderDerivative(t float32) ga.Plane {
	d := add(pb.C1, add(scale(pb.C2, 2*t), scale(pb.C3, 3*t*t)))
	return ga.Plane{D: 0, NX: d.X, NY: d.Y}
}

// Root represents a real value as a numerator/denominator pair so that
// callers can test membership of (0,1) or build power-basis products of
// several roots without dividing until the last possible moment, which
// is where floating point precision is lost fastest.
type Root struct {
	Numerator   float32
	Denominator float32
}

// Parameter divides the root out to a plain float32. Returns false if
// the denominator is zero (the root is at infinity, i.e. not a
// genuine finite parameter).
func (r Root) Parameter() (float32, bool) {
	if r.Denominator == 0 {
		return 0, false
	}
	return r.Numerator / r.Denominator, true
}

// rootAtInfinity is the placeholder used where the factorization of the
// inflection-point polynomial contributes no finite third root.
var rootAtInfinity = Root{Numerator: 1, Denominator: 0}

// Classification describes the family a cubic belongs to, mirroring
// the discriminant sign test of the inflection-point polynomial.
type Classification int

const (
	Serpentine Classification = iota
	Cusp
	Loop
)

// Inflection holds the discriminant, the three roots used to build the
// implicit weight matrix, and the curve's family.
type Inflection struct {
	Discriminant float32
	Roots        [3]Root
	Class        Classification
}

// Classify computes the inflection-point polynomial coefficients from
// the four control points via the signed areas of the triangles formed
// by omitting each point in turn, then classifies the curve by the sign
// of the resulting discriminant.
//
// d1, d2, d3 are the classic reduction of those areas; the inflection
// parameters are the roots of d1*t^2 - d2*t + d3/3 = 0, with a third,
// structural root fixed at infinity to give every classification
// exactly three root slots (the shape weight_derivatives expects).
func Classify(p0, p1, p2, p3 ga.Point) (Inflection, error) {
	a1 := ga.Join(p3, p2).Meet(p0)
	a2 := ga.Join(p0, p3).Meet(p1)
	a3 := ga.Join(p1, p0).Meet(p2)

	d1 := a1 - 2*a2 + 3*a3
	d2 := -a2 + 3*a3
	d3 := 3 * a3

	discriminant := 3*d2*d2 - 4*d1*d3
	if math.IsInf(float64(discriminant), 0) {
		return Inflection{}, ErrNumericOverflow
	}

	if d1 == 0 {
		if d2 == 0 {
			// No quadratic or linear term: the polynomial is the
			// constant d3/3, treated as a degenerate cusp with the
			// single finite root placed at the curve's midpoint.
			return Inflection{
				Discriminant: 0,
				Roots:        [3]Root{{Numerator: 1, Denominator: 2}, {Numerator: 1, Denominator: 2}, rootAtInfinity},
				Class:        Cusp,
			}, nil
		}
		// Linear polynomial: one finite inflection at d3/(3*d2). The
		// discriminant is 3*d2^2 > 0, so the curve is a serpentine. The
		// finite root fills both root slots, which gives the same
		// weights as a cusp at that root.
		root := Root{Numerator: d3, Denominator: 3 * d2}
		return Inflection{Discriminant: discriminant, Roots: [3]Root{root, root, rootAtInfinity}, Class: Serpentine}, nil
	}

	switch {
	case discriminant > 0:
		sq := float32(math.Sqrt(float64(discriminant) / 3))
		r0 := Root{Numerator: d2 + sq, Denominator: 2 * d1}
		r1 := Root{Numerator: d2 - sq, Denominator: 2 * d1}
		return Inflection{Discriminant: discriminant, Roots: [3]Root{r0, r1, rootAtInfinity}, Class: Serpentine}, nil
	case discriminant < 0:
		sq := float32(math.Sqrt(float64(-discriminant) / 3))
		r0 := Root{Numerator: d2 + sq, Denominator: 2 * d1}
		r1 := Root{Numerator: d2 - sq, Denominator: 2 * d1}
		return Inflection{Discriminant: discriminant, Roots: [3]Root{r0, r1, rootAtInfinity}, Class: Loop}, nil
	default:
		root := Root{Numerator: d2, Denominator: 2 * d1}
		return Inflection{Discriminant: 0, Roots: [3]Root{root, root, rootAtInfinity}, Class: Cusp}, nil
	}
}

// FindDoublePointIssue returns the split parameter and true if this
// curve is a loop whose self-intersection falls strictly inside (0,1)
// — the case the tessellator must resolve by splitting the curve
// before triangulating.
func FindDoublePointIssue(inf Inflection) (float32, bool) {
	if inf.Class != Loop {
		return 0, false
	}
	var result float32 = -1
	inside := 0
	for _, root := range inf.Roots {
		if root.Denominator == 0 {
			continue
		}
		p := root.Numerator / root.Denominator
		if p > 0 && p < 1 {
			result = p
			inside++
		}
	}
	if inside == 1 {
		return result, true
	}
	return 0, false
}

// weightDerivatives expands the product of three linear root factors
// (n0 - d0*t)(n1 - d1*t)(n2 - d2*t) into power-basis coefficients, then
// converts that cubic to its Bernstein (control-point) form, writing
// the result into column `column` of the 4x4 weight matrix.
func weightDerivatives(weights *[4][4]float32, column int, roots [3]Root) {
	n0, d0 := roots[0].Numerator, roots[0].Denominator
	n1, d1 := roots[1].Numerator, roots[1].Denominator
	n2, d2 := roots[2].Numerator, roots[2].Denominator

	p0 := n0 * n1 * n2
	p1 := -d0*n1*n2 - n0*d1*n2 - n0*n1*d2
	p2 := d0*d1*n2 + d0*n1*d2 + n0*d1*d2
	p3 := -d0 * d1 * d2

	weights[0][column] = p0
	weights[1][column] = p0 + p1/3
	weights[2][column] = p0 + 2*p1/3 + p2/3
	weights[3][column] = p0 + p1 + p2 + p3
}

// Weights computes the 4x4 implicit-function weight matrix from a
// classified cubic's discriminant and roots. Each row holds the
// (k, l, m, n) weights for one of the curve's four control points.
func Weights(inf Inflection) [4][4]float32 {
	var w [4][4]float32
	roots := inf.Roots
	switch inf.Class {
	case Cusp:
		weightDerivatives(&w, 0, [3]Root{roots[0], roots[0], roots[2]})
		weightDerivatives(&w, 1, [3]Root{roots[0], roots[0], roots[0]})
		weightDerivatives(&w, 2, [3]Root{roots[0], roots[0], roots[0]})
	case Loop:
		weightDerivatives(&w, 0, [3]Root{roots[0], roots[1], roots[2]})
		weightDerivatives(&w, 1, [3]Root{roots[0], roots[0], roots[1]})
		weightDerivatives(&w, 2, [3]Root{roots[1], roots[1], roots[0]})
	default: // Serpentine
		weightDerivatives(&w, 0, [3]Root{roots[0], roots[1], roots[2]})
		weightDerivatives(&w, 1, [3]Root{roots[0], roots[0], roots[0]})
		weightDerivatives(&w, 2, [3]Root{roots[1], roots[1], roots[1]})
	}
	weightDerivatives(&w, 3, [3]Root{roots[2], roots[2], roots[2]})
	return w
}

// errorMargin bounds the squared magnitude below which a weight plane
// is considered degenerate (built from near-coincident 3-D auxiliary
// points) and must be rebuilt from a different triple.
const errorMargin = 1e-9

// point3 is the 3-D auxiliary point (x, y, w, weight) used to build a
// weight plane: the curve's 2-D control point lifted into 3-D with its
// implicit weight as the extra coordinate.
type point3 struct{ x, y, z, w float32 }

func join3(a, b, c point3) (float32, float32, float32, float32) {
	// Regressive product of three 3-D homogeneous points, expressed as
	// the four 3x3 cofactor determinants of the matrix whose rows are
	// a, b, c.
	det3 := func(a1, a2, a3, b1, b2, b3, c1, c2, c3 float32) float32 {
		return a1*(b2*c3-b3*c2) - a2*(b1*c3-b3*c1) + a3*(b1*c2-b2*c1)
	}
	e0 := det3(a.y, a.z, a.w, b.y, b.z, b.w, c.y, c.z, c.w)
	e1 := -det3(a.x, a.z, a.w, b.x, b.z, b.w, c.x, c.z, c.w)
	e2 := det3(a.x, a.y, a.w, b.x, b.y, b.w, c.x, c.y, c.w)
	e3 := -det3(a.x, a.y, a.z, b.x, b.y, b.z, c.x, c.y, c.z)
	return e0, e1, e2, e3
}

// WeightPlanes builds the four weight planes from the cubic's control
// points and its weight matrix, normalizing each so its weight
// coefficient is -1. The stored plane then gives a point's weight as
// D*W + NX*X + NY*Y, the layout ga.Plane uses for Meet, so NX and NY
// are the weight's spatial gradient.
func WeightPlanes(points [4]ga.Point, weights [4][4]float32) [4]ga.Plane {
	var planes [4]ga.Plane
	for col := 0; col < 4; col++ {
		pts := [4]point3{}
		for row := 0; row < 4; row++ {
			pts[row] = point3{points[row].X, points[row].Y, points[row].W, weights[row][col]}
		}
		e0, e1, e2, e3 := join3(pts[0], pts[1], pts[2])
		if e1*e1+e2*e2+e3*e3 < errorMargin {
			e0, e1, e2, e3 = join3(pts[0], pts[1], pts[3])
		}
		if e3 != 0 {
			inv := -1 / e3
			e0, e1, e2 = e0*inv, e1*inv, e2*inv
		}
		planes[col] = ga.Plane{D: e2, NX: e0, NY: e1}
	}
	return planes
}

// ImplicitCurveValue evaluates k^3 - l*m*n at a vertex's weight row.
// The curve's interior is where this value is non-positive.
func ImplicitCurveValue(w [4]float32) float32 {
	return w[0]*w[0]*w[0] - w[1]*w[2]*w[3]
}

// ImplicitCurveGradient evaluates the gradient of the implicit surface
// at the curve's start, used to orient the weight planes consistently
// with the direction of travel.
func ImplicitCurveGradient(planes [4]ga.Plane, w [4]float32) ga.Plane {
	g := planes[0].Scale(3 * w[0] * w[0])
	g = ga.Plane{D: g.D - planes[1].D*(w[2]*w[3]), NX: g.NX - planes[1].NX*(w[2]*w[3]), NY: g.NY - planes[1].NY*(w[2]*w[3])}
	g = ga.Plane{D: g.D - planes[2].D*(w[1]*w[3]), NX: g.NX - planes[2].NX*(w[1]*w[3]), NY: g.NY - planes[2].NY*(w[1]*w[3])}
	g = ga.Plane{D: g.D - planes[3].D*(w[1]*w[2]), NX: g.NX - planes[3].NX*(w[1]*w[2]), NY: g.NY - planes[3].NY*(w[1]*w[2])}
	return g
}

// NormalizeImplicitCurveSide flips every weight plane and the first two
// columns of the weight matrix if the implicit-curve gradient at the
// start disagrees with the curve's own start tangent, so that "inside"
// consistently means the same half-space the curve travels into.
func NormalizeImplicitCurveSide(planes *[4]ga.Plane, weights *[4][4]float32, pb PowerBasis) {
	tangent := pb.FirstOrderDerivative(0)
	gradient := ImplicitCurveGradient(*planes, weights[0])
	if tangent.InnerProduct(gradient) > 0 {
		for i := range planes {
			planes[i] = planes[i].Negate()
		}
		for row := range weights {
			weights[row][0] *= -1
			weights[row][1] *= -1
		}
	}
}

// WeightRow is a weight matrix row, lerp-able like a point so the same
// de Casteljau split code handles curve control points and their
// implicit weights uniformly.
type WeightRow [4]float32

func (w WeightRow) Lerp(v WeightRow, t float32) WeightRow {
	var out WeightRow
	for i := range w {
		out[i] = w[i] + (v[i]-w[i])*t
	}
	return out
}

// SplitAt performs de Casteljau subdivision of a cubic (control points
// or weight rows, any 4-element sequence under linear interpolation) at
// parameter t, returning the two halves.
func SplitAt[T interface {
	Lerp(T, float32) T
}](points [4]T, t float32) (a, b [4]T) {
	p10 := points[0].Lerp(points[1], t)
	p11 := points[1].Lerp(points[2], t)
	p12 := points[2].Lerp(points[3], t)
	p20 := p10.Lerp(p11, t)
	p21 := p11.Lerp(p12, t)
	p30 := p20.Lerp(p21, t)
	return [4]T{points[0], p10, p20, p30}, [4]T{p30, p21, p12, points[3]}
}
