// Package ga implements the minimal slice of 2-D projective geometric
// algebra (PGA) the rasterizer needs: points, lines ("planes" in the
// spec's 3-D-homogeneous naming), their join, and the few normalized
// products used to pick consistent signs throughout the tessellator.
//
// Reusing a tiny, dedicated GA layer instead of ad-hoc cross products
// keeps every sign convention in the package (triangle winding, tangent
// direction, implicit-curve orientation) anchored to a single
// regressive-product definition.
package ga

import "math"

// Point is a weighted homogeneous 2-D point (w, x, y). w is ordinarily
// 1.0 for an affine point; w == 0 represents a point at infinity
// (a direction).
type Point struct {
	W, X, Y float32
}

// NewPoint constructs an affine point (w = 1) at (x, y).
func NewPoint(x, y float32) Point {
	return Point{W: 1, X: x, Y: y}
}

// Plane is a homogeneous 2-D line in dual form: the set of points P with
// D*P.W + NX*P.X + NY*P.Y == 0.
type Plane struct {
	D, NX, NY float32
}

// Join is the regressive product of two points: the line through both.
// Its sign is chosen so that Join(p, q).Meet(r) equals the determinant
//
//	| p.W p.X p.Y |
//	| q.W q.X q.Y |
//	| r.W r.X r.Y |
//
// which for affine points (w = 1) is twice the signed area of the
// triangle p, q, r — positive counter-clockwise, negative clockwise.
func Join(p, q Point) Plane {
	return Plane{
		D:  p.X*q.Y - p.Y*q.X,
		NX: p.Y*q.W - p.W*q.Y,
		NY: p.W*q.X - p.X*q.W,
	}
}

// Meet evaluates the plane at a point, returning the signed scalar
// described in Join's docstring.
func (pl Plane) Meet(p Point) float32 {
	return pl.D*p.W + pl.NX*p.X + pl.NY*p.Y
}

// SignedArea2 returns twice the signed area of the triangle (p, q, r):
// positive when the three points wind counter-clockwise.
func SignedArea2(p, q, r Point) float32 {
	return Join(p, q).Meet(r)
}

// SquaredMagnitude returns NX*NX + NY*NY, the squared magnitude of the
// plane's directional part under PGA's degenerate metric (the D/"ideal"
// component does not contribute). A line through two coincident or
// infinitesimally close points has squared magnitude near zero.
func (pl Plane) SquaredMagnitude() float32 {
	return pl.NX*pl.NX + pl.NY*pl.NY
}

// Zero is the degenerate plane (0, 0, 0), returned for tangents at
// coincident points.
var Zero = Plane{}

// Signum rescales the plane so that NX*NX + NY*NY == 1. Returns the
// plane unchanged if it is already degenerate (zero magnitude).
func (pl Plane) Signum() Plane {
	m2 := pl.SquaredMagnitude()
	if m2 == 0 {
		return pl
	}
	inv := float32(1 / math.Sqrt(float64(m2)))
	return Plane{D: pl.D * inv, NX: pl.NX * inv, NY: pl.NY * inv}
}

// InnerProduct is the PGA inner product of two lines restricted to their
// directional parts: NX1*NX2 + NY1*NY2. Its sign answers "do these two
// lines point the same way", which is how the tessellator orients the
// implicit-curve gradient relative to a curve's start tangent.
func (pl Plane) InnerProduct(other Plane) float32 {
	return pl.NX*other.NX + pl.NY*other.NY
}

// Negate returns the plane with every component sign-flipped.
func (pl Plane) Negate() Plane {
	return Plane{D: -pl.D, NX: -pl.NX, NY: -pl.NY}
}

// Scale multiplies every component of the plane by s.
func (pl Plane) Scale(s float32) Plane {
	return Plane{D: pl.D * s, NX: pl.NX * s, NY: pl.NY * s}
}

// NewWeightedPoint embeds a 2-D vector into homogeneous coordinates
// with the given weight: (w, x*w, y*w). Dividing X and Y back by W
// recovers the original vector, the standard rational-Bézier control
// point representation.
func NewWeightedPoint(v [2]float32, w float32) Point {
	return Point{W: w, X: v[0] * w, Y: v[1] * w}
}

// Affine projects a homogeneous point back to plain 2-D coordinates by
// dividing out W.
func (p Point) Affine() [2]float32 {
	return [2]float32{p.X / p.W, p.Y / p.W}
}

// Lerp linearly interpolates between two points, used by cubic
// de Casteljau subdivision.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		W: p.W + (q.W-p.W)*t,
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// TangentThrough returns the normalized line through a and b, in the
// direction from a to b. Returns Zero if a and b coincide.
func TangentThrough(a, b [2]float32) Plane {
	pl := Join(NewPoint(a[0], a[1]), NewPoint(b[0], b[1]))
	return pl.Signum()
}
