// Package safefloat provides a totally ordered, hashable floating-point
// scalar used as key material throughout the rasterizer: convex-hull input
// is sorted by it, and segment control points are compared and stored with
// it so that two paths built from identical coordinates compare equal.
package safefloat

import "math"

// Value is a float32 that rejects NaN at construction and unifies +0/-0
// into a single representation, giving it a total order under Compare
// (unlike bare IEEE float32, where NaN is unordered and +0 == -0 only
// under numeric comparison, not identity).
type Value float32

// New constructs a Value, panicking if v is NaN.
//
// NaN can only enter this package through programmer error (a control
// point computed from 0/0 or similar) — there is no recovery that would
// make sense at this layer, so we fail loudly at the boundary rather than
// propagate a NaN through sorts and hull comparisons where it would
// silently corrupt the total order.
func New(v float32) Value {
	if math.IsNaN(float64(v)) {
		panic("safefloat: NaN is not a valid value")
	}
	if v == 0 {
		return 0
	}
	return Value(v)
}

// Float32 returns the underlying value.
func (v Value) Float32() float32 { return float32(v) }

// Float64 returns the underlying value widened to float64.
func (v Value) Float64() float64 { return float64(v) }

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than w. Both zeros compare equal regardless of sign, matching the
// unification performed by New.
func (v Value) Compare(w Value) int {
	switch {
	case v < w:
		return -1
	case v > w:
		return 1
	default:
		return 0
	}
}

// Less reports whether v orders before w.
func (v Value) Less(w Value) bool { return v < w }

// Vec2 is a pair of safe scalars, the element type of every control point
// in the path data model (spec's "SafeFloat<f32, 2>").
type Vec2 struct {
	X, Y Value
}

// NewVec2 constructs a Vec2 from raw float32 components.
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: New(x), Y: New(y)}
}

// Array returns the components as a plain [2]float32, the form consumed
// by the ga and curve packages.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X.Float32(), v.Y.Float32()}
}

// Compare orders Vec2 lexicographically by X then Y, the comparison
// Andrew's monotone-chain hull algorithm requires for its initial sort.
func (v Vec2) Compare(w Vec2) int {
	if c := v.X.Compare(w.X); c != 0 {
		return c
	}
	return v.Y.Compare(w.Y)
}
