package ga

import "math"

// Motor2D is a 2-D rigid motion (rotation + translation), the PGA
// "motor" used by Path.Transform to move control points without
// affecting rational-curve weights. Unlike a general affine Matrix
// (teacher's gg.Matrix), a motor cannot skew or scale non-uniformly —
// that restriction is what lets Transform apply a single uniform scale
// factor up front and then treat the motor as a pure isometry.
type Motor2D struct {
	Cos, Sin float32 // unit rotor (Cos*Cos + Sin*Sin == 1)
	Tx, Ty   float32 // translation applied after rotation
}

// Identity2D is the no-op motor.
var Identity2D = Motor2D{Cos: 1, Sin: 0}

// Rotation2D constructs a motor that rotates by angle radians about the
// origin with no translation.
func Rotation2D(angle float64) Motor2D {
	s, c := math.Sincos(angle)
	return Motor2D{Cos: float32(c), Sin: float32(s)}
}

// Translation2D constructs a motor that translates by (tx, ty) with no
// rotation.
func Translation2D(tx, ty float32) Motor2D {
	return Motor2D{Cos: 1, Sin: 0, Tx: tx, Ty: ty}
}

// Then composes m followed by other: applying the result to a point is
// equivalent to applying m, then other.
func (m Motor2D) Then(other Motor2D) Motor2D {
	rx := m.Cos*other.Cos - m.Sin*other.Sin
	ry := m.Cos*other.Sin + m.Sin*other.Cos
	tx := other.Cos*m.Tx - other.Sin*m.Ty + other.Tx
	ty := other.Sin*m.Tx + other.Cos*m.Ty + other.Ty
	return Motor2D{Cos: rx, Sin: ry, Tx: tx, Ty: ty}
}

// TransformScaled applies a uniform scale followed by the motor to a
// point, matching spec's Path.transform(scale, motor) semantics.
func (m Motor2D) TransformScaled(scale float32, p [2]float32) [2]float32 {
	x, y := p[0]*scale, p[1]*scale
	return [2]float32{
		m.Cos*x - m.Sin*y + m.Tx,
		m.Sin*x + m.Cos*y + m.Ty,
	}
}
