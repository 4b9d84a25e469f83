package path

import (
	"math"

	"github.com/gogpu/vecpath/internal/diag"
	"github.com/gogpu/vecpath/safefloat"
)

// PushQuarterEllipse appends a single rational quadratic segment
// representing a 90-degree elliptical arc, with middle weight 1/sqrt2
// — the exact weight for a quarter circle (and, after a non-uniform
// transform, a quarter ellipse).
func (p *Path) PushQuarterEllipse(tangentCrossing, to safefloat.Vec2) {
	const oneOverSqrt2 = 0.70710678118654752440
	p.PushRationalQuadratic(oneOverSqrt2, tangentCrossing, to)
}

// PushEllipticalArc appends an SVG-style elliptical arc from the
// path's current end to `to`, decomposed into at most three rational
// quadratic segments each subtending at most 2*pi/3 radians. Follows
// the W3C SVG endpoint-to-center parameterization: degenerate radii
// (zero in either axis) recover silently to a single line segment,
// and radii too small to span the chord between the endpoints are
// scaled up just enough to reach it.
func (p *Path) PushEllipticalArc(halfExtent [2]float32, rotation float64, largeArc, sweep bool, to safefloat.Vec2) {
	rx, ry := float64(abs32(halfExtent[0])), float64(abs32(halfExtent[1]))
	from := p.GetEnd().Array()
	toArr := to.Array()

	if rx == 0 || ry == 0 {
		diag.Logger().Warn("path: degenerate elliptical arc radius, substituting line", "rx", rx, "ry", ry)
		p.PushLine(to)
		return
	}

	fx, fy := float64(from[0]), float64(from[1])
	tx, ty := float64(toArr[0]), float64(toArr[1])
	if fx == tx && fy == ty {
		diag.Logger().Warn("path: degenerate elliptical arc with coincident endpoints, dropping segment")
		return
	}

	sinPhi, cosPhi := math.Sincos(rotation)

	dx2, dy2 := (fx-tx)/2, (fy-ty)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	sign := -1.0
	if largeArc == sweep {
		sign = 1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 {
		co = sign * math.Sqrt(math.Max(0, num/den))
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (fx+tx)/2
	cy := sinPhi*cxp + cosPhi*cyp + (fy+ty)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		cosA := dot / lenProd
		if cosA > 1 {
			cosA = 1
		} else if cosA < -1 {
			cosA = -1
		}
		a := math.Acos(cosA)
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	startAngle := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	deltaAngle := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && deltaAngle > 0 {
		deltaAngle -= 2 * math.Pi
	} else if sweep && deltaAngle < 0 {
		deltaAngle += 2 * math.Pi
	}

	const maxStep = 2 * math.Pi / 3
	steps := int(math.Ceil(math.Abs(deltaAngle) / maxStep))
	if steps < 1 {
		steps = 1
	}
	step := deltaAngle / float64(steps)
	half := step / 2
	weight := float32(math.Cos(half))

	ellipsePoint := func(t float64) safefloat.Vec2 {
		px, py := rx*math.Cos(t), ry*math.Sin(t)
		x := cosPhi*px - sinPhi*py + cx
		y := sinPhi*px + cosPhi*py + cy
		return safefloat.NewVec2(float32(x), float32(y))
	}
	tangentCrossingPoint := func(mid float64) safefloat.Vec2 {
		px, py := rx*math.Cos(mid)/math.Cos(half), ry*math.Sin(mid)/math.Cos(half)
		x := cosPhi*px - sinPhi*py + cx
		y := sinPhi*px + cosPhi*py + cy
		return safefloat.NewVec2(float32(x), float32(y))
	}

	t0 := startAngle
	for i := 0; i < steps; i++ {
		t1 := t0 + step
		mid := t0 + half
		end := ellipsePoint(t1)
		if i == steps-1 {
			end = to
		}
		p.PushRationalQuadratic(weight, tangentCrossingPoint(mid), end)
		t0 = t1
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
