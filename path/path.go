// Package path implements the rasterizer's path data model: a
// structure-of-arrays record of line and Bézier segments, its builder
// methods, and the transforms (reversal, affine motion, curve
// elevation) the fill tessellator and shape assembler depend on.
package path

import (
	"github.com/gogpu/vecpath/ga"
	"github.com/gogpu/vecpath/safefloat"
)

// SegmentType identifies which per-variant array a path segment lives
// in; Path.SegmentTypes interleaves these to recover draw order.
type SegmentType int

const (
	Line SegmentType = iota
	IntegralQuadraticCurve
	IntegralCubicCurve
	RationalQuadraticCurve
	RationalCubicCurve
)

// LineSegment holds the segment's single control point (its end); the
// start is implicit, the previous segment's end or the path's Start.
type LineSegment struct {
	End safefloat.Vec2
}

// IntegralQuadraticCurveSegment holds a non-rational quadratic curve's
// control point and end.
type IntegralQuadraticCurveSegment struct {
	Control safefloat.Vec2
	End     safefloat.Vec2
}

// IntegralCubicCurveSegment holds a non-rational cubic curve's two
// control points and end.
type IntegralCubicCurveSegment struct {
	Control1 safefloat.Vec2
	Control2 safefloat.Vec2
	End      safefloat.Vec2
}

// RationalQuadraticCurveSegment holds a rational quadratic curve's
// middle weight (endpoint weights are fixed at 1), control point, and
// end.
type RationalQuadraticCurveSegment struct {
	Weight  safefloat.Value
	Control safefloat.Vec2
	End     safefloat.Vec2
}

// RationalCubicCurveSegment holds a rational cubic curve's four
// weights (start through end) and its two control points and end.
type RationalCubicCurveSegment struct {
	Weights  [4]safefloat.Value
	Control1 safefloat.Vec2
	Control2 safefloat.Vec2
	End      safefloat.Vec2
}

// Join names the geometry generated where two path segments meet under
// stroking. The core never tessellates strokes itself; this and the
// other stroke fields are carried opaquely for a downstream stroker.
type Join int

const (
	JoinMiter Join = iota
	JoinBevel
	JoinRound
)

// Cap names the geometry generated at the start or end of a dash.
type Cap int

const (
	CapSquare Cap = iota
	CapRound
	CapOut
	CapIn
	CapRight
	CapLeft
	CapButt
)

// DashInterval describes one gap-then-dash cycle of a dashed stroke, in
// units of StrokeOptions.Width.
type DashInterval struct {
	GapStart  float32
	GapEnd    float32
	DashStart Cap
	DashEnd   Cap
}

// StrokeOptions is opaque configuration for a downstream stroker; the
// fill tessellator never reads it.
type StrokeOptions struct {
	Width      float32
	Join       Join
	MiterClip  float32
	StartCap   Cap
	EndCap     Cap
	Dashes     []DashInterval
	DashOffset float32
}

// Path is an ordered record of a start point and the segments
// following it, stored as one slice per segment variant plus an
// interleaving SegmentTypes sequence that recovers draw order.
// Consumers must treat a Path as immutable once built; methods that
// "mutate" it operate on the receiver in place because the builder
// pattern in this package always holds the sole reference during
// construction.
type Path struct {
	Stroke *StrokeOptions
	Start  safefloat.Vec2

	SegmentTypes []SegmentType

	LineSegments                   []LineSegment
	IntegralQuadraticCurveSegments  []IntegralQuadraticCurveSegment
	IntegralCubicCurveSegments      []IntegralCubicCurveSegment
	RationalQuadraticCurveSegments  []RationalQuadraticCurveSegment
	RationalCubicCurveSegments      []RationalCubicCurveSegment
}

// New creates an empty path starting at start.
func New(start safefloat.Vec2) *Path {
	return &Path{Start: start}
}

func vec(x, y float32) safefloat.Vec2 { return safefloat.NewVec2(x, y) }

// PushLine appends a line segment ending at end.
func (p *Path) PushLine(end safefloat.Vec2) {
	p.SegmentTypes = append(p.SegmentTypes, Line)
	p.LineSegments = append(p.LineSegments, LineSegment{End: end})
}

// PushIntegralQuadratic appends a non-rational quadratic Bézier
// segment.
func (p *Path) PushIntegralQuadratic(control, end safefloat.Vec2) {
	p.SegmentTypes = append(p.SegmentTypes, IntegralQuadraticCurve)
	p.IntegralQuadraticCurveSegments = append(p.IntegralQuadraticCurveSegments, IntegralQuadraticCurveSegment{Control: control, End: end})
}

// PushIntegralCubic appends a non-rational cubic Bézier segment.
func (p *Path) PushIntegralCubic(c1, c2, end safefloat.Vec2) {
	p.SegmentTypes = append(p.SegmentTypes, IntegralCubicCurve)
	p.IntegralCubicCurveSegments = append(p.IntegralCubicCurveSegments, IntegralCubicCurveSegment{Control1: c1, Control2: c2, End: end})
}

// PushRationalQuadratic appends a rational quadratic Bézier segment
// with the given middle weight.
func (p *Path) PushRationalQuadratic(weight float32, control, end safefloat.Vec2) {
	p.SegmentTypes = append(p.SegmentTypes, RationalQuadraticCurve)
	p.RationalQuadraticCurveSegments = append(p.RationalQuadraticCurveSegments, RationalQuadraticCurveSegment{
		Weight: safefloat.New(weight), Control: control, End: end,
	})
}

// PushRationalCubic appends a rational cubic Bézier segment. weights
// covers the start (implicit previous end) through the segment's own
// end, four values in draw order.
func (p *Path) PushRationalCubic(weights [4]float32, c1, c2, end safefloat.Vec2) {
	p.SegmentTypes = append(p.SegmentTypes, RationalCubicCurve)
	var w [4]safefloat.Value
	for i, v := range weights {
		w[i] = safefloat.New(v)
	}
	p.RationalCubicCurveSegments = append(p.RationalCubicCurveSegments, RationalCubicCurveSegment{
		Weights: w, Control1: c1, Control2: c2, End: end,
	})
}

// GetEnd returns the path's current last point: Start if the path has
// no segments yet.
func (p *Path) GetEnd() safefloat.Vec2 {
	if len(p.SegmentTypes) == 0 {
		return p.Start
	}
	switch p.SegmentTypes[len(p.SegmentTypes)-1] {
	case Line:
		return p.LineSegments[len(p.LineSegments)-1].End
	case IntegralQuadraticCurve:
		return p.IntegralQuadraticCurveSegments[len(p.IntegralQuadraticCurveSegments)-1].End
	case IntegralCubicCurve:
		return p.IntegralCubicCurveSegments[len(p.IntegralCubicCurveSegments)-1].End
	case RationalQuadraticCurve:
		return p.RationalQuadraticCurveSegments[len(p.RationalQuadraticCurveSegments)-1].End
	default:
		return p.RationalCubicCurveSegments[len(p.RationalCubicCurveSegments)-1].End
	}
}

// GetStartTangent returns the normalized tangent line at the path's
// start, pointing into the first segment. Returns the zero plane for
// an empty path.
func (p *Path) GetStartTangent() ga.Plane {
	if len(p.SegmentTypes) == 0 {
		return ga.Zero
	}
	start := p.Start.Array()
	var next safefloat.Vec2
	switch p.SegmentTypes[0] {
	case Line:
		next = p.LineSegments[0].End
	case IntegralQuadraticCurve:
		next = p.IntegralQuadraticCurveSegments[0].Control
	case IntegralCubicCurve:
		next = p.IntegralCubicCurveSegments[0].Control1
	case RationalQuadraticCurve:
		next = p.RationalQuadraticCurveSegments[0].Control
	default:
		next = p.RationalCubicCurveSegments[0].Control1
	}
	return ga.TangentThrough(start, next.Array())
}

// GetEndTangent returns the normalized tangent line at the path's
// current end, pointing in the direction of travel. Returns the zero
// plane for an empty path.
func (p *Path) GetEndTangent() ga.Plane {
	n := len(p.SegmentTypes)
	if n == 0 {
		return ga.Zero
	}
	end := p.GetEnd().Array()
	var from safefloat.Vec2
	switch p.SegmentTypes[n-1] {
	case Line:
		if n >= 2 {
			from = p.segmentEnd(n - 2)
		} else {
			from = p.Start
		}
	case IntegralQuadraticCurve:
		from = p.IntegralQuadraticCurveSegments[len(p.IntegralQuadraticCurveSegments)-1].Control
	case IntegralCubicCurve:
		from = p.IntegralCubicCurveSegments[len(p.IntegralCubicCurveSegments)-1].Control2
	case RationalQuadraticCurve:
		from = p.RationalQuadraticCurveSegments[len(p.RationalQuadraticCurveSegments)-1].Control
	default:
		from = p.RationalCubicCurveSegments[len(p.RationalCubicCurveSegments)-1].Control2
	}
	return ga.TangentThrough(from.Array(), end)
}

// segmentEnd returns the end point of the segment at SegmentTypes[i].
func (p *Path) segmentEnd(i int) safefloat.Vec2 {
	count := func(t SegmentType, upTo int) int {
		n := 0
		for _, st := range p.SegmentTypes[:upTo+1] {
			if st == t {
				n++
			}
		}
		return n
	}
	switch p.SegmentTypes[i] {
	case Line:
		return p.LineSegments[count(Line, i)-1].End
	case IntegralQuadraticCurve:
		return p.IntegralQuadraticCurveSegments[count(IntegralQuadraticCurve, i)-1].End
	case IntegralCubicCurve:
		return p.IntegralCubicCurveSegments[count(IntegralCubicCurve, i)-1].End
	case RationalQuadraticCurve:
		return p.RationalQuadraticCurveSegments[count(RationalQuadraticCurve, i)-1].End
	default:
		return p.RationalCubicCurveSegments[count(RationalCubicCurve, i)-1].End
	}
}

// Append concatenates other's segments onto p. The caller is
// responsible for spatial continuity (that other.Start coincides with
// p.GetEnd(), if that matters to the scene).
func (p *Path) Append(other *Path) {
	p.SegmentTypes = append(p.SegmentTypes, other.SegmentTypes...)
	p.LineSegments = append(p.LineSegments, other.LineSegments...)
	p.IntegralQuadraticCurveSegments = append(p.IntegralQuadraticCurveSegments, other.IntegralQuadraticCurveSegments...)
	p.IntegralCubicCurveSegments = append(p.IntegralCubicCurveSegments, other.IntegralCubicCurveSegments...)
	p.RationalQuadraticCurveSegments = append(p.RationalQuadraticCurveSegments, other.RationalQuadraticCurveSegments...)
	p.RationalCubicCurveSegments = append(p.RationalCubicCurveSegments, other.RationalCubicCurveSegments...)
}

// Transform applies a uniform scale followed by a 2-D rigid motion to
// Start and to every segment's control points. Rational-curve weights
// are unaffected: scaling and rigid motion never change a curve's
// homogeneous weighting.
func (p *Path) Transform(scale float32, motor ga.Motor2D) {
	tf := func(v safefloat.Vec2) safefloat.Vec2 {
		out := motor.TransformScaled(scale, v.Array())
		return vec(out[0], out[1])
	}
	p.Start = tf(p.Start)
	for i := range p.LineSegments {
		p.LineSegments[i].End = tf(p.LineSegments[i].End)
	}
	for i := range p.IntegralQuadraticCurveSegments {
		s := &p.IntegralQuadraticCurveSegments[i]
		s.Control, s.End = tf(s.Control), tf(s.End)
	}
	for i := range p.IntegralCubicCurveSegments {
		s := &p.IntegralCubicCurveSegments[i]
		s.Control1, s.Control2, s.End = tf(s.Control1), tf(s.Control2), tf(s.End)
	}
	for i := range p.RationalQuadraticCurveSegments {
		s := &p.RationalQuadraticCurveSegments[i]
		s.Control, s.End = tf(s.Control), tf(s.End)
	}
	for i := range p.RationalCubicCurveSegments {
		s := &p.RationalCubicCurveSegments[i]
		s.Control1, s.Control2, s.End = tf(s.Control1), tf(s.Control2), tf(s.End)
	}
}

// Reverse flips the path's traversal direction in place: the new start
// is the old end, every per-variant array and SegmentTypes is
// reversed, cubic inner control points swap, and rational-cubic weight
// vectors reverse to stay aligned with their (now reversed) control
// points.
func (p *Path) Reverse() {
	end := p.GetEnd()

	// Reversal must walk SegmentTypes in order to know each segment's
	// true predecessor point, since arrays are stored per-variant, not
	// per-position. Collect (type, newEnd) pairs first.
	type rec struct {
		t   SegmentType
		end safefloat.Vec2
		c1  safefloat.Vec2
		c2  safefloat.Vec2
		w   [4]safefloat.Value
	}
	n := len(p.SegmentTypes)
	recs := make([]rec, n)
	prevEnd := p.Start
	li, qi, ci, rqi, rci := 0, 0, 0, 0, 0
	for i, st := range p.SegmentTypes {
		switch st {
		case Line:
			recs[i] = rec{t: Line, end: prevEnd}
			prevEnd = p.LineSegments[li].End
			li++
		case IntegralQuadraticCurve:
			s := p.IntegralQuadraticCurveSegments[qi]
			recs[i] = rec{t: IntegralQuadraticCurve, end: prevEnd, c1: s.Control}
			prevEnd = s.End
			qi++
		case IntegralCubicCurve:
			s := p.IntegralCubicCurveSegments[ci]
			recs[i] = rec{t: IntegralCubicCurve, end: prevEnd, c1: s.Control2, c2: s.Control1}
			prevEnd = s.End
			ci++
		case RationalQuadraticCurve:
			s := p.RationalQuadraticCurveSegments[rqi]
			recs[i] = rec{t: RationalQuadraticCurve, end: prevEnd, c1: s.Control, w: [4]safefloat.Value{s.Weight}}
			prevEnd = s.End
			rqi++
		default:
			s := p.RationalCubicCurveSegments[rci]
			recs[i] = rec{
				t: RationalCubicCurve, end: prevEnd, c1: s.Control2, c2: s.Control1,
				w: [4]safefloat.Value{s.Weights[3], s.Weights[2], s.Weights[1], s.Weights[0]},
			}
			prevEnd = s.End
			rci++
		}
	}

	newTypes := make([]SegmentType, n)
	var newLines []LineSegment
	var newQuads []IntegralQuadraticCurveSegment
	var newCubics []IntegralCubicCurveSegment
	var newRQuads []RationalQuadraticCurveSegment
	var newRCubics []RationalCubicCurveSegment
	for i := n - 1; i >= 0; i-- {
		r := recs[i]
		idx := n - 1 - i
		newTypes[idx] = r.t
		switch r.t {
		case Line:
			newLines = append(newLines, LineSegment{End: r.end})
		case IntegralQuadraticCurve:
			newQuads = append(newQuads, IntegralQuadraticCurveSegment{Control: r.c1, End: r.end})
		case IntegralCubicCurve:
			newCubics = append(newCubics, IntegralCubicCurveSegment{Control1: r.c1, Control2: r.c2, End: r.end})
		case RationalQuadraticCurve:
			newRQuads = append(newRQuads, RationalQuadraticCurveSegment{Weight: r.w[0], Control: r.c1, End: r.end})
		default:
			newRCubics = append(newRCubics, RationalCubicCurveSegment{Weights: r.w, Control1: r.c1, Control2: r.c2, End: r.end})
		}
	}

	p.Start = end
	p.SegmentTypes = newTypes
	p.LineSegments = newLines
	p.IntegralQuadraticCurveSegments = newQuads
	p.IntegralCubicCurveSegments = newCubics
	p.RationalQuadraticCurveSegments = newRQuads
	p.RationalCubicCurveSegments = newRCubics
}

// ConvertIntegralCurvesToRationalCurves moves every integral quadratic
// and cubic segment into the corresponding rational array with unit
// weights, rewriting SegmentTypes in place.
func (p *Path) ConvertIntegralCurvesToRationalCurves() {
	var rquads []RationalQuadraticCurveSegment
	var rcubics []RationalCubicCurveSegment
	qi, ci, rqi, rci := 0, 0, 0, 0
	for i, st := range p.SegmentTypes {
		switch st {
		case IntegralQuadraticCurve:
			s := p.IntegralQuadraticCurveSegments[qi]
			qi++
			rquads = append(rquads, RationalQuadraticCurveSegment{
				Weight: safefloat.New(1), Control: s.Control, End: s.End,
			})
			p.SegmentTypes[i] = RationalQuadraticCurve
		case IntegralCubicCurve:
			s := p.IntegralCubicCurveSegments[ci]
			ci++
			one := safefloat.New(1)
			rcubics = append(rcubics, RationalCubicCurveSegment{
				Weights: [4]safefloat.Value{one, one, one, one}, Control1: s.Control1, Control2: s.Control2, End: s.End,
			})
			p.SegmentTypes[i] = RationalCubicCurve
		case RationalQuadraticCurve:
			rquads = append(rquads, p.RationalQuadraticCurveSegments[rqi])
			rqi++
		case RationalCubicCurve:
			rcubics = append(rcubics, p.RationalCubicCurveSegments[rci])
			rci++
		}
	}
	p.RationalQuadraticCurveSegments = rquads
	p.RationalCubicCurveSegments = rcubics
	p.IntegralQuadraticCurveSegments = nil
	p.IntegralCubicCurveSegments = nil
}

// ConvertQuadraticCurvesToCubicCurves elevates every quadratic segment
// to a cubic of the same locus. An integral quadratic with control
// point P1 elevates via the standard 2/3 convex combination of the two
// end tangent handles; a rational quadratic with middle weight w
// elevates to rational-cubic weights [1, q, q, 1] with q = (1+2w)/3,
// which preserves the curve exactly.
func (p *Path) ConvertQuadraticCurvesToCubicCurves() {
	qi, ci, rqi, rci := 0, 0, 0, 0
	starts := make([]safefloat.Vec2, len(p.SegmentTypes))
	for i := range starts {
		if i == 0 {
			starts[i] = p.Start
		} else {
			starts[i] = p.segmentEnd(i - 1)
		}
	}
	var cubics []IntegralCubicCurveSegment
	var rcubics []RationalCubicCurveSegment
	for i, st := range p.SegmentTypes {
		switch st {
		case IntegralQuadraticCurve:
			s := p.IntegralQuadraticCurveSegments[qi]
			qi++
			start := starts[i].Array()
			c := s.Control.Array()
			end := s.End.Array()
			c1 := lerpArr(start, c, 2.0/3.0)
			c2 := lerpArr(end, c, 2.0/3.0)
			cubics = append(cubics, IntegralCubicCurveSegment{
				Control1: vec(c1[0], c1[1]), Control2: vec(c2[0], c2[1]), End: s.End,
			})
			p.SegmentTypes[i] = IntegralCubicCurve
		case IntegralCubicCurve:
			cubics = append(cubics, p.IntegralCubicCurveSegments[ci])
			ci++
		case RationalQuadraticCurve:
			s := p.RationalQuadraticCurveSegments[rqi]
			rqi++
			w := s.Weight.Float32()
			q := (1 + 2*w) / 3
			start := starts[i].Array()
			c := s.Control.Array()
			end := s.End.Array()
			c1 := lerpArr(start, c, 2*w/(1+2*w))
			c2 := lerpArr(end, c, 2*w/(1+2*w))
			one := safefloat.New(1)
			rcubics = append(rcubics, RationalCubicCurveSegment{
				Weights:  [4]safefloat.Value{one, safefloat.New(q), safefloat.New(q), one},
				Control1: vec(c1[0], c1[1]), Control2: vec(c2[0], c2[1]), End: s.End,
			})
			p.SegmentTypes[i] = RationalCubicCurve
		case RationalCubicCurve:
			rcubics = append(rcubics, p.RationalCubicCurveSegments[rci])
			rci++
		}
	}
	p.IntegralCubicCurveSegments = cubics
	p.RationalCubicCurveSegments = rcubics
	p.IntegralQuadraticCurveSegments = nil
	p.RationalQuadraticCurveSegments = nil
}

func lerpArr(a, b [2]float32, t float32) [2]float32 {
	return [2]float32{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

// epsilon bounds the squared magnitude under which two points are
// considered coincident.
const epsilon = 1e-8

// Close appends a line segment back to Start if the current end is not
// already coincident with it.
func (p *Path) Close() {
	end := p.GetEnd()
	join := ga.Join(ga.NewPoint(end.X.Float32(), end.Y.Float32()), ga.NewPoint(p.Start.X.Float32(), p.Start.Y.Float32()))
	if join.SquaredMagnitude() < epsilon {
		return
	}
	p.PushLine(p.Start)
}

// Area returns the shoelace-formula signed area enclosed by the
// path's straight-line approximation (start and every segment's end),
// positive for counter-clockwise paths. Curve segments are treated as
// their chords; callers needing the true curved area should flatten
// first. It exists to support total-area invariants in tests.
func (p *Path) Area() float32 {
	pts := make([][2]float32, 0, len(p.SegmentTypes)+1)
	pts = append(pts, p.Start.Array())
	li, qi, ci, rqi, rci := 0, 0, 0, 0, 0
	for _, st := range p.SegmentTypes {
		switch st {
		case Line:
			pts = append(pts, p.LineSegments[li].End.Array())
			li++
		case IntegralQuadraticCurve:
			pts = append(pts, p.IntegralQuadraticCurveSegments[qi].End.Array())
			qi++
		case IntegralCubicCurve:
			pts = append(pts, p.IntegralCubicCurveSegments[ci].End.Array())
			ci++
		case RationalQuadraticCurve:
			pts = append(pts, p.RationalQuadraticCurveSegments[rqi].End.Array())
			rqi++
		default:
			pts = append(pts, p.RationalCubicCurveSegments[rci].End.Array())
			rci++
		}
	}
	var sum float32
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}
