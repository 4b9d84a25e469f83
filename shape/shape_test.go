package shape

import (
	"math"
	"testing"

	"github.com/gogpu/vecpath/path"
	"github.com/gogpu/vecpath/safefloat"
)

func vec(x, y float32) safefloat.Vec2 { return safefloat.NewVec2(x, y) }

func approx(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// unitSquarePath leaves the polygon open (no closing segment back to
// start): the fill tessellator only needs the fan of points, not an
// explicitly closed contour.
func unitSquarePath() *path.Path {
	p := path.New(vec(0, 0))
	p.PushLine(vec(0, 1))
	p.PushLine(vec(1, 1))
	p.PushLine(vec(1, 0))
	return p
}

func TestBuildUnitSquareBoundingBox(t *testing.T) {
	s, err := Build([]*path.Path{unitSquarePath()})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := [4]float32{0, 0, 1, 1}
	if s.ConvexBox != want {
		t.Fatalf("convex box = %v, want %v", s.ConvexBox, want)
	}
}

func TestBuildUnitSquareSolidTriangleCount(t *testing.T) {
	s, err := Build([]*path.Path{unitSquarePath()})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// Two triangles of Vertex0 (8 bytes each) = 48 bytes of solid
	// vertex data at the front of the buffer.
	if s.VertexOffsets[0] != 6*8 {
		t.Fatalf("solid vertex range = %d bytes, want %d (2 triangles)", s.VertexOffsets[0], 6*8)
	}
}

func TestBuildUnitCircleFourArcs(t *testing.T) {
	circle := path.FromCircle([2]float32{0, 0}, 1)
	s, err := Build([]*path.Path{circle})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := [4]float32{-1, -1, 1, 1}
	for i := range want {
		if math.Abs(float64(s.ConvexBox[i]-want[i])) > 1e-4 {
			t.Fatalf("convex box = %v, want %v", s.ConvexBox, want)
		}
	}
	// v[2]..v[3] is the rational-quadratic range, width Vertex3f (20 bytes);
	// four arcs each emit 3 triangulated vertices.
	rationalQuadraticBytes := s.VertexOffsets[3] - s.VertexOffsets[2]
	if rationalQuadraticBytes != 4*3*20 {
		t.Fatalf("rational-quadratic byte range = %d, want %d", rationalQuadraticBytes, 4*3*20)
	}
}

func TestBuildRoundedRectBoundingBox(t *testing.T) {
	rr := path.FromRoundedRect([2]float32{0, 0}, [2]float32{2, 1}, 0.5)
	s, err := Build([]*path.Path{rr})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := [4]float32{-2, -1, 2, 1}
	for i := range want {
		if math.Abs(float64(s.ConvexBox[i]-want[i])) > 1e-4 {
			t.Fatalf("convex box = %v, want %v", s.ConvexBox, want)
		}
	}
}

func TestBuildEmptyPathsReturnsError(t *testing.T) {
	if _, err := Build(nil); err != ErrEmptyPath {
		t.Fatalf("expected ErrEmptyPath for an empty path set, got %v", err)
	}
}

func TestConvexHullContainsAllInputPoints(t *testing.T) {
	pts := []safefloat.Vec2{
		vec(0, 0), vec(1, 0), vec(1, 1), vec(0, 1),
		vec(0.5, 0.5), // interior point, must not survive onto the hull
	}
	hull := convexHull(pts, 1e-6)
	if len(hull) != 4 {
		t.Fatalf("expected the interior point to be dropped, hull has %d vertices, want 4", len(hull))
	}
	for _, h := range hull {
		if h.X.Float32() == 0.5 && h.Y.Float32() == 0.5 {
			t.Fatalf("interior point leaked into the hull")
		}
	}
}

func TestConvexHullCollinearPointsCollapse(t *testing.T) {
	pts := []safefloat.Vec2{vec(0, 0), vec(1, 0), vec(2, 0), vec(1, 1)}
	hull := convexHull(pts, 1e-6)
	for _, h := range hull {
		if approx(h.X.Float32(), 1, 1e-6) && approx(h.Y.Float32(), 0, 1e-6) {
			t.Fatalf("expected the interior collinear point (1,0) to be dropped from the hull")
		}
	}
}

func TestWithEpsilonIsAccepted(t *testing.T) {
	_, err := Build([]*path.Path{unitSquarePath()}, WithEpsilon(1e-3))
	if err != nil {
		t.Fatalf("Build with WithEpsilon failed: %v", err)
	}
}
