package path

import "math"

// FromPolygon constructs a closed-by-convention (not auto-closed)
// path visiting vertices in order with straight lines.
func FromPolygon(vertices [][2]float32) *Path {
	p := New(vec(vertices[0][0], vertices[0][1]))
	for _, v := range vertices[1:] {
		p.PushLine(vec(v[0], v[1]))
	}
	return p
}

// FromRegularPolygon approximates a circle of the given radius with
// vertexCount straight edges, starting at angle rotation.
func FromRegularPolygon(center [2]float32, radius, rotation float32, vertexCount int) *Path {
	vertices := make([][2]float32, vertexCount)
	for i := 0; i < vertexCount; i++ {
		angle := float64(rotation) + float64(i)/float64(vertexCount)*2*math.Pi
		s, c := math.Sincos(angle)
		vertices[i] = [2]float32{center[0] + radius*float32(c), center[1] + radius*float32(s)}
	}
	return FromPolygon(vertices)
}

// FromRect constructs an axis-aligned rectangle centered at center
// with the given half-extent.
func FromRect(center, halfExtent [2]float32) *Path {
	return FromPolygon([][2]float32{
		{center[0] - halfExtent[0], center[1] - halfExtent[1]},
		{center[0] - halfExtent[0], center[1] + halfExtent[1]},
		{center[0] + halfExtent[0], center[1] + halfExtent[1]},
		{center[0] + halfExtent[0], center[1] - halfExtent[1]},
	})
}

// FromRoundedRect constructs a rectangle with quarter-circle roundings
// of the given radius at every corner.
func FromRoundedRect(center, halfExtent [2]float32, radius float32) *Path {
	corners := [4][3][2]float32{
		{
			{center[0] - halfExtent[0] + radius, center[1] - halfExtent[1]},
			{center[0] - halfExtent[0], center[1] - halfExtent[1]},
			{center[0] - halfExtent[0], center[1] - halfExtent[1] + radius},
		},
		{
			{center[0] - halfExtent[0], center[1] + halfExtent[1] - radius},
			{center[0] - halfExtent[0], center[1] + halfExtent[1]},
			{center[0] - halfExtent[0] + radius, center[1] + halfExtent[1]},
		},
		{
			{center[0] + halfExtent[0] - radius, center[1] + halfExtent[1]},
			{center[0] + halfExtent[0], center[1] + halfExtent[1]},
			{center[0] + halfExtent[0], center[1] + halfExtent[1] - radius},
		},
		{
			{center[0] + halfExtent[0], center[1] - halfExtent[1] + radius},
			{center[0] + halfExtent[0], center[1] - halfExtent[1]},
			{center[0] + halfExtent[0] - radius, center[1] - halfExtent[1]},
		},
	}
	start := corners[3][2]
	p := New(vec(start[0], start[1]))
	for _, c := range corners {
		from, corner, to := c[0], c[1], c[2]
		p.PushLine(vec(from[0], from[1]))
		p.PushQuarterEllipse(vec(corner[0], corner[1]), vec(to[0], to[1]))
	}
	return p
}

// FromEllipse constructs an ellipse from four quarter-ellipse arcs.
func FromEllipse(center, halfExtent [2]float32) *Path {
	type arc struct{ corner, to [2]float32 }
	arcs := [4]arc{
		{[2]float32{center[0] - halfExtent[0], center[1] - halfExtent[1]}, [2]float32{center[0] - halfExtent[0], center[1]}},
		{[2]float32{center[0] - halfExtent[0], center[1] + halfExtent[1]}, [2]float32{center[0], center[1] + halfExtent[1]}},
		{[2]float32{center[0] + halfExtent[0], center[1] + halfExtent[1]}, [2]float32{center[0] + halfExtent[0], center[1]}},
		{[2]float32{center[0] + halfExtent[0], center[1] - halfExtent[1]}, [2]float32{center[0], center[1] - halfExtent[1]}},
	}
	start := arcs[3].to
	p := New(vec(start[0], start[1]))
	for _, a := range arcs {
		p.PushQuarterEllipse(vec(a.corner[0], a.corner[1]), vec(a.to[0], a.to[1]))
	}
	return p
}

// FromCircle constructs a circle as a special case of FromEllipse.
func FromCircle(center [2]float32, radius float32) *Path {
	return FromEllipse(center, [2]float32{radius, radius})
}
