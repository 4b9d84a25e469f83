// Package vertex defines the packed GPU vertex record types the fill
// tessellator emits into and the fan-to-triangles expansion that turns
// a path's solid-fill fan into an explicit triangle list.
package vertex

import "encoding/binary"

// Vertex0 is a bare 2-D position, used for the solid-fill triangle
// stream where no Loop-Blinn weight is needed.
type Vertex0 [2]float32

// Vertex2f is a position plus a 2-component weight, used for integral
// quadratic curves.
type Vertex2f struct {
	Position [2]float32
	Weight   [2]float32
}

// Vertex3f is a position plus a 3-component weight, used for integral
// cubic curves and rational quadratic curves.
type Vertex3f struct {
	Position [2]float32
	Weight   [3]float32
}

// Vertex4f is a position plus a 4-component weight, used for rational
// cubic curves.
type Vertex4f struct {
	Position [2]float32
	Weight   [4]float32
}

// FanToTriangles expands a triangle fan (vertex 0 shared by every
// triangle) into an explicit, independent triangle list. Triangle i
// (for i = 0..n-3) is (0, i+2, i+1) — note this is the winding flipped
// from the naive (0, i+1, i+2) fan order, chosen so the interior
// normal stays consistent with the rest of the tessellator's output.
func FanToTriangles[T any](fan []T) []T {
	if len(fan) < 3 {
		return nil
	}
	n := len(fan) - 2
	result := make([]T, 0, n*3)
	for i := 0; i < n; i++ {
		result = append(result, fan[0], fan[i+2], fan[i+1])
	}
	return result
}

// AppendBytes serializes a slice of fixed-size vertex records into buf
// using little-endian encoding, the layout a GPU vertex buffer expects.
// T must be one of the record types in this package (or Vertex0); the
// generic signature exists so the shape package can serialize each of
// its vertex streams with one call site instead of one hand-written
// loop per type.
func AppendBytes[T any](buf []byte, records []T) []byte {
	for _, r := range records {
		buf = appendValue(buf, r)
	}
	return buf
}

func must(buf []byte, err error) []byte {
	if err != nil {
		// Every value passed through this package is a fixed-size
		// float32 array; binary.Append only fails on unsupported
		// types, which would be a programming error here.
		panic(err)
	}
	return buf
}

func appendValue(buf []byte, v any) []byte {
	switch r := v.(type) {
	case Vertex0:
		return must(binary.Append(buf, binary.LittleEndian, r))
	case Vertex2f:
		buf = must(binary.Append(buf, binary.LittleEndian, r.Position))
		return must(binary.Append(buf, binary.LittleEndian, r.Weight))
	case Vertex3f:
		buf = must(binary.Append(buf, binary.LittleEndian, r.Position))
		return must(binary.Append(buf, binary.LittleEndian, r.Weight))
	case Vertex4f:
		buf = must(binary.Append(buf, binary.LittleEndian, r.Position))
		return must(binary.Append(buf, binary.LittleEndian, r.Weight))
	default:
		panic("vertex: AppendBytes called with an unsupported record type")
	}
}
