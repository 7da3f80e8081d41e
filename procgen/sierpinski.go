package procgen

import "github.com/gospatial/quad"

// Segment is a line between two points, the unit of output for the
// fractal line drawings.
type Segment struct {
	A, B quad.Point
}

// Sierpinski returns the line segments of a Sierpinski triangle with
// the given corner points, subdivided depth times. Depth 0 is the
// plain triangle; each level replaces a triangle with the three corner
// triangles formed by its edge midpoints, leaving the middle hole
// undrawn. The result holds 3*3^depth segments in deterministic order.
// Negative depths are treated as 0.
func Sierpinski(p1, p2, p3 quad.Point, depth int) []Segment {
	n := 3
	for i := 0; i < depth; i++ {
		n *= 3
	}
	out := make([]Segment, 0, n)
	SierpinskiFunc(p1, p2, p3, depth, func(a, b quad.Point) {
		out = append(out, Segment{A: a, B: b})
	})
	return out
}

// SierpinskiFunc is the callback form of Sierpinski: emit is called
// once per segment, in the same deterministic order, without building
// a slice. Useful when segments are consumed streaming, e.g. fed
// straight into a spatial index.
func SierpinskiFunc(p1, p2, p3 quad.Point, depth int, emit func(a, b quad.Point)) {
	if depth <= 0 {
		emit(p1, p2)
		emit(p2, p3)
		emit(p3, p1)
		return
	}
	m12 := p1.Lerp(p2, 0.5)
	m23 := p2.Lerp(p3, 0.5)
	m31 := p3.Lerp(p1, 0.5)

	// Corner triangles only; the middle one stays empty.
	SierpinskiFunc(p1, m12, m31, depth-1, emit)
	SierpinskiFunc(p2, m23, m12, depth-1, emit)
	SierpinskiFunc(p3, m31, m23, depth-1, emit)
}

// Bounds returns the tight axis-aligned bounding box of a segment,
// sized for insertion into a quad.Tree.
func (s Segment) Bounds() quad.Rect {
	x0, x1 := s.A.X, s.B.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := s.A.Y, s.B.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return quad.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
