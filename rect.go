package quad

import "fmt"

// Rect is an axis-aligned rectangle given by its top-left origin and
// non-negative extents. It is used both for tree node boundaries and
// for entry and query bounds.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle.
// Points on the boundary are inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Intersects reports whether the two rectangles overlap.
// Rectangles that merely touch along an edge count as intersecting.
func (r Rect) Intersects(s Rect) bool {
	return !(r.X+r.W < s.X ||
		r.Y+r.H < s.Y ||
		r.X > s.X+s.W ||
		r.Y > s.Y+s.H)
}

// ContainsRect reports whether s lies entirely within r.
func (r Rect) ContainsRect(s Rect) bool {
	return s.X >= r.X && s.Y >= r.Y &&
		s.X+s.W <= r.X+r.W &&
		s.Y+s.H <= r.Y+r.H
}

// Quadrant returns the quarter of r covered by q. The four quadrants
// partition r exactly: each has half the width and half the height.
func (r Rect) Quadrant(q Quadrant) Rect {
	hw := r.W / 2
	hh := r.H / 2
	switch q {
	case NE:
		return Rect{X: r.X + hw, Y: r.Y, W: hw, H: hh}
	case NW:
		return Rect{X: r.X, Y: r.Y, W: hw, H: hh}
	case SE:
		return Rect{X: r.X + hw, Y: r.Y + hh, W: hw, H: hh}
	default: // SW
		return Rect{X: r.X, Y: r.Y + hh, W: hw, H: hh}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
