package falagard

import "fmt"

// Rect is an axis-aligned rectangle in absolute pixels.
// Min is the top-left corner and Max the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// R creates a Rect from its left, top, right and bottom edges.
func R(left, top, right, bottom float64) Rect {
	return Rect{Min: Point{X: left, Y: top}, Max: Point{X: right, Y: bottom}}
}

// RectAt creates a Rect from a position and a size.
func RectAt(pos Point, size Size) Rect {
	return Rect{Min: pos, Max: Point{X: pos.X + size.Width, Y: pos.Y + size.Height}}
}

func (r Rect) Left() float64   { return r.Min.X }
func (r Rect) Top() float64    { return r.Min.Y }
func (r Rect) Right() float64  { return r.Max.X }
func (r Rect) Bottom() float64 { return r.Max.Y }

// Width returns the horizontal extent. It is negative for an inverted rect.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent. It is negative for an inverted rect.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the extents of the rect.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// WithSize returns r with Min unchanged and Max moved to give the size.
func (r Rect) WithSize(s Size) Rect {
	return RectAt(r.Min, s)
}

// Offset returns r translated by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// IsEmpty reports whether the rect covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Canon returns the rect with Min and Max ordered componentwise.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Intersection returns the overlap of r and o.
// When they do not overlap the zero Rect is returned.
func (r Rect) Intersection(o Rect) Rect {
	if r.Max.X > o.Min.X && r.Min.X < o.Max.X &&
		r.Max.Y > o.Min.Y && r.Min.Y < o.Max.Y {
		return Rect{
			Min: Point{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
			Max: Point{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
		}
	}
	return Rect{}
}

// Union returns the smallest rect containing both r and o.
// An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect{
		Min: Point{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Point{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p lies inside r. Max edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g,%g,%g}", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
