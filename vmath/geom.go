package vmath

// Point is a position in viewport units, origin at the top-left corner
type Point struct {
	X, Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the displacement from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectAt returns a size×size square with its top-left corner at p
func RectAt(p Point, size float64) Rect {
	return Rect{X: p.X, Y: p.Y, Width: size, Height: size}
}

// CenteredSquare returns a size×size square centered in a w×h area
func CenteredSquare(w, h, size float64) Rect {
	return Rect{X: w/2 - size/2, Y: h/2 - size/2, Width: size, Height: size}
}

// Min returns the top-left corner
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner
func (r Rect) Max() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }

// Center returns the center point
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p is within r, right and bottom edges excluded
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Overlaps reports whether the open interiors of r and o intersect.
// Rectangles that only share an edge or corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Size is a width/height pair, used for the viewport
type Size struct {
	Width, Height float64
}
