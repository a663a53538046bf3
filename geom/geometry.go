package geom

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Translate returns the point moved by dx, dy
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the vector p - other
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Rect is a rectangle spanned by its top-left and bottom-right corners.
// The corners are kept as given so that an inverted or collapsed rectangle
// reports a non-positive area.
type Rect struct {
	TopLeft     Point
	BottomRight Point
}

// NewRect creates a rectangle from two opposite corner points
func NewRect(topLeft, bottomRight Point) Rect {
	return Rect{TopLeft: topLeft, BottomRight: bottomRight}
}

// Width returns the signed horizontal extent
func (r Rect) Width() float64 {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns the signed vertical extent
func (r Rect) Height() float64 {
	return r.BottomRight.Y - r.TopLeft.Y
}

// Area returns the area of the rectangle. Degenerate rectangles (zero width
// or height) and inverted rectangles (a negative extent on either axis)
// return a value <= 0.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w < 0 || h < 0 {
		return -math.Abs(w * h)
	}
	return w * h
}

// IsValid returns true if the rectangle has positive dimensions
func (r Rect) IsValid() bool {
	return r.Area() > 0
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.TopLeft.X + r.BottomRight.X) / 2,
		Y: (r.TopLeft.Y + r.BottomRight.Y) / 2,
	}
}

// Contains checks if a point is inside the rectangle (edges included)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}

// Translate returns the rectangle moved by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		TopLeft:     r.TopLeft.Translate(dx, dy),
		BottomRight: r.BottomRight.Translate(dx, dy),
	}
}
