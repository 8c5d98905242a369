package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BBox represents a bounding box in top-down page coordinates.
type BBox struct {
	X0     float64 // Left
	Top    float64 // Upper edge (smaller Y)
	X1     float64 // Right
	Bottom float64 // Lower edge (larger Y)
}

// NewBBoxFromPoints creates a bounding box from two opposite corners in any order
func NewBBoxFromPoints(p1, p2 Point) BBox {
	return BBox{
		X0:     math.Min(p1.X, p2.X),
		Top:    math.Min(p1.Y, p2.Y),
		X1:     math.Max(p1.X, p2.X),
		Bottom: math.Max(p1.Y, p2.Y),
	}
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// XMid returns the horizontal midpoint
func (b BBox) XMid() float64 {
	return (b.X0 + b.X1) / 2
}

// YMid returns the vertical midpoint
func (b BBox) YMid() float64 {
	return (b.Top + b.Bottom) / 2
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X0:     b.X0 - margin,
		Top:    b.Top - margin,
		X1:     b.X1 + margin,
		Bottom: b.Bottom + margin,
	}
}

// Contains checks if a point is inside the bounding box (edges included)
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X0 && p.X <= b.X1 &&
		p.Y >= b.Top && p.Y <= b.Bottom
}

// Union returns the smallest box covering both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0:     math.Min(b.X0, other.X0),
		Top:    math.Min(b.Top, other.Top),
		X1:     math.Max(b.X1, other.X1),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}
