package geometry

import "math"

// Rect represents an integer window rectangle in screen coordinates
type Rect struct {
	X, Y, W, H int
}

// Pos returns the top-left corner of the rectangle
func (r Rect) Pos() Vec2 {
	return Vec2{X: float64(r.X), Y: float64(r.Y)}
}

// Size returns the dimensions of the rectangle
func (r Rect) Size() Vec2 {
	return Vec2{X: float64(r.W), Y: float64(r.H)}
}

// WindowBounds returns the bounding rectangle of the segment from..to
// expanded by margin on every side. Coordinates truncate toward zero,
// the same narrowing on every call, so recomputing over identical
// endpoints yields pixel-stable edges.
func WindowBounds(from, to Vec2, margin float64) Rect {
	minX := math.Min(from.X, to.X) - margin
	maxX := math.Max(from.X, to.X) + margin
	minY := math.Min(from.Y, to.Y) - margin
	maxY := math.Max(from.Y, to.Y) + margin
	return Rect{
		X: int(minX),
		Y: int(minY),
		W: int(maxX - minX),
		H: int(maxY - minY),
	}
}
