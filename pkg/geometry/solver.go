package geometry

import (
	"fmt"
	"math"
)

const (
	// ControlRadius is the hit-test radius of the endpoint grab handles
	ControlRadius = 20.0
	// MinLength is the default minimum permitted segment length
	MinLength = 200.0
	// RulerHalfWidth is half the width of the ruler body; it doubles
	// as the margin added around the segment's bounding box
	RulerHalfWidth = 40.0
)

// Solver resolves raw cursor positions into constrained endpoint
// positions for a dragged segment endpoint. The zero value uses the
// default minimum length and prints a diagnostic on anomalies.
type Solver struct {
	// MinLength overrides the default minimum segment length when positive
	MinLength float64
	// OnAnomaly is called when an arc clamp finds no circle/line
	// intersection even though the caller's contract guarantees one.
	// When nil a diagnostic is printed instead.
	OnAnomaly func(center Vec2, radius float64, point Vec2)
}

func (s *Solver) minLength() float64 {
	if s.MinLength > 0 {
		return s.MinLength
	}
	return MinLength
}

func (s *Solver) anomaly(center Vec2, radius float64, point Vec2) {
	if s.OnAnomaly != nil {
		s.OnAnomaly(center, radius, point)
		return
	}
	fmt.Printf("Warning: arc clamp found no circle/line intersection (center=(%.2f, %.2f), r=%.2f)\n",
		center.X, center.Y, radius)
}

// ClampToCircleSide keeps point, constrained to lie on the circle of
// the given center and radius, on the side of the infinite boundary
// line start + t·dir that contains the center. Points already on the
// permitted side pass through unchanged; points that crossed the line
// are replaced by the nearer of the two circle/line intersections.
//
// Callers only invoke this when the boundary is known to cross the
// circle. When that contract is violated the point is returned
// unchanged after reporting the anomaly.
func (s *Solver) ClampToCircleSide(center Vec2, radius float64, start, dir, point Vec2) Vec2 {
	// implicit line a·x + b·y + c = 0 with unit normal (a, b)
	a := dir.Y
	b := -dir.X
	c := start.Y*dir.X - start.X*dir.Y
	if n := math.Hypot(a, b); n != 0 {
		a, b, c = a/n, b/n, c/n
	}

	// orient so the center side evaluates non-negative; a center
	// exactly on the boundary has no permitted side, so the point
	// passes through untouched
	side := a*center.X + b*center.Y + c
	if side == 0 {
		return point
	}
	if side < 0 {
		a, b, c = -a, -b, -c
	}

	if a*point.X+b*point.Y+c > 0 {
		return point
	}

	p1, p2, ok := IntersectCircleLine(center, radius, start, dir)
	if !ok {
		s.anomaly(center, radius, point)
		return point
	}
	if p1.DistanceSquared(point) < p2.DistanceSquared(point) {
		return p1
	}
	return p2
}

// Resolve computes the new position of a dragged endpoint from the raw
// cursor position. prev is the endpoint's position before this drag
// step, anchor the segment's other endpoint, and screenSize the
// draggable region [0,0]..screenSize.
//
// Constraints apply in a fixed order: distance lock with arc clamps
// against the four screen edges, angle lock, minimum length, then a
// componentwise clamp into the screen as the final safety net. Every
// degenerate case falls back explicitly, so the result is a total
// function of the inputs.
//
// The angle lock reuses the candidate's distance from the anchor as
// left by the distance-lock clamps, not the pre-drag distance. The
// coupling is intentional and load-bearing.
func (s *Solver) Resolve(prev, anchor, cursor, screenSize Vec2, fixDistance, fixAngle bool) Vec2 {
	candidate := cursor

	if fixDistance {
		oldDistance := prev.Distance(anchor)
		dir := candidate.Sub(anchor).NormalizeOr(Vec2{X: 1})
		candidate = anchor.Add(dir.Mul(oldDistance))

		// slide along the fixed-radius arc to stay inside each screen edge
		candidate = s.ClampToCircleSide(anchor, oldDistance, Vec2{}, Vec2{Y: 1}, candidate)
		candidate = s.ClampToCircleSide(anchor, oldDistance, screenSize, Vec2{Y: 1}, candidate)
		candidate = s.ClampToCircleSide(anchor, oldDistance, Vec2{}, Vec2{X: 1}, candidate)
		candidate = s.ClampToCircleSide(anchor, oldDistance, screenSize, Vec2{X: 1}, candidate)
	}

	if fixAngle {
		dir := prev.Sub(anchor).NormalizeOr(Vec2{X: 1})
		candidate = anchor.Add(dir.Mul(candidate.Distance(anchor)))
	}

	if minLength := s.minLength(); anchor.DistanceSquared(candidate) < minLength*minLength {
		dir := candidate.Sub(anchor).NormalizeOr(Vec2{X: 1})
		candidate = anchor.Add(dir.Mul(minLength))
	}

	return candidate.Clamp(Vec2{}, screenSize)
}
