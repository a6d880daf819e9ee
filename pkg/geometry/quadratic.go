package geometry

import "math"

// SolveQuadratic returns the real roots of a·t² + b·t + c = 0 in
// ascending order. ok is false when the discriminant is negative and
// no real roots exist. The caller must ensure a is non-zero; a == 0
// produces ±Inf or NaN roots instead of an error.
func SolveQuadratic(a, b, c float64) (t1, t2 float64, ok bool) {
	d := b*b - 4.0*a*c
	if d < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(d)
	return (-b - sqrtD) / (2.0 * a), (-b + sqrtD) / (2.0 * a), true
}

// IntersectCircleLine finds the two points where the infinite line
// start + t·dir crosses the circle of the given center and radius.
// The points follow root order and carry no positional ordering along
// the line. ok is false when the line misses the circle entirely.
func IntersectCircleLine(center Vec2, radius float64, start, dir Vec2) (p1, p2 Vec2, ok bool) {
	a := dir.LengthSquared()
	b := 2.0 * dir.Dot(start.Sub(center))
	c := start.DistanceSquared(center) - radius*radius

	t1, t2, ok := SolveQuadratic(a, b, c)
	if !ok {
		return Vec2{}, Vec2{}, false
	}
	return start.Add(dir.Mul(t1)), start.Add(dir.Mul(t2)), true
}
