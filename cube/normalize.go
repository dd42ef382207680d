package cube

// bounds returns the inclusive minimum and maximum coordinate along each
// axis. The shape must be non-empty.
// Complexity: O(n).
func bounds(s Shape) (min, max Coord) {
	min, max = s[0], s[0]
	for _, c := range s[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	return min, max
}

// Normalize translates s so the minimum value along each axis is zero.
// Two shapes identical up to pure translation normalize to the same cell
// set. The input is not modified; the result is a fresh slice.
// Normalize is idempotent and total on non-empty shapes (an empty shape is
// a precondition violation and panics).
// Complexity: O(n) time and memory.
func Normalize(s Shape) Shape {
	if len(s) == 0 {
		panic(ErrEmptyShape)
	}
	min, _ := bounds(s)
	out := make(Shape, len(s))
	for i, c := range s {
		out[i] = Coord{X: c.X - min.X, Y: c.Y - min.Y, Z: c.Z - min.Z}
	}
	return out
}
