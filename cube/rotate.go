package cube

// matrix is a 3×3 integer rotation matrix in row-major order.
type matrix [3][3]int

// Quarter-turn generators about the three principal axes.
var (
	quarterX = matrix{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	quarterY = matrix{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	quarterZ = matrix{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
)

// rotations24 holds the full proper rotation group of the cube,
// precomputed once at init by closing the group generated by the three
// quarter-turns. Element order is fixed for the process lifetime but
// otherwise meaningless.
var rotations24 []matrix

func init() {
	rotations24 = closeRotationGroup()
	if len(rotations24) != 24 {
		panic("cube: rotation group closure produced wrong element count")
	}
	for _, m := range rotations24 {
		if m.det() != 1 {
			panic("cube: rotation group closure produced a reflection")
		}
	}
}

// closeRotationGroup breadth-first expands {I} under the quarter-turn
// generators until no new element appears.
func closeRotationGroup() []matrix {
	identity := matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	seen := map[matrix]struct{}{identity: {}}
	queue := []matrix{identity}
	for qi := 0; qi < len(queue); qi++ {
		m := queue[qi]
		for _, g := range []matrix{quarterX, quarterY, quarterZ} {
			next := g.mul(m)
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return queue
}

// mul returns the matrix product m·o.
func (m matrix) mul(o matrix) matrix {
	var out matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return out
}

// det returns the determinant; +1 for proper rotations, -1 for reflections.
func (m matrix) det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// apply maps the coordinate through the rotation.
func (m matrix) apply(c Coord) Coord {
	return Coord{
		X: m[0][0]*c.X + m[0][1]*c.Y + m[0][2]*c.Z,
		Y: m[1][0]*c.X + m[1][1]*c.Y + m[1][2]*c.Z,
		Z: m[2][0]*c.X + m[2][1]*c.Y + m[2][2]*c.Z,
	}
}

// applyShape maps every cell of src through the rotation into dst,
// which must have the same length as src.
func (m matrix) applyShape(dst, src Shape) {
	for i, c := range src {
		dst[i] = m.apply(c)
	}
}

// Rotations returns the 24 images of s under the proper rotation group of
// the cube. Reflections are excluded. The images are neither normalized
// nor deduplicated: a shape with rotational self-symmetry repeats images.
// Output order is fixed but carries no meaning.
// Complexity: O(24·n) time and memory.
func Rotations(s Shape) []Shape {
	out := make([]Shape, len(rotations24))
	for i, m := range rotations24 {
		img := make(Shape, len(s))
		m.applyShape(img, s)
		out[i] = img
	}
	return out
}
