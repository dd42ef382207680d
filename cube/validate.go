package cube

// faceOffsets are the six face-adjacent lattice directions.
var faceOffsets = [6]Coord{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// FaceOffsets returns the six face-adjacent direction vectors.
// Diagonal (edge or corner) contact never counts as adjacency.
// Complexity: O(1).
func FaceOffsets() [6]Coord {
	return faceOffsets
}

// Validate checks the shape invariants enforced at system boundaries:
// non-empty (ErrEmptyShape), duplicate-free (ErrDuplicateCoord), and
// face-connected (ErrDisconnected). Shapes produced internally hold these
// by construction; Validate guards externally supplied coordinate sets
// such as resume seeds and cache rows.
//
// Connectivity is established by BFS over the occupancy set.
// Complexity: O(n) time and memory.
func Validate(s Shape) error {
	if len(s) == 0 {
		return ErrEmptyShape
	}

	occupied := make(map[Coord]struct{}, len(s))
	for _, c := range s {
		if _, ok := occupied[c]; ok {
			return ErrDuplicateCoord
		}
		occupied[c] = struct{}{}
	}

	// BFS from the first cell; every cell must be reachable over faces.
	seen := make(map[Coord]struct{}, len(s))
	queue := []Coord{s[0]}
	seen[s[0]] = struct{}{}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range faceOffsets {
			v := Coord{X: u.X + d.X, Y: u.Y + d.Y, Z: u.Z + d.Z}
			if _, ok := occupied[v]; !ok {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}
	if len(seen) != len(occupied) {
		return ErrDisconnected
	}

	return nil
}
