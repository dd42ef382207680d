package enumerate

import "github.com/katalvlaran/polycube/cube"

// Grow returns every candidate obtained by attaching one cube to an open
// face-adjacent position of s: one candidate per distinct open position,
// each holding the original cells plus the new one. Every candidate is
// face-connected by construction and exactly one cell larger than s.
// The number of candidates is at most 6·len(s).
// Candidate order carries no meaning.
//
// Complexity: O(n) time and O(n) memory for the position scan, plus
// O(n) per emitted candidate.
func Grow(s cube.Shape) []cube.Shape {
	occupied := make(map[cube.Coord]struct{}, len(s))
	for _, c := range s {
		occupied[c] = struct{}{}
	}

	open := make(map[cube.Coord]struct{}, 6*len(s))
	for _, c := range s {
		for _, d := range cube.FaceOffsets() {
			p := cube.Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
			if _, ok := occupied[p]; !ok {
				open[p] = struct{}{}
			}
		}
	}

	out := make([]cube.Shape, 0, len(open))
	for p := range open {
		cand := make(cube.Shape, len(s)+1)
		copy(cand, s)
		cand[len(s)] = p
		out = append(out, cand)
	}

	return out
}
