package cube

// Canonicalize returns the canonical Key of s: the minimum, under Key
// ordering, of Encode over all 24 proper rotations. For any two shapes
// related by rotation and/or translation the keys are byte-identical;
// shapes not so related always get distinct keys (Encode is injective on
// normalized cell sets and the 24 candidates exhaust the orbit).
//
// Canonicalize is pure and cannot fail for a valid shape; an empty shape
// is a precondition violation and panics.
// Complexity: O(24·v) time, v = bounding-box volume.
func Canonicalize(s Shape) Key {
	if len(s) == 0 {
		panic(ErrEmptyShape)
	}
	img := make(Shape, len(s))
	var best Key
	for i, m := range rotations24 {
		m.applyShape(img, s)
		k := Encode(img)
		if i == 0 || k < best {
			best = k
		}
	}
	return best
}
