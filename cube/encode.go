package cube

import "encoding/binary"

// maxDim bounds a decoded bounding-box edge. A polycube with more cells
// than this is far beyond any enumerable size, so larger dims only occur
// in corrupt keys.
const maxDim = 1 << 16

// Encode serializes s into its canonical-ordering Key.
//
// The shape is normalized, rasterized into its bounding box, and the
// occupancy grid is run-length encoded in x-major order:
//
//	uvarint dimX, uvarint dimY, uvarint dimZ,
//	then one zigzag varint per run — positive for occupied cells,
//	negative for empty cells, runs alternating in sign.
//
// Encode is injective on normalized cell sets; the compression only
// shrinks the bytes compared and hashed, never what compares equal.
// Complexity: O(v) time and memory, v = bounding-box volume.
func Encode(s Shape) Key {
	n := Normalize(s)
	_, max := bounds(n)
	dx, dy, dz := max.X+1, max.Y+1, max.Z+1

	grid := make([]bool, dx*dy*dz)
	for _, c := range n {
		grid[(c.X*dy+c.Y)*dz+c.Z] = true
	}

	buf := make([]byte, 0, 3+len(grid)/4)
	buf = binary.AppendUvarint(buf, uint64(dx))
	buf = binary.AppendUvarint(buf, uint64(dy))
	buf = binary.AppendUvarint(buf, uint64(dz))

	cur, run := grid[0], int64(1)
	for _, v := range grid[1:] {
		if v == cur {
			run++
			continue
		}
		buf = appendRun(buf, cur, run)
		cur, run = v, 1
	}
	buf = appendRun(buf, cur, run)

	return Key(buf)
}

// appendRun emits one signed run: +run for occupied, -run for empty.
func appendRun(buf []byte, occupied bool, run int64) []byte {
	if !occupied {
		run = -run
	}
	return binary.AppendVarint(buf, run)
}

// Decode reconstructs the exact normalized cell set a Key was encoded
// from. It is the strict inverse of Encode: dims must be positive and
// bounded, runs must be non-zero, alternate in sign, and cover the
// bounding box exactly, and at least one cell must be occupied.
// Any violation yields ErrBadKey.
// Complexity: O(v) time and memory.
func Decode(k Key) (Shape, error) {
	data := []byte(k)
	off := 0

	dims := [3]int{}
	for i := range dims {
		v, n := binary.Uvarint(data[off:])
		if n <= 0 || v < 1 || v > maxDim {
			return nil, ErrBadKey
		}
		dims[i] = int(v)
		off += n
	}
	dx, dy, dz := dims[0], dims[1], dims[2]
	if dy*dz > maxDim*maxDim || dx*dy*dz > maxDim*maxDim {
		return nil, ErrBadKey
	}
	volume := dx * dy * dz

	var (
		s        Shape
		idx      int
		havePrev bool
		prevPos  bool
	)
	for off < len(data) {
		run, n := binary.Varint(data[off:])
		if n <= 0 || run == 0 {
			return nil, ErrBadKey
		}
		// No run can cover more cells than the box holds; anything larger
		// is corrupt and would overflow the coverage accumulator below.
		if run > int64(volume) || run < -int64(volume) {
			return nil, ErrBadKey
		}
		off += n

		pos := run > 0
		if havePrev && pos == prevPos {
			return nil, ErrBadKey
		}
		havePrev, prevPos = true, pos

		length := int(run)
		if !pos {
			length = -length
		}
		if idx+length > volume {
			return nil, ErrBadKey
		}
		if pos {
			for i := idx; i < idx+length; i++ {
				s = append(s, Coord{
					X: i / (dy * dz),
					Y: (i / dz) % dy,
					Z: i % dz,
				})
			}
		}
		idx += length
	}

	if idx != volume || len(s) == 0 {
		return nil, ErrBadKey
	}

	return s, nil
}
