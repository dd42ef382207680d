// Package cube defines core types and sentinel errors for polycube shapes.
package cube

import (
	"errors"
	"sort"
)

// Sentinel errors for cube operations.
var (
	// ErrEmptyShape indicates a shape with no coordinates.
	ErrEmptyShape = errors.New("cube: shape must contain at least one coordinate")
	// ErrDuplicateCoord indicates a shape listing the same coordinate twice.
	ErrDuplicateCoord = errors.New("cube: shape coordinates must be unique")
	// ErrDisconnected indicates a shape whose cells are not face-connected.
	ErrDisconnected = errors.New("cube: shape must be face-connected")
	// ErrBadKey indicates bytes that do not decode to a valid shape.
	ErrBadKey = errors.New("cube: malformed canonical key")
)

// Coord identifies one unit cube on the integer lattice.
type Coord struct {
	X, Y, Z int
}

// Shape is a set of lattice cells. A valid shape is non-empty,
// duplicate-free, and face-connected; see Validate.
// Coordinate order within the slice carries no meaning.
type Shape []Coord

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Key is the canonical serialization of a shape. Keys are hashable and
// totally ordered by Go string comparison; equality of keys is the sole
// definition of "same polycube".
type Key string

// Set is a deduplication set of canonical keys.
type Set map[Key]struct{}

// NewSet returns a Set seeded with the given keys.
func NewSet(keys ...Key) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts k and reports whether it was absent.
func (s Set) Add(k Key) bool {
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// Has reports whether k is present.
func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of distinct keys.
func (s Set) Len() int { return len(s) }

// Keys returns all keys in ascending order.
// Sorting makes downstream iteration deterministic regardless of how the
// set was assembled.
func (s Set) Keys() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Merge inserts every key of other into s and returns s.
func (s Set) Merge(other Set) Set {
	for k := range other {
		s[k] = struct{}{}
	}
	return s
}

// Equal reports whether s and other hold exactly the same keys.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}
