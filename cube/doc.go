// Package cube provides the shape primitives for polycube enumeration:
// lattice coordinates, face-connected shapes, the 24 proper rotations of
// the cube, and a rotation/translation-invariant canonical key.
//
// What:
//
//   - Coord / Shape model a polycube as a set of integer lattice cells.
//   - Normalize translates a shape so every axis minimum is zero.
//   - Rotations yields all 24 proper-rotation images of a shape.
//   - Encode / Decode serialize a shape to a compact run-length Key and back.
//   - Canonicalize picks the minimal Key over all 24 rotations, so two
//     shapes related by rotation and/or translation always compare equal.
//   - Set is a deduplication set over canonical keys.
//
// Why:
//
//   - Polycube counting: Key equality is the sole identity test for shapes.
//   - Persistence: keys round-trip through Decode, so a stored key is enough
//     to reconstruct a concrete coordinate set.
//
// Complexity:
//
//   - Normalize / Encode / Decode: O(v) with v = bounding-box volume.
//   - Rotations:                   O(24·n) for n cells.
//   - Canonicalize:                O(24·v).
//
// Errors:
//
//   - ErrEmptyShape:      shape has no coordinates.
//   - ErrDuplicateCoord:  shape repeats a coordinate.
//   - ErrDisconnected:    shape is not face-connected.
//   - ErrBadKey:          key bytes do not decode to a shape.
//
// Reflections are deliberately not collapsed: mirror-image shapes that are
// not rotations of each other keep distinct keys.
package cube
