// Package polycube enumerates all distinct polycubes — orthogonally
// face-connected unions of unit cubes — of a given size, where distinct
// means up to the 24 proper rotations of the cube (mirror images that are
// not rotations stay distinct).
//
// 🧊 What is polycube?
//
//	A small, focused library plus CLI that brings together:
//		• Shape primitives: lattice coordinates, face-connected shapes
//		• Rotation engine: the full 24-element proper rotation group
//		• Canonical keys: rotation/translation-invariant, hashable, ordered
//		• Growth: every one-cube extension of a shape
//		• Enumeration: complete deduplicated shape-sets, size by size
//		• Caching: optional SQLite persistence of finished sizes
//
// ✨ Why choose polycube?
//
//   - Provably correct identity – canonical form via brute-force rotation
//     minimum, no unproven invariants
//   - Parallel by construction – growth fans out across workers, results
//     merge as plain set union
//   - Pure core – enumeration is deterministic pure computation; caching
//     and progress are injected at the boundary
//
// Everything is organized under three packages and a CLI:
//
//	cube/        — Coord, Shape, Key, Set, Normalize, Rotations, Canonicalize
//	enumerate/   — Grow, Enumerate, Resume, Options, the Store capability
//	cubecache/   — SQLite-backed Store implementation
//	cmd/polycube — cobra CLI: count, table
//
// Quick ASCII example, the two trominoes (n=3):
//
//	■ ■ ■        ■ ■
//	             ■
//
//	every other arrangement of three cubes is a rotation of one of these.
//
// Known counts, seeding the regression tests:
// n=1→1, 2→1, 3→2, 4→8, 5→29, 6→166, 7→1023, 8→6922.
//
//	go get github.com/katalvlaran/polycube
package polycube
