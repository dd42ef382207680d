// Package enumerate generates all distinct polycubes of a target size,
// where distinct means up to the 24 proper rotations of the cube
// (reflections are never collapsed).
//
// What:
//
//   - Grow produces every one-cube extension of a shape.
//   - Enumerate builds the complete canonical shape-set for size n,
//     bottoming out at the single unit cube for n=1.
//   - Resume continues from a previously computed shape-set.
//   - Options configure worker count, an optional persistent Store,
//     progress reporting, and a shape-count limit.
//
// Why:
//
//   - Each size-n set is derived solely from the size-(n-1) set: grow every
//     base shape by one cube, canonicalize every candidate, deduplicate.
//   - Growth and canonicalization of different base shapes are independent
//     pure computations, so a pass fans out across workers and merges
//     worker-local sets; set union makes the result order-independent.
//
// Complexity:
//
//	One pass over a base set B of size-(n-1) shapes costs
//	O(|B| · 6n · 24 · v) with v the candidate bounding-box volume.
//	Set sizes grow combinatorially with n; Options.MaxShapes turns the
//	inevitable blow-up into an explicit ErrResourceLimit instead of an
//	open-ended allocation.
//
// Errors:
//
//   - ErrBadSize:       target size below 1, or below the seed size.
//   - ErrBadSeed:       resume set empty, undecodable, disconnected,
//     non-canonical, or of mixed sizes.
//   - ErrCorruptSet:    a key inside a working set failed to decode —
//     an internal invariant defect, never masked.
//   - ErrResourceLimit: the shape limit was exceeded before completion;
//     no partial set is returned.
package enumerate
