// Package cubecache persists completed shape-sets in a SQLite database so
// repeated runs can resume from the largest size already computed.
//
// What:
//
//   - Store implements enumerate.Store over a single SQLite file.
//   - One row per canonical key, keyed by (size, key); a sizes manifest
//     marks which sizes are complete.
//   - Load only returns sets whose size is marked complete, so an
//     interrupted Save can never masquerade as a full result.
//
// Why:
//
//   - Shape-sets are expensive to recompute and cheap to store; the cache
//     is purely an acceleration and never affects correctness.
//
// Keys round-trip through cube.Encode / cube.Decode exactly; the cache
// stores canonical key bytes verbatim and performs no canonicalization of
// its own.
package cubecache
