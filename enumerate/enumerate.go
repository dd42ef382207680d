package enumerate

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/polycube/cube"
)

// UnitCube returns the single size-1 shape: one cube at the origin.
func UnitCube() cube.Shape {
	return cube.Shape{{}}
}

// Enumerate computes the complete shape-set of all distinct polycubes of
// size n, up to rotation (reflections stay distinct). It bottoms out at
// the unit cube for n=1 and derives each larger size from the previous
// one: grow every base shape, canonicalize every candidate, deduplicate.
//
// When opts.Cache is set, each size is loaded from the cache if present
// and saved after computation. Cache errors abort the run.
//
// Errors: ErrBadSize for n < 1; ErrResourceLimit when opts.MaxShapes is
// exceeded; ErrCorruptSet on an undecodable working-set key; cache errors
// pass through unchanged.
//
// Running Enumerate twice with the same inputs yields equal sets
// regardless of worker count.
func Enumerate(n int, opts Options) (cube.Set, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	seed := cube.NewSet(cube.Canonicalize(UnitCube()))

	return run(1, seed, n, opts)
}

// Resume continues enumeration from a previously computed shape-set up to
// the target size. The seed must be a non-empty set of canonical keys,
// each decoding to a face-connected shape, all of one size m ≤ target;
// otherwise ErrBadSeed (or ErrBadSize when m exceeds target).
func Resume(target int, seed cube.Set, opts Options) (cube.Set, error) {
	if target < 1 {
		return nil, ErrBadSize
	}
	m, err := seedSize(seed)
	if err != nil {
		return nil, err
	}
	if m > target {
		return nil, ErrBadSize
	}

	return run(m, seed, target, opts)
}

// seedSize validates a caller-supplied shape-set and returns its uniform
// shape size. Every key must round-trip through Decode, satisfy the shape
// invariants, and already be canonical.
func seedSize(seed cube.Set) (int, error) {
	if seed.Len() == 0 {
		return 0, ErrBadSeed
	}
	size := -1
	for k := range seed {
		s, err := cube.Decode(k)
		if err != nil {
			return 0, ErrBadSeed
		}
		if cube.Validate(s) != nil {
			return 0, ErrBadSeed
		}
		if cube.Canonicalize(s) != k {
			return 0, ErrBadSeed
		}
		if size < 0 {
			size = len(s)
		} else if len(s) != size {
			return 0, ErrBadSeed
		}
	}

	return size, nil
}

// run advances the shape-set from size m to the target, one pass per size.
// Each completed set is immutable history: the next pass only reads it.
func run(m int, current cube.Set, target int, opts Options) (cube.Set, error) {
	for size := m + 1; size <= target; size++ {
		if opts.Cache != nil {
			cached, ok, err := opts.Cache.Load(size)
			if err != nil {
				return nil, err
			}
			if ok {
				current = cached
				continue
			}
		}

		next, err := pass(current, size, opts)
		if err != nil {
			return nil, err
		}

		if opts.Cache != nil {
			if err := opts.Cache.Save(size, next); err != nil {
				return nil, err
			}
		}
		current = next
	}

	return current, nil
}

// pass derives the size-n set from the size-(n-1) set prev.
//
// Base shapes are decoded from their canonical keys (canonical form is
// itself a concrete coordinate set) and partitioned across workers by
// stride over the sorted key order. Every worker grows and canonicalizes
// its shapes into a private set; the privates are merged afterwards.
// Union is commutative and idempotent, so the merged set is independent
// of scheduling.
func pass(prev cube.Set, n int, opts Options) (cube.Set, error) {
	keys := prev.Keys()
	shapes := make([]cube.Shape, len(keys))
	for i, k := range keys {
		s, err := cube.Decode(k)
		if err != nil {
			return nil, ErrCorruptSet
		}
		shapes[i] = s
	}

	workers := opts.workers()
	if workers > len(shapes) {
		workers = len(shapes)
	}
	if workers <= 1 {
		return passSerial(shapes, n, opts)
	}

	var (
		wg       sync.WaitGroup
		parts    = make([]cube.Set, workers)
		done     atomic.Int64
		exceeded atomic.Bool
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			part := make(cube.Set)
			for i := w; i < len(shapes); i += workers {
				if exceeded.Load() {
					return
				}
				for _, cand := range Grow(shapes[i]) {
					part.Add(cube.Canonicalize(cand))
				}
				// A single private set larger than the limit already
				// proves the merged set will exceed it.
				if opts.MaxShapes > 0 && part.Len() > opts.MaxShapes {
					exceeded.Store(true)
					return
				}
				report(opts, n, int(done.Add(1)), len(shapes))
			}
			parts[w] = part
		}(w)
	}
	wg.Wait()

	if exceeded.Load() {
		return nil, ErrResourceLimit
	}

	out := parts[0]
	for _, part := range parts[1:] {
		out.Merge(part)
		if opts.MaxShapes > 0 && out.Len() > opts.MaxShapes {
			return nil, ErrResourceLimit
		}
	}

	return out, nil
}

// passSerial is the single-worker pass: same semantics, no goroutines.
func passSerial(shapes []cube.Shape, n int, opts Options) (cube.Set, error) {
	out := make(cube.Set)
	for i, s := range shapes {
		for _, cand := range Grow(s) {
			out.Add(cube.Canonicalize(cand))
			if opts.MaxShapes > 0 && out.Len() > opts.MaxShapes {
				return nil, ErrResourceLimit
			}
		}
		report(opts, n, i+1, len(shapes))
	}

	return out, nil
}

// report emits a progress event every progressStride base shapes and at
// pass completion.
func report(opts Options, size, done, total int) {
	if opts.Progress == nil {
		return
	}
	if done%progressStride != 0 && done != total {
		return
	}
	opts.Progress(Progress{Size: size, Done: done, Total: total})
}
