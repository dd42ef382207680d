// Package enumerate defines options, the cache capability, and sentinel
// errors for polycube enumeration.
package enumerate

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/polycube/cube"
)

// Sentinel errors for enumeration.
var (
	// ErrBadSize indicates a target size below 1 or below the seed size.
	ErrBadSize = errors.New("enumerate: target size must be at least 1 and not below the seed size")
	// ErrBadSeed indicates a resume set that is empty, undecodable,
	// disconnected, non-canonical, or of mixed shape sizes.
	ErrBadSeed = errors.New("enumerate: seed is not a valid canonical shape-set")
	// ErrCorruptSet indicates a working-set key that does not decode to a
	// valid shape. This is an internal invariant defect.
	ErrCorruptSet = errors.New("enumerate: shape-set key does not decode to a valid shape")
	// ErrResourceLimit indicates the configured shape limit was exceeded
	// before the pass completed.
	ErrResourceLimit = errors.New("enumerate: shape limit exceeded before completion")
)

// Store is the injectable persistence capability at the enumerator
// boundary. Load returns the complete shape-set for size n and true, or
// false when nothing usable is stored. Save persists a completed set.
// Caching only accelerates enumeration; correctness never depends on it.
type Store interface {
	Load(n int) (cube.Set, bool, error)
	Save(n int, set cube.Set) error
}

// Progress describes the state of one enumeration pass. Done counts base
// shapes of size Size-1 already grown, out of Total.
type Progress struct {
	Size  int
	Done  int
	Total int
}

// ProgressFunc receives periodic Progress events during a pass.
// With Workers > 1 it may be invoked from multiple goroutines.
type ProgressFunc func(Progress)

// progressStride is how many base shapes are processed between events.
const progressStride = 100

// Options contains tunable parameters for enumeration.
type Options struct {
	// Workers is the number of concurrent growth workers per pass.
	// Values below 1 fall back to runtime.NumCPU().
	Workers int
	// Cache, when non-nil, is consulted before computing each size and
	// updated after.
	Cache Store
	// Progress, when non-nil, receives periodic pass updates.
	Progress ProgressFunc
	// MaxShapes bounds the size of any produced shape-set; 0 means
	// unbounded. Exceeding it aborts with ErrResourceLimit.
	MaxShapes int
}

// DefaultOptions returns Options with default settings: one worker per
// CPU, no cache, no progress reporting, no shape limit.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}

// workers returns the effective worker count.
func (o Options) workers() int {
	if o.Workers < 1 {
		return runtime.NumCPU()
	}
	return o.Workers
}
