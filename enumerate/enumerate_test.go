package enumerate_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polycube/cube"
	"github.com/katalvlaran/polycube/enumerate"
)

// knownCounts are the reference polycube counts up to rotation
// (reflections distinct), indexed by size.
var knownCounts = map[int]int{
	1: 1,
	2: 1,
	3: 2,
	4: 8,
	5: 29,
	6: 166,
	7: 1023,
	8: 6922,
}

// serial returns Options pinned to one worker.
func serial() enumerate.Options {
	opts := enumerate.DefaultOptions()
	opts.Workers = 1
	return opts
}

// TestEnumerate_KnownCounts verifies the reference counts for small sizes
// with both a single worker and a worker pool.
func TestEnumerate_KnownCounts(t *testing.T) {
	for _, workers := range []int{1, 4} {
		for n := 1; n <= 6; n++ {
			t.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(t *testing.T) {
				opts := enumerate.DefaultOptions()
				opts.Workers = workers

				set, err := enumerate.Enumerate(n, opts)
				require.NoError(t, err)
				assert.Equal(t, knownCounts[n], set.Len())
			})
		}
	}
}

// TestEnumerate_LargerCounts covers the slower regression sizes; skipped
// under -short.
func TestEnumerate_LargerCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping n≥7 regression counts in short mode")
	}
	for n := 7; n <= 8; n++ {
		set, err := enumerate.Enumerate(n, enumerate.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, knownCounts[n], set.Len(), "count mismatch for n=%d", n)
	}
}

// TestEnumerate_BadSize verifies sizes below 1 are rejected, never
// silently repaired.
func TestEnumerate_BadSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := enumerate.Enumerate(n, serial())
		assert.ErrorIs(t, err, enumerate.ErrBadSize)
	}
}

// TestEnumerate_DeterministicAcrossWorkerCounts verifies the pipeline
// yields identical sets regardless of parallel execution order.
func TestEnumerate_DeterministicAcrossWorkerCounts(t *testing.T) {
	opts1, opts8 := serial(), enumerate.DefaultOptions()
	opts8.Workers = 8

	a, err := enumerate.Enumerate(6, opts1)
	require.NoError(t, err)
	b, err := enumerate.Enumerate(6, opts8)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "worker count must not affect the result set")
}

// TestEnumerate_KeysDecodeToValidShapes verifies every emitted key
// round-trips to a connected shape of the requested size.
func TestEnumerate_KeysDecodeToValidShapes(t *testing.T) {
	set, err := enumerate.Enumerate(5, serial())
	require.NoError(t, err)
	for _, k := range set.Keys() {
		s, err := cube.Decode(k)
		require.NoError(t, err)
		assert.Len(t, s, 5)
		assert.NoError(t, cube.Validate(s))
		assert.Equal(t, k, cube.Canonicalize(s), "stored keys must already be canonical")
	}
}

// TestResume_ContinuesFromSeed verifies growing a mid-run set forward
// reproduces the same counts as a fresh run.
func TestResume_ContinuesFromSeed(t *testing.T) {
	seed, err := enumerate.Enumerate(3, serial())
	require.NoError(t, err)

	set, err := enumerate.Resume(5, seed, serial())
	require.NoError(t, err)
	assert.Equal(t, knownCounts[5], set.Len())

	// Resuming at the seed's own size is a no-op.
	same, err := enumerate.Resume(3, seed, serial())
	require.NoError(t, err)
	assert.True(t, seed.Equal(same))
}

// TestResume_RejectsBadSeeds covers the seed validation failure modes:
// empty, undecodable, disconnected, non-canonical, mixed sizes.
func TestResume_RejectsBadSeeds(t *testing.T) {
	straight := cube.Shape{{X: 0}, {X: 1}, {X: 2}}

	// A decodable key that is not in canonical orientation.
	nonCanonical := cube.Encode(cube.Shape{{X: 0}, {Y: 1, X: 0}, {Y: 2, X: 0}})
	if nonCanonical == cube.Canonicalize(straight) {
		nonCanonical = cube.Encode(straight)
	}

	// A decodable key whose shape is disconnected.
	disconnected := cube.Encode(cube.Shape{{Z: 0}, {Z: 2}})

	cases := map[string]cube.Set{
		"empty set":     cube.NewSet(),
		"garbage key":   cube.NewSet("not a key"),
		"disconnected":  cube.NewSet(disconnected),
		"non-canonical": cube.NewSet(nonCanonical),
		"mixed sizes": cube.NewSet(
			cube.Canonicalize(enumerate.UnitCube()),
			cube.Canonicalize(cube.Shape{{X: 0}, {X: 1}}),
		),
	}
	for name, seed := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := enumerate.Resume(9, seed, serial())
			assert.ErrorIs(t, err, enumerate.ErrBadSeed)
		})
	}
}

// TestResume_SeedLargerThanTarget verifies the size ordering check.
func TestResume_SeedLargerThanTarget(t *testing.T) {
	seed, err := enumerate.Enumerate(4, serial())
	require.NoError(t, err)

	_, err = enumerate.Resume(2, seed, serial())
	assert.ErrorIs(t, err, enumerate.ErrBadSize)
}

// TestEnumerate_ResourceLimit verifies a too-small shape budget aborts
// with ErrResourceLimit instead of returning a truncated set.
func TestEnumerate_ResourceLimit(t *testing.T) {
	for _, workers := range []int{1, 4} {
		opts := enumerate.DefaultOptions()
		opts.Workers = workers
		opts.MaxShapes = 20 // n=5 needs 29

		set, err := enumerate.Enumerate(5, opts)
		assert.ErrorIs(t, err, enumerate.ErrResourceLimit, "workers=%d", workers)
		assert.Nil(t, set, "no partial result may leak on resource exhaustion")
	}
}

// TestEnumerate_ProgressEvents verifies progress reporting reaches 100%
// for each computed size with a single worker.
func TestEnumerate_ProgressEvents(t *testing.T) {
	var (
		mu     sync.Mutex
		events []enumerate.Progress
	)
	opts := serial()
	opts.Progress = func(p enumerate.Progress) {
		mu.Lock()
		events = append(events, p)
		mu.Unlock()
	}

	_, err := enumerate.Enumerate(4, opts)
	require.NoError(t, err)

	finals := make(map[int]bool)
	for _, p := range events {
		assert.LessOrEqual(t, p.Done, p.Total)
		if p.Done == p.Total {
			finals[p.Size] = true
		}
	}
	for size := 2; size <= 4; size++ {
		assert.True(t, finals[size], "pass for size %d must report completion", size)
	}
}

// memStore is an in-memory enumerate.Store recording its traffic.
type memStore struct {
	sets  map[int]cube.Set
	loads []int
	saves []int
	fail  error
}

func newMemStore() *memStore {
	return &memStore{sets: make(map[int]cube.Set)}
}

func (m *memStore) Load(n int) (cube.Set, bool, error) {
	m.loads = append(m.loads, n)
	if m.fail != nil {
		return nil, false, m.fail
	}
	set, ok := m.sets[n]
	return set, ok, nil
}

func (m *memStore) Save(n int, set cube.Set) error {
	m.saves = append(m.saves, n)
	if m.fail != nil {
		return m.fail
	}
	m.sets[n] = set
	return nil
}

// TestEnumerate_CacheHitShortCircuits verifies a cached size is loaded
// instead of recomputed and later sizes are saved.
func TestEnumerate_CacheHitShortCircuits(t *testing.T) {
	store := newMemStore()
	warm, err := enumerate.Enumerate(3, serial())
	require.NoError(t, err)
	store.sets[2] = mustEnumerate(t, 2)
	store.sets[3] = warm

	opts := serial()
	opts.Cache = store
	set, err := enumerate.Enumerate(4, opts)
	require.NoError(t, err)
	assert.Equal(t, knownCounts[4], set.Len())

	assert.Equal(t, []int{2, 3, 4}, store.loads, "every size past the seed consults the cache")
	assert.Equal(t, []int{4}, store.saves, "only the computed size is saved")
}

// TestEnumerate_CacheErrorAborts verifies store failures abort the run.
func TestEnumerate_CacheErrorAborts(t *testing.T) {
	store := newMemStore()
	store.fail = errors.New("disk gone")

	opts := serial()
	opts.Cache = store
	_, err := enumerate.Enumerate(3, opts)
	assert.ErrorIs(t, err, store.fail)
}

// mustEnumerate is a test helper for building reference sets.
func mustEnumerate(t *testing.T, n int) cube.Set {
	t.Helper()
	set, err := enumerate.Enumerate(n, serial())
	require.NoError(t, err)
	return set
}
