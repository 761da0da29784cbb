package cachestats

import (
	"fmt"

	"github.com/contentsquare/cachestats/internal/faststats"
)

// ShardedCounter routes every write to a slot private to the calling
// goroutine, so concurrent writers never touch the same cache line. Reads
// fold all slots; their cost scales with the number of goroutines that have
// ever written, not with call frequency.
//
// A read concurrent with writers may trail each writer by at most its one
// in-flight update and is exact once writers quiesce.
//
// Set only overwrites the calling goroutine's slot. It does not reset other
// goroutines' contributions: after Set(n) the aggregate reads n plus
// whatever the other goroutines have accumulated. This asymmetry versus
// AtomicCounter.Set is deliberate; resetting every slot would make Set race
// against all writers instead of none.
//
// The zero value is a counter at 0, ready for use.
type ShardedCounter struct {
	value faststats.Uint64
}

// NewShardedCounter returns a counter seeded with init. The seed is stored
// in the constructing goroutine's slot, so a later Set from that same
// goroutine replaces it while writes from other goroutines accumulate on
// top of it.
func NewShardedCounter(init uint64) *ShardedCounter {
	c := &ShardedCounter{}
	if init != 0 {
		c.value.StoreLocal(init)
	}
	return c
}

// Get folds every goroutine's slot, including slots of goroutines that have
// since exited, into a single value.
func (c *ShardedCounter) Get() uint64 { return c.value.Snapshot() }

// Set overwrites the calling goroutine's slot only. See the type docs for
// the asymmetry versus AtomicCounter.Set.
func (c *ShardedCounter) Set(n uint64) { c.value.StoreLocal(n) }

// Add adds n to the calling goroutine's slot.
func (c *ShardedCounter) Add(n uint64) { c.value.Add(n) }

// Sub subtracts n from the calling goroutine's slot.
func (c *ShardedCounter) Sub(n uint64) { c.value.Sub(n) }

// Inc increments the calling goroutine's slot by 1.
func (c *ShardedCounter) Inc() { c.Add(1) }

// Dec decrements the calling goroutine's slot by 1.
func (c *ShardedCounter) Dec() { c.Sub(1) }

// AddFetch always fails with ErrUnsupported. No globally-consistent
// post-update value exists without folding every slot, and emulating one
// would hide the exact cost this counter exists to avoid. Metrics that need
// AddFetch belong on an AtomicCounter.
func (c *ShardedCounter) AddFetch(uint64) (uint64, error) {
	return 0, fmt.Errorf("add_fetch: %w", ErrUnsupported)
}

// SubFetch always fails with ErrUnsupported. See AddFetch.
func (c *ShardedCounter) SubFetch(uint64) (uint64, error) {
	return 0, fmt.Errorf("sub_fetch: %w", ErrUnsupported)
}
