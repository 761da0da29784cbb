package cachestats

import "sync/atomic"

// AtomicCounter is a counter backed by a single atomic cell shared by all
// goroutines. Every write is immediately visible to subsequent reads of the
// same counter; no ordering is implied for any other memory location.
//
// The zero value is a counter at 0, ready for use. An AtomicCounter must not
// be copied after first use; see Clone.
type AtomicCounter struct {
	value atomic.Uint64
}

// NewAtomicCounter returns a counter seeded with init.
func NewAtomicCounter(init uint64) *AtomicCounter {
	c := &AtomicCounter{}
	c.value.Store(init)
	return c
}

// Get returns the current value.
func (c *AtomicCounter) Get() uint64 { return c.value.Load() }

// Set unconditionally overwrites the value. A Set racing with an Add may
// drop or keep the Add's delta depending on interleaving; call Set only when
// the counter is otherwise quiescent, or accept the race.
func (c *AtomicCounter) Set(n uint64) { c.value.Store(n) }

// Add atomically adds n.
func (c *AtomicCounter) Add(n uint64) { c.value.Add(n) }

// Sub atomically subtracts n.
func (c *AtomicCounter) Sub(n uint64) { c.value.Add(^(n - 1)) }

// Inc increments the counter by 1.
func (c *AtomicCounter) Inc() { c.Add(1) }

// Dec decrements the counter by 1.
func (c *AtomicCounter) Dec() { c.Sub(1) }

// AddFetch atomically adds n and returns the updated value: the fetched
// value with this caller's own delta applied. By the time the caller uses
// the returned value, other writers may already have moved the counter on.
// The error is always nil.
func (c *AtomicCounter) AddFetch(n uint64) (uint64, error) {
	return c.value.Add(n), nil
}

// SubFetch atomically subtracts n and returns the updated value. The error
// is always nil.
func (c *AtomicCounter) SubFetch(n uint64) (uint64, error) {
	return c.value.Add(^(n - 1)), nil
}

// CompareExchange stores desired and returns true if the counter holds
// *expected. Otherwise it writes the observed value into *expected and
// returns false.
func (c *AtomicCounter) CompareExchange(expected *uint64, desired uint64) bool {
	if c.value.CompareAndSwap(*expected, desired) {
		return true
	}
	*expected = c.value.Load()
	return false
}

// Clone snapshots the counter and seeds a new independent one with the
// snapshot. Writes to either counter never affect the other.
func (c *AtomicCounter) Clone() *AtomicCounter {
	return NewAtomicCounter(c.Get())
}

// AtomicCounter32 is the 32-bit variant of AtomicCounter, for metrics whose
// range is known to fit and whose owner wants the narrower cell.
//
// The zero value is a counter at 0, ready for use.
type AtomicCounter32 struct {
	value atomic.Uint32
}

// NewAtomicCounter32 returns a counter seeded with init.
func NewAtomicCounter32(init uint32) *AtomicCounter32 {
	c := &AtomicCounter32{}
	c.value.Store(init)
	return c
}

// Get returns the current value.
func (c *AtomicCounter32) Get() uint32 { return c.value.Load() }

// Set unconditionally overwrites the value. Same race caveat as
// AtomicCounter.Set.
func (c *AtomicCounter32) Set(n uint32) { c.value.Store(n) }

// Add atomically adds n.
func (c *AtomicCounter32) Add(n uint32) { c.value.Add(n) }

// Sub atomically subtracts n.
func (c *AtomicCounter32) Sub(n uint32) { c.value.Add(^(n - 1)) }

// Inc increments the counter by 1.
func (c *AtomicCounter32) Inc() { c.Add(1) }

// Dec decrements the counter by 1.
func (c *AtomicCounter32) Dec() { c.Sub(1) }

// AddFetch atomically adds n and returns the updated value.
func (c *AtomicCounter32) AddFetch(n uint32) uint32 { return c.value.Add(n) }

// SubFetch atomically subtracts n and returns the updated value.
func (c *AtomicCounter32) SubFetch(n uint32) uint32 { return c.value.Add(^(n - 1)) }

// CompareExchange stores desired and returns true if the counter holds
// *expected. Otherwise it writes the observed value into *expected and
// returns false.
func (c *AtomicCounter32) CompareExchange(expected *uint32, desired uint32) bool {
	if c.value.CompareAndSwap(*expected, desired) {
		return true
	}
	*expected = c.value.Load()
	return false
}

// Clone snapshots the counter and seeds a new independent one with the
// snapshot.
func (c *AtomicCounter32) Clone() *AtomicCounter32 {
	return NewAtomicCounter32(c.Get())
}
