// Package cachestats provides low-overhead counters for tracking cache
// statistics (hits, byte totals, evictions) on hot paths.
//
// Two interchangeable implementations are provided. AtomicCounter keeps a
// single shared atomic cell and is correct under arbitrary concurrent use.
// ShardedCounter keeps a private slot per writing goroutine and folds the
// slots only on read, trading the fetch-returning operations away for
// writes that never contend on a shared cache line. Pick one per metric at
// construction time; hold the concrete type on hot paths.
package cachestats

import "errors"

// ErrUnsupported is returned by operations a counter implementation
// deliberately does not provide.
var ErrUnsupported = errors.New("unsupported counter operation")

// Counter is the operation set shared by both counter implementations.
//
// AddFetch and SubFetch are part of the contract but are only serviced by
// AtomicCounter; ShardedCounter fails them with ErrUnsupported because no
// single post-update value exists across per-goroutine slots without a full
// fold, which its write path must never pay for.
type Counter interface {
	// Get returns the current value. For ShardedCounter the value may trail
	// concurrent writers; it is exact once writers quiesce.
	Get() uint64
	// Set overwrites the value. See the per-implementation docs: the two
	// implementations differ in what "the value" means for Set.
	Set(n uint64)
	Add(n uint64)
	Sub(n uint64)
	Inc()
	Dec()
	// AddFetch adds n and returns the updated value.
	AddFetch(n uint64) (uint64, error)
	// SubFetch subtracts n and returns the updated value.
	SubFetch(n uint64) (uint64, error)
}

var (
	_ Counter = &AtomicCounter{}
	_ Counter = &ShardedCounter{}
)
