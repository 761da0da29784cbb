// Package faststats stores per-goroutine partial sums and folds them into a
// snapshot on demand. Writers only ever touch their own slot, so writes from
// different goroutines never contend on a shared cache line; the fold
// tolerates concurrent writers and may trail each of them by at most one
// in-flight update.
package faststats

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
	"golang.org/x/sys/cpu"
)

// slot holds one goroutine's partial sum, padded so neighbouring slots never
// share a cache line. The cell is atomic so Snapshot reads it torn-free
// while its owner keeps writing.
type slot struct {
	v atomic.Uint64
	_ cpu.CacheLinePad
}

// Uint64 is a set of per-goroutine uint64 slots with a summing snapshot.
//
// A goroutine's slot is found with one lock-free map load; writes to it
// synchronize with nothing but the snapshot fold. Slots are kept for the
// lifetime of the Uint64, so the contribution of a goroutine that has
// exited stays in every later snapshot. Memory therefore grows with the
// number of distinct writer goroutines; writers are expected to be
// long-lived workers, not per-request goroutines.
//
// The zero value is empty and ready for use.
type Uint64 struct {
	slots sync.Map // goroutine id -> *slot
}

func (s *Uint64) local() *slot {
	id := goid.Get()
	if v, ok := s.slots.Load(id); ok {
		return v.(*slot)
	}
	v, _ := s.slots.LoadOrStore(id, new(slot))
	return v.(*slot)
}

// Add adds n to the calling goroutine's slot.
func (s *Uint64) Add(n uint64) { s.local().v.Add(n) }

// Sub subtracts n from the calling goroutine's slot.
func (s *Uint64) Sub(n uint64) { s.local().v.Add(^(n - 1)) }

// StoreLocal overwrites the calling goroutine's slot. Other goroutines'
// slots are untouched.
func (s *Uint64) StoreLocal(n uint64) { s.local().v.Store(n) }

// Snapshot sums every slot, including slots whose owner goroutine has
// exited. It is safe to call concurrently with writers; each slot value is
// read atomically but the fold is not atomic across slots, so the result
// may trail any concurrent writer by its one in-flight update.
func (s *Uint64) Snapshot() uint64 {
	var sum uint64
	s.slots.Range(func(_, v interface{}) bool {
		sum += v.(*slot).v.Load()
		return true
	})
	return sum
}
