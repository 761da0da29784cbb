package cachestats

import (
	"sync"
	"testing"
)

func BenchmarkAtomicCounterAdd(b *testing.B) {
	var c AtomicCounter
	for n := 0; n < b.N; n++ {
		c.Add(1)
	}
}

func BenchmarkAtomicCounterAdd_Parallel(b *testing.B) {
	var c AtomicCounter
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Add(1)
		}
	})
}

func BenchmarkShardedCounterAdd(b *testing.B) {
	var c ShardedCounter
	for n := 0; n < b.N; n++ {
		c.Add(1)
	}
}

func BenchmarkShardedCounterAdd_Parallel(b *testing.B) {
	var c ShardedCounter
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Add(1)
		}
	})
}

func BenchmarkShardedCounterGet(b *testing.B) {
	var c ShardedCounter

	// Populate slots for a realistic number of writer goroutines.
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(1)
		}()
	}
	wg.Wait()

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = c.Get()
	}
}
