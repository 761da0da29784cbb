package cachestats_test

import (
	"fmt"

	"github.com/contentsquare/cachestats"
)

// stats is a typical per-cache metrics block: high-churn metrics go on
// sharded counters, metrics that need the post-update value (here, the byte
// total checked against a capacity limit) go on atomic ones.
type stats struct {
	Hits      cachestats.ShardedCounter
	Misses    cachestats.ShardedCounter
	Evictions cachestats.ShardedCounter
	UsedBytes cachestats.AtomicCounter
}

func Example() {
	var s stats

	s.Hits.Inc()
	s.Hits.Inc()
	s.Misses.Inc()

	used, _ := s.UsedBytes.AddFetch(4096)
	if used > 1<<20 {
		s.Evictions.Inc()
	}

	fmt.Println(s.Hits.Get(), s.Misses.Get(), s.Evictions.Get(), used)
	// Output: 2 1 0 4096
}
