// Package parallel shards index ranges across goroutines for the dense
// array kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how an index range is sharded.
type Config struct {
	Workers int // goroutines to spread shards over
	Grain   int // minimum iterations per shard; smaller ranges run inline
}

// Default sizes the shard pool from the CPU count.
func Default() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		Grain:   64,
	}
}

// For executes f(i) for every i in [0, n). The range is cut into contiguous
// shards of at least Grain iterations, one goroutine per shard; ranges too
// small to shard, or a single-worker config, run on the calling goroutine.
// Distinct indices must be independent: f must not write state shared
// between them.
func For(n int, f func(i int), cfg Config) {
	if cfg.Workers <= 1 || n < 2 || n < cfg.Grain {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	shard := (n + cfg.Workers - 1) / cfg.Workers
	if shard < cfg.Grain {
		shard = cfg.Grain
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += shard {
		hi := lo + shard
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
