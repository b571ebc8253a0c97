// Package parallel splits row-independent matrix work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how row loops are split.
type Config struct {
	Workers int // Number of goroutines; 1 or less runs sequentially.
	MinWork int // Below this many scalar operations the loop stays sequential.
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		MinWork: 1 << 16,
	}
}

// Rows calls f(lo, hi) over disjoint half-open row ranges covering [0, rows).
// costPerRow is the number of scalar operations per row and decides whether
// splitting is worth it. f must only write to rows inside its range.
func Rows(rows, costPerRow int, f func(lo, hi int), cfg Config) {
	workers := min(cfg.Workers, rows)
	if workers <= 1 || rows*costPerRow < cfg.MinWork {
		f(0, rows)
		return
	}

	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < rows; lo += chunk {
		hi := min(lo+chunk, rows)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
