// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package parallel spreads packet loops over a persistent worker pool.
//
// Work is split into contiguous chunks whose boundaries fall on packet
// boundaries, so every worker except the last sees only full packets and
// the tail of the buffer is handled exactly once.
//
// Usage:
//
//	pool := parallel.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	parallel.ProcessWithTail[float32](pool, len(dst),
//	    func(offset int) { ... full packet at offset ... },
//	    func(offset, count int) { ... count < NumLanes elements ... },
//	)
package parallel

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-packet/hwy"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}

	hwy.Logger().Debug("parallel pool started", slog.Int("workers", numWorkers))
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes. Calling Close more
// than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn on disjoint ranges covering [0, n). Every range
// start is a multiple of step, and every range end except the last is too.
// It blocks until all work completes. A closed pool runs fn(0, n) inline.
func (p *Pool) ParallelFor(n, step int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	step = max(step, 1)

	blocks := (n + step - 1) / step
	workers := min(p.numWorkers, blocks)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (blocks + workers - 1) / workers * step

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ProcessWithTail is hwy.ProcessWithTail spread over pool. fullFn runs once
// per full packet and tailFn at most once, for the final partial packet.
// Calls for different offsets may run concurrently.
func ProcessWithTail[T hwy.Lanes](pool *Pool, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := hwy.NumLanes[T]()
	pool.ParallelFor(size, lanes, func(start, end int) {
		hwy.ProcessWithTail[T](end-start,
			func(offset int) { fullFn(start + offset) },
			func(offset, count int) { tailFn(start+offset, count) },
		)
	})
}
