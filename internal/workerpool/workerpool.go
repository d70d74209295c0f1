// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs chunked loops on a fixed set of goroutines.
//
// The benchmark harness uses it to generate large inputs. Chunk boundaries
// depend only on the input length and chunk size, never on the number of
// workers, so a chunk can seed its own PRNG from its index and the
// generated data is the same on every machine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Chunks(len(data), 4096, func(chunk, start, end int) {
//	    r := rand.New(rand.NewPCG(seed, uint64(chunk)))
//	    for i := start; i < end; i++ {
//	        data[i] = r.Int32()
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. Workers are spawned once at
// creation and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan job, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.workC {
		j.run()
		j.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Calling Close multiple times is safe; a
// closed pool runs Chunks sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// NumChunks returns how many chunks Chunks splits n items into.
func NumChunks(n, size int) int {
	if n <= 0 {
		return 0
	}
	if size <= 0 {
		size = n
	}
	return (n + size - 1) / size
}

// Chunks splits [0, n) into consecutive ranges of size items (the last
// one possibly shorter) and calls fn once per range with the range's
// chunk index. Workers pull chunks from a shared counter. Chunks blocks
// until every range is done.
func (p *Pool) Chunks(n, size int, fn func(chunk, start, end int)) {
	chunks := NumChunks(n, size)
	if chunks == 0 {
		return
	}
	if size <= 0 {
		size = n
	}
	bounds := func(c int) (int, int) {
		start := c * size
		return start, min(start+size, n)
	}

	workers := min(p.numWorkers, chunks)
	if p.closed.Load() || workers == 1 {
		for c := range chunks {
			start, end := bounds(c)
			fn(c, start, end)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- job{
			run: func() {
				for {
					c := int(next.Add(1)) - 1
					if c >= chunks {
						return
					}
					start, end := bounds(c)
					fn(c, start, end)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
