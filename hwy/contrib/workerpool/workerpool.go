// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent pool of goroutines for splitting
// large buffers into independent segments.
//
// The primitives in this module are synchronous. A Pool is only used by the
// helpers that process one buffer as many segments and merge the partial
// results afterwards, such as adler32.Parallel.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.Segments(len(buf), 1<<20, func(i, start, end int) {
//	    partial[i] = work(buf[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines reused across calls.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu orders sends on workC against Close. Senders hold it shared until
	// their items are queued; Close holds it exclusively.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines, or GOMAXPROCS when
// numWorkers <= 0. The workers run until Close.
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

// Close stops the workers after pending work completes. It is safe to call
// more than once; a closed pool runs later work on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// NumSegments returns how many segments of at most size bytes cover length
// bytes.
func NumSegments(length, size int) int {
	if length <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return (length + size - 1) / size
}

// Segments splits [0, length) into consecutive segments of size bytes, the
// last one possibly shorter, and calls fn(i, start, end) for segment i.
// Workers take segments in order from a shared counter. Segments blocks
// until every call has returned. A nil pool runs sequentially, and so does a
// pool that is closed before the work is queued, even when Close races with
// Segments.
func (p *Pool) Segments(length, size int, fn func(i, start, end int)) {
	n := NumSegments(length, size)
	if n == 0 {
		return
	}
	if size <= 0 {
		size = length
	}
	segment := func(i int) {
		start := i * size
		fn(i, start, min(start+size, length))
	}

	sequential := func() {
		for i := range n {
			segment(i)
		}
	}
	if p == nil || min(p.numWorkers, n) == 1 {
		sequential()
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		sequential()
		return
	}
	workers := min(p.numWorkers, n)
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					segment(i)
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
