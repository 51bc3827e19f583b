// Copyright 2025 go-vfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs go-vfunc kernels over disjoint ranges of one
// array from a fixed set of goroutines.
//
// The kernels themselves never partition work; they are pure functions and
// safe to call concurrently on non-overlapping ranges. A Pool does the
// splitting for callers that want it:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAligned(len(x), vf.MaxLanes[float32](), func(start, end int) {
//	    kernel.Scale(dst[start:end], x[start:end], 2)
//	})
//
//	total := workerpool.Reduce(pool, len(x), vf.MaxLanes[float32](), 0,
//	    func(start, end int) float32 { return kernel.Sum(x[start:end]) },
//	    func(a, b float32) float32 { return a + b })
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines. Close must not be called while
// a ParallelFor on the same pool is running.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines, or GOMAXPROCS of them if
// numWorkers <= 0. They live until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of goroutines in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued work drains. It is idempotent. A
// closed pool still accepts calls and runs them on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// chunks splits [0, n) into at most NumWorkers contiguous ranges whose
// boundaries are multiples of align, so every range but the last starts
// and ends on a full vector.
func (p *Pool) chunks(n, align int) (size, count int) {
	if align < 1 {
		align = 1
	}
	workers := min(p.numWorkers, (n+align-1)/align)
	if workers <= 1 || p.closed.Load() {
		return n, 1
	}
	size = (n + workers - 1) / workers
	size = (size + align - 1) / align * align
	return size, (n + size - 1) / size
}

// ParallelFor calls fn once per contiguous range of [0, n), in parallel,
// and returns when all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with range boundaries rounded to
// multiples of align. Pass vf.MaxLanes[T]() to keep the scalar tail work
// in the last range only.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	size, count := p.chunks(n, align)
	p.forChunks(n, size, count, fn)
}

func (p *Pool) forChunks(n, size, count int, fn func(start, end int)) {
	if count == 1 {
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	wg.Add(count)
	for i := range count {
		start := i * size
		end := min(start+size, n)
		p.tasks <- task{run: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim
// indices one at a time, which balances uneven items such as input files
// of different sizes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

// Reduce evaluates partial over aligned ranges of [0, n) in parallel and
// folds the results left to right with combine, starting from identity.
// The fold order depends only on n, align and the pool size, so float
// results are reproducible for a given pool.
func Reduce[T any](p *Pool, n, align int, identity T, partial func(start, end int) T, combine func(a, b T) T) T {
	if n <= 0 {
		return identity
	}
	size, count := p.chunks(n, align)
	parts := make([]T, count)
	p.forChunks(n, size, count, func(start, end int) {
		parts[start/size] = partial(start, end)
	})
	acc := identity
	for _, v := range parts {
		acc = combine(acc, v)
	}
	return acc
}
