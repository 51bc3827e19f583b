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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}

	def := New(0)
	defer def.Close()
	if def.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", def.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{0, 1, 3, 100, 1001} {
		results := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})
		for i, got := range results {
			if got != i*2 {
				t.Fatalf("n=%d: results[%d] = %d, want %d", n, i, got, i*2)
			}
		}
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const n, align = 100, 8
	var covered atomic.Int64
	var misaligned atomic.Int64
	pool.ParallelForAligned(n, align, func(start, end int) {
		covered.Add(int64(end - start))
		if start%align != 0 || (end != n && end%align != 0) {
			misaligned.Add(1)
		}
	})
	if covered.Load() != n {
		t.Errorf("covered %d elements, want %d", covered.Load(), n)
	}
	if misaligned.Load() != 0 {
		t.Errorf("%d ranges not aligned to %d", misaligned.Load(), align)
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})
	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestReduce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	x := make([]int64, 1003)
	var want int64
	for i := range x {
		x[i] = int64(i)
		want += int64(i)
	}
	got := Reduce(pool, len(x), 16, int64(0),
		func(start, end int) int64 {
			var s int64
			for _, v := range x[start:end] {
				s += v
			}
			return s
		},
		func(a, b int64) int64 { return a + b })
	if got != want {
		t.Errorf("Reduce = %d, want %d", got, want)
	}

	if got := Reduce(pool, 0, 16, int64(-1), nil, nil); got != -1 {
		t.Errorf("Reduce over nothing = %d, want identity", got)
	}
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	var calls int
	pool.ParallelForAtomic(n, func(int) { calls++ })
	if calls != n {
		t.Errorf("ParallelForAtomic on closed pool made %d calls, want %d", calls, n)
	}
	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelForAligned(len(data), 16, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
