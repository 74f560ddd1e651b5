// ABOUTME: Tests for the worker pool
// ABOUTME: Every submitted task runs exactly once before Wait returns

package pool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := New(3)
	defer p.Close()

	var count atomic.Int64

	results := make([]int, 100)
	for i := range results {
		p.Submit(func() {
			results[i] = i * 2
			count.Add(1)
		})
	}

	p.Wait()

	if got := count.Load(); got != 100 {
		t.Fatalf("ran %d tasks, want 100", got)
	}

	for i, r := range results {
		if r != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, r, i*2)
		}
	}
}

func TestPoolDefaultsToCPUCount(t *testing.T) {
	p := New(0)
	defer p.Close()

	if p.Workers() != runtime.NumCPU() {
		t.Errorf("Workers() = %d, want %d", p.Workers(), runtime.NumCPU())
	}
}
