// ABOUTME: Bounded worker pool for read-only batch jobs
// ABOUTME: Submit-and-wait pattern used by the tag audit

package pool

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted tasks on a fixed number of goroutines
type WorkerPool struct {
	workers  int
	taskChan chan func()
	workerWg sync.WaitGroup // tracks worker goroutines lifetime
	taskWg   sync.WaitGroup // tracks submitted tasks completion
}

// New creates a pool with the given number of workers; zero or less uses one per CPU
func New(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		workers:  workers,
		taskChan: make(chan func(), workers*2),
	}

	for range workers {
		pool.workerWg.Add(1)

		go func() {
			defer pool.workerWg.Done()

			for task := range pool.taskChan {
				task()
				pool.taskWg.Done()
			}
		}()
	}

	return pool
}

// Workers returns the number of worker goroutines
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Submit adds a task to the pool, blocking while the queue is full
func (p *WorkerPool) Submit(task func()) {
	p.taskWg.Add(1)
	p.taskChan <- task
}

// Wait blocks until all submitted tasks have completed
func (p *WorkerPool) Wait() {
	p.taskWg.Wait()
}

// Close shuts down the worker pool and waits for all workers to exit
func (p *WorkerPool) Close() {
	close(p.taskChan)
	p.workerWg.Wait()
}
