// File: worker/workerpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// WorkerPool: OS threads pinned per core consuming a shared WorkQueue.

package worker

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/bignacio/dxpool/affinity"
)

// ErrWorkerPoolStopped is returned by submissions once shutdown of the
// pool has begun.
var ErrWorkerPoolStopped = errors.New("worker: pool is shut down")

// WorkerPool owns a set of worker threads, each pinned to one core of the
// configured target set, all consuming tasks from one WorkQueue.
//
// Pools are created through WorkerPoolBuilder.
type WorkerPool struct {
	queue        *WorkQueue
	processor    affinity.Processor
	wg           sync.WaitGroup
	size         int
	stopped      atomic.Bool
	shutdownOnce sync.Once
}

func newWorkerPool(threadsPerCore uint, targetCores affinity.CoreSet) *WorkerPool {
	wp := &WorkerPool{
		queue:     NewWorkQueue(),
		processor: affinity.NewProcessor(),
		size:      int(threadsPerCore) * targetCores.Len(),
	}

	for _, core := range targetCores.Slice() {
		for t := uint(0); t < threadsPerCore; t++ {
			wp.wg.Add(1)
			go wp.runWorker(core)
		}
	}

	return wp
}

// Submit enqueues a task for execution on any of the pool's workers.
// Failures inside the task are swallowed so they cannot take down a
// worker; use SubmitWithResult when the outcome matters.
// After Shutdown has begun, Submit returns ErrWorkerPoolStopped.
func (wp *WorkerPool) Submit(task Task) error {
	if task == nil {
		return fmt.Errorf("worker: task must not be nil")
	}
	if wp.stopped.Load() {
		return ErrWorkerPoolStopped
	}

	wp.queue.Add(task)
	return nil
}

// HasWork reports whether any submitted task has not yet been picked up
// by a worker. A false result does not mean all picked-up tasks have
// finished running.
func (wp *WorkerPool) HasWork() bool {
	return wp.queue.HasWork()
}

// Size returns the total number of worker threads in the pool.
func (wp *WorkerPool) Size() int {
	return wp.size
}

// Shutdown stops the pool: submissions are refused, every already queued
// task still runs, in-flight tasks run to completion, and all worker
// threads are joined before Shutdown returns. Calling Shutdown again is
// a no-op.
func (wp *WorkerPool) Shutdown() {
	wp.shutdownOnce.Do(func() {
		wp.stopped.Store(true)

		// One poison task per worker; each worker exits on consuming one.
		// This avoids interrupting a Take blocked on the condition variable.
		for i := 0; i < wp.size; i++ {
			wp.queue.Add(nil)
		}

		wp.wg.Wait()
	})
}

// runWorker is the main loop of a single worker thread.
func (wp *WorkerPool) runWorker(core affinity.Core) {
	defer wp.wg.Done()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Workers pin to their single assigned core, not to the whole target set.
	if err := wp.processor.SetThreadAffinity(affinity.NewCoreSet(core)); err != nil {
		if !errors.Is(err, affinity.ErrPlatformUnsupported) {
			// a worker that cannot pin must not serve tasks meant for its core
			log.Printf("worker: failed to pin thread to core %d: %v", core.ID(), err)
			return
		}
		// no affinity backend on this platform: keep the thread count,
		// run unpinned
	}

	for {
		task := wp.queue.Take()
		if task == nil {
			return
		}
		wp.runTask(task)
	}
}

// runTask executes one task, recovering panics so a failing task cannot
// kill the worker.
func (wp *WorkerPool) runTask(task Task) {
	defer func() {
		_ = recover()
	}()
	task()
}
