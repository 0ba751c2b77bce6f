// File: worker/workqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-safe task queue: producers never block, consumers wait on a
// condition variable while the queue is empty.

package worker

import (
	"sync"

	"github.com/eapache/queue"
)

// Task is a unit of work consumed by pool workers. A nil Task is reserved
// as the shutdown sentinel and must not be enqueued by users.
type Task func()

// WorkQueue is an unbounded FIFO of tasks. Adding notifies one waiting
// consumer; taking blocks until a task is available.
type WorkQueue struct {
	mu    sync.Mutex
	cond  *sync.Cond
	tasks *queue.Queue
}

// NewWorkQueue creates an empty work queue.
func NewWorkQueue() *WorkQueue {
	wq := &WorkQueue{tasks: queue.New()}
	wq.cond = sync.NewCond(&wq.mu)
	return wq
}

// Add appends a task to the queue and wakes one waiting consumer. It
// never blocks on queue capacity.
func (wq *WorkQueue) Add(task Task) {
	wq.mu.Lock()
	defer wq.mu.Unlock()

	wq.tasks.Add(task)
	wq.cond.Signal()
}

// Take removes and returns the task at the front of the queue, blocking
// while the queue is empty.
func (wq *WorkQueue) Take() Task {
	wq.mu.Lock()
	defer wq.mu.Unlock()

	for wq.tasks.Length() == 0 {
		wq.cond.Wait()
	}

	return wq.tasks.Remove().(Task)
}

// HasWork reports whether the queue holds any task.
func (wq *WorkQueue) HasWork() bool {
	wq.mu.Lock()
	defer wq.mu.Unlock()

	return wq.tasks.Length() > 0
}
