// File: worker/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package worker implements a worker pool whose threads are pinned to
// specific CPU cores or to the cores of a NUMA node.
//
// A WorkerPool is configured through WorkerPoolBuilder: pick a thread
// count per core and a target, either an explicit core set or a NUMA
// node. Each worker locks its goroutine to an OS thread, pins the thread
// to its single assigned core, and consumes tasks from a shared WorkQueue
// until the pool is shut down.
//
// Tasks are submitted fire-and-forget with Submit, or with a one-shot
// result through SubmitWithResult.
package worker
